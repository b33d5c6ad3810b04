// Copyright 2025 The yodict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a sorted in-memory index with exact and prefix
// matching. It backs history listing and search.
package index

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Index is a sorted array index over values keyed by their String form.
type Index[V fmt.Stringer] struct {
	entries []V
}

// New creates an index from the given slice. The slice is copied and sorted
// lexicographically by each value's String form.
func New[V fmt.Stringer](entries []V) *Index[V] {
	sorted := make([]V, len(entries))
	copy(sorted, entries)
	slices.SortFunc(sorted, func(a, b V) int {
		return strings.Compare(a.String(), b.String())
	})

	return &Index[V]{
		entries: sorted,
	}
}

// Len returns the number of indexed values.
func (ix *Index[V]) Len() int {
	return len(ix.entries)
}

// All returns the indexed values in sorted order.
func (ix *Index[V]) All() []V {
	return ix.entries
}

// Search performs a binary search over the index and returns all values
// whose String form equals query.
func (ix *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(ix.entries), func(i int) int {
		return strings.Compare(query, ix.entries[i].String())
	})
	if !found {
		return nil
	}

	j := i
	for ; j < len(ix.entries) && ix.entries[j].String() == query; j++ {
	}
	return ix.entries[i:j]
}

// Prefix returns all values whose String form starts with prefix, in sorted
// order. An empty prefix returns every value.
func (ix *Index[V]) Prefix(prefix string) []V {
	i := sort.Search(len(ix.entries), func(i int) bool {
		return ix.entries[i].String() >= prefix
	})

	j := i
	for ; j < len(ix.entries) && strings.HasPrefix(ix.entries[j].String(), prefix); j++ {
	}
	return ix.entries[i:j]
}
