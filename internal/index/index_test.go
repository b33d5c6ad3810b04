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

package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type String string

func (s String) String() string {
	return string(s)
}

func TestIndex_search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		query    string
		expected []String
	}{
		{
			name:     "single result",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "foo",
			expected: []String{"foo"},
		},
		{
			name:     "multiple results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "bar",
			expected: []String{"bar", "bar"},
		},
		{
			name:     "no results",
			index:    []String{"foo", "bar", "baz", "bar"},
			query:    "none",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := New(test.index)

			if diff := cmp.Diff(test.expected, index.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		prefix   string
		expected []String
	}{
		{
			name:     "common prefix",
			index:    []String{"dictionary", "dictate", "word", "dictum"},
			prefix:   "dict",
			expected: []String{"dictate", "dictionary", "dictum"},
		},
		{
			name:     "empty prefix returns all",
			index:    []String{"foo", "bar"},
			prefix:   "",
			expected: []String{"bar", "foo"},
		},
		{
			name:     "no match",
			index:    []String{"foo", "bar"},
			prefix:   "zzz",
			expected: []String{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := New(test.index)

			if diff := cmp.Diff(test.expected, index.Prefix(test.prefix)); diff != "" {
				t.Fatalf("Prefix (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_all(t *testing.T) {
	t.Parallel()

	index := New([]String{"foo", "bar", "baz"})

	if index.Len() != 3 {
		t.Errorf("Len: want 3, got %d", index.Len())
	}
	if diff := cmp.Diff([]String{"bar", "baz", "foo"}, index.All()); diff != "" {
		t.Fatalf("All (-want, +got):\n%s", diff)
	}
}
