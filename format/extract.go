// Copyright 2025 The yodict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package format

import (
	"regexp"

	"yodict/api"
)

// tagPrefix matches a leading run of bracketed tags followed by a space,
// e.g. the "[语][计] " in "[语][计] dictionary".
var tagPrefix = regexp.MustCompile(`^(\[[^\]]*\])+ `)

// Explanations returns the payload's gloss explanations, or nil when the
// payload has no basic block.
func Explanations(p *api.Payload) []string {
	if p.Basic == nil {
		return nil
	}
	return p.Basic.Explains
}

// StripTags removes a leading bracketed-tag prefix from an explanation.
// Only a prefix is stripped; tags appearing mid-string are kept.
func StripTags(s string) string {
	return tagPrefix.ReplaceAllString(s, "")
}
