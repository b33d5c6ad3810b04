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

package wordat

import (
	"testing"
)

func TestWord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		col      int
		segment  bool
		expected string
	}{
		{
			name:     "middle of word",
			line:     "look this word up",
			col:      11,
			expected: "word",
		},
		{
			name:     "start of line",
			line:     "look this word up",
			col:      0,
			expected: "look",
		},
		{
			name:     "cursor at end of line",
			line:     "look up",
			col:      7,
			expected: "up",
		},
		{
			name:     "cursor on space",
			line:     "look up",
			col:      4,
			expected: "",
		},
		{
			name:     "empty line",
			line:     "",
			col:      0,
			expected: "",
		},
		{
			name:     "column out of range",
			line:     "look",
			col:      10,
			expected: "",
		},
		{
			name:     "negative column",
			line:     "look",
			col:      -1,
			expected: "",
		},
		{
			name:     "apostrophe joins",
			line:     "it doesn't matter",
			col:      5,
			expected: "doesn't",
		},
		{
			name:     "hyphen joins",
			line:     "a well-known word",
			col:      4,
			expected: "well-known",
		},
		{
			name:     "han rune without segmentation",
			line:     "查字典吧",
			col:      1,
			expected: "字",
		},
		{
			name:     "han run with segmentation",
			line:     "查字典吧",
			col:      1,
			segment:  true,
			expected: "查字典吧",
		},
		{
			name:     "han run bounded by latin",
			line:     "say你好now",
			col:      3,
			segment:  true,
			expected: "你好",
		},
		{
			name:     "latin run bounded by han",
			line:     "say你好now",
			col:      0,
			expected: "say",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Word(test.line, test.col, test.segment)
			if got != test.expected {
				t.Errorf("Word(%q, %d, %v): want %q, got %q",
					test.line, test.col, test.segment, test.expected, got)
			}
		})
	}
}
