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

// Package wordat extracts the word under a cursor position. It backs editor
// integrations that pass a line of text and a column instead of a word.
package wordat

import (
	"unicode"
)

// Word returns the word under the cursor at rune offset col in line, or ""
// when the cursor is not on a word.
//
// Words in alphabetic scripts span letters, digits, apostrophes and
// hyphens. Han text has no word delimiters, so its granularity follows the
// segment flag: false returns the single rune under the cursor, true the
// whole contiguous Han run.
func Word(line string, col int, segment bool) string {
	runes := []rune(line)
	if col == len(runes) {
		// A cursor at end of line sits after the last rune.
		col--
	}
	if col < 0 || col >= len(runes) {
		return ""
	}

	switch r := runes[col]; {
	case isHan(r):
		if !segment {
			return string(r)
		}
		return string(expand(runes, col, isHan))
	case isWordRune(r):
		return string(expand(runes, col, isWordRune))
	default:
		return ""
	}
}

// expand grows [col, col+1) in both directions while runes satisfy include.
func expand(runes []rune, col int, include func(rune) bool) []rune {
	start, end := col, col+1
	for start > 0 && include(runes[start-1]) {
		start--
	}
	for end < len(runes) && include(runes[end]) {
		end++
	}
	return runes[start:end]
}

func isHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

func isWordRune(r rune) bool {
	if isHan(r) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-'
}
