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

// Package folding normalizes query text before lookup. Queries come from
// selections that may span lines; folding reduces them to a single line so
// that the signed input, the history log and the display all agree.
package folding

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Folder collapses whitespace. Leading and trailing whitespace is dropped
// and every internal whitespace span becomes a single ASCII space.
type Folder struct {
	// emitted is true once a non-whitespace rune has been written.
	emitted bool

	// pending is true while skipping an internal whitespace span.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *Folder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			nSrc += size
			// Whitespace only becomes pending after the first real rune,
			// which drops leading whitespace for free. Trailing whitespace
			// stays pending and is never emitted.
			f.pending = f.emitted
			continue
		}

		if f.pending {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}

		// r may be utf8.RuneError, whose encoded length is 3 regardless of
		// the size consumed from src.
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		f.emitted = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *Folder) Reset() {
	*f = Folder{}
}

// Fold returns s with its whitespace folded.
func Fold(s string) string {
	folded, _, err := transform.String(&Folder{}, s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return folded
}
