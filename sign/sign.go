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

// Package sign implements request signing for the authenticated dictionary
// API variant.
package sign

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// maxInputLen is the longest query signed verbatim. Longer queries are
// reduced to a fixed-shape input that the server recomputes identically.
const maxInputLen = 20

// Truncate returns the signing input for word. Words longer than 20
// characters are replaced by the concatenation of their first ten
// characters, their decimal length, and their last ten characters. The
// server applies the same rule, so the output must match it exactly.
func Truncate(word string) string {
	runes := []rune(word)
	if len(runes) <= maxInputLen {
		return word
	}
	return string(runes[:10]) + strconv.Itoa(len(runes)) + string(runes[len(runes)-10:])
}

// Sign computes the v3 request signature: the lowercase hex-encoded SHA-256
// of appKey + Truncate(word) + salt + curtime + secret.
func Sign(word, appKey, secret, salt, curtime string) string {
	sum := sha256.Sum256([]byte(appKey + Truncate(word) + salt + curtime + secret))
	return hex.EncodeToString(sum[:])
}
