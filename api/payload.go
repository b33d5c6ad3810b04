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

package api

// Payload is the parsed response body of a dictionary lookup.
//
// At most one of Basic and Translation is meaningfully populated; a lookup
// without a basic block is a plain machine translation.
type Payload struct {
	Query       string   `json:"query"`
	Translation []string `json:"translation"`

	// ErrorCode is reported by the server but is informational only;
	// lookups are never failed on it.
	ErrorCode int `json:"errorCode"`

	Web   []WebReference `json:"web"`
	Basic *Basic         `json:"basic"`
}

// WebReference is a single entry of the web-reference feed.
type WebReference struct {
	Key   string   `json:"key"`
	Value []string `json:"value"`
}

// Basic is the dictionary-style section of a lookup: phonetics plus gloss
// explanations.
type Basic struct {
	Phonetic string   `json:"phonetic"`
	Explains []string `json:"explains"`
}

// HasBasic reports whether the payload carries a non-empty basic block.
func (p *Payload) HasBasic() bool {
	return p.Basic != nil && len(p.Basic.Explains) > 0
}
