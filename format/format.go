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

// Package format renders dictionary payloads as display text.
package format

import (
	"strings"

	"github.com/k3a/html2text"

	"yodict/api"
)

// Text renders a lookup payload. Payloads with a populated basic block are
// rendered as a dictionary entry with phonetics, gloss explanations and web
// references. All other payloads are rendered as a plain translation.
func Text(p *api.Payload) string {
	var b strings.Builder

	if !p.HasBasic() {
		b.WriteString(p.Query)
		b.WriteString("\n\n* Translation\n")
		for _, t := range p.Translation {
			b.WriteString("- ")
			b.WriteString(t)
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(p.Query)
	b.WriteString(" [")
	b.WriteString(p.Basic.Phonetic)
	b.WriteString("]\n\n* Basic Explains\n")
	for _, e := range p.Basic.Explains {
		b.WriteString("- ")
		b.WriteString(e)
		b.WriteString("\n")
	}

	b.WriteString("\n* Web References\n")
	for _, w := range p.Web {
		values := make([]string, 0, len(w.Value))
		for _, v := range w.Value {
			// The web feed occasionally carries markup.
			values = append(values, html2text.HTML2Text(v))
		}
		b.WriteString("- ")
		b.WriteString(w.Key)
		b.WriteString(" :: ")
		b.WriteString(strings.Join(values, "; "))
		b.WriteString("\n")
	}

	return b.String()
}
