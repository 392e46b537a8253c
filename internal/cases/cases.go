// Copyright 2020-2025 Buf Technologies, Inc.
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

// Package cases provides functions for inter-converting between different
// case styles.
package cases

import (
	"iter"
	"strings"
	"unicode"
)

// Case is a target case style to convert to.
type Case int

const (
	Snake  Case = iota // snake_case
	Enum               // ENUM_CASE
	Camel              // camelCase
	Pascal             // PascalCase
)

// Convert converts str to the given case.
func (c Case) Convert(str string) string {
	return Converter{Case: c}.Convert(str)
}

// Converter contains specific options for converting to a given case.
type Converter struct {
	Case Case

	// If set, word boundaries are only underscores, which is how the names
	// in the node schema are written.
	NaiveSplit bool

	// Words written verbatim in [Camel] and [Pascal] case, keyed by their
	// uppercase spelling. For example, {"UTF8": "UTF8"} keeps "utf8" from
	// becoming "Utf8".
	Initialisms map[string]string
}

// Convert convert str according to the options set in this converter.
func (c Converter) Convert(str string) string {
	buf := new(strings.Builder)
	c.Append(buf, str)
	return buf.String()
}

// Append is like [Converter.Convert], but it appends to the given buffer
// instead.
func (c Converter) Append(buf *strings.Builder, str string) {
	var words iter.Seq[string]
	if c.NaiveSplit {
		words = strings.SplitSeq(str, "_")
	} else {
		words = Words(str)
	}

	first := true
	for word := range words {
		if word == "" {
			continue
		}
		c.word(buf, word, first)
		first = false
	}
}

func (c Converter) word(buf *strings.Builder, word string, first bool) {
	switch c.Case {
	case Snake, Enum:
		if !first {
			buf.WriteByte('_')
		}
		if c.Case == Enum {
			buf.WriteString(strings.ToUpper(word))
		} else {
			buf.WriteString(strings.ToLower(word))
		}
	case Camel, Pascal:
		if first && c.Case == Camel {
			buf.WriteString(strings.ToLower(word))
			return
		}
		if s, ok := c.Initialisms[strings.ToUpper(word)]; ok {
			buf.WriteString(s)
			return
		}
		for i, r := range word {
			if i == 0 {
				buf.WriteRune(unicode.ToUpper(r))
			} else {
				buf.WriteRune(unicode.ToLower(r))
			}
		}
	}
}

// Words splits str into words.
//
// Words are separated by underscores, by a lowercase letter or digit
// followed by an uppercase letter, and before the last uppercase letter of
// a run that is followed by a lowercase one. For example, "HTTPServer_url"
// is the words "HTTP", "Server" and "url".
func Words(str string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rs := []rune(str)
		start := 0
		emit := func(end int) bool {
			if end <= start {
				return true
			}
			return yield(string(rs[start:end]))
		}

		for i, r := range rs {
			switch {
			case r == '_':
				if !emit(i) {
					return
				}
				start = i + 1
			case i > start && unicode.IsUpper(r):
				nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
				if !unicode.IsUpper(rs[i-1]) || nextLower {
					if !emit(i) {
						return
					}
					start = i
				}
			}
		}
		emit(len(rs))
	}
}
