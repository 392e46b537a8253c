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

package source

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Unit is a unit of measurement for column offsets.
type Unit int

const (
	// Bytes counts columns in bytes.
	Bytes Unit = iota
	// Runes counts columns in Unicode code points.
	Runes
	// UTF16 counts columns in UTF-16 code units, as editors speaking LSP do.
	UTF16
	// TermWidth counts columns in terminal cells, expanding tabs to
	// [TabstopWidth].
	TermWidth
)

// TabstopWidth is the width tabs are expanded to when measuring [TermWidth].
const TabstopWidth = 4

// String implements [fmt.Stringer].
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	case UTF16:
		return "utf16"
	case TermWidth:
		return "termwidth"
	default:
		return "Unit(?)"
	}
}

// termWidth returns the number of terminal cells text occupies when printed
// starting from the first column.
func termWidth(text string) int {
	// We can't just use StringWidth, because that doesn't respect tabstops.
	var column int
	for i, chunk := range strings.Split(text, "\t") {
		if i > 0 {
			column += TabstopWidth - column%TabstopWidth
		}
		column += uniseg.StringWidth(chunk)
	}
	return column
}
