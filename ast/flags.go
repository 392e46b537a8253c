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

package ast

import (
	"fmt"
	"math/bits"
	"strings"
)

// Flags is the set of flag bits on a node.
//
// Bits 0 and 1 have the same meaning on every node. The remaining bits are
// interpreted according to the node's flag group; for example, bit 2 of a
// [*RegularExpressionNode] is [RegularExpressionIgnoreCase]. Bits that no group
// defines are preserved as-is.
type Flags uint64

const (
	// FlagNewline marks a node that begins a new line.
	FlagNewline Flags = 1 << 0
	// FlagStaticLiteral marks a literal whose value is known statically.
	FlagStaticLiteral Flags = 1 << 1

	// firstGroupBit is the first bit available to node-specific flags.
	firstGroupBit = 2
)

// Has returns whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Common returns only the bits shared by every node.
func (f Flags) Common() Flags {
	return f & (FlagNewline | FlagStaticLiteral)
}

// FlagNames returns the names of the bits set in flags, interpreted according
// to the flag group of kind. Unknown bits are rendered as "bit<n>".
func FlagNames(kind Kind, flags Flags) []string {
	var names []string
	group := flagGroup(kind)
	for flags != 0 {
		bit := bits.TrailingZeros64(uint64(flags))
		flags &^= 1 << bit

		switch {
		case bit == 0:
			names = append(names, "NEWLINE")
		case bit == 1:
			names = append(names, "STATIC_LITERAL")
		case bit-firstGroupBit < len(group):
			names = append(names, group[bit-firstGroupBit])
		default:
			names = append(names, fmt.Sprintf("bit%d", bit))
		}
	}
	return names
}

// FormatFlags renders flags as a comma-separated list of names, as
// [FlagNames] does.
func FormatFlags(kind Kind, flags Flags) string {
	return strings.Join(FlagNames(kind, flags), ",")
}
