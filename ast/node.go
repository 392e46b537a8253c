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

	"github.com/bufbuild/prism-go/source"
)

// Node is a node in a parse tree.
type Node interface {
	source.Spanner

	// Kind returns this node's kind.
	Kind() Kind
	// ID returns the identifier the parser assigned to this node, which is
	// unique within one parse result.
	ID() uint32
	// Flags returns the raw flag bits of this node, including any bits this
	// package does not know how to interpret.
	Flags() Flags
	// ChildNodes returns this node's children, in field order. Absent
	// optional children are omitted.
	ChildNodes() []Node
	// Fields returns every field of this node, in field order.
	Fields() []Field

	base() *Base
}

// Base is the data common to every node: its id, location and flags.
//
// It is embedded in every concrete node type.
type Base struct {
	id    uint32
	span  source.Span
	flags Flags
}

// NewBase returns a new node base.
func NewBase(id uint32, span source.Span, flags Flags) Base {
	return Base{id: id, span: span, flags: flags}
}

// ID implements [Node].
func (b *Base) ID() uint32 { return b.id }

// Span implements [source.Spanner].
func (b *Base) Span() source.Span { return b.span }

// Flags implements [Node].
func (b *Base) Flags() Flags { return b.flags }

// IsNewline returns whether this node begins a new line, for the purposes of
// line-based tracing and coverage.
func (b *Base) IsNewline() bool { return b.flags.Has(FlagNewline) }

// IsStaticLiteral returns whether this node is a literal whose value can be
// computed without evaluating anything.
func (b *Base) IsStaticLiteral() bool { return b.flags.Has(FlagStaticLiteral) }

func (b *Base) base() *Base { return b }

// Field is a named field of a [Node], as returned by [Node.Fields].
//
// Value holds one of: [Node] (nil if absent), []Node, [ConstantID] (zero if
// absent), []ConstantID, string, [source.Span] (zero if absent), uint8,
// uint32, [Integer] or float64.
type Field struct {
	Name  string
	Value any
}

// ConstantID is a 1-based index into the constant pool of a parse result.
//
// The zero value means that an optional constant is absent.
type ConstantID uint32

// IsZero returns whether this is the absent constant.
func (c ConstantID) IsZero() bool {
	return c == 0
}

// String implements [fmt.Stringer].
func (c ConstantID) String() string {
	if c == 0 {
		return "ConstantID(none)"
	}
	return fmt.Sprintf("ConstantID(%d)", uint32(c))
}

// Kind is the kind of a [Node].
//
// Kinds are numbered from 1; the zero Kind is not a valid node kind.
type Kind uint8

// Valid returns whether k names a node kind.
func (k Kind) Valid() bool {
	return k > 0 && int(k) < len(kindNames)
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Kinds returns every valid kind, in order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := Kind(1); k.Valid(); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// nodeOrNil converts a possibly-nil concrete node into a [Node], so that an
// absent child is a nil interface rather than a typed nil.
func nodeOrNil[N any, P interface {
	*N
	Node
}](n P) Node {
	if n == nil {
		return nil
	}
	return n
}

// toNodes converts a slice of concrete nodes into a slice of [Node]s.
func toNodes[N any, P interface {
	*N
	Node
}](ns []P) []Node {
	if ns == nil {
		return nil
	}
	out := make([]Node, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}
