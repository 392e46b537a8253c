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

package decode

import (
	"fmt"

	"github.com/bufbuild/prism-go/ast"
	"github.com/bufbuild/prism-go/internal/intern"
	"github.com/bufbuild/prism-go/internal/wire"
	"github.com/bufbuild/prism-go/source"
)

// decoder holds the state of a single decode.
//
// Errors are sticky: the first failure is recorded in err, and every read
// after it returns a zero value without touching the cursor. This lets the
// generated field table evaluate a node's fields as the arguments of a single
// factory call, and only check for failure once the whole node is built.
type decoder struct {
	c        *wire.Cursor
	file     *source.File
	pool     *intern.Pool
	maxDepth int

	// What is being decoded, for error reporting. section names the part of
	// the header; stack holds one frame per node being decoded.
	section string
	stack   []frame

	err *Error
}

type frame struct {
	kind  ast.Kind
	field string
	index int // Index within a node[] field, or -1.
}

func (f frame) String() string {
	if f.field == "" {
		return f.kind.String()
	}
	if f.index >= 0 {
		return fmt.Sprintf("%v.%s[%d]", f.kind, f.field, f.index)
	}
	return fmt.Sprintf("%v.%s", f.kind, f.field)
}

// fail records err at the cursor's current offset.
func (d *decoder) fail(err error) {
	d.failAt(d.c.Offset(), err)
}

// failAt records err at offset, unless an error was already recorded.
func (d *decoder) failAt(offset int, err error) {
	if d.err != nil {
		return
	}

	var path []string
	if d.section != "" {
		path = append(path, d.section)
	}
	for _, f := range d.stack {
		path = append(path, f.String())
	}
	d.err = &Error{
		Offset: offset,
		Path:   path,
		Err:    err,
		trace:  captureTrace(1),
	}
}

// field marks name as the field of the innermost node now being read.
func (d *decoder) field(name string) {
	if len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]
		top.field, top.index = name, -1
	}
}

// check fails the decode if err is not nil. Returns whether the decode is
// still healthy.
func (d *decoder) check(err error) bool {
	if err != nil {
		d.fail(err)
	}
	return d.err == nil
}

// readNode reads a complete node. If want is not zero, the node must be of
// that kind.
func (d *decoder) readNode(want ast.Kind) ast.Node {
	if d.err != nil {
		return nil
	}

	start := d.c.Offset()
	tag, err := d.c.U8()
	if !d.check(err) {
		return nil
	}
	kind := ast.Kind(tag)
	switch {
	case !kind.Valid():
		d.failAt(start, fmt.Errorf("%w: %d", ErrUnknownNodeTag, tag))
		return nil
	case want != 0 && kind != want:
		d.failAt(start, fmt.Errorf("%w: expected %v, got %v", ErrUnexpectedNodeKind, want, kind))
		return nil
	case len(d.stack) >= d.maxDepth:
		d.failAt(start, fmt.Errorf("%w: more than %d levels", ErrExcessiveNesting, d.maxDepth))
		return nil
	}

	d.stack = append(d.stack, frame{kind: kind, index: -1})
	defer func() { d.stack = d.stack[:len(d.stack)-1] }()

	id, err := d.c.Uvarint32()
	if !d.check(err) {
		return nil
	}
	span := d.span()
	flags, err := d.c.Varint()
	if !d.check(err) {
		return nil
	}

	node := d.fields(kind, ast.NewBase(id, span, ast.Flags(flags)))
	if d.err != nil {
		return nil
	}
	return node
}

// span reads a location and resolves it against the source.
func (d *decoder) span() source.Span {
	if d.err != nil {
		return source.Span{}
	}
	at := d.c.Offset()
	start, end, err := d.c.Location()
	if !d.check(err) {
		return source.Span{}
	}
	return d.resolve(at, start, end)
}

// resolve checks that [start, end) is within the source.
func (d *decoder) resolve(at, start, end int) source.Span {
	if !d.file.Contains(start, end) {
		d.failAt(at, fmt.Errorf("%w: [%d, %d) is outside of the %d byte source", ErrInvalidLocation, start, end, d.file.Len()))
		return source.Span{}
	}
	return d.file.Span(start, end)
}

// count reads the length of a sequence whose elements take at least one byte
// each.
func (d *decoder) count() int {
	if d.err != nil {
		return 0
	}
	n, err := d.c.Int()
	if !d.check(err) {
		return 0
	}
	if n > d.c.Remaining() {
		d.fail(fmt.Errorf("%w: %d elements declared with %d bytes left", ErrTruncatedBuffer, n, d.c.Remaining()))
		return 0
	}
	return n
}

func (d *decoder) node(name string) ast.Node {
	d.field(name)
	return d.readNode(0)
}

func (d *decoder) optNode(name string) ast.Node {
	d.field(name)
	if d.absent() {
		return nil
	}
	return d.readNode(0)
}

// absent consumes the tag of an absent optional node, if that is what is
// next.
func (d *decoder) absent() bool {
	if d.err != nil {
		return true
	}
	tag, err := d.c.Peek()
	if !d.check(err) {
		return true
	}
	if tag == 0 {
		_, _ = d.c.U8()
		return true
	}
	return false
}

func (d *decoder) nodes(name string) []ast.Node {
	d.field(name)
	n := d.count()
	if d.err != nil {
		return nil
	}
	nodes := make([]ast.Node, n)
	for i := range nodes {
		d.stack[len(d.stack)-1].index = i
		if nodes[i] = d.readNode(0); d.err != nil {
			return nil
		}
	}
	return nodes
}

// nodeOf reads a node that must be of the kind T.
//
// T must be a pointer to a node type; its Kind method is called on a nil
// receiver to find the kind to expect.
func nodeOf[T ast.Node](d *decoder, name string) T {
	d.field(name)
	var zero T
	node, _ := d.readNode(zero.Kind()).(T)
	return node
}

// optNodeOf is like nodeOf, but the node may be absent.
func optNodeOf[T ast.Node](d *decoder, name string) T {
	d.field(name)
	var zero T
	if d.absent() {
		return zero
	}
	node, _ := d.readNode(zero.Kind()).(T)
	return node
}

// nodesOf is like nodeOf, but reads a sequence of nodes.
func nodesOf[T ast.Node](d *decoder, name string) []T {
	d.field(name)
	var zero T
	n := d.count()
	if d.err != nil {
		return nil
	}
	nodes := make([]T, n)
	for i := range nodes {
		d.stack[len(d.stack)-1].index = i
		nodes[i], _ = d.readNode(zero.Kind()).(T)
		if d.err != nil {
			return nil
		}
	}
	return nodes
}

func (d *decoder) constant(name string) ast.ConstantID {
	d.field(name)
	return d.readConstant(false)
}

func (d *decoder) optConstant(name string) ast.ConstantID {
	d.field(name)
	return d.readConstant(true)
}

func (d *decoder) constants(name string) []ast.ConstantID {
	d.field(name)
	n := d.count()
	if d.err != nil {
		return nil
	}
	ids := make([]ast.ConstantID, n)
	for i := range ids {
		d.stack[len(d.stack)-1].index = i
		if ids[i] = d.readConstant(false); d.err != nil {
			return nil
		}
	}
	return ids
}

func (d *decoder) readConstant(optional bool) ast.ConstantID {
	if d.err != nil {
		return 0
	}
	at := d.c.Offset()
	v, err := d.c.Uvarint32()
	if !d.check(err) {
		return 0
	}
	id := intern.ID(v)
	if (id == 0 && optional) || d.pool.Valid(id) {
		return ast.ConstantID(id)
	}
	d.failAt(at, fmt.Errorf("%w: %d not in [1, %d]", ErrConstantIndexOutOfRange, v, d.pool.Len()))
	return 0
}

const (
	sharedString = 1
	ownedString  = 2
)

func (d *decoder) string(name string) string {
	d.field(name)
	if d.err != nil {
		return ""
	}

	at := d.c.Offset()
	tag, err := d.c.U8()
	if !d.check(err) {
		return ""
	}
	switch tag {
	case sharedString:
		return d.span().Text()
	case ownedString:
		b, err := d.c.LengthPrefixed()
		if !d.check(err) {
			return ""
		}
		return string(b)
	default:
		d.failAt(at, fmt.Errorf("%w: string tag %d", ErrMalformed, tag))
		return ""
	}
}

func (d *decoder) location(name string) source.Span {
	d.field(name)
	return d.span()
}

func (d *decoder) optLocation(name string) source.Span {
	d.field(name)
	if d.err != nil {
		return source.Span{}
	}
	at := d.c.Offset()
	start, end, ok, err := d.c.OptionalLocation()
	if !d.check(err) || !ok {
		return source.Span{}
	}
	// Skip the presence marker when reporting.
	return d.resolve(at+1, start, end)
}

func (d *decoder) uint8(name string) uint8 {
	d.field(name)
	if d.err != nil {
		return 0
	}
	v, err := d.c.U8()
	d.check(err)
	return v
}

func (d *decoder) uint32(name string) uint32 {
	d.field(name)
	if d.err != nil {
		return 0
	}
	v, err := d.c.Uvarint32()
	d.check(err)
	return v
}

func (d *decoder) integer(name string) ast.Integer {
	d.field(name)
	if d.err != nil {
		return ast.Integer{}
	}
	v, err := d.c.BigInt()
	if !d.check(err) {
		return ast.Integer{}
	}
	return ast.NewInteger(v)
}

func (d *decoder) double(name string) float64 {
	d.field(name)
	if d.err != nil {
		return 0
	}
	v, err := d.c.Double()
	d.check(err)
	return v
}
