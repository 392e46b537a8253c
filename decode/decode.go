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
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/bufbuild/prism-go/ast"
	"github.com/bufbuild/prism-go/internal/intern"
	"github.com/bufbuild/prism-go/internal/wire"
	"github.com/bufbuild/prism-go/source"
)

// DefaultMaxDepth is the nesting limit used when [Decoder.MaxDepth] is unset.
const DefaultMaxDepth = 10000

var magic = []byte("PRISM")

// Decoder decodes serialized parse results.
//
// The zero value is ready to use. A Decoder holds no state between calls, so
// one may be used by multiple goroutines concurrently.
type Decoder struct {
	// The deepest a tree may be nested before decoding fails with
	// [ErrExcessiveNesting]. If zero or negative, [DefaultMaxDepth] is used.
	MaxDepth int
}

// Decode decodes buf with a zero [Decoder].
func Decode(buf []byte, path, text string) (*Result, error) {
	return Decoder{}.Decode(buf, path, text)
}

// Decode decodes buf, the serialized result of parsing text.
//
// path is only used to name the [source.File] that spans in the result refer
// to. text must be exactly the source the engine parsed: every location in
// buf is checked against it.
//
// On failure, the returned error is an [*Error].
func (dec Decoder) Decode(buf []byte, path, text string) (*Result, error) {
	d := &decoder{
		c:        wire.NewCursor(buf),
		maxDepth: dec.MaxDepth,
	}
	if d.maxDepth <= 0 {
		d.maxDepth = DefaultMaxDepth
	}

	r := new(Result)
	d.header(r, path, text)
	if d.err != nil {
		return nil, d.err
	}

	poolOffset, ok := d.constantPool(buf, text)
	if !ok {
		return nil, d.err
	}

	d.section = "root"
	r.Root = nodeOf[*ast.ProgramNode](d, "root")
	if d.err != nil {
		return nil, d.err
	}
	if d.c.Offset() != poolOffset {
		d.fail(fmt.Errorf("%w: root node ends at %d, but the constant pool begins at %d",
			ErrTrailingData, d.c.Offset(), poolOffset))
		return nil, d.err
	}

	r.file, r.pool = d.file, d.pool
	r.Locals = r.Names(r.Root.Locals())
	return r, nil
}

// header decodes everything before the constant pool offset.
func (d *decoder) header(r *Result, path, text string) {
	d.section = "header.magic"
	got, err := d.c.Bytes(len(magic))
	if !d.check(err) {
		return
	}
	if !bytes.Equal(got, magic) {
		d.failAt(0, fmt.Errorf("%w: bad magic %q", ErrUnsupportedFormatVersion, got))
		return
	}

	d.section = "header.version"
	version, err := d.c.Bytes(3)
	if !d.check(err) {
		return
	}
	r.Version = Version{version[0], version[1], version[2]}
	if r.Version != FormatVersion {
		d.failAt(len(magic), fmt.Errorf("%w: got %v, want %v", ErrUnsupportedFormatVersion, r.Version, FormatVersion))
		return
	}

	d.section = "header.locations"
	omitted, err := d.c.U8()
	if !d.check(err) {
		return
	}
	if omitted != 0 {
		d.failAt(d.c.Offset()-1, fmt.Errorf("%w: buffer was serialized without locations", ErrUnsupportedFormatVersion))
		return
	}

	d.section = "header.encoding"
	encoding, err := d.c.LengthPrefixed()
	if !d.check(err) {
		return
	}
	r.Encoding = string(encoding)

	d.section = "header.start_line"
	startLine, err := d.c.Varsint()
	if !d.check(err) {
		return
	}
	if startLine < math.MinInt32 || startLine > math.MaxInt32 {
		d.fail(fmt.Errorf("%w: start line %d", ErrMalformed, startLine))
		return
	}
	r.StartLine = int(startLine)

	d.section = "header.line_offsets"
	if r.LineOffsets = d.lineOffsets(len(text)); d.err != nil {
		return
	}
	d.file = source.NewFileWithLines(path, text, r.StartLine, r.LineOffsets)

	d.section = "header.comments"
	r.Comments = make([]Comment, d.count())
	for i := range r.Comments {
		d.section = fmt.Sprintf("header.comments[%d]", i)
		at := d.c.Offset()
		kind, err := d.c.U8()
		if !d.check(err) {
			return
		}
		if kind > uint8(CommentEmbDoc) {
			d.failAt(at, fmt.Errorf("%w: comment kind %d", ErrMalformed, kind))
			return
		}
		r.Comments[i] = Comment{Kind: CommentKind(kind), Span: d.span()}
	}

	d.section = "header.magic_comments"
	r.MagicComments = make([]MagicComment, d.count())
	for i := range r.MagicComments {
		d.section = fmt.Sprintf("header.magic_comments[%d]", i)
		r.MagicComments[i] = MagicComment{Key: d.span(), Value: d.span()}
	}

	d.section = "header.data_loc"
	r.DataLoc = d.optLocation("")

	d.section = "header.errors"
	r.Diagnostics = d.diagnostics(r.Diagnostics, true)
	d.section = "header.warnings"
	r.Diagnostics = d.diagnostics(r.Diagnostics, false)
}

func (d *decoder) lineOffsets(size int) []int {
	n := d.count()
	if d.err != nil {
		return nil
	}
	if n == 0 {
		d.fail(fmt.Errorf("%w: no line offsets", ErrMalformed))
		return nil
	}

	offsets := make([]int, n)
	for i := range offsets {
		at := d.c.Offset()
		v, err := d.c.Int()
		if !d.check(err) {
			return nil
		}
		switch {
		case i == 0 && v != 0:
			d.failAt(at, fmt.Errorf("%w: first line starts at %d", ErrInvalidLocation, v))
			return nil
		case i > 0 && v < offsets[i-1], v > size:
			d.failAt(at, fmt.Errorf("%w: line %d starts at %d", ErrInvalidLocation, i+1, v))
			return nil
		}
		offsets[i] = v
	}
	return offsets
}

func (d *decoder) diagnostics(out []Diagnostic, isError bool) []Diagnostic {
	section := d.section
	n := d.count()
	for i := range n {
		if d.err != nil {
			return out
		}
		d.section = fmt.Sprintf("%s[%d]", section, i)

		var diag Diagnostic
		var err error
		if diag.Type, err = d.c.Uvarint32(); !d.check(err) {
			return out
		}
		message, err := d.c.LengthPrefixed()
		if !d.check(err) {
			return out
		}
		diag.Message = string(message)
		diag.Span = d.span()

		at := d.c.Offset()
		level, err := d.c.U8()
		if !d.check(err) {
			return out
		}
		switch {
		case isError && level <= 2:
			diag.Level = LevelSyntaxError + Level(level)
		case !isError && level <= 1:
			diag.Level = LevelWarning + Level(level)
		default:
			d.failAt(at, fmt.Errorf("%w: diagnostic level %d", ErrMalformed, level))
			return out
		}
		out = append(out, diag)
	}
	return out
}

// constantPool reads the location of the constant pool and resolves it.
// Returns the offset of the pool.
func (d *decoder) constantPool(buf []byte, text string) (int, bool) {
	d.section = "header.constant_pool"
	at := d.c.Offset()
	offset, err := d.c.U32()
	if !d.check(err) {
		return 0, false
	}
	size, err := d.c.Int()
	if !d.check(err) {
		return 0, false
	}
	if int(offset) < d.c.Offset() {
		d.failAt(at, fmt.Errorf("%w: constant pool at %d overlaps the header", ErrInvalidConstantPool, offset))
		return 0, false
	}

	// The pool lives after the tree, but it is resolved first so that
	// constant references can be checked as the tree is read.
	d.pool, err = intern.NewPool(buf, int(offset), size, text)
	if err != nil {
		var entryErr *intern.EntryError
		if errors.As(err, &entryErr) {
			d.failAt(entryErr.Offset, err)
		} else {
			d.failAt(at, err)
		}
		return 0, false
	}
	return int(offset), true
}
