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

package decode_test

import (
	"bytes"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/prism-go/ast"
	"github.com/bufbuild/prism-go/decode"
	"github.com/bufbuild/prism-go/internal/prismtest"
	"github.com/bufbuild/prism-go/source"
)

// program wraps body, one protoscope string per statement, in a ProgramNode
// and StatementsNode spanning all of text.
func program(text string, locals string, body ...string) string {
	n := len(text)
	return strings.Join([]string{
		"121 100", strconv.Itoa(0), strconv.Itoa(n), "0", locals,
		"`8c` 101", strconv.Itoa(0), strconv.Itoa(n), "0", strconv.Itoa(len(body)),
		strings.Join(body, " "),
	}, " ")
}

func build(t *testing.T, c *prismtest.Case) []byte {
	t.Helper()
	buf, err := c.Build()
	require.NoError(t, err)
	return buf
}

func decodeCase(t *testing.T, c *prismtest.Case) *decode.Result {
	t.Helper()
	r, err := decode.Decode(build(t, c), "test.rb", c.Source)
	require.NoError(t, err)
	return r
}

// statement returns the only top-level statement.
func statement(t *testing.T, r *decode.Result) ast.Node {
	t.Helper()
	body := r.Root.Statements().Body()
	require.Len(t, body, 1)
	return body[0]
}

func shared(texts ...string) []prismtest.Constant {
	out := make([]prismtest.Constant, len(texts))
	for i, text := range texts {
		out[i] = prismtest.Constant{Text: text}
	}
	return out
}

const (
	callFoo = "19 1 0 3 9 0 0 1 1 0 3 0 0 0 0"
	callBar = "19 2 0 7 1 19 1 0 3 8 0 0 1 1 0 3 0 0 0 0 1 3 1 2 1 4 3 0 0 0 0"
)

func TestVariableCall(t *testing.T) {
	t.Parallel()

	r := decodeCase(t, &prismtest.Case{
		Source:    "foo",
		Constants: shared("foo"),
		Root:      program("foo", "0", callFoo),
	})

	assert.Equal(t, decode.FormatVersion, r.Version)
	assert.Equal(t, "UTF-8", r.Encoding)
	assert.Equal(t, 1, r.StartLine)
	assert.Equal(t, []int{0}, r.LineOffsets)
	assert.Empty(t, r.Locals)
	assert.NotNil(t, r.Locals)
	assert.Empty(t, r.Diagnostics)

	call, ok := statement(t, r).(*ast.CallNode)
	require.True(t, ok)
	assert.Nil(t, call.Receiver())
	assert.Nil(t, call.Arguments())
	assert.Nil(t, call.Block())
	assert.True(t, call.CallOperatorLoc().IsZero())
	assert.Equal(t, "foo", r.Name(call.Name()))
	assert.Equal(t, "foo", call.MessageLoc().Text())
	assert.True(t, call.IsVariableCall())
	assert.False(t, call.IsSafeNavigation())
	assert.True(t, call.IsNewline())
	assert.Equal(t, uint32(1), call.ID())

	// Optional children are omitted from ChildNodes, and are untyped nils
	// in Fields.
	assert.Empty(t, call.ChildNodes())
	for _, f := range call.Fields() {
		if f.Name == "arguments" {
			assert.Nil(t, f.Value)
		}
	}
}

func TestMethodCall(t *testing.T) {
	t.Parallel()

	r := decodeCase(t, &prismtest.Case{
		Source:    "foo.bar",
		Constants: shared("foo", "bar"),
		Root:      program("foo.bar", "0", callBar),
	})

	call, ok := statement(t, r).(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "bar", r.Name(call.Name()))
	assert.Equal(t, ".", call.CallOperatorLoc().Text())
	assert.False(t, call.IsVariableCall())

	receiver, ok := call.Receiver().(*ast.CallNode)
	require.True(t, ok)
	assert.Equal(t, "foo", r.Name(receiver.Name()))
	assert.True(t, receiver.IsVariableCall())
	assert.Nil(t, receiver.Receiver())

	id, ok := r.Lookup("bar")
	require.True(t, ok)
	assert.Equal(t, call.Name(), id)

	kinds := func(nodes []ast.Node) []ast.Kind {
		var out []ast.Kind
		for _, n := range nodes {
			out = append(out, n.Kind())
		}
		return out
	}
	assert.Equal(t,
		[]ast.Kind{ast.KindProgramNode, ast.KindStatementsNode, ast.KindCallNode, ast.KindCallNode},
		kinds(r.NodesAt(1)))
	assert.Equal(t,
		[]ast.Kind{ast.KindProgramNode, ast.KindStatementsNode, ast.KindCallNode},
		kinds(r.NodesAt(5)))
	assert.Empty(t, r.NodesAt(7))

	loc := r.Location(4, source.Bytes)
	assert.Equal(t, source.Location{Offset: 4, Line: 1, Column: 5}, loc)
}

func TestNodesAtSiblings(t *testing.T) {
	t.Parallel()

	r := decodeCase(t, &prismtest.Case{
		Source:    "[a,b]",
		Constants: shared("a", "b"),
		Root: program("[a,b]", "0", strings.Join([]string{
			"6 10 0 5 1 2",
			"19 11 1 1 8 0 0 1 1 1 1 0 0 0 0",
			"19 12 3 1 8 0 0 2 1 3 1 0 0 0 0",
			"1 0 1 1 4 1",
		}, " ")),
	})

	innermost := func(offset int) string {
		nodes := r.NodesAt(offset)
		require.Len(t, nodes, 4, "offset %d", offset)
		assert.Equal(t, ast.KindArrayNode, nodes[2].Kind())
		call, ok := nodes[3].(*ast.CallNode)
		require.True(t, ok)
		return r.Name(call.Name())
	}
	assert.Equal(t, "a", innermost(1))
	assert.Equal(t, "b", innermost(3))

	nodes := r.NodesAt(2)
	require.Len(t, nodes, 3)
	assert.Equal(t, ast.KindArrayNode, nodes[2].Kind())
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		unescaped string
	}{
		{name: "shared", unescaped: "1 1 3"},
		{name: "owned", unescaped: `2 {"foo"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := decodeCase(t, &prismtest.Case{
				Source: `"foo"`,
				Root:   program(`"foo"`, "0", "`8d` 1 0 5 1 1 0 1 1 3 1 4 1 "+tt.unescaped),
			})
			str, ok := statement(t, r).(*ast.StringNode)
			require.True(t, ok)
			assert.Equal(t, "foo", str.Unescaped())
			assert.Equal(t, `"`, str.OpeningLoc().Text())
			assert.Equal(t, "foo", str.ContentLoc().Text())
			assert.Equal(t, `"`, str.ClosingLoc().Text())
			assert.False(t, str.IsFrozen())
		})
	}
}

func TestLocalVariableWrite(t *testing.T) {
	t.Parallel()

	r := decodeCase(t, &prismtest.Case{
		Source:    "foo = 1",
		Constants: shared("foo"),
		Root:      program("foo = 1", "1 1", "98 2 0 7 1 1 0 0 3 82 1 6 1 10 0 1 1 4 1"),
	})

	assert.Equal(t, []string{"foo"}, r.Locals)
	write, ok := statement(t, r).(*ast.LocalVariableWriteNode)
	require.True(t, ok)
	assert.Equal(t, "foo", r.Name(write.Name()))
	assert.Equal(t, uint32(0), write.Depth())
	assert.Equal(t, "foo", write.NameLoc().Text())
	assert.Equal(t, "=", write.OperatorLoc().Text())

	value, ok := write.Value().(*ast.IntegerNode)
	require.True(t, ok)
	assert.True(t, value.Value().Equal(ast.IntegerOf(1)))
	assert.True(t, value.IsStaticLiteral())
}

func TestRegularExpressionFlags(t *testing.T) {
	t.Parallel()

	r := decodeCase(t, &prismtest.Case{
		Source: "/foo/mi",
		Root:   program("/foo/mi", "0", "125 1 0 7 23 0 1 1 3 4 3 1 1 3"),
	})

	re, ok := statement(t, r).(*ast.RegularExpressionNode)
	require.True(t, ok)
	assert.True(t, re.IsIgnoreCase())
	assert.True(t, re.IsMultiLine())
	assert.False(t, re.IsExtended())
	assert.False(t, re.IsOnce())
	assert.False(t, re.IsForcedUTF8Encoding())
	assert.Equal(t, "foo", re.Unescaped())
	assert.Equal(t, "/mi", re.ClosingLoc().Text())
	assert.Equal(t, []string{"NEWLINE", "STATIC_LITERAL", "IGNORE_CASE", "MULTI_LINE"}, ast.FlagNames(re.Kind(), re.Flags()))
}

func TestIntegers(t *testing.T) {
	t.Parallel()

	huge, ok := new(big.Int).SetString("18446744073709552000", 10)
	require.True(t, ok)

	tests := []struct {
		source string
		node   string
		want   *big.Int
		check  func(*ast.IntegerNode) bool
	}{
		{"10", "82 1 0 2 11 0 1 10", big.NewInt(10), (*ast.IntegerNode).IsDecimal},
		{"0xA", "82 1 0 3 35 0 1 10", big.NewInt(10), (*ast.IntegerNode).IsHexadecimal},
		{"0b1", "82 1 0 3 7 0 1 1", big.NewInt(1), (*ast.IntegerNode).IsBinary},
		{"-5", "82 1 0 2 11 1 1 5", big.NewInt(-5), (*ast.IntegerNode).IsDecimal},
		{"4294967296", "82 1 0 10 11 0 2 0 1", big.NewInt(1 << 32), (*ast.IntegerNode).IsDecimal},
		{"18446744073709552000", "82 1 0 20 11 0 3 384 0 1", huge, (*ast.IntegerNode).IsDecimal},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			r := decodeCase(t, &prismtest.Case{
				Source: tt.source,
				Root:   program(tt.source, "0", tt.node),
			})
			n, ok := statement(t, r).(*ast.IntegerNode)
			require.True(t, ok)
			assert.Equal(t, 0, tt.want.Cmp(n.Value().Big()), "got %v, want %v", n.Value(), tt.want)
			assert.Equal(t, tt.want.String(), n.Value().String())
			assert.True(t, tt.check(n))
		})
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()

	r := decodeCase(t, &prismtest.Case{
		Source: "1.0",
		Root:   program("1.0", "0", "54 1 0 3 3 1.0"),
	})
	n, ok := statement(t, r).(*ast.FloatNode)
	require.True(t, ok)
	assert.InDelta(t, 1.0, n.Value(), 0)
}

func TestNumberedParameters(t *testing.T) {
	t.Parallel()

	src := "-> { _3 }"
	r := decodeCase(t, &prismtest.Case{
		Source: src,
		Constants: []prismtest.Constant{
			{Text: "_1", Owned: true},
			{Text: "_2", Owned: true},
			{Text: "_3"},
		},
		Root: program(src, "0", strings.Join([]string{
			"92 1 0 9 1 3 1 2 3 0 2 3 1 8 1",
			"110 2 3 6 0 3",
			"`8c` 3 5 2 0 1 96 4 5 2 1 3 0",
		}, " ")),
	})

	lambda, ok := statement(t, r).(*ast.LambdaNode)
	require.True(t, ok)
	assert.Equal(t, []string{"_1", "_2", "_3"}, r.Names(lambda.Locals()))
	params, ok := lambda.Parameters().(*ast.NumberedParametersNode)
	require.True(t, ok)
	assert.Equal(t, uint8(3), params.Maximum())

	body, ok := lambda.Body().(*ast.StatementsNode)
	require.True(t, ok)
	require.Len(t, body.Body(), 1)
	read, ok := body.Body()[0].(*ast.LocalVariableReadNode)
	require.True(t, ok)
	assert.Equal(t, "_3", r.Name(read.Name()))

	var names []string
	for _, name := range r.Constants() {
		names = append(names, name)
	}
	assert.Equal(t, []string{"_1", "_2", "_3"}, names)
}

func TestRestParameter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source    string
		constants []prismtest.Constant
		def       string
		name      string
	}{
		{
			source:    "def foo(*); end",
			constants: shared("foo", "*"),
			def:       "45 3 0 15 1 1 4 3 0 115 2 8 1 0 0 0 130 1 8 1 0 0 0 8 1 0 0 0 0 0 1 2 0 3 0 1 7 1 1 9 1 0 1 12 3",
		},
		{
			source:    "def foo(*bar); end",
			constants: shared("foo", "bar"),
			def:       "45 3 0 18 1 1 4 3 0 115 2 8 4 0 0 0 130 1 8 4 0 2 1 9 3 8 1 0 0 0 0 0 1 2 0 3 0 1 7 1 1 12 1 0 1 15 3",
			name:      "bar",
		},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			r := decodeCase(t, &prismtest.Case{
				Source:    tt.source,
				Constants: tt.constants,
				Root:      program(tt.source, "0", tt.def),
			})
			def, ok := statement(t, r).(*ast.DefNode)
			require.True(t, ok)
			assert.Equal(t, "foo", r.Name(def.Name()))
			assert.Equal(t, "end", def.EndKeywordLoc().Text())
			assert.True(t, def.EqualLoc().IsZero())
			require.NotNil(t, def.Parameters())
			assert.Empty(t, def.Parameters().Requireds())
			assert.NotNil(t, def.Parameters().Requireds())

			rest, ok := def.Parameters().Rest().(*ast.RestParameterNode)
			require.True(t, ok)
			assert.Equal(t, "*", rest.OperatorLoc().Text())
			if tt.name == "" {
				assert.True(t, rest.Name().IsZero())
				assert.True(t, rest.NameLoc().IsZero())
			} else {
				assert.Equal(t, tt.name, r.Name(rest.Name()))
				assert.Equal(t, tt.name, rest.NameLoc().Text())
			}
		})
	}
}

func TestEndlessDef(t *testing.T) {
	t.Parallel()

	src := "def foo = bar"
	r := decodeCase(t, &prismtest.Case{
		Source:    src,
		Constants: shared("foo", "bar"),
		Root: program(src, "0", strings.Join([]string{
			"45 3 0 13 1 1 4 3 0 0",
			"`8c` 2 10 3 0 1 19 1 10 3 8 0 0 2 1 10 3 0 0 0 0",
			"0 0 3 0 0 0 1 8 1 0",
		}, " ")),
	})

	def, ok := statement(t, r).(*ast.DefNode)
	require.True(t, ok)
	assert.Nil(t, def.Parameters())
	assert.Equal(t, "=", def.EqualLoc().Text())
	assert.True(t, def.EndKeywordLoc().IsZero())
	body, ok := def.Body().(*ast.StatementsNode)
	require.True(t, ok)
	require.Len(t, body.Body(), 1)
	assert.Equal(t, ast.KindCallNode, body.Body()[0].Kind())
}

func TestHeaderLists(t *testing.T) {
	t.Parallel()

	src := "# frozen_string_literal: true\nfoo # hi\n"
	startLine := 10
	r := decodeCase(t, &prismtest.Case{
		Source:    src,
		StartLine: &startLine,
		Comments: []prismtest.Comment{
			{Kind: 0, Loc: prismtest.Loc{Start: 0, Length: 29}},
			{Kind: 0, Loc: prismtest.Loc{Start: 34, Length: 4}},
		},
		MagicComments: []prismtest.MagicComment{
			{Key: prismtest.Loc{Start: 2, Length: 21}, Value: prismtest.Loc{Start: 25, Length: 4}},
		},
		Errors: []prismtest.Diagnostic{
			{Type: 3, Message: "unexpected thing", Loc: prismtest.Loc{Start: 30, Length: 3}, Level: 0},
		},
		Warnings: []prismtest.Diagnostic{
			{Type: 7, Message: "possibly useless", Loc: prismtest.Loc{Start: 30, Length: 3}, Level: 1},
		},
		Constants: shared("foo"),
		Root:      program(src, "0", "19 1 30 3 9 0 0 1 1 30 3 0 0 0 0"),
	})

	assert.Equal(t, 10, r.StartLine)
	assert.Equal(t, []int{0, 30, 39}, r.LineOffsets)
	require.Len(t, r.Comments, 2)
	assert.Equal(t, decode.CommentInline, r.Comments[1].Kind)
	assert.Equal(t, "# hi", r.Comments[1].Span.Text())

	require.Len(t, r.MagicComments, 1)
	assert.Equal(t, "frozen_string_literal", r.MagicComments[0].Key.Text())
	assert.Equal(t, "true", r.MagicComments[0].Value.Text())
	assert.True(t, r.DataLoc.IsZero())

	type diag struct {
		Level   decode.Level
		Message string
		Text    string
		Line    int
	}
	var got []diag
	for _, d := range r.Diagnostics {
		got = append(got, diag{d.Level, d.Message, d.Span.Text(), d.Span.StartLoc().Line})
	}
	want := []diag{
		{decode.LevelSyntaxError, "unexpected thing", "foo", 11},
		{decode.LevelVerboseWarning, "possibly useless", "foo", 11},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, r.Errors(), 1)
	assert.Len(t, r.Warnings(), 1)
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	c := &prismtest.Case{
		Source:    "foo.bar",
		Constants: shared("foo", "bar"),
		Root:      program("foo.bar", "0", callBar),
	}
	buf := build(t, c)
	a, err := decode.Decode(buf, "test.rb", c.Source)
	require.NoError(t, err)
	b, err := decode.Decode(buf, "test.rb", c.Source)
	require.NoError(t, err)
	assert.Equal(t, prismtest.Dump(a), prismtest.Dump(b))
	assert.NotSame(t, a.Root, b.Root)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	valid := func() *prismtest.Case {
		return &prismtest.Case{
			Source:    "foo",
			Constants: shared("foo"),
			Root:      program("foo", "0", callFoo),
		}
	}

	tests := []struct {
		name   string
		buf    func(t *testing.T) []byte
		source string
		want   error
		offset int // -1 to skip the check.
		path   []string
	}{
		{
			name:   "empty",
			buf:    func(*testing.T) []byte { return nil },
			want:   decode.ErrTruncatedBuffer,
			path:   []string{"header.magic"},
			offset: 0,
		},
		{
			name: "bad-magic",
			buf: func(t *testing.T) []byte {
				buf := build(t, valid())
				buf[2] = 'A'
				return buf
			},
			want:   decode.ErrUnsupportedFormatVersion,
			path:   []string{"header.magic"},
			offset: 0,
		},
		{
			name: "bad-version",
			buf: func(t *testing.T) []byte {
				buf := build(t, valid())
				buf[6] = 3
				return buf
			},
			want:   decode.ErrUnsupportedFormatVersion,
			path:   []string{"header.version"},
			offset: 5,
		},
		{
			name: "locations-omitted",
			buf: func(t *testing.T) []byte {
				buf := build(t, valid())
				buf[8] = 1
				return buf
			},
			want:   decode.ErrUnsupportedFormatVersion,
			offset: 8,
		},
		{
			name:   "truncated-header",
			buf:    func(t *testing.T) []byte { return build(t, valid())[:12] },
			want:   decode.ErrTruncatedBuffer,
			offset: -1,
		},
		{
			name: "unknown-tag",
			buf: func(t *testing.T) []byte {
				c := valid()
				c.Root = program("foo", "0", "`c8`")
				return build(t, c)
			},
			want:   decode.ErrUnknownNodeTag,
			path:   []string{"root", "ProgramNode.statements", "StatementsNode.body[0]"},
			offset: -1,
		},
		{
			name: "unexpected-kind",
			buf: func(t *testing.T) []byte {
				c := valid()
				c.Root = "121 1 0 3 0 0 " + callFoo
				return build(t, c)
			},
			want:   decode.ErrUnexpectedNodeKind,
			path:   []string{"root", "ProgramNode.statements"},
			offset: -1,
		},
		{
			name: "constant-out-of-range",
			buf: func(t *testing.T) []byte {
				c := valid()
				c.Root = program("foo", "0", "19 1 0 3 9 0 0 2 1 0 3 0 0 0 0")
				return build(t, c)
			},
			want:   decode.ErrConstantIndexOutOfRange,
			path:   []string{"root", "ProgramNode.statements", "StatementsNode.body[0]", "CallNode.name"},
			offset: -1,
		},
		{
			name: "local-out-of-range",
			buf: func(t *testing.T) []byte {
				c := valid()
				c.Root = program("foo", "2 1 0", callFoo)
				return build(t, c)
			},
			want:   decode.ErrConstantIndexOutOfRange,
			path:   []string{"root", "ProgramNode.locals[1]"},
			offset: -1,
		},
		{
			name: "location-past-source",
			buf: func(t *testing.T) []byte {
				c := valid()
				c.Root = program("foo", "0", "19 1 0 3 9 0 0 1 1 2 5 0 0 0 0")
				return build(t, c)
			},
			want:   decode.ErrInvalidLocation,
			path:   []string{"root", "ProgramNode.statements", "StatementsNode.body[0]", "CallNode.message_loc"},
			offset: -1,
		},
		{
			name: "shared-constant-past-source",
			buf: func(t *testing.T) []byte {
				c := valid()
				at := 2
				c.Constants[0].At = &at
				return build(t, c)
			},
			want:   decode.ErrInvalidLocation,
			path:   []string{"header.constant_pool"},
			offset: -1,
		},
		{
			name: "malformed-varint",
			buf: func(t *testing.T) []byte {
				c := valid()
				c.Root = program("foo", "0", "19 1 0 3 `ffffffffffffffffffff01`")
				return build(t, c)
			},
			want:   decode.ErrMalformedVarint,
			path:   []string{"root", "ProgramNode.statements", "StatementsNode.body[0]", "CallNode"},
			offset: -1,
		},
		{
			name: "bad-presence-marker",
			buf: func(t *testing.T) []byte {
				c := valid()
				c.Root = program("foo", "0", "19 1 0 3 9 0 2 0 3")
				return build(t, c)
			},
			want:   decode.ErrMalformed,
			offset: -1,
		},
		{
			name: "trailing-data",
			buf: func(t *testing.T) []byte {
				c := valid()
				c.Root += " 0"
				return build(t, c)
			},
			want:   decode.ErrTrailingData,
			path:   []string{"root"},
			offset: -1,
		},
		{
			name: "unused-pool-bytes",
			buf: func(t *testing.T) []byte {
				return append(build(t, valid()), 'x')
			},
			want:   decode.ErrInvalidConstantPool,
			path:   []string{"header.constant_pool"},
			offset: -1,
		},
		{
			name: "wrong-source",
			buf: func(t *testing.T) []byte {
				return build(t, valid())
			},
			source: "fo",
			want:   decode.ErrInvalidLocation,
			offset: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := tt.source
			if src == "" {
				src = "foo"
			}
			r, err := decode.Decode(tt.buf(t), "test.rb", src)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, r)

			var decodeErr *decode.Error
			require.ErrorAs(t, err, &decodeErr)
			assert.Contains(t, err.Error(), "prism: decode failed at offset")
			if tt.offset >= 0 {
				assert.Equal(t, tt.offset, decodeErr.Offset)
			}
			if tt.path != nil {
				assert.Equal(t, tt.path, decodeErr.Path)
			}
		})
	}
}

func TestErrorOffset(t *testing.T) {
	t.Parallel()

	c := &prismtest.Case{
		Source:    "foo",
		Constants: shared("foo"),
		Root:      program("foo", "0", "`c8`"),
	}
	buf := build(t, c)
	_, err := decode.Decode(buf, "test.rb", c.Source)

	var decodeErr *decode.Error
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, bytes.IndexByte(buf, 0xc8), decodeErr.Offset)
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	c := &prismtest.Case{
		Source:    "foo.bar",
		Constants: shared("foo", "bar"),
		Root:      program("foo.bar", "0", callBar),
	}
	buf := build(t, c)

	// Program, statements, call, receiver.
	_, err := decode.Decoder{MaxDepth: 4}.Decode(buf, "test.rb", c.Source)
	require.NoError(t, err)

	_, err = decode.Decoder{MaxDepth: 3}.Decode(buf, "test.rb", c.Source)
	require.ErrorIs(t, err, decode.ErrExcessiveNesting)

	var decodeErr *decode.Error
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, []string{"root", "ProgramNode.statements", "StatementsNode.body[0]", "CallNode.receiver"}, decodeErr.Path)
}

func TestConcurrentDecodes(t *testing.T) {
	t.Parallel()

	c := &prismtest.Case{
		Source:    "foo.bar",
		Constants: shared("foo", "bar"),
		Root:      program("foo.bar", "0", callBar),
	}
	buf := build(t, c)
	want := prismtest.Dump(decodeCase(t, c))

	done := make(chan string)
	for range 8 {
		go func() {
			r, err := decode.Decode(buf, "test.rb", c.Source)
			if err != nil {
				done <- err.Error()
				return
			}
			r.NodesAt(1)
			done <- prismtest.Dump(r)
		}()
	}
	for range 8 {
		assert.Equal(t, want, <-done)
	}
}
