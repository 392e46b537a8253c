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
	"errors"
	"testing"

	"github.com/bufbuild/prism-go/ast"
	"github.com/bufbuild/prism-go/decode"
	"github.com/bufbuild/prism-go/internal/prismtest"
	"github.com/bufbuild/prism-go/walk"
)

// FuzzDecode checks that arbitrary buffers either decode or fail with an
// [*decode.Error], and never panic.
func FuzzDecode(f *testing.F) {
	for _, c := range []*prismtest.Case{
		{Source: "foo", Constants: shared("foo"), Root: program("foo", "0", callFoo)},
		{Source: "foo.bar", Constants: shared("foo", "bar"), Root: program("foo.bar", "0", callBar)},
		{Source: "1.0", Root: program("1.0", "0", "54 1 0 3 3 1.0")},
	} {
		buf, err := c.Build()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(buf, c.Source)
	}

	f.Fuzz(func(t *testing.T, buf []byte, text string) {
		r, err := decode.Decoder{MaxDepth: 64}.Decode(buf, "fuzz.rb", text)
		if err != nil {
			var decodeErr *decode.Error
			if !errors.As(err, &decodeErr) {
				t.Fatalf("error is not a *decode.Error: %v", err)
			}
			if decodeErr.Offset < 0 || decodeErr.Offset > len(buf) {
				t.Fatalf("error offset %d is outside of the %d byte buffer", decodeErr.Offset, len(buf))
			}
			return
		}

		_ = walk.Nodes(r.Root, func(n ast.Node) error {
			span := n.Span()
			if span.Start < 0 || span.End > len(text) || span.Start > span.End {
				t.Fatalf("%v has span [%d, %d) in a %d byte source", n.Kind(), span.Start, span.End, len(text))
			}
			return nil
		})
	})
}

func BenchmarkDecode(b *testing.B) {
	c := &prismtest.Case{
		Source:    "foo.bar",
		Constants: shared("foo", "bar"),
		Root:      program("foo.bar", "0", callBar),
	}
	buf, err := c.Build()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := decode.Decode(buf, "bench.rb", c.Source); err != nil {
			b.Fatal(err)
		}
	}
}
