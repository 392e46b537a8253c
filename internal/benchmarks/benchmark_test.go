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

package benchmarks

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	prism "github.com/bufbuild/prism-go"
	"github.com/bufbuild/prism-go/ast"
	"github.com/bufbuild/prism-go/decode"
	"github.com/bufbuild/prism-go/internal/prismtest"
	"github.com/bufbuild/prism-go/walk"
)

// assignments returns a case for n lines of "x = 1".
func assignments(n int) *prismtest.Case {
	const line = "x = 1\n"
	text := strings.Repeat(line, n)

	body := make([]string, 0, n)
	for i := range n {
		at := i * len(line)
		body = append(body, fmt.Sprintf("98 %d %d 5 1 1 0 %d 1 82 %d %d 1 10 0 1 1 %d 1",
			2*i+2, at, at, 2*i+3, at+4, at+2))
	}

	size := strconv.Itoa(len(text))
	return &prismtest.Case{
		Source:    text,
		Constants: []prismtest.Constant{{Text: "x"}},
		Root: strings.Join([]string{
			"121 0 0", size, "0 1 1",
			"`8c` 1 0", size, "0", strconv.Itoa(n),
			strings.Join(body, " "),
		}, " "),
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, n := range []int{1, 100, 10000} {
		c := assignments(n)
		buf, err := c.Build()
		require.NoError(b, err)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := decode.Decode(buf, "bench.rb", c.Source); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseFiles(b *testing.B) {
	const files = 64
	c := assignments(1000)
	sources := make(map[string]string, files)
	paths := make([]string, files)
	for i := range paths {
		paths[i] = fmt.Sprintf("lib/file%d.rb", i)
		sources[paths[i]] = c.Source
	}

	engine := prismtest.NewEngine(c)
	for _, parallelism := range []int{1, runtime.GOMAXPROCS(0)} {
		b.Run(fmt.Sprintf("parallelism=%d", parallelism), func(b *testing.B) {
			p := &prism.Parser{
				Load:           func(context.Context) (prism.Engine, error) { return engine, nil },
				Resolver:       &prism.SourceResolver{Accessor: prism.SourceAccessorFromMap(sources)},
				MaxParallelism: parallelism,
			}
			b.ReportAllocs()
			for b.Loop() {
				if _, err := p.ParseFiles(b.Context(), paths...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func TestDecodedMemory(t *testing.T) {
	t.Parallel()

	c := assignments(10000)
	buf, err := c.Build()
	require.NoError(t, err)
	r, err := decode.Decode(buf, "memory.rb", c.Source)
	require.NoError(t, err)

	var nodes int
	_ = walk.Nodes(r.Root, func(ast.Node) error {
		nodes++
		return nil
	})
	require.Equal(t, 2+2*10000, nodes)

	f := NewFootprint()
	f.Measure(r)
	t.Logf("buffer: %d bytes, decoded: %d bytes for %d nodes", len(buf), f.Bytes(), nodes)

	// The decoded result holds the source text, so it can never be smaller.
	require.GreaterOrEqual(t, f.Bytes(), uint64(len(c.Source)))
}
