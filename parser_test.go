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

package prism_test

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prism "github.com/bufbuild/prism-go"
	"github.com/bufbuild/prism-go/ast"
	"github.com/bufbuild/prism-go/decode"
	"github.com/bufbuild/prism-go/internal/prismtest"
	"github.com/bufbuild/prism-go/reporter"
)

var (
	fooCase = &prismtest.Case{
		Source:    "foo",
		Constants: []prismtest.Constant{{Text: "foo"}},
		Root:      "121 3 0 3 0 0 `8c` 2 0 3 0 1 19 1 0 3 9 0 0 1 1 0 3 0 0 0 0",
	}
	barCase = &prismtest.Case{
		Source:    "bar",
		Constants: []prismtest.Constant{{Text: "bar"}},
		Root:      "121 3 0 3 0 0 `8c` 2 0 3 0 1 19 1 0 3 9 0 0 1 1 0 3 0 0 0 0",
	}
	brokenCase = &prismtest.Case{
		Source: "foo(",
		Errors: []prismtest.Diagnostic{
			{Type: 1, Message: "unexpected end-of-input", Loc: prismtest.Loc{Start: 3, Length: 1}},
		},
		Warnings: []prismtest.Diagnostic{
			{Type: 2, Message: "ambiguous parenthesis", Loc: prismtest.Loc{Start: 3, Length: 1}, Level: 1},
		},
		Constants: []prismtest.Constant{{Text: "foo"}},
		Root:      "121 3 0 4 0 0 `8c` 2 0 4 0 1 19 1 0 4 1 0 0 1 1 0 3 1 3 1 0 0 0",
	}
)

func newParser(engine prism.Engine, loads *atomic.Int32) *prism.Parser {
	return &prism.Parser{
		Load: func(context.Context) (prism.Engine, error) {
			if loads != nil {
				loads.Add(1)
			}
			return engine, nil
		},
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	var loads atomic.Int32
	engine := prismtest.NewEngine(fooCase, barCase)
	p := newParser(engine, &loads)
	p.Options.FrozenStringLiteral = true

	for _, src := range []string{"foo", "bar", "foo"} {
		r, err := p.Parse(t.Context(), src+".rb", []byte(src))
		require.NoError(t, err)
		call, ok := r.Root.Statements().Body()[0].(*ast.CallNode)
		require.True(t, ok)
		assert.Equal(t, src, r.Name(call.Name()))
		assert.Equal(t, src+".rb", r.File().Path())
	}
	assert.Equal(t, int32(1), loads.Load())

	calls := engine.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "bar.rb", calls[1].Filepath)
	assert.True(t, calls[1].FrozenStringLiteral)

	_, err := p.Parse(t.Context(), "baz.rb", []byte("baz"))
	require.ErrorContains(t, err, "baz.rb: prismtest: no case")
}

func TestLoadFailure(t *testing.T) {
	t.Parallel()

	var loads atomic.Int32
	boom := errors.New("boom")
	p := &prism.Parser{
		Load: func(context.Context) (prism.Engine, error) {
			loads.Add(1)
			return nil, boom
		},
	}
	for range 3 {
		_, err := p.Parse(t.Context(), "foo.rb", []byte("foo"))
		require.ErrorIs(t, err, boom)
	}
	assert.Equal(t, int32(1), loads.Load())

	_, err := new(prism.Parser).Parse(t.Context(), "foo.rb", []byte("foo"))
	require.Error(t, err)
}

func TestLoadCanceled(t *testing.T) {
	t.Parallel()

	var loads atomic.Int32
	engine := prismtest.NewEngine(fooCase)
	p := &prism.Parser{
		Load: func(ctx context.Context) (prism.Engine, error) {
			loads.Add(1)
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return engine, nil
		},
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := p.Parse(ctx, "foo.rb", []byte(fooCase.Source))
	require.ErrorIs(t, err, context.Canceled)

	// A canceled load is retried rather than remembered.
	r, err := p.Parse(t.Context(), "foo.rb", []byte(fooCase.Source))
	require.NoError(t, err)
	assert.Len(t, r.Root.Statements().Body(), 1)
	_, err = p.Parse(t.Context(), "foo.rb", []byte(fooCase.Source))
	require.NoError(t, err)
	assert.Equal(t, int32(2), loads.Load())
}

func TestMaxSourceSize(t *testing.T) {
	t.Parallel()

	var loads atomic.Int32
	p := newParser(prismtest.NewEngine(fooCase), &loads)
	p.MaxSourceSize = 2
	_, err := p.Parse(t.Context(), "foo.rb", []byte("foo"))
	require.ErrorIs(t, err, prism.ErrSourceTooLarge)
	assert.Zero(t, loads.Load())

	p.Resolver = &prism.SourceResolver{
		Accessor: prism.SourceAccessorFromMap(map[string]string{"foo.rb": "foo"}),
	}
	_, err = p.ParseFiles(t.Context(), "foo.rb")
	require.ErrorIs(t, err, prism.ErrSourceTooLarge)
}

func TestReporter(t *testing.T) {
	t.Parallel()

	engine := prismtest.NewEngine(brokenCase)

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		r, err := newParser(engine, nil).Parse(t.Context(), "broken.rb", []byte(brokenCase.Source))
		require.NoError(t, err)
		require.Len(t, r.Errors(), 1)
		assert.Equal(t, "unexpected end-of-input", r.Errors()[0].Message)
		assert.Equal(t, decode.LevelVerboseWarning, r.Warnings()[0].Level)
	})

	t.Run("fail-fast", func(t *testing.T) {
		t.Parallel()

		p := newParser(engine, nil)
		p.Reporter = reporter.NewReporter(nil, nil)
		_, err := p.Parse(t.Context(), "broken.rb", []byte(brokenCase.Source))

		var ewp reporter.ErrorWithPos
		require.ErrorAs(t, err, &ewp)
		assert.Equal(t, "broken.rb:1:4: unexpected end-of-input", err.Error())
		assert.Equal(t, "(", ewp.Span().Text())
	})

	t.Run("collect", func(t *testing.T) {
		t.Parallel()

		var errs, warnings []string
		p := newParser(engine, nil)
		p.Reporter = reporter.NewReporter(
			func(err reporter.ErrorWithPos) error {
				errs = append(errs, err.Error())
				return nil
			},
			func(err reporter.ErrorWithPos) {
				warnings = append(warnings, err.Error())
			},
		)
		r, err := p.Parse(t.Context(), "broken.rb", []byte(brokenCase.Source))
		require.NoError(t, err)
		require.NotNil(t, r.Root)
		assert.Len(t, r.Root.Statements().Body(), 1)
		assert.Len(t, r.Errors(), 1)
		assert.Equal(t, []string{"broken.rb:1:4: unexpected end-of-input"}, errs)
		assert.Equal(t, []string{"broken.rb:1:4: ambiguous parenthesis"}, warnings)
	})
}

func TestParseFiles(t *testing.T) {
	t.Parallel()

	engine := prismtest.NewEngine(fooCase, barCase)
	prebuilt, err := barCase.Build()
	require.NoError(t, err)

	p := newParser(engine, nil)
	p.MaxParallelism = 1
	p.Resolver = prism.CompositeResolver{
		prism.ResolverFunc(func(path string) (prism.SearchResult, error) {
			if path != "prebuilt.rb" {
				return prism.SearchResult{}, fs.ErrNotExist
			}
			return prism.SearchResult{Source: strings.NewReader(barCase.Source), Serialized: prebuilt}, nil
		}),
		&prism.SourceResolver{
			LoadPaths: []string{"lib", "vendor"},
			Accessor: prism.SourceAccessorFromMap(map[string]string{
				"lib/foo.rb":    "foo",
				"vendor/bar.rb": "bar",
			}),
		},
	}

	results, err := p.ParseFiles(t.Context(), "foo.rb", "bar.rb", "prebuilt.rb", "foo.rb")
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "foo.rb", results[0].File().Path())
	assert.Equal(t, "bar.rb", results[1].File().Path())
	assert.Equal(t, "prebuilt.rb", results[2].File().Path())
	assert.Same(t, results[0], results[3])

	// The prebuilt buffer skips the engine, and duplicates are parsed once.
	var paths []string
	for _, call := range engine.Calls() {
		paths = append(paths, call.Filepath)
	}
	assert.ElementsMatch(t, []string{"foo.rb", "bar.rb"}, paths)

	_, err = p.ParseFiles(t.Context(), "foo.rb", "missing.rb")
	require.ErrorIs(t, err, fs.ErrNotExist)

	results, err = p.ParseFiles(t.Context())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestParseFilesCanceled(t *testing.T) {
	t.Parallel()

	p := newParser(prismtest.NewEngine(fooCase), nil)
	p.Resolver = &prism.SourceResolver{
		Accessor: prism.SourceAccessorFromMap(map[string]string{"foo.rb": "foo"}),
	}
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := p.ParseFiles(ctx, "foo.rb")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompositeResolver(t *testing.T) {
	t.Parallel()

	_, err := prism.CompositeResolver{}.FindFileByPath("foo.rb")
	require.ErrorIs(t, err, prism.ErrNotFound)

	_, err = (&prism.SourceResolver{
		Accessor: prism.SourceAccessorFromMap(nil),
	}).FindFileByPath("foo.rb")
	require.ErrorIs(t, err, fs.ErrNotExist)
}
