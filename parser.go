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

package prism

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/prism-go/decode"
	"github.com/bufbuild/prism-go/reporter"
)

// ErrSourceTooLarge is returned when a source exceeds [Parser.MaxSourceSize].
var ErrSourceTooLarge = errors.New("source too large")

// Engine is a loaded parsing engine.
//
// An Engine must be safe for concurrent use.
type Engine interface {
	// Serialize parses source and returns the serialized result.
	Serialize(ctx context.Context, source []byte, opts Options) ([]byte, error)
}

// Options are the options the engine parses a file with.
type Options struct {
	// The path of the file, used by the engine for __FILE__ and messages.
	Filepath string
	// The line number of the first line of the source. Zero means 1.
	Line int
	// The name of the source's encoding. Empty means UTF-8.
	Encoding string
	// Whether string literals should be frozen, as if the source began
	// with the frozen_string_literal magic comment.
	FrozenStringLiteral bool
	// The language version to parse as, such as "3.4". Empty means the
	// engine's latest.
	Version string
	// Whether this is the main script, in which case a shebang line may
	// select command line flags.
	MainScript bool
	// Whether the source is a fragment that is allowed to contain
	// statements that are only valid inside a larger program.
	PartialScript bool
	// The local variables of the scopes that enclose the source, outermost
	// first, for parsing code that will be evaluated in an existing
	// binding.
	Scopes [][]string
}

// Parser parses Ruby source into syntax trees.
//
// The zero value is not usable; Load must be set. A Parser may be used by
// multiple goroutines concurrently.
type Parser struct {
	// Loads the engine. It is called the first time the Parser needs the
	// engine, and its result (including an error) is reused for the
	// lifetime of the Parser. A load that fails because its context was
	// canceled or timed out is not remembered, and is retried by the next
	// call. Required.
	Load func(ctx context.Context) (Engine, error)

	// Resolves paths passed to ParseFiles into sources. Only required by
	// ParseFiles.
	Resolver Resolver

	// The maximum parallelism to use in ParseFiles. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int

	// The largest source, in bytes, that will be handed to the engine. If
	// zero or negative, there is no limit.
	MaxSourceSize int

	// A custom error and warning reporter. If nil, syntax errors and
	// warnings reported by the engine are only recorded in
	// [decode.Result.Diagnostics]. If set, each one is also reported
	// through it. Parsing fails only if the reporter returns an error;
	// otherwise the error-recovered tree is returned.
	Reporter reporter.Reporter

	// The options passed to the engine. Filepath is set per file.
	Options Options

	// Decodes the engine's output.
	Decoder decode.Decoder

	mu      sync.Mutex // Held while loading.
	loaded  bool
	engine  Engine
	loadErr error
}

// Parse parses a single source. path is only used to name the file in the
// result and in errors.
func (p *Parser) Parse(ctx context.Context, path string, source []byte) (*decode.Result, error) {
	if p.MaxSourceSize > 0 && len(source) > p.MaxSourceSize {
		return nil, fmt.Errorf("%s: %w: %d bytes exceeds the limit of %d", path, ErrSourceTooLarge, len(source), p.MaxSourceSize)
	}

	engine, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	opts := p.Options
	opts.Filepath = path
	buf, err := engine.Serialize(ctx, source, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p.decode(path, source, buf)
}

// ParseFiles parses the given files, which are located with the Parser's
// Resolver. The results are in the same order as paths; a path named more
// than once is parsed once.
//
// Files are parsed in parallel. The first failure cancels the remaining
// work and is returned.
func (p *Parser) ParseFiles(ctx context.Context, paths ...string) ([]*decode.Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if p.Resolver == nil {
		return nil, errors.New("prism: ParseFiles requires a Resolver")
	}

	par := p.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	sem := semaphore.NewWeighted(int64(par))
	group, ctx := errgroup.WithContext(ctx)

	first := make(map[string]int, len(paths))
	results := make([]*decode.Result, len(paths))
	for i, path := range paths {
		if _, ok := first[path]; ok {
			continue
		}
		first[path] = i

		group.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			r, err := p.parseFile(ctx, path)
			results[i] = r
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for i, path := range paths {
		results[i] = results[first[path]]
	}
	return results, nil
}

func (p *Parser) parseFile(ctx context.Context, path string) (*decode.Result, error) {
	sr, err := p.Resolver.FindFileByPath(path)
	if err != nil {
		return nil, err
	}
	if sr.Source == nil {
		return nil, fmt.Errorf("search result for %q has no source", path)
	}
	defer func() {
		// If the result included a closeable source, don't leave it open.
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	source, err := p.read(path, sr.Source)
	if err != nil {
		return nil, err
	}
	if sr.Serialized != nil {
		return p.decode(path, source, sr.Serialized)
	}
	return p.Parse(ctx, path, source)
}

// read reads a whole source, stopping early if it is too large.
func (p *Parser) read(path string, r io.Reader) ([]byte, error) {
	if p.MaxSourceSize <= 0 {
		return io.ReadAll(r)
	}

	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(r, int64(p.MaxSourceSize)+1))
	if err != nil {
		return nil, err
	}
	if n > int64(p.MaxSourceSize) {
		return nil, fmt.Errorf("%s: %w: more than %d bytes", path, ErrSourceTooLarge, p.MaxSourceSize)
	}
	return buf.Bytes(), nil
}

func (p *Parser) load(ctx context.Context) (Engine, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return p.engine, p.loadErr
	}

	var engine Engine
	var err error
	switch {
	case p.Load == nil:
		err = errors.New("prism: Parser.Load is not set")
	default:
		engine, err = p.Load(ctx)
		if err == nil && engine == nil {
			err = errors.New("prism: Parser.Load returned a nil engine")
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	p.engine, p.loadErr, p.loaded = engine, err, true
	return engine, err
}

// decode decodes buf and, if a reporter is set, reports its diagnostics.
func (p *Parser) decode(path string, source, buf []byte) (*decode.Result, error) {
	r, err := p.Decoder.Decode(buf, path, string(source))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Reporter == nil {
		return r, nil
	}

	h := reporter.NewHandler(p.Reporter)
	for _, diag := range r.Diagnostics {
		if diag.Level.IsError() {
			if err := h.HandleErrorf(diag.Span, "%s", diag.Message); err != nil {
				return nil, err
			}
			continue
		}
		h.HandleWarning(diag.Span, errors.New(diag.Message))
	}
	if err := h.ReporterError(); err != nil {
		return nil, err
	}
	return r, nil
}
