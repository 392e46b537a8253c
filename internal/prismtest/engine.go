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

package prismtest

import (
	"context"
	"fmt"
	"slices"
	"sync"

	prism "github.com/bufbuild/prism-go"
)

// Engine is an in-memory stand-in for the parsing engine. It answers each
// source with the buffer built from the [Case] registered for that exact
// text.
type Engine struct {
	mu    sync.Mutex
	cases map[string]*Case
	calls []prism.Options
}

var _ prism.Engine = (*Engine)(nil)

// NewEngine returns an engine that knows the given cases.
func NewEngine(cases ...*Case) *Engine {
	e := &Engine{cases: make(map[string]*Case, len(cases))}
	for _, c := range cases {
		e.cases[c.Source] = c
	}
	return e
}

// Serialize implements [prism.Engine].
func (e *Engine) Serialize(ctx context.Context, source []byte, opts prism.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.calls = append(e.calls, opts)
	c, ok := e.cases[string(source)]
	e.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("prismtest: no case for source %q", source)
	}
	return c.Build()
}

// Calls returns the options of every call to Serialize so far, in the order
// the calls were made.
func (e *Engine) Calls() []prism.Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.calls)
}
