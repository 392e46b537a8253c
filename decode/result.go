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
	"iter"
	"slices"
	"sync"

	"github.com/bufbuild/prism-go/ast"
	"github.com/bufbuild/prism-go/internal/intern"
	"github.com/bufbuild/prism-go/internal/interval"
	"github.com/bufbuild/prism-go/source"
	"github.com/bufbuild/prism-go/walk"
)

// Version is a serialization format version.
type Version struct {
	Major, Minor, Patch uint8
}

// String implements [fmt.Stringer].
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// FormatVersion is the only serialization format version this package
// decodes.
var FormatVersion = Version{1, 4, 0}

// Result is a decoded parse result.
//
// A Result owns the tree rooted at Root; the tree and every other field are
// immutable once Decode returns. A Result is safe for concurrent use.
type Result struct {
	// The serialization format version of the buffer.
	Version Version
	// The name of the encoding the source was parsed in, such as "UTF-8".
	Encoding string
	// The line number of the first line of the source.
	StartLine int
	// The byte offset of the start of each line of the source.
	LineOffsets []int

	// The root of the tree.
	Root *ast.ProgramNode
	// The names of the local variables of the top-level scope, in order.
	Locals []string

	// Every comment in the source, in order.
	Comments []Comment
	// Every magic comment, such as "# frozen_string_literal: true", in order.
	MagicComments []MagicComment
	// The contents of the source after __END__, or the zero span if there
	// is none.
	DataLoc source.Span

	// Errors then warnings reported by the engine while parsing.
	Diagnostics []Diagnostic

	file *source.File
	pool *intern.Pool

	indexOnce sync.Once
	index     interval.Intersect[int, ast.Node]
}

// Comment is a comment in the source.
type Comment struct {
	Kind CommentKind
	Span source.Span
}

// CommentKind is the kind of a [Comment].
type CommentKind uint8

const (
	// CommentInline is a comment beginning with #.
	CommentInline CommentKind = iota
	// CommentEmbDoc is a comment between =begin and =end.
	CommentEmbDoc
)

// String implements [fmt.Stringer].
func (k CommentKind) String() string {
	switch k {
	case CommentInline:
		return "inline"
	case CommentEmbDoc:
		return "embdoc"
	default:
		return fmt.Sprintf("CommentKind(%d)", uint8(k))
	}
}

// MagicComment is a comment of the form "# key: value" that sets a parser
// option.
type MagicComment struct {
	Key, Value source.Span
}

// Diagnostic is an error or warning reported by the engine about the
// source. A program with syntax errors still decodes to a complete,
// error-recovered tree; its errors are reported here.
type Diagnostic struct {
	// The engine's identifier for the kind of diagnostic.
	Type uint32
	// A human-readable message.
	Message string
	// Where in the source the diagnostic applies.
	Span  source.Span
	Level Level
}

// Level is the severity of a [Diagnostic].
type Level uint8

const (
	// LevelSyntaxError is an error that makes the source invalid.
	LevelSyntaxError Level = iota + 1
	// LevelArgumentError is an error the runtime raises as an ArgumentError.
	LevelArgumentError
	// LevelLoadError is an error the runtime raises as a LoadError.
	LevelLoadError
	// LevelWarning is a warning that is always shown.
	LevelWarning
	// LevelVerboseWarning is a warning only shown in verbose mode.
	LevelVerboseWarning
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case LevelSyntaxError:
		return "syntax error"
	case LevelArgumentError:
		return "argument error"
	case LevelLoadError:
		return "load error"
	case LevelWarning:
		return "warning"
	case LevelVerboseWarning:
		return "verbose warning"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// IsError returns whether this level is one of the error levels.
func (l Level) IsError() bool {
	return l >= LevelSyntaxError && l <= LevelLoadError
}

// File returns the source file that spans in this result refer to.
func (r *Result) File() *source.File {
	return r.file
}

// Constant returns the constant with the given ID.
func (r *Result) Constant(id ast.ConstantID) (string, error) {
	return r.pool.Lookup(intern.ID(id))
}

// Name is like [Result.Constant], but returns "" for the absent constant.
func (r *Result) Name(id ast.ConstantID) string {
	return r.pool.Value(intern.ID(id))
}

// Names resolves a sequence of constants, such as a scope's locals.
func (r *Result) Names(ids []ast.ConstantID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = r.Name(id)
	}
	return names
}

// Lookup returns the ID of the constant with the given value, if the pool
// holds one.
func (r *Result) Lookup(name string) (ast.ConstantID, bool) {
	id, ok := r.pool.Query(name)
	return ast.ConstantID(id), ok
}

// Constants returns an iterator over the whole constant pool.
func (r *Result) Constants() iter.Seq2[ast.ConstantID, string] {
	return func(yield func(ast.ConstantID, string) bool) {
		for id, v := range r.pool.All() {
			if !yield(ast.ConstantID(id), v) {
				return
			}
		}
	}
}

// Errors returns the error diagnostics.
func (r *Result) Errors() []Diagnostic {
	return r.filter(true)
}

// Warnings returns the warning diagnostics.
func (r *Result) Warnings() []Diagnostic {
	return r.filter(false)
}

func (r *Result) filter(isError bool) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Level.IsError() == isError {
			out = append(out, d)
		}
	}
	return out
}

// Location resolves a byte offset in the source into a line and column, with
// the column measured in units.
func (r *Result) Location(offset int, units source.Unit) source.Location {
	return r.file.Location(offset, units)
}

// NodesAt returns every node whose span contains offset, outermost first.
//
// The first call builds an index of the tree, which later calls reuse.
func (r *Result) NodesAt(offset int) []ast.Node {
	r.indexOnce.Do(func() {
		if r.Root == nil {
			return
		}
		_ = walk.Nodes(r.Root, func(n ast.Node) error {
			span := n.Span()
			if span.Len() > 0 {
				r.index.Insert(span.Start, span.End-1, n)
			}
			return nil
		})
	})
	return slices.Clone(r.index.Get(offset).Value)
}
