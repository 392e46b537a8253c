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
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/bufbuild/prism-go/internal/intern"
	"github.com/bufbuild/prism-go/internal/wire"
)

// Sentinel errors that a decode can fail with. Every failure is reported as
// an [*Error] wrapping one of these; use [errors.Is] to tell them apart.
var (
	// ErrTruncatedBuffer means the buffer ended before the data it declares.
	ErrTruncatedBuffer = wire.ErrTruncated
	// ErrMalformedVarint means a varint ran off the end of the buffer or
	// overflowed 64 bits.
	ErrMalformedVarint = wire.ErrMalformedVarint
	// ErrMalformed means a value was out of range for what it encodes, such
	// as a presence marker other than 0 or 1.
	ErrMalformed = wire.ErrMalformed
	// ErrConstantIndexOutOfRange means a node referred to a constant past
	// the end of the constant pool.
	ErrConstantIndexOutOfRange = intern.ErrOutOfRange
	// ErrInvalidLocation means a location fell outside of the source text.
	ErrInvalidLocation = intern.ErrInvalidLocation
	// ErrInvalidConstantPool means the constant pool was inconsistent with
	// the buffer that holds it.
	ErrInvalidConstantPool = intern.ErrInvalidPool
	// ErrUnknownNodeTag means a node's kind tag is not a known kind.
	ErrUnknownNodeTag = errors.New("unknown node tag")
	// ErrUnexpectedNodeKind means a field that holds one kind of node held
	// some other kind.
	ErrUnexpectedNodeKind = errors.New("unexpected node kind")
	// ErrUnsupportedFormatVersion means the buffer's header is not one this
	// package can decode.
	ErrUnsupportedFormatVersion = errors.New("unsupported format version")
	// ErrExcessiveNesting means the tree was nested more deeply than
	// [Decoder.MaxDepth] allows.
	ErrExcessiveNesting = errors.New("excessive nesting")
	// ErrTrailingData means the root node did not end exactly where the
	// constant pool begins.
	ErrTrailingData = errors.New("trailing data")
)

// Error is the error returned when a buffer cannot be decoded.
type Error struct {
	// The byte offset within the buffer at which decoding stopped.
	Offset int
	// The fields being decoded when decoding stopped, outermost first, such
	// as "ProgramNode.statements" or "header.comments[2]".
	Path []string
	// The underlying error; one of the sentinels in this package.
	Err error

	// Stack trace of the decoder, only populated when PRISM_DEBUG is set.
	trace []runtime.Frame
}

// Error implements [error].
func (e *Error) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "prism: decode failed at offset %d", e.Offset)
	if len(e.Path) > 0 {
		fmt.Fprintf(&buf, " (in %s)", strings.Join(e.Path, " > "))
	}
	fmt.Fprintf(&buf, ": %v", e.Err)
	for _, frame := range e.trace {
		fmt.Fprintf(&buf, "\n\tat %s (%s:%d)", frame.Function, frame.File, frame.Line)
	}
	return buf.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
