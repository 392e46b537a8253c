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

package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/prism-go/source"
)

// ErrInvalidSource is a sentinel error that is returned by parsing when the
// engine reported syntax errors, but the configured reporter always returned
// nil.
var ErrInvalidSource = errors.New("parse failed: invalid Ruby source")

// ErrorWithPos is an error about a Ruby source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the location and the underlying
// error. The value of Unwrap() will only be the underlying error.
type ErrorWithPos interface {
	error
	Span() source.Span
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and span.
func Error(span source.Span, err error) ErrorWithPos {
	return errorWithSpan{span: span, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(span source.Span, format string, args ...any) ErrorWithPos {
	return errorWithSpan{span: span, underlying: fmt.Errorf(format, args...)}
}

type errorWithSpan struct {
	underlying error
	span       source.Span
}

func (e errorWithSpan) Error() string {
	return fmt.Sprintf("%v: %v", e.span, e.underlying)
}

func (e errorWithSpan) Span() source.Span {
	return e.span
}

func (e errorWithSpan) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSpan{}
