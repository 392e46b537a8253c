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

// Package reporter contains the types used for reporting errors from
// parsing. Errors are reported with their location in the source.
package reporter

import (
	"errors"
	"sync"

	"github.com/bufbuild/prism-go/source"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, parsing will abort with that error. If the
// reporter returns nil, parsing will continue, allowing the parser to try to
// report as many syntax errors as it can find.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. This is used
// for indicating non-error messages to the calling program for things that do
// not cause the parse to fail but are considered bad practice. Though they are
// just warnings, the details are supplied to the reporter via an error type.
type WarningReporter func(ErrorWithPos)

// Reporter is a type that handles reporting both errors and warnings.
// A reporter does not need to be thread-safe. Safe concurrent access is
// managed by a Handler.
type Reporter interface {
	// Error is called when the given error is encountered and needs to be
	// reported to the calling program. If the returned error is non-nil,
	// parsing will abort with that error.
	Error(ErrorWithPos) error
	// Warning is called when the given warning is encountered and needs to be
	// reported to the calling program.
	Warning(ErrorWithPos)
}

// NewReporter creates a new reporter that invokes the given functions on error
// or warning.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler is used by parsers for reporting errors and warnings. Each parse
// gets its own handler, which may be used from multiple goroutines.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler that reports errors and warnings using the
// given reporter. If rep is nil, the default reporter is used, which fails on
// the first error and ignores warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf handles an error with the given location, creating the error
// using the given message format and arguments.
//
// If the handler has already aborted (by returning a non-nil error from a
// previous call), this returns that same error.
func (h *Handler) HandleErrorf(span source.Span, format string, args ...any) error {
	return h.HandleError(Errorf(span, format, args...))
}

// HandleError handles the given error. If it is an [ErrorWithPos], it is
// passed to the reporter, and the reporter's verdict becomes the result.
// Any other error aborts immediately.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	var ewp ErrorWithPos
	if errors.As(err, &ewp) {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning handles the given warning. This will delegate to the
// reporter's Warning method.
func (h *Handler) HandleWarning(span source.Span, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.reporter.Warning(errorWithSpan{span: span, underlying: err})
}

// Error returns the handler result. If any errors have been reported then
// this returns a non-nil error. If the reporter never returned a non-nil
// error then [ErrInvalidSource] is returned.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error returned by the handler's reporter. If
// the reporter has either not been invoked (no errors handled) or has not
// returned any non-nil value, then this returns nil.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
