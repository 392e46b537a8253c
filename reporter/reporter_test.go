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

package reporter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/prism-go/reporter"
	"github.com/bufbuild/prism-go/source"
)

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.rb", "foo\nbar(")
	cause := errors.New("unexpected end-of-input")
	err := reporter.Error(file.Span(7, 8), cause)

	assert.Equal(t, "a.rb:2:4: unexpected end-of-input", err.Error())
	assert.Equal(t, "(", err.Span().Text())
	require.ErrorIs(t, err, cause)

	err = reporter.Errorf(source.Span{}, "bad %s", "thing")
	assert.Equal(t, "<none>: bad thing", err.Error())
}

func TestHandler(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.rb", "foo")
	span := file.Span(0, 3)

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		h := reporter.NewHandler(nil)
		require.NoError(t, h.Error())
		h.HandleWarning(span, errors.New("ignored"))
		require.NoError(t, h.Error())

		err := h.HandleErrorf(span, "first")
		require.Error(t, err)
		assert.Equal(t, "a.rb:1:1: first", err.Error())

		// The handler has aborted; later errors report the first.
		assert.Equal(t, err, h.HandleErrorf(span, "second"))
		assert.Equal(t, err, h.Error())
		assert.Equal(t, err, h.ReporterError())
	})

	t.Run("collecting", func(t *testing.T) {
		t.Parallel()

		var errs, warnings []string
		h := reporter.NewHandler(reporter.NewReporter(
			func(err reporter.ErrorWithPos) error {
				errs = append(errs, err.Error())
				return nil
			},
			func(err reporter.ErrorWithPos) {
				warnings = append(warnings, err.Error())
			},
		))

		require.NoError(t, h.HandleErrorf(span, "one"))
		require.NoError(t, h.HandleErrorf(span, "two"))
		h.HandleWarning(span, errors.New("three"))

		assert.Equal(t, []string{"a.rb:1:1: one", "a.rb:1:1: two"}, errs)
		assert.Equal(t, []string{"a.rb:1:1: three"}, warnings)
		require.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
		require.NoError(t, h.ReporterError())
	})

	t.Run("plain-error", func(t *testing.T) {
		t.Parallel()

		h := reporter.NewHandler(reporter.NewReporter(
			func(reporter.ErrorWithPos) error {
				t.Fatal("reporter called for an error without a position")
				return nil
			},
			nil,
		))
		cause := errors.New("engine crashed")
		require.ErrorIs(t, h.HandleError(cause), cause)
		require.ErrorIs(t, h.Error(), cause)
	})
}
