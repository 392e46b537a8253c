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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/prism-go/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.rb", "foo\n\tbär = 1\n日本 = 2")
	tests := []struct {
		offset int
		unit   source.Unit
		want   source.Location
	}{
		{offset: 0, unit: source.Bytes, want: source.Location{Offset: 0, Line: 1, Column: 1}},
		{offset: 3, unit: source.Bytes, want: source.Location{Offset: 3, Line: 1, Column: 4}},
		{offset: 4, unit: source.Bytes, want: source.Location{Offset: 4, Line: 2, Column: 1}},
		// "\tbä" is 4 bytes, 3 runes.
		{offset: 8, unit: source.Bytes, want: source.Location{Offset: 8, Line: 2, Column: 5}},
		{offset: 8, unit: source.Runes, want: source.Location{Offset: 8, Line: 2, Column: 4}},
		{offset: 8, unit: source.UTF16, want: source.Location{Offset: 8, Line: 2, Column: 4}},
		{offset: 8, unit: source.TermWidth, want: source.Location{Offset: 8, Line: 2, Column: 7}},
		// "日本" is 6 bytes, 2 runes, 4 cells.
		{offset: 20, unit: source.Bytes, want: source.Location{Offset: 20, Line: 3, Column: 7}},
		{offset: 20, unit: source.Runes, want: source.Location{Offset: 20, Line: 3, Column: 3}},
		{offset: 20, unit: source.TermWidth, want: source.Location{Offset: 20, Line: 3, Column: 5}},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, file.Location(test.offset, test.unit), "offset %d in %v", test.offset, test.unit)
	}
}

func TestStartLine(t *testing.T) {
	t.Parallel()

	file := source.NewFileAt("eval", "a\nb\n", 10)
	assert.Equal(t, 10, file.Location(0, source.Bytes).Line)
	assert.Equal(t, 11, file.Location(2, source.Bytes).Line)
	assert.Equal(t, "b\n", file.Line(11))
	assert.Equal(t, 3, file.LineCount())

	indexed := source.NewFileWithLines("eval", "a\nb\n", 10, []int{0, 2, 4})
	assert.Equal(t, file.Location(3, source.Runes), indexed.Location(3, source.Runes))
}

func TestNilFile(t *testing.T) {
	t.Parallel()

	var file *source.File
	assert.Empty(t, file.Path())
	assert.Empty(t, file.Text())
	assert.Equal(t, source.Location{Line: 1, Column: 1}, file.Location(5, source.Bytes))
	assert.True(t, file.Span(0, 0).IsZero())
}

func TestSpan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.rb", "foo.bar")
	span := file.Span(4, 7)
	assert.Equal(t, "bar", span.Text())
	assert.Equal(t, 3, span.Len())
	assert.True(t, span.Contains(4))
	assert.False(t, span.Contains(7))
	assert.Equal(t, "a.rb:1:5", span.String())

	empty := file.Span(3, 3)
	assert.True(t, empty.Contains(3))
	assert.Empty(t, empty.Text())

	assert.Equal(t, "<none>", source.Span{}.String())
	assert.True(t, file.Contains(0, 7))
	assert.False(t, file.Contains(5, 8))
}
