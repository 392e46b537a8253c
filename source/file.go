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

package source

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf16"
)

// File is a source file that a parse result refers into.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string
	startLine  int

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, it is
	// possible to recover which line that offset is on by performing a binary
	// search on this list.
	lineIndex []int
}

// NewFile constructs a new source file whose first line is line 1.
func NewFile(path, text string) *File {
	return &File{path: path, text: text, startLine: 1}
}

// NewFileAt is like [NewFile], but numbers the first line of text as
// startLine. The engine allows callers to parse a snippet as if it started
// somewhere other than the top of a file.
func NewFileAt(path, text string, startLine int) *File {
	return &File{path: path, text: text, startLine: startLine}
}

// NewFileWithLines is like [NewFileAt], but uses a precomputed line index
// instead of scanning text for newlines. offsets must be the byte offset of
// the start of each line, beginning with 0.
func NewFileWithLines(path, text string, startLine int, offsets []int) *File {
	f := &File{path: path, text: text, startLine: startLine}
	f.once.Do(func() { f.lineIndex = offsets })
	return f
}

// Path returns this file's path.
//
// It doesn't need to be a real path; it is only used for display.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Len returns the length of this file's text, in bytes.
func (f *File) Len() int {
	return len(f.Text())
}

// StartLine returns the number of the first line of this file.
func (f *File) StartLine() int {
	if f == nil || f.startLine == 0 {
		return 1
	}
	return f.startLine
}

// LineCount returns the number of lines in this file. A file with no trailing
// newline still counts its final partial line.
func (f *File) LineCount() int {
	return len(f.lines())
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{f, start, end}
}

// Contains returns whether [start, end) lies within this file's text.
func (f *File) Contains(start, end int) bool {
	return 0 <= start && start <= end && end <= f.Len()
}

// LineByOffset returns the 0-based index of the line containing offset.
//
// This operation is O(log n).
func (f *File) LineByOffset(offset int) int {
	lines := f.lines()

	// Find the largest index such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}
	return max(line, 0)
}

// Location builds full Location information for the given byte offset, with
// the column measured in units.
//
// This operation is O(log n).
func (f *File) Location(offset int, units Unit) Location {
	if f == nil {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	lines := f.lines()
	line := f.LineByOffset(offset)
	offset = min(max(offset, 0), f.Len())
	chunk := f.text[lines[line]:offset]

	var column int
	switch units {
	case Runes:
		for range chunk {
			column++
		}
	case UTF16:
		for _, r := range chunk {
			column += utf16.RuneLen(r)
		}
	case TermWidth:
		column = termWidth(chunk)
	default:
		column = len(chunk)
	}

	return Location{
		Offset: offset,
		Line:   f.StartLine() + line,
		Column: column + 1,
	}
}

// Line returns the given line, including its trailing newline.
//
// line is numbered relative to [File.StartLine].
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return f.Text()[start:end]
}

// LineOffsets returns the offsets for the given line, including its trailing
// newline.
//
// line is numbered relative to [File.StartLine].
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	idx := line - f.StartLine()
	if idx < 0 || idx >= len(lines) {
		return 0, 0
	}
	if idx == len(lines)-1 {
		return lines[idx], f.Len()
	}
	return lines[idx], lines[idx+1]
}

func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int
		f.lineIndex = append(f.lineIndex, 0)

		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text := f.text
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]
			next += newline
			f.lineIndex = append(f.lineIndex, next)
		}
	})
	if len(f.lineIndex) == 0 {
		return []int{0}
	}
	return f.lineIndex
}
