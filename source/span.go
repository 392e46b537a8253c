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

import "fmt"

// Spanner is any type with a [Span].
type Spanner interface {
	// Should return the zero [Span] to indicate that it does not contribute
	// span information.
	Span() Span
}

// Span is a byte range within a [File].
type Span struct {
	// The file this span refers to.
	*File

	// The start and end byte offsets for this span.
	Start, End int
}

// Location is a user-displayable location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// The units of measurement for column depend on the [Unit] used when
	// constructing it.
	//
	// Because these are 1-indexed, a zero Line can be used as a sentinel.
	Line, Column int
}

// IsZero returns whether or not this is the zero span.
//
// Absent optional locations in a parse tree are represented by the zero span.
func (s Span) IsZero() bool {
	return s.File == nil
}

// Text returns the text corresponding to this span.
//
// The returned string aliases the file's text; no copy is made.
func (s Span) Text() string {
	if s.IsZero() {
		return ""
	}
	return s.File.Text()[s.Start:s.End]
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns whether offset falls within this span. The end of a
// non-empty span is exclusive, while an empty span contains its own start.
func (s Span) Contains(offset int) bool {
	if s.Start == s.End {
		return offset == s.Start
	}
	return s.Start <= offset && offset < s.End
}

// StartLoc returns the start location for this span, with the column measured
// in bytes.
func (s Span) StartLoc() Location {
	return s.Location(s.Start, Bytes)
}

// EndLoc returns the end location for this span, with the column measured in
// bytes.
func (s Span) EndLoc() Location {
	return s.Location(s.End, Bytes)
}

// Format implements [fmt.Formatter].
//
// %v prints path:line:col, while %+v prints the raw byte range as well.
func (s Span) Format(state fmt.State, verb rune) {
	if s.IsZero() {
		fmt.Fprint(state, "<none>")
		return
	}
	loc := s.StartLoc()
	path := s.Path()
	if path == "" {
		path = "<input>"
	}
	fmt.Fprintf(state, "%s:%d:%d", path, loc.Line, loc.Column)
	if verb == 'v' && state.Flag('+') {
		fmt.Fprintf(state, "[%d:%d]", s.Start, s.End)
	}
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprint(s)
}
