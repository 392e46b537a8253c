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

// Package prismtest provides helpers for building serialized parse results
// in tests.
//
// A [Case] describes a buffer the way a parser would have produced it: the
// source text, the header lists and the constant pool are given as data, and
// the tree is written in protoscope, which shares its varints, zig-zags and
// fixed-width encodings with the serialization format. Note that node kinds
// are single bytes, so kinds above 127 must be written as hex, e.g. `8c`.
package prismtest

import (
	"fmt"
	"strings"

	"github.com/protocolbuffers/protoscope"
	"google.golang.org/protobuf/encoding/protowire"
	"gopkg.in/yaml.v3"
)

// Case describes a serialized parse result.
type Case struct {
	Source string `yaml:"source"`
	// Defaults to "UTF-8".
	Encoding string `yaml:"encoding,omitempty"`
	// Defaults to 1.
	StartLine *int `yaml:"start_line,omitempty"`

	Comments      []Comment      `yaml:"comments,omitempty"`
	MagicComments []MagicComment `yaml:"magic_comments,omitempty"`
	DataLoc       *Loc           `yaml:"data_loc,omitempty"`
	Errors        []Diagnostic   `yaml:"errors,omitempty"`
	Warnings      []Diagnostic   `yaml:"warnings,omitempty"`
	Constants     []Constant     `yaml:"constants,omitempty"`

	// The root node, in protoscope.
	Root string `yaml:"root"`
}

// Loc is a location: a start offset and a length. In YAML it is written as
// a two element list.
type Loc struct {
	Start, Length int
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (l *Loc) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: location must be [start, length], got %v", value.Line, pair)
	}
	l.Start, l.Length = pair[0], pair[1]
	return nil
}

// Comment is an entry in the comment list.
type Comment struct {
	Kind uint8 `yaml:"kind"`
	Loc  Loc   `yaml:"loc"`
}

// MagicComment is an entry in the magic comment list.
type MagicComment struct {
	Key   Loc `yaml:"key"`
	Value Loc `yaml:"value"`
}

// Diagnostic is an entry in the error or warning lists.
type Diagnostic struct {
	Type    uint32 `yaml:"type"`
	Message string `yaml:"message"`
	Loc     Loc    `yaml:"loc"`
	Level   uint8  `yaml:"level"`
}

// Constant is an entry in the constant pool.
type Constant struct {
	Text string `yaml:"text"`
	// If set, Text is stored in the buffer instead of referring to the
	// source.
	Owned bool `yaml:"owned,omitempty"`
	// Where Text occurs in the source. Defaults to its first occurrence.
	At *int `yaml:"at,omitempty"`
}

// Load parses a YAML test case. Unknown keys are an error.
func Load(text string) (*Case, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)

	c := new(Case)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("prismtest: %w", err)
	}
	return c, nil
}

// LineOffsets returns the offset of the start of each line of text.
func LineOffsets(text string) []int {
	offsets := []int{0}
	for i := range len(text) {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// Build serializes this case.
func (c *Case) Build() ([]byte, error) {
	root, err := protoscope.NewScanner(c.Root).Exec()
	if err != nil {
		return nil, fmt.Errorf("prismtest: root: %w", err)
	}

	buf := []byte("PRISM")
	buf = append(buf, 1, 4, 0, 0)

	encoding := c.Encoding
	if encoding == "" {
		encoding = "UTF-8"
	}
	buf = protowire.AppendString(buf, encoding)

	startLine := 1
	if c.StartLine != nil {
		startLine = *c.StartLine
	}
	buf = protowire.AppendVarint(buf, protowire.EncodeZigZag(int64(startLine)))

	offsets := LineOffsets(c.Source)
	buf = protowire.AppendVarint(buf, uint64(len(offsets)))
	for _, off := range offsets {
		buf = protowire.AppendVarint(buf, uint64(off))
	}

	buf = protowire.AppendVarint(buf, uint64(len(c.Comments)))
	for _, comment := range c.Comments {
		buf = append(buf, comment.Kind)
		buf = comment.Loc.append(buf)
	}

	buf = protowire.AppendVarint(buf, uint64(len(c.MagicComments)))
	for _, magic := range c.MagicComments {
		buf = magic.Key.append(buf)
		buf = magic.Value.append(buf)
	}

	if c.DataLoc == nil {
		buf = append(buf, 0)
	} else {
		buf = c.DataLoc.append(append(buf, 1))
	}

	for _, diags := range [][]Diagnostic{c.Errors, c.Warnings} {
		buf = protowire.AppendVarint(buf, uint64(len(diags)))
		for _, diag := range diags {
			buf = protowire.AppendVarint(buf, uint64(diag.Type))
			buf = protowire.AppendString(buf, diag.Message)
			buf = diag.Loc.append(buf)
			buf = append(buf, diag.Level)
		}
	}

	// The pool follows the root node, whose size is already known.
	size := len(c.Constants)
	poolOffset := len(buf) + 4 + protowire.SizeVarint(uint64(size)) + len(root)
	buf = protowire.AppendFixed32(buf, uint32(poolOffset))
	buf = protowire.AppendVarint(buf, uint64(size))
	buf = append(buf, root...)

	ownedAt := poolOffset + size*8
	var owned []byte
	for i, constant := range c.Constants {
		var start int
		switch {
		case constant.Owned:
			start = (ownedAt + len(owned)) | 1<<31
			owned = append(owned, constant.Text...)
		case constant.At != nil:
			start = *constant.At
		default:
			start = strings.Index(c.Source, constant.Text)
			if start < 0 {
				return nil, fmt.Errorf("prismtest: constant %d: %q does not occur in the source", i+1, constant.Text)
			}
		}
		buf = protowire.AppendFixed32(buf, uint32(start))
		buf = protowire.AppendFixed32(buf, uint32(len(constant.Text)))
	}
	return append(buf, owned...), nil
}

func (l Loc) append(buf []byte) []byte {
	buf = protowire.AppendVarint(buf, uint64(l.Start))
	return protowire.AppendVarint(buf, uint64(l.Length))
}
