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

package main

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/prism-go/internal/cases"
)

// Schema is the contents of nodes.yaml.
type Schema struct {
	Flags []*FlagGroup `yaml:"flags"`
	Nodes []*Node      `yaml:"nodes"`
}

// FlagGroup is a named set of node-specific flag bits.
type FlagGroup struct {
	Name   string      `yaml:"name"`
	Values []FlagValue `yaml:"values"`

	Kinds []string `yaml:"-"` // Nodes that use this group.
}

// FlagValue is one bit of a [FlagGroup].
type FlagValue struct {
	Name    string `yaml:"name"`
	Comment string `yaml:"comment"`

	Const     string `yaml:"-"` // Go name of the bit constant.
	Predicate string `yaml:"-"` // Go name of the node method testing the bit.
	Bit       int    `yaml:"-"`
}

// Node is one node kind.
type Node struct {
	Name    string   `yaml:"name"`
	Comment string   `yaml:"comment"`
	Flags   string   `yaml:"flags"`
	Fields  []*Field `yaml:"fields"`

	Group *FlagGroup `yaml:"-"`
}

// Field is one serialized field of a [Node].
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Kind string `yaml:"kind"` // Set if the field only ever holds one node kind.
}

var fieldTypes = map[string]string{
	"node": "Node", "node?": "Node", "node[]": "[]Node",
	"constant": "ConstantID", "constant?": "ConstantID", "constant[]": "[]ConstantID",
	"string": "string", "location": "source.Span", "location?": "source.Span",
	"uint8": "uint8", "uint32": "uint32", "integer": "Integer", "double": "float64",
}

var readers = map[string]string{
	"node": "d.node", "node?": "d.optNode", "node[]": "d.nodes",
	"constant": "d.constant", "constant?": "d.optConstant", "constant[]": "d.constants",
	"string": "d.string", "location": "d.location", "location?": "d.optLocation",
	"uint8": "d.uint8", "uint32": "d.uint32", "integer": "d.integer", "double": "d.double",
}

var typedReaders = map[string]string{
	"node": "nodeOf", "node?": "optNodeOf", "node[]": "nodesOf",
}

var flagCase = cases.Converter{
	Case:       cases.Pascal,
	NaiveSplit: true,
	Initialisms: map[string]string{
		"UTF8": "UTF8", "UTF": "UTF", "US": "US", "ASCII": "ASCII",
		"EUC": "EUC", "JP": "JP", "8BIT": "8Bit", "31J": "31J",
	},
}

// ParseSchema parses and validates a schema.
func ParseSchema(text []byte) (*Schema, error) {
	schema := new(Schema)
	if err := yaml.Unmarshal(text, schema); err != nil {
		return nil, err
	}

	groups := make(map[string]*FlagGroup)
	for _, g := range schema.Flags {
		if !strings.HasSuffix(g.Name, "Flags") {
			return nil, fmt.Errorf("flag group %q must end in Flags", g.Name)
		}
		prefix := strings.TrimSuffix(strings.TrimSuffix(g.Name, "Flags"), "Node")
		for i := range g.Values {
			v := &g.Values[i]
			v.Bit = i + 2
			v.Const = prefix + flagCamel(v.Name)
			v.Predicate = "Is" + flagCamel(v.Name)
			if strings.HasPrefix(v.Name, "CONTAINS_") {
				v.Predicate = flagCamel(v.Name)
			}
		}
		groups[g.Name] = g
	}

	names := make(map[string]bool)
	for _, n := range schema.Nodes {
		names[n.Name] = true
	}
	if len(schema.Nodes) > 255 {
		return nil, errors.New("too many node kinds for a one-byte tag")
	}

	for _, n := range schema.Nodes {
		if n.Flags != "" {
			n.Group = groups[n.Flags]
			if n.Group == nil {
				return nil, fmt.Errorf("%s: unknown flag group %q", n.Name, n.Flags)
			}
			n.Group.Kinds = append(n.Group.Kinds, n.Name)
		}
		for _, f := range n.Fields {
			if _, ok := fieldTypes[f.Type]; !ok {
				return nil, fmt.Errorf("%s.%s: unknown type %q", n.Name, f.Name, f.Type)
			}
			if f.Kind != "" && (!strings.HasPrefix(f.Type, "node") || !names[f.Kind]) {
				return nil, fmt.Errorf("%s.%s: invalid kind %q", n.Name, f.Name, f.Kind)
			}
		}
	}
	return schema, nil
}

// Doc returns the doc comment for the node's type.
func (n *Node) Doc() string {
	switch {
	case strings.HasPrefix(n.Comment, "Represents "):
		return n.Name + " represents " + strings.TrimPrefix(n.Comment, "Represents ")
	case strings.HasPrefix(n.Comment, "The "):
		return n.Name + " is the " + strings.TrimPrefix(n.Comment, "The ")
	default:
		return n.Name + ": " + n.Comment
	}
}

// NodeFields returns the fields holding child nodes.
func (n *Node) NodeFields() []*Field {
	var out []*Field
	for _, f := range n.Fields {
		if strings.HasPrefix(f.Type, "node") {
			out = append(out, f)
		}
	}
	return out
}

// Params returns the parameter list of the node's factory function.
func (n *Node) Params() string {
	params := []string{"base Base"}
	for _, f := range n.Fields {
		params = append(params, f.Var()+" "+f.GoType())
	}
	return strings.Join(params, ", ")
}

// Inits returns the body of the composite literal built by the node's factory.
func (n *Node) Inits() string {
	inits := []string{"Base: base"}
	for _, f := range n.Fields {
		inits = append(inits, f.Var()+": "+f.Var())
	}
	return strings.Join(inits, ", ")
}

// Getter returns the name of the field's accessor.
func (f *Field) Getter() string {
	return cases.Pascal.Convert(f.Name)
}

// Var returns the name of the struct field and factory parameter.
func (f *Field) Var() string {
	return cases.Camel.Convert(f.Name)
}

// GoType returns the Go type of the field.
func (f *Field) GoType() string {
	if f.Kind != "" {
		if f.Type == "node[]" {
			return "[]*" + f.Kind
		}
		return "*" + f.Kind
	}
	return fieldTypes[f.Type]
}

// Optional returns whether the field may be absent.
func (f *Field) Optional() bool {
	return strings.HasSuffix(f.Type, "?")
}

// List returns whether the field is a sequence.
func (f *Field) List() bool {
	return strings.HasSuffix(f.Type, "[]")
}

// Doc returns the doc comment of the field's accessor.
func (f *Field) Doc() string {
	doc := fmt.Sprintf("%s returns the %s field", f.Getter(), f.Name)
	switch f.Type {
	case "node?":
		return doc + ", or nil if it is absent."
	case "location?":
		return doc + ", or the zero span if it is absent."
	case "constant?":
		return doc + ", or zero if it is absent."
	default:
		return doc + "."
	}
}

// Value returns the expression used for the field in Fields().
func (f *Field) Value() string {
	switch {
	case f.Kind != "" && f.List():
		return "toNodes(n." + f.Var() + ")"
	case f.Kind != "":
		return "nodeOrNil(n." + f.Var() + ")"
	default:
		return "n." + f.Var()
	}
}

// Reader returns the decoder expression that reads the field.
func (f *Field) Reader() string {
	if f.Kind != "" {
		return fmt.Sprintf("%s[*ast.%s](d, %q)", typedReaders[f.Type], f.Kind, f.Name)
	}
	return fmt.Sprintf("%s(%q)", readers[f.Type], f.Name)
}

// VarName returns the name of the variable holding the group's bit names.
func (g *FlagGroup) VarName() string {
	return strings.ToLower(g.Name[:1]) + g.Name[1:]
}

// KindList returns the case list matching every node in the group.
func (g *FlagGroup) KindList() string {
	kinds := make([]string, len(g.Kinds))
	for i, k := range g.Kinds {
		kinds[i] = "Kind" + k
	}
	return strings.Join(kinds, ", ")
}

// ValueList returns the group's bit names as a Go string list.
func (g *FlagGroup) ValueList() string {
	values := make([]string, len(g.Values))
	for i, v := range g.Values {
		values[i] = fmt.Sprintf("%q", v.Name)
	}
	return strings.Join(values, ", ")
}

func flagCamel(name string) string {
	return flagCase.Convert(name)
}
