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

package ast

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/prism-go/source"
)

var noSpan source.Span

type schema struct {
	Flags []struct {
		Name   string `yaml:"name"`
		Values []struct {
			Name string `yaml:"name"`
		} `yaml:"values"`
	} `yaml:"flags"`
	Nodes []struct {
		Name  string `yaml:"name"`
		Flags string `yaml:"flags"`
	} `yaml:"nodes"`
}

// TestSchema checks that the generated code is in sync with nodes.yaml.
func TestSchema(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("nodes.yaml")
	require.NoError(t, err)
	var s schema
	require.NoError(t, yaml.Unmarshal(data, &s))

	groups := make(map[string][]string)
	for _, g := range s.Flags {
		for _, v := range g.Values {
			groups[g.Name] = append(groups[g.Name], v.Name)
		}
	}

	kinds := Kinds()
	require.Len(t, kinds, len(s.Nodes))
	for i, n := range s.Nodes {
		kind := kinds[i]
		assert.Equal(t, Kind(i+1), kind)
		assert.Equal(t, n.Name, kind.String())
		assert.Equal(t, groups[n.Flags], flagGroup(kind), "flags of %s", n.Name)
	}

	assert.False(t, Kind(0).Valid())
	assert.False(t, Kind(len(s.Nodes)+1).Valid())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestFlagNames(t *testing.T) {
	t.Parallel()

	flags := FlagNewline | RegularExpressionExtended | 1<<40
	assert.Equal(t, []string{"NEWLINE", "EXTENDED", "bit40"}, FlagNames(KindRegularExpressionNode, flags))
	assert.Equal(t, "NEWLINE,bit3,bit40", FormatFlags(KindProgramNode, flags))
	assert.Empty(t, FormatFlags(KindProgramNode, 0))

	assert.True(t, flags.Has(FlagNewline|RegularExpressionExtended))
	assert.False(t, flags.Has(FlagStaticLiteral))
	assert.Equal(t, FlagNewline, flags.Common())
}

func TestFlagIndependence(t *testing.T) {
	t.Parallel()

	predicates := map[string]func(*RegularExpressionNode) bool{
		"ignore_case": (*RegularExpressionNode).IsIgnoreCase,
		"extended":    (*RegularExpressionNode).IsExtended,
		"multi_line":  (*RegularExpressionNode).IsMultiLine,
		"once":        (*RegularExpressionNode).IsOnce,
	}
	bits := map[string]Flags{
		"ignore_case": RegularExpressionIgnoreCase,
		"extended":    RegularExpressionExtended,
		"multi_line":  RegularExpressionMultiLine,
		"once":        RegularExpressionOnce,
	}
	for set, bit := range bits {
		n := NewRegularExpressionNode(NewBase(1, noSpan, bit), noSpan, noSpan, noSpan, "")
		for name, pred := range predicates {
			assert.Equal(t, name == set, pred(n), "%s with %s set", name, set)
		}
	}
}
