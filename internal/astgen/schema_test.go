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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallSchema = `
flags:
  - name: CallNodeFlags
    values:
      - name: SAFE_NAVIGATION
        comment: "&. operator"
      - name: VARIABLE_CALL
        comment: a call that could have been a local variable
nodes:
  - name: CallNode
    flags: CallNodeFlags
    comment: Represents a method call.
    fields:
      - name: receiver
        type: node?
      - name: name
        type: constant
      - name: message_loc
        type: location?
  - name: ProgramNode
    comment: The top level node of any parse tree.
    fields:
      - name: locals
        type: constant[]
      - name: statements
        type: node
        kind: StatementsNode
  - name: StatementsNode
    comment: Represents a set of statements.
    fields:
      - name: body
        type: node[]
`

func TestParseSchema(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte(smallSchema))
	require.NoError(t, err)
	require.Len(t, schema.Nodes, 3)

	group := schema.Flags[0]
	assert.Equal(t, []string{"CallNode"}, group.Kinds)
	assert.Equal(t, "CallSafeNavigation", group.Values[0].Const)
	assert.Equal(t, "IsVariableCall", group.Values[1].Predicate)
	assert.Equal(t, 3, group.Values[1].Bit)

	call := schema.Nodes[0]
	assert.Equal(t, "CallNode represents a method call.", call.Doc())
	assert.Same(t, group, call.Group)
	assert.Equal(t, "base Base, receiver Node, name ConstantID, messageLoc source.Span", call.Params())
	assert.Equal(t, `d.optLocation("message_loc")`, call.Fields[2].Reader())
	assert.Equal(t, "MessageLoc returns the message_loc field, or the zero span if it is absent.", call.Fields[2].Doc())

	program := schema.Nodes[1]
	assert.Equal(t, "ProgramNode is the top level node of any parse tree.", program.Doc())
	statements := program.Fields[1]
	assert.Equal(t, "*StatementsNode", statements.GoType())
	assert.Equal(t, `nodeOf[*ast.StatementsNode](d, "statements")`, statements.Reader())
	assert.Equal(t, "nodeOrNil(n.statements)", statements.Value())
	assert.Len(t, program.NodeFields(), 1)
}

func TestParseSchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text, want string
	}{
		{
			name: "bad group name",
			text: "flags: [{name: Things}]",
			want: `flag group "Things" must end in Flags`,
		},
		{
			name: "unknown group",
			text: "nodes: [{name: FooNode, flags: BarFlags}]",
			want: `FooNode: unknown flag group "BarFlags"`,
		},
		{
			name: "unknown type",
			text: "nodes: [{name: FooNode, fields: [{name: x, type: bool}]}]",
			want: `FooNode.x: unknown type "bool"`,
		},
		{
			name: "kind on scalar",
			text: "nodes: [{name: FooNode, fields: [{name: x, type: string, kind: FooNode}]}]",
			want: `FooNode.x: invalid kind "FooNode"`,
		},
		{
			name: "unknown kind",
			text: "nodes: [{name: FooNode, fields: [{name: x, type: node, kind: BarNode}]}]",
			want: `FooNode.x: invalid kind "BarNode"`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSchema([]byte(test.text))
			assert.EqualError(t, err, test.want)
		})
	}
}

func TestMakeDocs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, makeDocs("", "\t"))
	assert.Equal(t, "\t// Represents a method call.\n", makeDocs("Represents a   method\ncall.", "\t"))

	long := makeDocs("word word word word word word word word word word word word word word word word word", "")
	for _, line := range []string{
		"// word word word word word word word word word word word word word word word\n",
		"// word word\n",
	} {
		assert.Contains(t, long, line)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "nodes.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(smallSchema), 0o600))
	astPath := filepath.Join(dir, "nodes_gen.go")
	decodePath := filepath.Join(dir, "decode_gen.go")
	require.NoError(t, run(schemaPath, astPath, decodePath))

	out, err := os.ReadFile(astPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "// Code generated by internal/astgen. DO NOT EDIT.")
	assert.Contains(t, string(out), "type CallNode struct")
	assert.Contains(t, string(out), "func (n *CallNode) IsVariableCall() bool")

	out, err = os.ReadFile(decodePath)
	require.NoError(t, err)
	assert.Contains(t, string(out), `d.optLocation("message_loc")`)
}
