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

package walk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/prism-go/ast"
	"github.com/bufbuild/prism-go/source"
	"github.com/bufbuild/prism-go/walk"
)

// tree builds the nodes for `foo = 1; bar`.
func tree() *ast.ProgramNode {
	file := source.NewFile("test.rb", "foo = 1; bar")
	span := func(start, end int) source.Span { return file.Span(start, end) }

	one := ast.NewIntegerNode(ast.NewBase(3, span(6, 7), ast.FlagStaticLiteral), ast.IntegerOf(1))
	write := ast.NewLocalVariableWriteNode(ast.NewBase(2, span(0, 7), ast.FlagNewline), 1, 0, span(0, 3), one, span(4, 5))
	call := ast.NewCallNode(ast.NewBase(4, span(9, 12), ast.FlagNewline), nil, source.Span{}, 2, span(9, 12), source.Span{}, nil, source.Span{}, nil)
	stmts := ast.NewStatementsNode(ast.NewBase(1, span(0, 12), 0), []ast.Node{write, call})
	return ast.NewProgramNode(ast.NewBase(0, span(0, 12), 0), []ast.ConstantID{1}, stmts)
}

func kinds(nodes []ast.Node) []ast.Kind {
	out := make([]ast.Kind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind()
	}
	return out
}

func TestNodes(t *testing.T) {
	t.Parallel()

	var seen []ast.Node
	err := walk.Nodes(tree(), func(n ast.Node) error {
		seen = append(seen, n)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []ast.Kind{
		ast.KindProgramNode,
		ast.KindStatementsNode,
		ast.KindLocalVariableWriteNode,
		ast.KindIntegerNode,
		ast.KindCallNode,
	}, kinds(seen))

	assert.NoError(t, walk.Nodes(nil, func(ast.Node) error {
		t.Fatal("called on nil root")
		return nil
	}))
}

func TestNodesEnterAndExit(t *testing.T) {
	t.Parallel()

	var events []string
	err := walk.NodesEnterAndExit(tree(),
		func(n ast.Node) error {
			events = append(events, "+"+n.Kind().String())
			if n.Kind() == ast.KindLocalVariableWriteNode {
				return walk.SkipChildren
			}
			return nil
		},
		func(n ast.Node) error {
			events = append(events, "-"+n.Kind().String())
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+ProgramNode",
		"+StatementsNode",
		"+LocalVariableWriteNode",
		"-LocalVariableWriteNode",
		"+CallNode",
		"-CallNode",
		"-StatementsNode",
		"-ProgramNode",
	}, events)
}

func TestStop(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	var count int
	err := walk.Nodes(tree(), func(n ast.Node) error {
		count++
		if n.Kind() == ast.KindLocalVariableWriteNode {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, count)
}

func TestFindAndParents(t *testing.T) {
	t.Parallel()

	root := tree()
	found := walk.Find(root, func(n ast.Node) bool {
		return n.Kind() == ast.KindIntegerNode
	})
	require.NotNil(t, found)
	assert.Equal(t, "1", found.Span().Text())

	assert.Equal(t, []ast.Kind{
		ast.KindProgramNode,
		ast.KindStatementsNode,
		ast.KindLocalVariableWriteNode,
		ast.KindIntegerNode,
	}, kinds(walk.Parents(root, found)))

	assert.Nil(t, walk.Find(root, func(n ast.Node) bool {
		return n.Kind() == ast.KindStringNode
	}))
	assert.Nil(t, walk.Parents(root, ast.NewStringNode(ast.NewBase(9, source.Span{}, 0), source.Span{}, source.Span{}, source.Span{}, "")))

	var inspected int
	walk.Inspect(root, func(n ast.Node) bool {
		inspected++
		return n.Kind() != ast.KindStatementsNode
	})
	assert.Equal(t, 2, inspected)
}
