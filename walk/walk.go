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

// Package walk provides helper functions for traversing a parse tree.
//
// Children are visited in the order of their parent's fields, which is the
// order returned by [ast.Node.ChildNodes].
package walk

import (
	"errors"

	"github.com/bufbuild/prism-go/ast"
)

// SkipChildren may be returned from an enter function to skip the children
// of the node it was called on. The exit function is still called for it.
//
//nolint:revive,errname // This is a control-flow signal, not a real error.
var SkipChildren = errors.New("skip children")

// Nodes walks the tree rooted at root in pre-order, calling fn for every
// node. If fn returns an error, the walk stops and that error is returned.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit walks the tree rooted at root, calling enter before a
// node's children are visited and exit after. exit may be nil.
//
// If enter returns [SkipChildren], the node's children are not visited.
// Any other error stops the walk and is returned.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	if root == nil {
		return nil
	}
	err := walk(root, enter, exit)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func walk(node ast.Node, enter, exit func(ast.Node) error) error {
	err := enter(node)
	switch {
	case errors.Is(err, SkipChildren):
	case err != nil:
		return err
	default:
		for _, child := range node.ChildNodes() {
			if err := walk(child, enter, exit); err != nil {
				return err
			}
		}
	}

	if exit != nil {
		return exit(node)
	}
	return nil
}

// Inspect walks the tree rooted at root in pre-order, calling fn for every
// node. If fn returns false, the node's children are skipped.
func Inspect(root ast.Node, fn func(ast.Node) bool) {
	_ = Nodes(root, func(n ast.Node) error {
		if !fn(n) {
			return SkipChildren
		}
		return nil
	})
}

// Find returns the first node in pre-order for which pred returns true, or
// nil if there is none.
func Find(root ast.Node, pred func(ast.Node) bool) ast.Node {
	var found ast.Node
	errFound := errors.New("found")
	_ = Nodes(root, func(n ast.Node) error {
		if pred(n) {
			found = n
			return errFound
		}
		return nil
	})
	return found
}

// Parents returns the chain of ancestors of target within the tree rooted at
// root, outermost first, ending with target itself. Returns nil if target is
// not in the tree.
func Parents(root, target ast.Node) []ast.Node {
	var stack []ast.Node
	var path []ast.Node
	errFound := errors.New("found")
	_ = NodesEnterAndExit(root,
		func(n ast.Node) error {
			stack = append(stack, n)
			if n == target {
				path = append(path, stack...)
				return errFound
			}
			return nil
		},
		func(ast.Node) error {
			stack = stack[:len(stack)-1]
			return nil
		},
	)
	return path
}
