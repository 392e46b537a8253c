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

// Package ast defines types for modeling the syntax tree of a parsed Ruby
// program.
//
// All nodes of the tree implement the [Node] interface. There is one concrete
// type per kind of node, such as [*CallNode] or [*IntegerNode], and the set
// of kinds is closed: it is generated from the schema in nodes.yaml, which
// also pins the order in which a node's fields appear in a serialized tree.
//
// Nodes are immutable. Their fields are unexported and read through accessor
// methods named after the field. Optional child nodes that are absent are
// returned as nil; optional locations that are absent are returned as the
// zero [source.Span]. Where a field can only ever hold one kind of node, its
// accessor returns that concrete type.
//
// Names such as identifiers and method names are stored as [ConstantID]s,
// which index the constant pool of the parse result that produced the tree.
//
// Creation of AST nodes should use the factory functions in this package
// instead of struct literals. The factories take their arguments in the
// order the fields are serialized.
//
// This package defines the [Node] interface, but user code should not attempt
// to implement it. Consumers of an AST will not work correctly if they
// encounter concrete implementations other than the ones defined in this
// package.
package ast

//go:generate go run ../internal/astgen -schema nodes.yaml -ast nodes_gen.go -decode ../decode/nodes_gen.go
