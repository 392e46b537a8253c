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

// Package prism turns Ruby source into typed syntax trees, using an external
// parsing engine to do the parsing.
//
// The engine serializes each parse into a compact binary buffer; the
// sub-packages model what that buffer holds:
//  1. [decode] checks and decodes a buffer into a [decode.Result].
//  2. [ast] holds the node types of the tree a result carries.
//  3. [source] resolves byte offsets into lines and columns.
//  4. [walk] traverses trees.
//
// This package ties them together: a [Parser] loads the engine once, feeds it
// sources, and decodes what it returns. It can parse many files in parallel.
//
// # Resolvers
//
// A [Resolver] is how the parser locates the files named in a call to
// [Parser.ParseFiles]. It answers with source text and, optionally, a buffer
// the engine already produced for that text, in which case the engine is not
// invoked for that file.
//
// # Parser
//
// A minimal Parser, that loads files from the file system relative to the
// current working directory, can be had with the following simple snippet:
//
//	parser := prism.Parser{
//	    Load:     loadEngine,
//	    Resolver: &prism.SourceResolver{},
//	}
//
// This Parser will use default parallelism, equal to the number of CPU cores
// detected, and will treat syntax errors reported by the engine as data on
// the result. Set [Parser.Reporter] to turn them into errors instead.
package prism
