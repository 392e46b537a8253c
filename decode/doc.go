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

// Package decode turns the serialized result of parsing a Ruby program into a
// typed syntax tree.
//
// The parsing engine serializes its result into a single buffer: a header
// with the source's comments and diagnostics, the tree itself, and a pool of
// constants (identifiers and other names) that the tree refers to by index.
// [Decode] reads all of it in one pass and returns a [Result], which owns the
// tree.
//
// The format is versioned, and this package decodes exactly one version,
// [FormatVersion]. Any other version is rejected with
// [ErrUnsupportedFormatVersion] before anything else is read. A buffer that
// is malformed in any other way fails with an [*Error] that records where in
// the buffer decoding stopped and which node field was being read.
//
// Errors and warnings about the Ruby source itself are not decode failures;
// they are reported in [Result.Diagnostics], alongside a tree that the engine
// has recovered as best it can.
package decode
