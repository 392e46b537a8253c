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

// Package source resolves byte offsets in a parsed file into user-facing
// positions.
//
// A [File] holds the original source text alongside a line index that is
// computed the first time it is needed. Decoded nodes refer to the text
// through [Span]s, which are plain byte ranges; line and column are only
// computed on request, in whichever [Unit] the caller wants columns measured.
package source
