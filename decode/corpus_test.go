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

package decode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/prism-go/decode"
	"github.com/bufbuild/prism-go/internal/corpora"
	"github.com/bufbuild/prism-go/internal/prismtest"
)

// TestCorpus decodes every buffer described under testdata and compares the
// resulting tree, or the decode error, against golden files.
//
// Set PRISM_REFRESH to a glob of test names to rewrite their golden files.
func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "PRISM_REFRESH",
		Extension: "yaml",
		Outputs: []corpora.Output{
			{Extension: "tree"},
			{Extension: "err"},
		},
		Test: func(t *testing.T, path, text string) []string {
			c, err := prismtest.Load(text)
			require.NoError(t, err)
			buf, err := c.Build()
			require.NoError(t, err)

			r, err := decode.Decode(buf, path, c.Source)
			if err != nil {
				return []string{"", err.Error() + "\n"}
			}
			return []string{prismtest.Dump(r), ""}
		},
	}
	corpus.Run(t)
}
