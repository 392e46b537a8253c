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

package intern_test

import (
	"errors"
	"testing"

	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/prism-go/internal/intern"
)

func pool(t *testing.T, text string) []byte {
	t.Helper()
	b, err := protoscope.NewScanner(text).Exec()
	require.NoError(t, err)
	return b
}

func TestPool(t *testing.T) {
	t.Parallel()

	src := "foo.bar"
	// Two bytes of header, then three entries: two shared, one owned.
	buf := pool(t, "\"hd\" 0i32 3i32 4i32 3i32 `1a000080` 2i32 \"+@\"")

	p, err := intern.NewPool(buf, 2, 3, src)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())

	var got []string
	for id, v := range p.All() {
		got = append(got, v)
		assert.Equal(t, v, p.Value(id))
	}
	assert.Equal(t, []string{"foo", "bar", "+@"}, got)
	assert.False(t, p.Owned(1))
	assert.True(t, p.Owned(3))

	_, err = p.Lookup(0)
	require.ErrorIs(t, err, intern.ErrOutOfRange)
	_, err = p.Lookup(4)
	require.ErrorIs(t, err, intern.ErrOutOfRange)
	assert.Empty(t, p.Value(4))

	id, ok := p.Query("bar")
	assert.True(t, ok)
	assert.Equal(t, intern.ID(2), id)
	_, ok = p.Query("baz")
	assert.False(t, ok)
}

func TestPoolErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		buf        string
		offset     int
		size       int
		want       error
		wantOffset int
	}{
		{
			name: "table-too-short",
			buf:  "0i32",
			size: 1,
			want: intern.ErrInvalidPool,
		},
		{
			name: "shared-outside-source",
			buf:  "5i32 3i32",
			size: 1,
			want: intern.ErrInvalidLocation,
		},
		{
			name:       "owned-inside-table",
			buf:        "0i32 1i32 `00000080` 1i32",
			size:       2,
			want:       intern.ErrInvalidLocation,
			wantOffset: 8,
		},
		{
			name: "owned-past-end",
			buf:  "`08000080` 4i32 \"ab\"",
			size: 1,
			want: intern.ErrInvalidLocation,
		},
		{
			name: "trailing-bytes",
			buf:  "`08000080` 1i32 \"ab\"",
			size: 1,
			want: intern.ErrInvalidPool,
		},
		{
			name: "gap",
			buf:  "`09000080` 1i32 \"ab\"",
			size: 1,
			want: intern.ErrInvalidPool,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := intern.NewPool(pool(t, test.buf), test.offset, test.size, "foo")
			require.ErrorIs(t, err, test.want)

			var entryErr *intern.EntryError
			if errors.As(err, &entryErr) {
				assert.Equal(t, test.wantOffset, entryErr.Offset)
			}
		})
	}
}
