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

package wire_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/prism-go/internal/wire"
)

func scan(t *testing.T, text string) []byte {
	t.Helper()
	b, err := protoscope.NewScanner(text).Exec()
	require.NoError(t, err)
	return b
}

func TestScalars(t *testing.T) {
	t.Parallel()

	c := wire.NewCursor(scan(t, "`07` 300 67305985i32 -2z 1.5 {\"UTF-8\"}"))

	b, err := c.Peek()
	require.NoError(t, err)
	assert.Equal(t, byte(7), b)
	b, err = c.U8()
	require.NoError(t, err)
	assert.Equal(t, byte(7), b)

	v, err := c.Varint()
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
	assert.Equal(t, 3, c.Offset())

	u, err := c.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), u)

	s, err := c.Varsint()
	require.NoError(t, err)
	assert.Equal(t, int64(-2), s)

	d, err := c.Double()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, d, 0)

	str, err := c.LengthPrefixed()
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", string(str))
	assert.Zero(t, c.Remaining())

	_, err = c.U8()
	assert.ErrorIs(t, err, wire.ErrTruncated)
}

func TestTruncation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  []byte
		read func(*wire.Cursor) error
		want error
	}{
		{
			name: "u32",
			buf:  []byte{1, 2, 3},
			read: func(c *wire.Cursor) error { _, err := c.U32(); return err },
			want: wire.ErrTruncated,
		},
		{
			name: "double",
			buf:  []byte{0, 0, 0, 0, 0, 0, 0},
			read: func(c *wire.Cursor) error { _, err := c.Double(); return err },
			want: wire.ErrTruncated,
		},
		{
			name: "varint-continuation",
			buf:  []byte{0x80, 0x80},
			read: func(c *wire.Cursor) error { _, err := c.Varint(); return err },
			want: wire.ErrMalformedVarint,
		},
		{
			name: "varint-overflow",
			buf:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
			read: func(c *wire.Cursor) error { _, err := c.Varint(); return err },
			want: wire.ErrMalformedVarint,
		},
		{
			name: "uvarint32-range",
			buf:  []byte{0x80, 0x80, 0x80, 0x80, 0x10},
			read: func(c *wire.Cursor) error { _, err := c.Uvarint32(); return err },
			want: wire.ErrMalformed,
		},
		{
			name: "bytes",
			buf:  []byte{5, 'a', 'b'},
			read: func(c *wire.Cursor) error { _, err := c.LengthPrefixed(); return err },
			want: wire.ErrTruncated,
		},
		{
			name: "bool",
			buf:  []byte{2},
			read: func(c *wire.Cursor) error { _, err := c.Bool(); return err },
			want: wire.ErrMalformed,
		},
		{
			name: "optional-location",
			buf:  []byte{1, 4},
			read: func(c *wire.Cursor) error { _, _, _, err := c.OptionalLocation(); return err },
			want: wire.ErrTruncated,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			c := wire.NewCursor(test.buf)
			require.ErrorIs(t, test.read(c), test.want)
			// Failed reads never consume input.
			assert.Zero(t, c.Offset())
		})
	}
}

func TestLocation(t *testing.T) {
	t.Parallel()

	c := wire.NewCursor(scan(t, "4 3  0  1 10 2"))
	start, end, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, [2]int{4, 7}, [2]int{start, end})

	_, _, ok, err := c.OptionalLocation()
	require.NoError(t, err)
	assert.False(t, ok)

	start, end, ok, err = c.OptionalLocation()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [2]int{10, 12}, [2]int{start, end})
}

func TestBigInt(t *testing.T) {
	t.Parallel()

	huge, _ := new(big.Int).SetString("18446744073709552000", 10)
	tests := []struct {
		text string
		want *big.Int
	}{
		{text: "0 1 10", want: big.NewInt(10)},
		{text: "1 1 10", want: big.NewInt(-10)},
		{text: "0 1 0", want: big.NewInt(0)},
		{text: "0 2 0 1", want: big.NewInt(4294967296)},
		{text: "1 2 4294967295 2147483647", want: big.NewInt(math.MinInt64 + 1)},
		{text: "0 3 384 0 1", want: huge},
	}

	for _, test := range tests {
		c := wire.NewCursor(scan(t, test.text))
		got, err := c.BigInt()
		require.NoError(t, err, test.text)
		assert.Zero(t, got.Cmp(test.want), "%s: got %v, want %v", test.text, got, test.want)
		assert.Zero(t, c.Remaining())
	}

	for _, bad := range []string{"2 1 0", "0 0", "0 2 1", "0 1 4294967296"} {
		c := wire.NewCursor(scan(t, bad))
		_, err := c.BigInt()
		assert.Error(t, err, bad)
		assert.Zero(t, c.Offset(), bad)
	}
}
