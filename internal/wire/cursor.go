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

// Package wire provides the primitive reads used to walk a serialized parse
// result.
//
// The format shares its varint, zig-zag and little-endian fixed-width
// encodings with the protobuf wire format, so the heavy lifting is done by
// [protowire].
package wire

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	// ErrTruncated is returned when a read needs more bytes than remain.
	ErrTruncated = errors.New("truncated buffer")
	// ErrMalformedVarint is returned for a varint that runs off the end of
	// the buffer or does not fit in 64 bits.
	ErrMalformedVarint = errors.New("malformed varint")
	// ErrMalformed is returned for a well-formed read whose value is out of
	// range for what it encodes.
	ErrMalformed = errors.New("malformed value")
)

// Cursor is a forward-only reader over a byte buffer.
//
// Every read checks bounds before consuming anything, so a failed read leaves
// the cursor where it was.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewCursorAt returns a cursor over buf positioned at off.
func NewCursorAt(buf []byte, off int) *Cursor {
	return &Cursor{buf: buf, off: min(max(off, 0), len(buf))}
}

// Offset returns the offset of the next byte to be read.
func (c *Cursor) Offset() int { return c.off }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, error) {
	if c.off >= len(c.buf) {
		return 0, ErrTruncated
	}
	return c.buf[c.off], nil
}

// U8 reads a single byte.
func (c *Cursor) U8() (byte, error) {
	b, err := c.Peek()
	if err != nil {
		return 0, err
	}
	c.off++
	return b, nil
}

// Bool reads a byte that must be 0 or 1.
func (c *Cursor) Bool() (bool, error) {
	b, err := c.Peek()
	if err != nil {
		return false, err
	}
	if b > 1 {
		return false, fmt.Errorf("%w: expected 0 or 1, got %d", ErrMalformed, b)
	}
	c.off++
	return b == 1, nil
}

// U32 reads a fixed-width little-endian 32-bit integer.
func (c *Cursor) U32() (uint32, error) {
	v, n := protowire.ConsumeFixed32(c.buf[c.off:])
	if n < 0 {
		return 0, ErrTruncated
	}
	c.off += n
	return v, nil
}

// Double reads a little-endian IEEE-754 binary64.
func (c *Cursor) Double() (float64, error) {
	v, n := protowire.ConsumeFixed64(c.buf[c.off:])
	if n < 0 {
		return 0, ErrTruncated
	}
	c.off += n
	return math.Float64frombits(v), nil
}

// Varint reads an unsigned LEB128 varint.
func (c *Cursor) Varint() (uint64, error) {
	if c.off >= len(c.buf) {
		return 0, ErrTruncated
	}
	v, n := protowire.ConsumeVarint(c.buf[c.off:])
	if n < 0 {
		return 0, ErrMalformedVarint
	}
	c.off += n
	return v, nil
}

// Uvarint32 reads a varint that must fit in 32 bits.
func (c *Cursor) Uvarint32() (uint32, error) {
	start := c.off
	v, err := c.Varint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		c.off = start
		return 0, fmt.Errorf("%w: %d does not fit in 32 bits", ErrMalformed, v)
	}
	return uint32(v), nil
}

// Int reads a varint that is used as a length or offset, which must fit in a
// non-negative int32.
func (c *Cursor) Int() (int, error) {
	start := c.off
	v, err := c.Varint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		c.off = start
		return 0, fmt.Errorf("%w: %d is out of range", ErrMalformed, v)
	}
	return int(v), nil
}

// Varsint reads a zig-zag encoded signed varint.
func (c *Cursor) Varsint() (int64, error) {
	v, err := c.Varint()
	if err != nil {
		return 0, err
	}
	return protowire.DecodeZigZag(v), nil
}

// Bytes reads exactly n bytes. The returned slice aliases the buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, ErrTruncated
	}
	b := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return b, nil
}

// LengthPrefixed reads a varint length followed by that many bytes.
func (c *Cursor) LengthPrefixed() ([]byte, error) {
	if c.off >= len(c.buf) {
		return nil, ErrTruncated
	}
	b, n := protowire.ConsumeBytes(c.buf[c.off:])
	if n < 0 {
		if errors.Is(protowire.ParseError(n), io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, ErrMalformedVarint
	}
	c.off += n
	return b[:len(b):len(b)], nil
}

// Location reads a start offset and a length, returning the half-open range
// they describe.
func (c *Cursor) Location() (start, end int, err error) {
	begin := c.off
	if start, err = c.Int(); err != nil {
		return 0, 0, err
	}
	n, err := c.Int()
	if err != nil {
		c.off = begin
		return 0, 0, err
	}
	return start, start + n, nil
}

// OptionalLocation reads a presence marker and, if it is set, a location.
func (c *Cursor) OptionalLocation() (start, end int, ok bool, err error) {
	begin := c.off
	if ok, err = c.Bool(); err != nil || !ok {
		return 0, 0, false, err
	}
	if start, end, err = c.Location(); err != nil {
		c.off = begin
		return 0, 0, false, err
	}
	return start, end, true, nil
}

// BigInt reads an arbitrary-precision integer: a sign byte, a word count, and
// that many 32-bit words as varints, least significant first.
func (c *Cursor) BigInt() (*big.Int, error) {
	begin := c.off
	v, err := c.bigInt()
	if err != nil {
		c.off = begin
	}
	return v, err
}

func (c *Cursor) bigInt() (*big.Int, error) {
	negative, err := c.Bool()
	if err != nil {
		return nil, err
	}
	count, err := c.Int()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: integer with no words", ErrMalformed)
	}
	// Every word takes at least one byte.
	if count > c.Remaining() {
		return nil, ErrTruncated
	}

	words := make([]uint32, count)
	for i := range words {
		if words[i], err = c.Uvarint32(); err != nil {
			return nil, err
		}
	}

	z := new(big.Int)
	if count <= 2 {
		z.SetUint64(uint64(words[0]))
		if count == 2 {
			z.SetUint64(uint64(words[1])<<32 | uint64(words[0]))
		}
	} else {
		word := new(big.Int)
		for i := count - 1; i >= 0; i-- {
			z.Lsh(z, 32)
			z.Or(z, word.SetUint64(uint64(words[i])))
		}
	}
	if negative {
		z.Neg(z)
	}
	return z, nil
}
