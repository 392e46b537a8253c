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

// Package intern provides the constant pool of a serialized parse result.
//
// Names in a parse tree (identifiers, method names, operators) are stored
// once in a table at the end of the buffer and referred to by 1-based index.
package intern

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/bufbuild/prism-go/internal/wire"
)

var (
	// ErrOutOfRange is returned when looking up an ID past the end of a pool.
	ErrOutOfRange = errors.New("constant index out of range")
	// ErrInvalidLocation is returned when a constant refers to bytes outside
	// of the source or the buffer.
	ErrInvalidLocation = errors.New("invalid location")
	// ErrInvalidPool is returned when the pool's table or owned bytes are
	// inconsistent with the buffer that holds them.
	ErrInvalidPool = errors.New("invalid constant pool")
)

const (
	entrySize = 8
	ownedBit  = 1 << 31
)

// ID is a 1-based index into a [Pool].
//
// The zero value is reserved to mean "no constant".
type ID uint32

// String implements [fmt.Stringer].
func (id ID) String() string {
	if id == 0 {
		return "intern.ID(none)"
	}
	return fmt.Sprintf("intern.ID(%d)", uint32(id))
}

// Pool is a resolved constant pool.
//
// Pools are immutable after construction and may be shared across goroutines.
type Pool struct {
	table []string
	owned []bool

	once   sync.Once
	byName map[string]ID
}

// EntryError is returned by [NewPool] for an entry that could not be resolved.
type EntryError struct {
	ID     ID
	Offset int // The byte offset of the entry within the buffer.
	Err    error
}

// Error implements [error].
func (e *EntryError) Error() string {
	return fmt.Sprintf("constant %d: %v", uint32(e.ID), e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewPool resolves the size entries of the table at offset in buf.
//
// Each entry is a pair of fixed-width 32-bit integers, start and length. If
// the high bit of start is set, the constant's bytes are owned by the buffer
// and are copied out of it; otherwise they are a slice of src, which is not
// copied. Owned bytes must exactly fill the buffer after the table.
func NewPool(buf []byte, offset, size int, src string) (*Pool, error) {
	if offset < 0 || size < 0 || offset > len(buf) || size > (len(buf)-offset)/entrySize {
		return nil, fmt.Errorf("%w: %d entries at offset %d do not fit in a %d byte buffer",
			ErrInvalidPool, size, offset, len(buf))
	}

	type region struct{ start, end int }
	tableEnd := offset + size*entrySize
	owned := make([]region, 0, size)

	p := &Pool{
		table: make([]string, size),
		owned: make([]bool, size),
	}
	c := wire.NewCursorAt(buf, offset)
	for i := range size {
		at := c.Offset()
		// Cannot fail; the table size was checked above.
		rawStart, _ := c.U32()
		rawLen, _ := c.U32()
		start, n := int(rawStart&^ownedBit), int(rawLen)

		if rawStart&ownedBit == 0 {
			if start+n > len(src) {
				return nil, &EntryError{ID(i + 1), at, fmt.Errorf(
					"%w: [%d, %d) is outside of the %d byte source", ErrInvalidLocation, start, start+n, len(src))}
			}
			p.table[i] = src[start : start+n]
			continue
		}

		if start < tableEnd || start+n > len(buf) {
			return nil, &EntryError{ID(i + 1), at, fmt.Errorf(
				"%w: owned bytes [%d, %d) are outside of [%d, %d)", ErrInvalidLocation, start, start+n, tableEnd, len(buf))}
		}
		p.table[i] = string(buf[start : start+n])
		p.owned[i] = true
		owned = append(owned, region{start, start + n})
	}

	// Owned constants are laid out back to back after the table.
	slices.SortFunc(owned, func(a, b region) int { return cmp.Compare(a.start, b.start) })
	next := tableEnd
	for _, r := range owned {
		if r.start != next {
			return nil, fmt.Errorf("%w: owned constant bytes at offset %d, expected %d", ErrInvalidPool, r.start, next)
		}
		next = r.end
	}
	if next != len(buf) {
		return nil, fmt.Errorf("%w: %d unused bytes after the constant pool", ErrInvalidPool, len(buf)-next)
	}

	return p, nil
}

// Len returns the number of constants in this pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.table)
}

// Valid returns whether id refers to a constant in this pool. The zero ID is
// never valid.
func (p *Pool) Valid(id ID) bool {
	return id != 0 && int(id) <= p.Len()
}

// Lookup returns the constant with the given ID.
//
// This operation is O(1).
func (p *Pool) Lookup(id ID) (string, error) {
	if !p.Valid(id) {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, uint32(id), p.Len())
	}
	return p.table[id-1], nil
}

// Value is like [Pool.Lookup], but returns "" for an invalid ID.
func (p *Pool) Value(id ID) string {
	v, _ := p.Lookup(id)
	return v
}

// Owned returns whether the given constant's bytes were stored in the buffer
// rather than referring to the source.
func (p *Pool) Owned(id ID) bool {
	return p.Valid(id) && p.owned[id-1]
}

// Query returns the ID of the constant with the given value, if there is one.
// If a value occurs more than once, the lowest ID is returned.
func (p *Pool) Query(s string) (ID, bool) {
	if p == nil {
		return 0, false
	}
	p.once.Do(func() {
		p.byName = make(map[string]ID, len(p.table))
		for i := len(p.table) - 1; i >= 0; i-- {
			p.byName[p.table[i]] = ID(i + 1)
		}
	})
	id, ok := p.byName[s]
	return id, ok
}

// All returns an iterator over every constant in the pool, in ID order.
func (p *Pool) All() iter.Seq2[ID, string] {
	return func(yield func(ID, string) bool) {
		for i := range p.Len() {
			if !yield(ID(i+1), p.table[i]) {
				return
			}
		}
	}
}
