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

// Package interval indexes the byte ranges of a parse tree so that all of the
// ranges containing an offset can be found with a single lookup.
package interval

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Intersect maps points to the values of every interval containing them.
//
// The map is stored as disjoint entries, one per maximal run of points that
// are covered by the same intervals. Each entry holds those intervals' values
// in insertion order, so inserting parents before children yields values
// ordered outermost first.
//
// A zero value is ready to use.
type Intersect[K Endpoint, V any] struct {
	// Entries keyed by their (inclusive) end.
	tree btree.Map[K, *Entry[K, []V]]
	// Entries to store once Insert is done walking the tree.
	pending []*Entry[K, []V]
}

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is a run of points covered by the same set of intervals.
type Entry[K Endpoint, V any] struct {
	Start, End K // Inclusive.
	Value      V
}

// Contains returns whether an entry contains a given point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Get returns the entry containing point. Its Value is nil if no interval
// contains point.
//
// The returned slice must not be modified.
func (m *Intersect[K, V]) Get(point K) Entry[K, []V] {
	it := m.tree.Iter()
	if !it.Seek(point) || point < it.Value().Start {
		return Entry[K, []V]{}
	}
	return *it.Value()
}

// Entries returns an iterator over the entries of this map, in order.
func (m *Intersect[K, V]) Entries() iter.Seq[Entry[K, []V]] {
	return func(yield func(Entry[K, []V]) bool) {
		it := m.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}

// Insert adds the interval [start, end] with the given value.
//
// Returns true if the interval was disjoint from all others in the map.
func (m *Intersect[K, V]) Insert(start, end K, value V) (disjoint bool) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// with returns a fresh slice of values plus value. Entries split from
	// the same original share a backing array, so appending in place would
	// write into a neighbor's values.
	with := func(values []V) []V {
		return append(slices.Clip(values), value)
	}

	var prev *Entry[K, []V]
	for entry := range m.overlapping(start, end) {
		if prev == nil && start < entry.Start {
			// Gap before the first overlapping entry.
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: start,
				End:   entry.Start - 1,
				Value: []V{value},
			})
		}

		values := entry.Value

		if entry.Contains(end) && end < entry.End {
			// Split off [entry.Start, end]; the original keeps the rest.
			head := &Entry[K, []V]{Start: entry.Start, End: end, Value: values}
			entry.Start = end + 1
			m.pending = append(m.pending, head)
			entry = head
		}

		if entry.Contains(start) && entry.Start < start {
			// Split off [entry.Start, start-1], which value does not cover.
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: entry.Start,
				End:   start - 1,
				Value: values,
			})
			entry.Start = start
		}

		entry.Value = with(values)

		if prev != nil && prev.End+1 < entry.Start {
			// Gap between two overlapping entries.
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: prev.End + 1,
				End:   entry.Start - 1,
				Value: []V{value},
			})
		}
		prev = entry
	}

	switch {
	case prev == nil:
		m.pending = append(m.pending, &Entry[K, []V]{Start: start, End: end, Value: []V{value}})
	case prev.End < end:
		// Gap after the last overlapping entry.
		m.pending = append(m.pending, &Entry[K, []V]{
			Start: prev.End + 1,
			End:   end,
			Value: []V{value},
		})
	}

	for _, entry := range m.pending {
		m.tree.Set(entry.End, entry)
	}
	clear(m.pending)
	m.pending = m.pending[:0]

	return prev == nil
}

// overlapping returns an iterator over the entries that intersect
// [start, end], in order.
func (m *Intersect[K, V]) overlapping(start, end K) iter.Seq[*Entry[K, []V]] {
	return func(yield func(*Entry[K, []V]) bool) {
		// Seek finds the first entry whose end is at least start. Walk
		// forwards until an entry begins past end.
		it := m.tree.Iter()
		for more := it.Seek(start); more; more = it.Next() {
			if end < it.Value().Start || !yield(it.Value()) {
				return
			}
		}
	}
}
