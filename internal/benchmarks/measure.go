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

// Package benchmarks measures how fast parse results decode and how much
// memory a decoded tree retains.
package benchmarks

import (
	"math/bits"
	"reflect"

	"github.com/igrmk/treemap/v2"
)

// Footprint accumulates the heap memory reachable from a set of values,
// counting each byte of memory once no matter how many references to it
// are found.
type Footprint struct {
	// Disjoint ranges of memory seen so far, keyed by end address, with
	// the length as the value.
	ranges *treemap.TreeMap[uintptr, uint64]
	// Memory that can't be addressed, such as map buckets.
	estimated uint64
}

// NewFootprint returns an empty footprint.
func NewFootprint() *Footprint {
	return &Footprint{ranges: treemap.New[uintptr, uint64]()}
}

// Measure adds everything reachable from v.
func (f *Footprint) Measure(v any) {
	f.walk(reflect.ValueOf(v))
}

// Bytes returns the total memory measured so far.
func (f *Footprint) Bytes() uint64 {
	total := f.estimated
	for it := f.ranges.Iterator(); it.Valid(); it.Next() {
		total += it.Value()
	}
	return total
}

// add records the range [start, start+size). Returns false if the range was
// already wholly recorded, in which case whatever it holds has already been
// walked.
func (f *Footprint) add(start uintptr, size uint64) bool {
	if start == 0 {
		return false
	}
	end := start + uintptr(size)

	it := f.ranges.LowerBound(start)
	if !it.Valid() {
		f.ranges.Set(end, size)
		return true
	}
	hiEnd := it.Key()
	hiStart := hiEnd - uintptr(it.Value())
	switch {
	case hiStart > end:
		f.ranges.Set(end, size)
		return true
	case hiStart <= start && hiEnd >= end:
		return false
	}

	// Walk backwards to the first range that overlaps the new one.
	first := f.ranges.Iterator().Key()
	for hiStart > start && it.Key() != first {
		it.Prev()
		if it.Key() < start {
			break
		}
		hiStart = it.Key() - uintptr(it.Value())
	}
	start = min(start, hiStart)

	// Then forwards, deleting every range the new one swallows. The
	// iterator is invalidated by Del, so each step searches again.
	for hiEnd < end {
		f.ranges.Del(hiEnd)
		it = f.ranges.LowerBound(hiEnd)
		if !it.Valid() || it.Key()-uintptr(it.Value()) > end {
			break
		}
		hiEnd = it.Key()
	}
	end = max(end, hiEnd)

	f.ranges.Set(end, uint64(end-start))
	return true
}

// walk adds the memory that v refers to. The memory holding v itself is
// assumed to be counted by whatever contains it.
func (f *Footprint) walk(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if f.add(v.Pointer(), uint64(v.Type().Elem().Size())) {
			f.walk(v.Elem())
		}

	case reflect.Slice:
		if !f.add(v.Pointer(), uint64(v.Cap())*uint64(v.Type().Elem().Size())) {
			return
		}
		for i := range v.Len() {
			f.walk(v.Index(i))
		}

	case reflect.Map:
		const headerSize = 48
		if !f.add(v.Pointer(), headerSize) {
			return
		}
		slot := uint64(v.Type().Key().Size() + v.Type().Elem().Size() + 1)
		f.estimated += uint64(buckets(v.Len())) * 8 * slot
		for it := v.MapRange(); it.Next(); {
			f.walk(it.Key())
			f.walk(it.Value())
		}

	case reflect.Interface:
		elem := v.Elem()
		if !elem.IsValid() {
			return
		}
		switch elem.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
		default:
			// Non-pointer values in an interface are boxed.
			f.estimated += uint64(elem.Type().Size())
		}
		f.walk(elem)

	case reflect.String:
		f.add(v.Pointer(), uint64(v.Len()))

	case reflect.Struct:
		for i := range v.NumField() {
			f.walk(v.Field(i))
		}
	}
}

// buckets estimates how many eight-entry buckets a map of the given size
// holds. The count is always a power of two.
func buckets(entries int) int {
	n := (entries + 7) / 8
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}
