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

package benchmarks

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFootprintAdd(t *testing.T) {
	t.Parallel()

	f := NewFootprint()
	assert.True(t, f.add(100, 300))
	checkRanges(t, f, 100, 400)

	// Wholly contained.
	assert.False(t, f.add(100, 300))
	assert.False(t, f.add(150, 200))

	// Extends start.
	assert.True(t, f.add(50, 300))
	checkRanges(t, f, 50, 400)

	// Extends end.
	assert.True(t, f.add(300, 175))
	checkRanges(t, f, 50, 475)

	// Disjoint, above and below.
	assert.True(t, f.add(1500, 100))
	assert.True(t, f.add(10, 10))
	assert.True(t, f.add(25000, 50000))
	checkRanges(t, f, 10, 20, 50, 475, 1500, 1600, 25000, 75000)

	// Disjoint, between.
	assert.True(t, f.add(1700, 300))
	assert.True(t, f.add(2100, 300))
	checkRanges(t, f, 10, 20, 50, 475, 1500, 1600, 1700, 2000, 2100, 2400, 25000, 75000)

	// Touching one neighbor.
	assert.True(t, f.add(2400, 100))
	checkRanges(t, f, 10, 20, 50, 475, 1500, 1600, 1700, 2000, 2100, 2500, 25000, 75000)

	// Touching both neighbors.
	assert.True(t, f.add(1600, 100))
	checkRanges(t, f, 10, 20, 50, 475, 1500, 2000, 2100, 2500, 25000, 75000)

	assert.True(t, f.add(24000, 1000))
	checkRanges(t, f, 10, 20, 50, 475, 1500, 2000, 2100, 2500, 24000, 75000)

	// Swallows several ranges.
	assert.True(t, f.add(10, 3000))
	checkRanges(t, f, 10, 3010, 24000, 75000)

	f.estimated = 99
	assert.Equal(t, uint64(54099), f.Bytes())
}

func TestFootprintMeasure(t *testing.T) {
	t.Parallel()

	f := NewFootprint()
	buf := make([]byte, 1000000)
	f.Measure(buf)
	require.Equal(t, uint64(1000000), f.Bytes())

	// Subslices of memory already measured add nothing.
	f.Measure(buf[0:10])
	f.Measure(buf[1000:10000])
	require.Equal(t, uint64(1000000), f.Bytes())

	words := make([]uint64, 1000)
	f.Measure(words)
	require.Equal(t, uint64(1008000), f.Bytes())

	// Only the slice of pointers is new; what they point to was already
	// measured.
	ptrs := make([]*uint64, 1000)
	for i := range ptrs {
		ptrs[i] = &words[i]
	}
	f.Measure(ptrs)
	require.Equal(t, uint64(1008000+1000*bits.UintSize/8), f.Bytes())
}

func TestBuckets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, buckets(0))
	assert.Equal(t, 1, buckets(8))
	assert.Equal(t, 2, buckets(9))
	assert.Equal(t, 2, buckets(16))
	assert.Equal(t, 4, buckets(17))
	assert.Equal(t, 4, buckets(32))
	assert.Equal(t, 8, buckets(33))

	for _, n := range []int{7364, 1234567, 918373645623} {
		b := buckets(n)
		assert.Equal(t, 1, bits.OnesCount(uint(b)))
		assert.Less(t, b*4, n)
		assert.GreaterOrEqual(t, b*8, n)
	}
}

// checkRanges checks the recorded ranges against start, end pairs.
func checkRanges(t *testing.T, f *Footprint, bounds ...uintptr) {
	t.Helper()
	require.Zero(t, len(bounds)%2)

	type span struct{ start, end uintptr }
	var want, got []span
	for i := 0; i < len(bounds); i += 2 {
		want = append(want, span{bounds[i], bounds[i+1]})
	}
	for it := f.ranges.Iterator(); it.Valid(); it.Next() {
		got = append(got, span{it.Key() - uintptr(it.Value()), it.Key()})
	}
	assert.Equal(t, want, got)
}
