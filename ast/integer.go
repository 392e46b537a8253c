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

package ast

import "math/big"

// Integer is an arbitrary-precision integer literal value.
//
// The zero value is 0.
type Integer struct {
	v *big.Int
}

// NewInteger wraps v. The caller must not modify v afterwards.
func NewInteger(v *big.Int) Integer {
	return Integer{v: v}
}

// IntegerOf returns the Integer for v.
func IntegerOf(v int64) Integer {
	return Integer{v: big.NewInt(v)}
}

// Big returns a copy of this integer as a [big.Int].
func (i Integer) Big() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.v)
}

// Int64 returns this integer as an int64, and whether it fits.
func (i Integer) Int64() (int64, bool) {
	if i.v == nil {
		return 0, true
	}
	if !i.v.IsInt64() {
		return 0, false
	}
	return i.v.Int64(), true
}

// Sign returns -1, 0 or +1 depending on the sign of this integer.
func (i Integer) Sign() int {
	if i.v == nil {
		return 0
	}
	return i.v.Sign()
}

// Float64 returns the nearest float64 to this integer.
func (i Integer) Float64() float64 {
	if i.v == nil {
		return 0
	}
	f, _ := i.v.Float64()
	return f
}

// Cmp compares two integers, returning -1, 0 or +1.
func (i Integer) Cmp(j Integer) int {
	return i.Big().Cmp(j.Big())
}

// Equal returns whether two integers have the same value.
func (i Integer) Equal(j Integer) bool {
	return i.Cmp(j) == 0
}

// String implements [fmt.Stringer].
func (i Integer) String() string {
	if i.v == nil {
		return "0"
	}
	return i.v.String()
}
