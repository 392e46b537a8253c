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

package ast_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/prism-go/ast"
)

func TestInteger(t *testing.T) {
	t.Parallel()

	var zero ast.Integer
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, 0, zero.Sign())
	assert.True(t, zero.Equal(ast.IntegerOf(0)))
	v, ok := zero.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)

	neg := ast.IntegerOf(-42)
	assert.Equal(t, -1, neg.Sign())
	assert.Equal(t, -1, neg.Cmp(zero))
	assert.InDelta(t, -42.0, neg.Float64(), 0)

	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	n := ast.NewInteger(huge)
	assert.Equal(t, "18446744073709551616", n.String())
	_, ok = n.Int64()
	assert.False(t, ok)
	assert.InDelta(t, math.Pow(2, 64), n.Float64(), 0)

	// Big returns a copy.
	n.Big().SetInt64(1)
	assert.Equal(t, "18446744073709551616", n.String())
}
