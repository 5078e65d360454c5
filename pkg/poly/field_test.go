// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

import (
	"testing"

	bls12_377 "github.com/consensys/go-polymul/field/bls12-377"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MultiplyField_01(t *testing.T) {
	checkMultiplyField(t, []int64{0, 0, 1}, 2, []int64{0, 0, 1}, 2)
}

func Test_MultiplyField_02(t *testing.T) {
	checkMultiplyField(t, []int64{2, 1, 1}, 2, []int64{1, 1, 0}, 2)
}

func Test_MultiplyField_03(t *testing.T) {
	checkMultiplyField(t, []int64{-7, 3, 0, 5}, 3, []int64{4, -1}, 1)
}

func Test_MultiplyField_04(t *testing.T) {
	// Modular arithmetic cannot overflow, though int64 arithmetic would.
	a := bls12_377.FromInt64s([]int64{1 << 62})
	c, err := MultiplyField(a, 0, a, 0, bls12_377.Zero())
	require.NoError(t, err)
	assert.Equal(t, "21267647932558653966460912964485513216", c[0].String())
}

func Test_MultiplyField_Invalid_01(t *testing.T) {
	a := bls12_377.FromInt64s([]int64{1, 2})
	//
	_, err := MultiplyField(a, -1, a, 1, bls12_377.Zero())
	require.ErrorIs(t, err, ErrInvalidArgument)
	//
	_, err = MultiplyField(a, 1, a, 2, bls12_377.Zero())
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Check the field product agrees with the integer product, when the latter does
// not overflow.
func checkMultiplyField(t *testing.T, a []int64, da int, b []int64, db int) {
	expected, err := Multiply(a, da, b, db)
	require.NoError(t, err)
	//
	actual, err := MultiplyField(bls12_377.FromInt64s(a), da, bls12_377.FromInt64s(b), db, bls12_377.Zero())
	require.NoError(t, err)
	require.Len(t, actual, len(expected))
	//
	for i, e := range expected {
		if actual[i].Cmp(bls12_377.FromInt64(e)) != 0 {
			t.Errorf("coefficient %d is %s (expected %d)", i, actual[i], e)
		}
	}
}
