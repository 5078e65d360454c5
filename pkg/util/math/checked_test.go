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
package math

import (
	"math"
	"math/big"
	"testing"
)

func Test_AddInt64_01(t *testing.T) {
	checkAdd(t, 1, 2)
	checkAdd(t, -1, 2)
	checkAdd(t, math.MaxInt64, 0)
	checkAdd(t, math.MinInt64, 0)
}

func Test_AddInt64_02(t *testing.T) {
	checkAdd(t, math.MaxInt64, 1)
	checkAdd(t, math.MinInt64, -1)
	checkAdd(t, math.MaxInt64, math.MaxInt64)
	checkAdd(t, math.MinInt64, math.MinInt64)
	checkAdd(t, math.MaxInt64, math.MinInt64)
}

func Test_MulInt64_01(t *testing.T) {
	checkMul(t, 0, math.MinInt64)
	checkMul(t, 3, -7)
	checkMul(t, -1, math.MaxInt64)
	checkMul(t, 1<<31, 1<<31)
}

func Test_MulInt64_02(t *testing.T) {
	checkMul(t, -1, math.MinInt64)
	checkMul(t, math.MinInt64, -1)
	checkMul(t, 1<<32, 1<<31)
	checkMul(t, math.MaxInt64, 2)
	checkMul(t, math.MinInt64, 2)
}

func Test_MulInt64_03(t *testing.T) {
	for x := int64(-50); x <= 50; x++ {
		for y := int64(-50); y <= 50; y++ {
			checkMul(t, x*1_000_000_007, y*1_000_000_009)
		}
	}
}

func Test_SaturateInt64_01(t *testing.T) {
	if SaturateInt64(true) != math.MinInt64 {
		t.Errorf("expected MinInt64")
	}
	//
	if SaturateInt64(false) != math.MaxInt64 {
		t.Errorf("expected MaxInt64")
	}
}

// Check addition against an arbitrary precision computation.
func checkAdd(t *testing.T, x, y int64) {
	var expected big.Int
	//
	expected.Add(big.NewInt(x), big.NewInt(y))
	sum, overflow := AddInt64(x, y)
	//
	checkResult(t, "+", x, y, &expected, sum, overflow)
}

// Check multiplication against an arbitrary precision computation.
func checkMul(t *testing.T, x, y int64) {
	var expected big.Int
	//
	expected.Mul(big.NewInt(x), big.NewInt(y))
	prod, overflow := MulInt64(x, y)
	//
	checkResult(t, "*", x, y, &expected, prod, overflow)
}

func checkResult(t *testing.T, op string, x, y int64, expected *big.Int, actual int64, overflow bool) {
	fits := expected.IsInt64()
	//
	if overflow == fits {
		t.Errorf("%d %s %d: overflow reported as %t (expected %s)", x, op, y, overflow, expected.String())
	} else if fits && expected.Int64() != actual {
		t.Errorf("%d %s %d == %d (expected %s)", x, op, y, actual, expected.String())
	}
}
