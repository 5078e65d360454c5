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

import "math"

// AddInt64 returns x+y, along with an indication of whether or not the
// addition overflowed.  On overflow the returned sum is the wrapped (two's
// complement) result.
func AddInt64(x, y int64) (int64, bool) {
	sum := x + y
	// Overflow iff both operands have the same sign, and the sum does not.
	return sum, (x >= 0) == (y >= 0) && (sum >= 0) != (x >= 0)
}

// MulInt64 returns x*y, along with an indication of whether or not the
// multiplication overflowed.  On overflow the returned product is the wrapped
// (two's complement) result.
func MulInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, false
	}
	//
	prod := x * y
	// MinInt64 / -1 does not trap in Go, hence these are checked explicitly.
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return prod, true
	}
	//
	return prod, prod/y != x
}

// SaturateInt64 returns the int64 bound which an overflowing operation should
// be clamped to, given the sign the true (unbounded) result would have had.
func SaturateInt64(negative bool) int64 {
	if negative {
		return math.MinInt64
	}
	//
	return math.MaxInt64
}
