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
	"github.com/consensys/go-polymul/field"
)

// MultiplyField computes the product of a (of degree da) and b (of degree db)
// where coefficients are elements of a prime field.  Since field arithmetic
// cannot overflow, the only failure is a malformed operand.  The zero element
// is supplied explicitly, since the zero value of an element type need not be a
// valid element.
func MultiplyField[F field.Element[F]](a []F, da int, b []F, db int, zero F) ([]F, error) {
	if err := checkOperand("a", len(a), da); err != nil {
		return nil, err
	} else if err := checkOperand("b", len(b), db); err != nil {
		return nil, err
	} else if err := checkProduct(da, db); err != nil {
		return nil, err
	}
	//
	c := make([]F, da+db+1)
	//
	for k := range c {
		c[k] = zero
	}
	//
	for i := 0; i <= da; i++ {
		for j := 0; j <= db; j++ {
			c[i+j] = c[i+j].Add(a[i].Mul(b[j]))
		}
	}
	//
	return c, nil
}
