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
package bls12_377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform
// to the field.Element interface.
type Element struct {
	*fr.Element
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{new(fr.Element)}
}

// FromInt64 constructs the element congruent to v, such that negative values
// map to their additive inverse (e.g. -1 maps to p-1).
func FromInt64(v int64) Element {
	return Element{new(fr.Element).SetInt64(v)}
}

// FromInt64s converts a sequence of int64 coefficients into field elements.
func FromInt64s(vs []int64) []Element {
	elems := make([]Element, len(vs))
	//
	for i, v := range vs {
		elems[i] = FromInt64(v)
	}
	//
	return elems
}

// Add x + y
func (x Element) Add(y Element) Element {
	return Element{new(fr.Element).Add(x.Element, y.Element)}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return Element{new(fr.Element).Sub(x.Element, y.Element)}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{new(fr.Element).Mul(x.Element, y.Element)}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(y.Element)
}

// IsZero holds iff x = 0.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// String returns the canonical (decimal) representation of x.
func (x Element) String() string {
	return x.Element.String()
}
