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
	"testing"

	"github.com/consensys/go-polymul/field"
)

// Check Element conforms to the generic interface.
var _ field.Element[Element] = Element{}

func Test_Element_01(t *testing.T) {
	x, y := FromInt64(6), FromInt64(7)
	//
	if z := x.Mul(y); z.Cmp(FromInt64(42)) != 0 {
		t.Errorf("6 * 7 == %s", z)
	}
	//
	if z := x.Add(y); z.String() != "13" {
		t.Errorf("6 + 7 == %s", z)
	}
}

func Test_Element_02(t *testing.T) {
	minusOne := FromInt64(-1)
	//
	if z := minusOne.Add(FromInt64(1)); !z.IsZero() {
		t.Errorf("-1 + 1 == %s", z)
	}
	//
	if z := Zero().Sub(FromInt64(1)); z.Cmp(minusOne) != 0 {
		t.Errorf("0 - 1 == %s (expected %s)", z, minusOne)
	}
}

func Test_Element_03(t *testing.T) {
	x := FromInt64(5)
	_ = x.Add(FromInt64(1))
	// Operations must not modify their receiver.
	if x.String() != "5" {
		t.Errorf("receiver modified (now %s)", x)
	}
}

func Test_FromInt64s_01(t *testing.T) {
	elems := FromInt64s([]int64{2, -3, 0})
	//
	if len(elems) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elems))
	} else if elems[0].String() != "2" || !elems[2].IsZero() {
		t.Errorf("unexpected conversion %v", elems)
	} else if !elems[1].Add(FromInt64(3)).IsZero() {
		t.Errorf("-3 + 3 != 0")
	}
}
