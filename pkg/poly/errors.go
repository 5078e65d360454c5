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
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument signals that a polynomial operand was malformed.  For
// example, its declared degree was negative, or its coefficient sequence was
// too short for the declared degree.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOverflow signals that a coefficient could not be represented as an int64
// under the Fail overflow policy.
var ErrOverflow = errors.New("coefficient overflow")

// Check that a given coefficient sequence can hold a polynomial of the given
// (declared) degree.
func checkOperand(name string, length int, degree int) error {
	if degree < 0 {
		return fmt.Errorf("%w: degree of %s is negative (%d)", ErrInvalidArgument, name, degree)
	} else if degree >= length {
		return fmt.Errorf("%w: %s has %d coefficient(s), too few for degree %d",
			ErrInvalidArgument, name, length, degree)
	}
	//
	return nil
}

// Check that the product of operands with the given degrees has a
// representable length.
func checkProduct(da int, db int) error {
	if da > math.MaxInt-1-db {
		return fmt.Errorf("%w: product of degrees %d and %d is too large", ErrInvalidArgument, da, db)
	}
	//
	return nil
}

func overflowError(op string, index int) error {
	return fmt.Errorf("%w: %s at coefficient %d", ErrOverflow, op, index)
}
