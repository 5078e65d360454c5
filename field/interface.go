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
package field

import "fmt"

// An Element of a prime-order field, as used for the coefficients of a
// polynomial.  Operations never modify their receiver.
type Element[Operand any] interface {
	Add(y Operand) Operand // Add x+y
	Sub(y Operand) Operand // Sub x-y
	Mul(y Operand) Operand // Mul x*y
	Cmp(y Operand) int     // Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	IsZero() bool          // IsZero holds iff x = 0.
	fmt.Stringer
}
