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
	"bytes"
	"strconv"
)

// Degree returns the true degree of a given coefficient sequence, that is the
// index of its highest nonzero coefficient.  The zero polynomial has degree -1.
func Degree(coeffs []int64) int {
	for i := len(coeffs) - 1; i >= 0; i-- {
		if coeffs[i] != 0 {
			return i
		}
	}
	//
	return -1
}

// String constructs a suitable string representation for a given coefficient
// sequence, written in descending powers of the given variable.  For example,
// [2,3,2,1] with variable "x" gives "x^3 + 2*x^2 + 3*x + 2".
func String(coeffs []int64, variable string) string {
	var buf bytes.Buffer
	//
	for i := Degree(coeffs); i >= 0; i-- {
		coeff := coeffs[i]
		//
		if coeff == 0 {
			continue
		}
		// Sign
		switch {
		case buf.Len() == 0 && coeff < 0:
			buf.WriteString("-")
		case buf.Len() != 0 && coeff < 0:
			buf.WriteString(" - ")
		case buf.Len() != 0:
			buf.WriteString(" + ")
		}
		// Magnitude, formatted unsigned to cope with MinInt64.
		mag := uint64(coeff)
		if coeff < 0 {
			mag = -mag
		}
		//
		if i == 0 || mag != 1 {
			buf.WriteString(strconv.FormatUint(mag, 10))
		}
		//
		if i != 0 && mag != 1 {
			buf.WriteString("*")
		}
		//
		if i > 0 {
			buf.WriteString(variable)
		}
		//
		if i > 1 {
			buf.WriteString("^")
			buf.WriteString(strconv.Itoa(i))
		}
	}
	//
	if buf.Len() == 0 {
		return "0"
	}
	//
	return buf.String()
}
