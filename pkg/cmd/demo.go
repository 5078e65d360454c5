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
package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/consensys/go-polymul/pkg/poly"
	"github.com/consensys/go-polymul/pkg/util"
)

// An example is a fixed multiplication used for demonstration purposes.
type example struct {
	a, b     []int64
	da, db   int
	expected []int64
}

// Examples run by the demonstration.  Observe that the second operand of the
// second example is x+1, but its degree is deliberately over-stated as 2.
var examples = []example{
	{[]int64{0, 0, 1}, []int64{0, 0, 1}, 2, 2, []int64{0, 0, 0, 0, 1}},
	{[]int64{2, 1, 1}, []int64{1, 1, 0}, 2, 2, []int64{2, 3, 2, 1, 0}},
}

// Run each example in turn, writing a short description of each to the given
// stream.  The coefficients themselves are reported by the multiplier's
// observer (if any).  An error is returned if any example fails, or produces an
// unexpected result.
func runDemo(out io.Writer, multiplier *poly.Multiplier) error {
	for i, ex := range examples {
		fmt.Fprintf(out, "example %d:\n", i+1)
		fmt.Fprintf(out, " computing (%s)*(%s)\n", poly.String(ex.a, "x"), poly.String(ex.b, "x"))
		fmt.Fprintf(out, " expecting %s\n", poly.String(ex.expected, "x"))
		//
		stats := util.NewPerfStats()
		result, err := multiplier.Multiply(ex.a, ex.da, ex.b, ex.db)
		//
		if err != nil {
			return fmt.Errorf("example %d: %w", i+1, err)
		} else if !slices.Equal(result, ex.expected) {
			return fmt.Errorf("example %d: product %v differs from expected %v", i+1, result, ex.expected)
		}
		//
		stats.Log(fmt.Sprintf("Example %d", i+1))
	}
	//
	return nil
}
