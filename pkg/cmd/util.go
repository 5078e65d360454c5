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
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected int, or exit if an error arises.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a comma separated list of integer coefficients, such as "2,1,1".
// Whitespace around each coefficient is ignored.
func parseCoefficients(text string) ([]int64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty coefficient list")
	}
	//
	parts := strings.Split(text, ",")
	coeffs := make([]int64, len(parts))
	//
	for i, part := range parts {
		c, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient \"%s\" at position %d: %w", part, i, err)
		}
		//
		coeffs[i] = c
	}
	//
	return coeffs, nil
}

// Determine the degree for an operand, which is given explicitly by a flag or,
// otherwise, inferred from the number of coefficients.  An explicit degree is
// passed through unchecked.
func getDegree(cmd *cobra.Command, flag string, coeffs []int64) int {
	if cmd.Flags().Changed(flag) {
		return getInt(cmd, flag)
	}
	//
	return len(coeffs) - 1
}
