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
	"fmt"
	"strings"
)

// OverflowPolicy determines what happens when a coefficient computation
// exceeds the range of an int64.
type OverflowPolicy uint8

const (
	// Fail reports an ErrOverflow to the caller.  This is the default policy.
	Fail OverflowPolicy = iota
	// Wrap silently wraps around using two's complement arithmetic.
	Wrap
	// Saturate clamps every intermediate product and partial sum to the
	// nearest int64 bound.
	Saturate
)

var policyNames = []string{"fail", "wrap", "saturate"}

func (p OverflowPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	//
	return fmt.Sprintf("OverflowPolicy(%d)", uint8(p))
}

// ParsePolicy converts a textual policy name (e.g. as given on the command
// line) into its OverflowPolicy.
func ParsePolicy(name string) (OverflowPolicy, error) {
	for i, n := range policyNames {
		if strings.EqualFold(n, name) {
			return OverflowPolicy(i), nil
		}
	}
	//
	return Fail, fmt.Errorf("unknown overflow policy \"%s\" (expected one of %s)", name,
		strings.Join(policyNames, ", "))
}
