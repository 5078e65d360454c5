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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] coefficients point",
	Short: "Evaluate a polynomial at a given point.",
	Long: `Evaluate a polynomial, given as a comma separated list of integer coefficients
in ascending order of power, at a given integer point.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		coeffs, err := parseCoefficients(args[0])
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		x, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			log.Errorf("invalid point \"%s\": %s", args[1], err)
			os.Exit(1)
		}
		//
		v, err := newMultiplier(cmd).Eval(coeffs, getDegree(cmd, "degree", coeffs), x)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), v)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Int("degree", 0, "declared degree of the polynomial")
}
