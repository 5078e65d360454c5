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

	bls12_377 "github.com/consensys/go-polymul/field/bls12-377"
	"github.com/consensys/go-polymul/pkg/poly"
	"github.com/consensys/go-polymul/pkg/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mulCmd = &cobra.Command{
	Use:   "mul [flags] coefficients coefficients",
	Short: "Multiply two polynomials.",
	Long: `Multiply two polynomials, each given as a comma separated list of integer
coefficients in ascending order of power (e.g. "2,1,1" is x^2+x+2).  The degree
of each polynomial defaults to the number of coefficients minus one, but can be
given explicitly (in which case it must not exceed this).  The --pretty and
--field flags cannot be combined.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		cfg, err := newMulConfig(cmd, args)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		printer := newPrinter(cmd).Summary(getFlag(cmd, "pretty"), getString(cmd, "variable"))
		//
		if getFlag(cmd, "table") {
			printer.Style(report.Table)
		}
		//
		if getFlag(cmd, "field") {
			err = runFieldMul(cfg, printer)
		} else {
			_, err = newMultiplier(cmd, poly.WithObserver(printer)).Multiply(cfg.a, cfg.da, cfg.b, cfg.db)
		}
		//
		if err == nil {
			err = printer.Err()
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// mulConfig captures the operands of a multiplication.
type mulConfig struct {
	a, b   []int64
	da, db int
}

func newMulConfig(cmd *cobra.Command, args []string) (mulConfig, error) {
	var cfg mulConfig
	//
	a, err := parseCoefficients(args[0])
	if err != nil {
		return cfg, fmt.Errorf("first operand: %w", err)
	}
	//
	b, err := parseCoefficients(args[1])
	if err != nil {
		return cfg, fmt.Errorf("second operand: %w", err)
	}
	//
	cfg.a, cfg.da = a, getDegree(cmd, "degree-a", a)
	cfg.b, cfg.db = b, getDegree(cmd, "degree-b", b)
	//
	log.Debugf("multiplying %v (degree %d) by %v (degree %d)", cfg.a, cfg.da, cfg.b, cfg.db)
	//
	return cfg, nil
}

// Multiply the operands over the BLS12-377 scalar field, printing the resulting
// coefficients.
func runFieldMul(cfg mulConfig, printer *report.Printer) error {
	a := bls12_377.FromInt64s(cfg.a)
	b := bls12_377.FromInt64s(cfg.b)
	//
	c, err := poly.MultiplyField(a, cfg.da, b, cfg.db, bls12_377.Zero())
	if err != nil {
		return err
	}
	//
	strs := make([]string, len(c))
	zero := make([]bool, len(c))
	//
	for i, ith := range c {
		strs[i] = ith.String()
		zero[i] = ith.IsZero()
	}
	//
	printer.Strings(strs, zero)
	//
	return nil
}

func init() {
	rootCmd.AddCommand(mulCmd)
	mulCmd.Flags().Int("degree-a", 0, "declared degree of the first polynomial")
	mulCmd.Flags().Int("degree-b", 0, "declared degree of the second polynomial")
	mulCmd.Flags().Bool("field", false, "compute over the BLS12-377 scalar field")
	mulCmd.Flags().Bool("table", false, "print coefficients as a table")
	mulCmd.Flags().Bool("pretty", false, "print the product as a polynomial")
	mulCmd.Flags().String("variable", "x", "variable name used when printing polynomials")
	mulCmd.MarkFlagsMutuallyExclusive("field", "pretty")
}
