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
	"os"
	"runtime/debug"

	"github.com/consensys/go-polymul/pkg/poly"
	"github.com/consensys/go-polymul/pkg/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands.
// This runs the fixed demonstration.
var rootCmd = &cobra.Command{
	Use:   "polymul",
	Short: "Multiply integer polynomials by direct convolution.",
	Long: `Multiply integer polynomials given as coefficient sequences (lowest power
first) by direct convolution.  Without a subcommand, a fixed demonstration is run.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			printVersion(cmd.OutOrStdout())
			return
		}
		//
		configureLogging(cmd)
		//
		printer := newPrinter(cmd)
		multiplier := newMultiplier(cmd, poly.WithObserver(printer))
		//
		if err := runDemo(cmd.OutOrStdout(), multiplier); err != nil {
			log.Error(err)
			os.Exit(1)
		} else if err := printer.Err(); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func printVersion(out io.Writer) {
	fmt.Fprint(out, "polymul ")
	//
	if Version != "" {
		// Built via "make"
		fmt.Fprintf(out, "%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Fprintf(out, "%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Fprintf(out, "(unknown version)")
	}
	//
	fmt.Fprintln(out)
}

// Raise the logging level when requested.
func configureLogging(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Construct a printer for a given command, honouring the "ansi-escapes" flag
// when given and otherwise detecting whether output is a terminal.
func newPrinter(cmd *cobra.Command) *report.Printer {
	printer := report.NewPrinter(cmd.OutOrStdout())
	//
	if cmd.Flags().Changed("ansi-escapes") {
		printer.AnsiEscapes(getFlag(cmd, "ansi-escapes"))
	}
	//
	return printer
}

// Construct a multiplier for a given command, using the overflow policy given
// by the "policy" flag.
func newMultiplier(cmd *cobra.Command, options ...poly.Option) *poly.Multiplier {
	policy, err := poly.ParsePolicy(getString(cmd, "policy"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	multiplier := poly.NewMultiplier(append([]poly.Option{poly.WithPolicy(policy)}, options...)...)
	log.Debugf("using overflow policy %s", multiplier.Policy())
	//
	return multiplier
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("ansi-escapes", false, "force (or disable) ANSI escapes in output")
	rootCmd.PersistentFlags().String("policy", poly.Fail.String(),
		"coefficient overflow policy (fail, wrap or saturate)")
}
