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
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/consensys/go-polymul/pkg/poly"
	"github.com/consensys/go-polymul/pkg/util/termio"
	log "github.com/sirupsen/logrus"
)

// Style determines how coefficients are laid out.
type Style uint8

const (
	// Lines prints one "coef i = c" line per coefficient.
	Lines Style = iota
	// Table prints the coefficients as an aligned two column table.
	Table
)

// Printer is a poly.Observer which writes each product it observes to an
// output stream.  Exactly one entry is printed per coefficient.
type Printer struct {
	out      io.Writer
	style    Style
	escapes  bool
	variable string
	// Summary determines whether a line showing the product as a polynomial
	// follows the coefficients.
	summary bool
	// First write error encountered (if any)
	err error
}

// NewPrinter constructs a printer writing to a given stream.  ANSI escapes are
// enabled by default only when the stream is a terminal.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out, Lines, termio.IsTerminal(out), "x", false, nil}
}

// Style sets the layout used for coefficients.
func (p *Printer) Style(style Style) *Printer {
	p.style = style
	return p
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for colour).
func (p *Printer) AnsiEscapes(enable bool) *Printer {
	p.escapes = enable
	return p
}

// Summary enables or disables the trailing polynomial line, written in terms of
// the given variable.
func (p *Printer) Summary(enable bool, variable string) *Printer {
	p.summary = enable
	p.variable = variable
	//
	return p
}

// Err returns the first error encountered whilst writing (if any).
func (p *Printer) Err() error {
	return p.err
}

var _ poly.Observer = (*Printer)(nil)

// Observe prints a given coefficient sequence.
func (p *Printer) Observe(coeffs []int64) {
	strs := make([]string, len(coeffs))
	zero := make([]bool, len(coeffs))
	//
	for i, c := range coeffs {
		strs[i] = strconv.FormatInt(c, 10)
		zero[i] = c == 0
	}
	//
	p.print(strs, zero)
	//
	if p.summary {
		p.printf("= %s\n", poly.String(coeffs, p.variable))
	}
}

// Strings prints a sequence of already formatted coefficients (e.g. field
// elements), where zero indicates which of them are zero.
func (p *Printer) Strings(coeffs []string, zero []bool) {
	p.print(coeffs, zero)
}

func (p *Printer) print(coeffs []string, zero []bool) {
	switch p.style {
	case Lines:
		for i, c := range coeffs {
			p.printf("coef %s = %s\n", p.index(i), p.value(c, zero[i]))
		}
	case Table:
		table := termio.NewTablePrinter(2, uint(len(coeffs)+1))
		table.Set(0, 0, "power")
		table.Set(1, 0, "coefficient")
		table.SetEscape(0, 0, termio.BoldAnsiEscape())
		table.SetEscape(1, 0, termio.BoldAnsiEscape())
		table.AnsiEscapes(p.escapes)
		//
		for i, c := range coeffs {
			row := uint(i + 1)
			table.Set(0, row, strconv.Itoa(i))
			table.Set(1, row, c)
			//
			if !zero[i] {
				table.SetEscape(1, row, termio.NewAnsiEscape().FgColour(termio.TERM_GREEN))
			}
		}
		//
		table.SetMaxWidth(1, termio.Width(p.out, 80))
		//
		if err := table.Print(p.out); err != nil && p.err == nil {
			p.err = err
		}
	default:
		panic(fmt.Sprintf("unknown style %d", p.style))
	}
	//
	log.Debugf("printed %d coefficient(s)", len(coeffs))
}

func (p *Printer) index(i int) string {
	if p.escapes {
		return termio.BoldAnsiEscape().Wrap(strconv.Itoa(i))
	}
	//
	return strconv.Itoa(i)
}

func (p *Printer) value(c string, zero bool) string {
	if p.escapes && !zero {
		return termio.NewAnsiEscape().FgColour(termio.TERM_GREEN).Wrap(c)
	}
	//
	return c
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	//
	_, p.err = fmt.Fprintf(p.out, format, args...)
}
