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
	util_math "github.com/consensys/go-polymul/pkg/util/math"
)

// Observer is notified of each product computed by a Multiplier.  The slice
// passed to Observe belongs to the caller of Multiply and must not be retained
// or modified.
type Observer interface {
	Observe(coeffs []int64)
}

// ObserverFunc adapts an ordinary function into an Observer.
type ObserverFunc func(coeffs []int64)

// Observe calls f(coeffs).
func (f ObserverFunc) Observe(coeffs []int64) {
	f(coeffs)
}

// Option configures a Multiplier.
type Option func(*Multiplier)

// WithPolicy sets the overflow policy used for coefficient arithmetic.
func WithPolicy(policy OverflowPolicy) Option {
	return func(m *Multiplier) {
		m.policy = policy
	}
}

// WithObserver registers an observer which is handed each successfully
// computed product.
func WithObserver(observer Observer) Option {
	return func(m *Multiplier) {
		m.observer = observer
	}
}

// Multiplier computes products of dense polynomials over int64 coefficients
// using direct convolution.  A polynomial is given as a coefficient sequence,
// indexed by ascending power, together with a declared degree.  The declared
// degree is trusted as an upper bound: it may exceed the true degree (in which
// case the extra coefficients are expected to be zero), but the sequence must
// hold at least degree+1 coefficients.
type Multiplier struct {
	policy   OverflowPolicy
	observer Observer
}

// NewMultiplier constructs a multiplier with the given options applied.  By
// default, overflow fails and there is no observer.
func NewMultiplier(options ...Option) *Multiplier {
	m := &Multiplier{policy: Fail}
	//
	for _, opt := range options {
		opt(m)
	}
	//
	return m
}

// Policy returns the overflow policy of this multiplier.
func (m *Multiplier) Policy() OverflowPolicy {
	return m.policy
}

// Multiply computes the product of a (of degree da) and b (of degree db).  The
// result is a freshly allocated sequence c of length da+db+1 where c[k] is the
// sum of a[i]*b[j] for all i+j == k.
func (m *Multiplier) Multiply(a []int64, da int, b []int64, db int) ([]int64, error) {
	if err := checkOperand("a", len(a), da); err != nil {
		return nil, err
	} else if err := checkOperand("b", len(b), db); err != nil {
		return nil, err
	} else if err := checkProduct(da, db); err != nil {
		return nil, err
	}
	//
	c := make([]int64, da+db+1)
	//
	for i := 0; i <= da; i++ {
		for j := 0; j <= db; j++ {
			prod, ok := m.mul(a[i], b[j])
			if !ok {
				return nil, overflowError("product", i+j)
			}
			//
			if c[i+j], ok = m.add(c[i+j], prod); !ok {
				return nil, overflowError("sum", i+j)
			}
		}
	}
	//
	if m.observer != nil {
		m.observer.Observe(c)
	}
	//
	return c, nil
}

// Add computes the coefficient-wise sum of a (of degree da) and b (of degree
// db).  The result has length max(da,db)+1.  The observer is not notified.
func (m *Multiplier) Add(a []int64, da int, b []int64, db int) ([]int64, error) {
	if err := checkOperand("a", len(a), da); err != nil {
		return nil, err
	} else if err := checkOperand("b", len(b), db); err != nil {
		return nil, err
	}
	//
	var (
		c  = make([]int64, max(da, db)+1)
		ok bool
	)
	//
	for i := range c {
		var x, y int64
		//
		if i <= da {
			x = a[i]
		}
		//
		if i <= db {
			y = b[i]
		}
		//
		if c[i], ok = m.add(x, y); !ok {
			return nil, overflowError("sum", i)
		}
	}
	//
	return c, nil
}

// Eval evaluates polynomial a (of degree da) at the point x using Horner's
// rule.
func (m *Multiplier) Eval(a []int64, da int, x int64) (int64, error) {
	if err := checkOperand("a", len(a), da); err != nil {
		return 0, err
	}
	//
	var (
		acc int64
		ok  bool
	)
	//
	for i := da; i >= 0; i-- {
		if acc, ok = m.mul(acc, x); !ok {
			return 0, overflowError("product", i)
		} else if acc, ok = m.add(acc, a[i]); !ok {
			return 0, overflowError("sum", i)
		}
	}
	//
	return acc, nil
}

// Multiply x by y under the overflow policy of this multiplier, returning false
// if the policy is to fail and the multiplication overflowed.
func (m *Multiplier) mul(x, y int64) (int64, bool) {
	prod, overflow := util_math.MulInt64(x, y)
	//
	if !overflow || m.policy == Wrap {
		return prod, true
	} else if m.policy == Saturate {
		return util_math.SaturateInt64((x < 0) != (y < 0)), true
	}
	//
	return 0, false
}

// Add x to y under the overflow policy of this multiplier, returning false if
// the policy is to fail and the addition overflowed.
func (m *Multiplier) add(x, y int64) (int64, bool) {
	sum, overflow := util_math.AddInt64(x, y)
	//
	if !overflow || m.policy == Wrap {
		return sum, true
	} else if m.policy == Saturate {
		return util_math.SaturateInt64(x < 0), true
	}
	//
	return 0, false
}

var defaultMultiplier = NewMultiplier()

// Multiply computes the product of a (of degree da) and b (of degree db),
// failing with ErrOverflow if any coefficient exceeds the range of an int64.
func Multiply(a []int64, da int, b []int64, db int) ([]int64, error) {
	return defaultMultiplier.Multiply(a, da, b, db)
}

// Add computes the coefficient-wise sum of a (of degree da) and b (of degree
// db), failing with ErrOverflow if any coefficient exceeds the range of an
// int64.
func Add(a []int64, da int, b []int64, db int) ([]int64, error) {
	return defaultMultiplier.Add(a, da, b, db)
}

// Eval evaluates polynomial a (of degree da) at x, failing with ErrOverflow if
// any intermediate value exceeds the range of an int64.
func Eval(a []int64, da int, x int64) (int64, error) {
	return defaultMultiplier.Eval(a, da, x)
}
