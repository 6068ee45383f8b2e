// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package field

import (
	"errors"
	"math/big"
)

// ErrNoSquareRoot is returned when a square root is requested for a quadratic non-residue.
var ErrNoSquareRoot = errors.New("element is not a square in the field")

// Legendre returns the Legendre symbol of x: 0 for x = 0, +1 for a nonzero
// square, and -1 for a non-residue.
func (f *Field) Legendre(x *big.Int) int {
	ls := f.Exponent(&big.Int{}, x, f.pMinus1div2)

	switch {
	case ls.Sign() == 0:
		return 0
	case f.IsOne(ls):
		return 1
	default:
		return -1
	}
}

// IsSquare returns whether the big.Int is a quadratic square.
func (f *Field) IsSquare(e *big.Int) bool {
	return f.Legendre(e) == 1
}

// Sqrt sets res to a square root of e via the Tonelli-Shanks algorithm, and
// returns nil. For e = 0 it sets res to 0. If e is a non-residue, res is left
// untouched and ErrNoSquareRoot is returned. Either root of e may be set;
// callers needing a canonical sign must apply Parity themselves.
func (f *Field) Sqrt(res, e *big.Int) error {
	x := f.Mod(new(big.Int).Set(e))

	switch f.Legendre(x) {
	case 0:
		res.SetInt64(0)
		return nil
	case -1:
		return ErrNoSquareRoot
	}

	c := f.Exponent(&big.Int{}, f.nonResidue, f.q)
	t := f.Exponent(&big.Int{}, x, f.q)
	r := f.Exponent(&big.Int{}, x, f.qPlus1div2)
	m := f.s

	b := &big.Int{}
	for !f.IsOne(t) {
		// least i in [1, m) with t^(2^i) = 1
		var i uint

		for t2i := new(big.Int).Set(t); !f.IsOne(t2i); i++ {
			f.Square(t2i, t2i)
		}

		// b = c^(2^(m-i-1))
		b.Set(c)
		for j := uint(0); j < m-i-1; j++ {
			f.Square(b, b)
		}

		f.Mul(r, r, b)
		f.Square(c, b)
		f.Mul(t, t, c)
		m = i
	}

	res.Set(r)

	return nil
}

// SqrtRatio sets res to a root of u/v when u/v is a square. When it is not,
// it falls back to the root of -u/v rotated by sqrt(-1), which again squares
// to u/v. If neither is a square, res is left untouched and ErrNoSquareRoot
// is returned. v must be nonzero.
func (f *Field) SqrtRatio(res, u, v *big.Int) error {
	ratio := &big.Int{}
	f.Inv(ratio, v)
	f.Mul(ratio, ratio, u)

	r := &big.Int{}
	if err := f.Sqrt(r, ratio); err == nil {
		res.Set(r)
		return nil
	}

	if f.sqrtMOne == nil {
		return ErrNoSquareRoot
	}

	f.Neg(ratio, ratio)
	if err := f.Sqrt(r, ratio); err != nil {
		return ErrNoSquareRoot
	}

	f.Mul(res, r, f.sqrtMOne)

	return nil
}

// SqrtMinusOne returns the field's cached square root of -1, or nil if -1 is
// not a square.
func (f *Field) SqrtMinusOne() *big.Int {
	if f.sqrtMOne == nil {
		return nil
	}

	return new(big.Int).Set(f.sqrtMOne)
}
