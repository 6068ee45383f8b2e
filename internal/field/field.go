// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field provides modular operations over very high integers.
package field

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// String2Int returns a big.Int representation of the integer s.
func String2Int(s string) *big.Int {
	if p, _ := new(big.Int).SetString(s, 0); p != nil {
		return p
	}

	panic("invalid string to convert")
}

// Field represents a Galois Field of prime order.
type Field struct {
	prime       *big.Int
	pMinus1div2 *big.Int // used in Legendre
	pMinus2     *big.Int // used for field big.Int inversion
	q           *big.Int // odd q with prime - 1 = q * 2^s, used in Tonelli-Shanks
	qPlus1div2  *big.Int
	nonResidue  *big.Int // smallest quadratic non-residue, found by trial
	sqrtMOne    *big.Int // square root of -1, nil when prime != 1 mod 4
	s           uint
	byteLen     int
}

// NewField returns a newly instantiated field for the given prime order.
func NewField(prime *big.Int) *Field {
	// pMinus1div2 is used to determine whether a big Int is a quadratic square.
	pMinus1div2 := big.NewInt(1)
	pMinus1div2.Sub(prime, pMinus1div2)
	pMinus1div2.Rsh(pMinus1div2, 1)

	// pMinus2 is used for modular inversion.
	pMinus2 := big.NewInt(2)
	pMinus2.Sub(prime, pMinus2)

	// factor prime - 1 = q * 2^s with q odd, for the Tonelli-Shanks square root.
	q := new(big.Int).Sub(prime, one)

	var s uint
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	qPlus1div2 := new(big.Int).Add(q, one)
	qPlus1div2.Rsh(qPlus1div2, 1)

	f := &Field{
		prime:       prime,
		pMinus1div2: pMinus1div2,
		pMinus2:     pMinus2,
		q:           q,
		qPlus1div2:  qPlus1div2,
		s:           s,
		byteLen:     (prime.BitLen() + 7) / 8,
	}

	f.nonResidue = f.findNonResidue()

	// -1 is a square iff prime = 1 mod 4; its root is cached for SqrtRatio.
	if prime.Bit(1) == 0 {
		root := new(big.Int)
		if err := f.Sqrt(root, f.Sub(new(big.Int), zero, one)); err != nil {
			panic(fmt.Errorf("unexpected: -1 has no root in field of order 1 mod 4 : %w", err))
		}

		f.sqrtMOne = root
	}

	return f
}

// findNonResidue returns the smallest quadratic non-residue of the field, by trial starting at 2.
func (f *Field) findNonResidue() *big.Int {
	for z := big.NewInt(2); ; z.Add(z, one) {
		if f.Legendre(z) == -1 {
			return new(big.Int).Set(z)
		}
	}
}

// Zero returns the zero big.Int of the finite field.
func (f *Field) Zero() *big.Int {
	return zero
}

// One returns the one big.Int of the finite field.
func (f *Field) One() *big.Int {
	return one
}

// Random sets res to a random big.Int in the field.
func (f *Field) Random(res *big.Int) *big.Int {
	tmp, err := rand.Int(rand.Reader, f.prime)
	if err != nil {
		// We can as well not panic and try again in a loop
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	res.Set(tmp)

	return res
}

// Order returns the size of the field.
func (f *Field) Order() *big.Int {
	return f.prime
}

// BitLen of the order.
func (f *Field) BitLen() int {
	return f.prime.BitLen()
}

// ByteLen returns the length of the field's fixed-size byte encoding.
func (f *Field) ByteLen() int {
	return f.byteLen
}

// AreEqual returns whether both elements are equal.
func (f *Field) AreEqual(f1, f2 *big.Int) bool {
	return f.IsZero(f.Sub(&big.Int{}, f1, f2))
}

// IsZero returns whether the big.Int is equivalent to zero.
func (f *Field) IsZero(e *big.Int) bool {
	return e.Sign() == 0
}

// IsOne returns whether the big.Int is equivalent to one.
func (f *Field) IsOne(e *big.Int) bool {
	return e.Cmp(one) == 0
}

// Mod reduces x modulo the field order.
func (f *Field) Mod(x *big.Int) *big.Int {
	return x.Mod(x, f.prime)
}

// Neg sets res to -x modulo the field order.
func (f *Field) Neg(res, x *big.Int) *big.Int {
	return f.Mod(res.Neg(x))
}

// Add sets res to x + y modulo the field order.
func (f *Field) Add(res, x, y *big.Int) {
	f.Mod(res.Add(x, y))
}

// Sub sets res to x - y modulo the field order.
func (f *Field) Sub(res, x, y *big.Int) *big.Int {
	return f.Mod(res.Sub(x, y))
}

// Mul sets res to the multiplication of x and y modulo the field order.
func (f *Field) Mul(res, x, y *big.Int) {
	f.Mod(res.Mul(x, y))
}

// Square sets res to the square of x modulo the field order.
func (f *Field) Square(res, x *big.Int) {
	f.Mod(res.Mul(x, x))
}

// Inv sets res to the modular inverse of x mod field order. Inv(0) is undefined,
// and the caller must rule it out.
func (f *Field) Inv(res, x *big.Int) {
	f.Exponent(res, x, f.pMinus2)
}

// Exponent sets res to x^n mod field order, and returns res.
func (f *Field) Exponent(res, x, n *big.Int) *big.Int {
	return res.Exp(x, n, f.prime)
}

// Parity returns the lowest bit of the canonical representative of x.
func (f *Field) Parity(x *big.Int) uint {
	return x.Bit(0)
}
