// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package edwards implements affine arithmetic on the twisted Edwards model
// a*x^2 + y^2 = 1 + d*x^2*y^2 of the 420-bit curve, with a = A+2 and d = A-2
// for the Montgomery constant A.
package edwards

import (
	"errors"
	"math/big"
)

// ErrNotOnCurve is returned when coordinates do not satisfy the curve equation.
var ErrNotOnCurve = errors.New("coordinates are not on the curve")

// Point is an affine point on the curve. The neutral element is (0, 1).
type Point struct {
	x, y big.Int
}

// NewPoint returns a new point set to the neutral element.
func NewPoint() *Point {
	p := &Point{}
	p.y.SetInt64(1)

	return p
}

// NewPointFromCoordinates returns the point (x, y), or ErrNotOnCurve if the
// coordinates do not satisfy the curve equation.
func NewPointFromCoordinates(x, y *big.Int) (*Point, error) {
	p := &Point{}
	p.x.Set(x)
	p.y.Set(y)
	fp.Mod(&p.x)
	fp.Mod(&p.y)

	if !p.IsOnCurve() {
		return nil, ErrNotOnCurve
	}

	return p, nil
}

// Base returns a new point set to the canonical generator.
func Base() *Point {
	p := &Point{}
	p.x.Set(gx)
	p.y.Set(gy)

	return p
}

// X returns a copy of the point's affine x coordinate.
func (p *Point) X() *big.Int {
	return new(big.Int).Set(&p.x)
}

// Y returns a copy of the point's affine y coordinate.
func (p *Point) Y() *big.Int {
	return new(big.Int).Set(&p.y)
}

// Set sets p to q, and returns p.
func (p *Point) Set(q *Point) *Point {
	p.x.Set(&q.x)
	p.y.Set(&q.y)

	return p
}

// Identity sets p to the neutral element (0, 1), and returns p.
func (p *Point) Identity() *Point {
	p.x.SetInt64(0)
	p.y.SetInt64(1)

	return p
}

// IsIdentity returns whether p is the neutral element.
func (p *Point) IsIdentity() bool {
	return p.x.Sign() == 0 && fp.IsOne(&p.y)
}

// Equal returns 1 if p and q represent the same point, and 0 otherwise.
func (p *Point) Equal(q *Point) int {
	if fp.AreEqual(&p.x, &q.x) && fp.AreEqual(&p.y, &q.y) {
		return 1
	}

	return 0
}

// IsOnCurve returns whether p satisfies a*x^2 + y^2 = 1 + d*x^2*y^2.
func (p *Point) IsOnCurve() bool {
	var x2, y2, lhs, rhs big.Int

	fp.Square(&x2, &p.x)
	fp.Square(&y2, &p.y)

	fp.Mul(&lhs, a, &x2)
	fp.Add(&lhs, &lhs, &y2)

	fp.Mul(&rhs, d, &x2)
	fp.Mul(&rhs, &rhs, &y2)
	fp.Add(&rhs, &rhs, fp.One())

	return fp.AreEqual(&lhs, &rhs)
}

// Add sets p = q + r using the unified addition formula, which also serves
// for doubling. Either operand being the neutral element is short-circuited.
func (p *Point) Add(q, r *Point) *Point {
	if q.IsIdentity() {
		return p.Set(r)
	}

	if r.IsIdentity() {
		return p.Set(q)
	}

	var x1y2, y1x2, x1x2, y1y2, dxxyy, num, den, x3, y3 big.Int

	fp.Mul(&x1y2, &q.x, &r.y)
	fp.Mul(&y1x2, &q.y, &r.x)
	fp.Mul(&x1x2, &q.x, &r.x)
	fp.Mul(&y1y2, &q.y, &r.y)

	fp.Mul(&dxxyy, d, &x1x2)
	fp.Mul(&dxxyy, &dxxyy, &y1y2)

	// x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
	fp.Add(&num, &x1y2, &y1x2)
	fp.Add(&den, fp.One(), &dxxyy)
	fp.Inv(&den, &den)
	fp.Mul(&x3, &num, &den)

	// y3 = (y1*y2 - a*x1*x2) / (1 - d*x1*x2*y1*y2)
	fp.Mul(&num, a, &x1x2)
	fp.Sub(&num, &y1y2, &num)
	fp.Sub(&den, fp.One(), &dxxyy)
	fp.Inv(&den, &den)
	fp.Mul(&y3, &num, &den)

	p.x.Set(&x3)
	p.y.Set(&y3)

	return p
}

// Double sets p = q + q, and returns p.
func (p *Point) Double(q *Point) *Point {
	return p.Add(q, q)
}

// Negate sets p = -q, i.e. (-x, y), and returns p. The neutral element is its
// own inverse.
func (p *Point) Negate(q *Point) *Point {
	fp.Neg(&p.x, &q.x)
	p.y.Set(&q.y)

	return p
}

// Subtract sets p = q - r, and returns p.
func (p *Point) Subtract(q, r *Point) *Point {
	var neg Point
	neg.Negate(r)

	return p.Add(q, &neg)
}

// ScalarMult sets p = k * q by binary double-and-add over the bits of k,
// least significant first, and returns p. k must be non-negative.
//
// This routine runs in variable time and must not be fed secret scalars in
// adversarial settings. Use the Montgomery ladder for those.
func (p *Point) ScalarMult(q *Point, k *big.Int) *Point {
	var res, tmp Point
	res.Identity()
	tmp.Set(q)

	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			res.Add(&res, &tmp)
		}

		tmp.Double(&tmp)
	}

	return p.Set(&res)
}
