// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package montgomery implements u-only scalar multiplication on the
// Montgomery model B*v^2 = u^3 + A*u^2 + u (B = 1) of the 420-bit curve,
// using the Montgomery ladder over projective (X, Z) coordinates.
package montgomery

import (
	"errors"
	"math/big"

	"github.com/bytemare/curve420/internal/edwards"
	"github.com/bytemare/curve420/internal/field"
)

const (
	// montgomeryA is the Montgomery A constant of the curve.
	montgomeryA = "763975519699500577645754547835125169481986463482154078046572648671788968290548038674290307302429817161505744408446033521089602"

	// montgomeryBaseU and montgomeryBaseV are the affine coordinates of the base point,
	// the image of the Edwards generator under u = (1+y)/(1-y), v = u/x.
	montgomeryBaseU = "1887066872174968132246224128199266266323489104588603923691363826518154582291788366769852665419756146257203683605002692187211605"
	montgomeryBaseV = "1615823937666138581405149982946858036615132278772287171232550469704961695279457501113588538572409066758954677368118289169060562"
)

// ErrExceptionalPoint is returned when mapping a point on which the birational map is undefined.
var ErrExceptionalPoint = errors.New("birational map is undefined for this point")

var (
	fp = edwards.BaseField()

	constA = field.String2Int(montgomeryA)

	baseU = field.String2Int(montgomeryBaseU)
	baseV = field.String2Int(montgomeryBaseV)
)

// A returns a copy of the curve's Montgomery A constant.
func A() *big.Int {
	return new(big.Int).Set(constA)
}

// BaseU returns a copy of the base point's affine u coordinate.
func BaseU() *big.Int {
	return new(big.Int).Set(baseU)
}

// BaseV returns a copy of the base point's affine v coordinate.
func BaseV() *big.Int {
	return new(big.Int).Set(baseV)
}

// projPoint is the internal projective representation, with u = X/Z when
// Z != 0, and Z = 0 denoting the point at infinity.
type projPoint struct {
	x, z big.Int
}

// condSwap exchanges p and q when choice is 1 and leaves them untouched when
// choice is 0, by arithmetic masking. It never branches on choice, which is a
// scalar bit.
func condSwap(choice uint, p, q *projPoint) {
	mask := new(big.Int).SetUint64(uint64(choice))

	maskedSwap(mask, &p.x, &q.x)
	maskedSwap(mask, &p.z, &q.z)
}

func maskedSwap(mask, a, b *big.Int) {
	t := new(big.Int).Xor(a, b)
	t.Mul(t, mask)
	a.Xor(a, t)
	b.Xor(b, t)
}

// Ladder returns the affine u coordinate of k * P, where P is the point with
// affine coordinate u. The point at infinity is returned as u = 0. The ladder
// performs one differential step per bit of k, most significant first.
func Ladder(u, k *big.Int) *big.Int {
	var p0, p1 projPoint

	// p0 starts at infinity, p1 at P.
	p0.x.SetInt64(1)
	p0.z.SetInt64(0)
	p1.x.Set(u)
	p1.z.SetInt64(1)

	for i := k.BitLen() - 1; i >= 0; i-- {
		bit := k.Bit(i)

		condSwap(bit, &p0, &p1)
		ladderStep(&p0, &p1, u)
		condSwap(bit, &p0, &p1)
	}

	if p0.z.Sign() == 0 {
		return big.NewInt(0)
	}

	res := &big.Int{}
	fp.Inv(res, &p0.z)
	fp.Mul(res, res, &p0.x)

	return res
}

// ladderStep sets (p0, p1) to (2*p0, p0+p1), where the known difference
// p1 - p0 is the base point with affine coordinate baseX.
func ladderStep(p0, p1 *projPoint, baseX *big.Int) {
	var v0, v1, v2, v3, v4, v5, t big.Int

	fp.Add(&v0, &p0.x, &p0.z)
	fp.Sub(&v1, &p0.x, &p0.z)
	fp.Add(&v2, &p1.x, &p1.z)
	fp.Sub(&v3, &p1.x, &p1.z)

	fp.Mul(&v4, &v0, &v3)
	fp.Mul(&v5, &v1, &v2)

	// Differential addition.
	var xAdd, zAdd big.Int

	fp.Add(&t, &v4, &v5)
	fp.Square(&xAdd, &t)
	fp.Sub(&t, &v4, &v5)
	fp.Square(&zAdd, &t)
	fp.Mul(&zAdd, &zAdd, baseX)

	// Doubling: X = (X0^2 - Z0^2)^2, Z = 4*X0*Z0 * (X0^2 + A*X0*Z0 + Z0^2),
	// with 4*X0*Z0 = V0^2 - V1^2.
	var x2, z2, xz, xDbl, zDbl big.Int

	fp.Square(&x2, &p0.x)
	fp.Square(&z2, &p0.z)
	fp.Mul(&xz, &p0.x, &p0.z)

	fp.Sub(&xDbl, &x2, &z2)
	fp.Square(&xDbl, &xDbl)

	fp.Mul(&t, constA, &xz)
	fp.Add(&t, &t, &x2)
	fp.Add(&t, &t, &z2)

	fp.Square(&v0, &v0)
	fp.Square(&v1, &v1)
	fp.Sub(&zDbl, &v0, &v1)
	fp.Mul(&zDbl, &zDbl, &t)

	p0.x.Set(&xDbl)
	p0.z.Set(&zDbl)
	p1.x.Set(&xAdd)
	p1.z.Set(&zAdd)
}

// ToEdwards maps the affine Montgomery point (u, v) to the Edwards model via
// x = u/v, y = (u-1)/(u+1). The map is undefined for v = 0 and u = -1.
func ToEdwards(u, v *big.Int) (*edwards.Point, error) {
	var x, y, t big.Int

	if fp.IsZero(v) {
		return nil, ErrExceptionalPoint
	}

	fp.Add(&t, u, fp.One())
	if fp.IsZero(&t) {
		return nil, ErrExceptionalPoint
	}

	fp.Inv(&x, v)
	fp.Mul(&x, &x, u)

	fp.Inv(&y, &t)
	fp.Sub(&t, u, fp.One())
	fp.Mul(&y, &y, &t)

	return edwards.NewPointFromCoordinates(&x, &y)
}

// FromEdwards maps an Edwards point to the affine Montgomery coordinates
// u = (1+y)/(1-y), v = u/x. The map is undefined for the neutral element and
// the points with x = 0 or y = 1.
func FromEdwards(p *edwards.Point) (u, v *big.Int, err error) {
	x, y := p.X(), p.Y()

	var den big.Int

	fp.Sub(&den, fp.One(), y)
	if fp.IsZero(&den) || fp.IsZero(x) {
		return nil, nil, ErrExceptionalPoint
	}

	u = &big.Int{}
	fp.Inv(u, &den)
	fp.Add(&den, fp.One(), y)
	fp.Mul(u, u, &den)

	v = &big.Int{}
	fp.Inv(v, x)
	fp.Mul(v, v, u)

	return u, v, nil
}
