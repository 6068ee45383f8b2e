// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ristretto420 exposes the prime-order subgroup of the 420-bit
// Edwards curve behind an abstracted group API, in the spirit of Ristretto.
// Elements only ever hold Edwards points P with L*P = neutral; the invariant
// is established by the checked constructor and the decoder, and preserved by
// the group operations. Both of those reject the neutral element, which an
// Element still holds after NewElement, Identity, or a group operation that
// yields it (e.g. P - P).
package ristretto420

import (
	"math/big"

	"github.com/bytemare/curve420/internal"
	"github.com/bytemare/curve420/internal/edwards"
	"github.com/bytemare/curve420/internal/field"
)

const (
	// canonicalEncodingLength is the byte length of element and scalar encodings.
	canonicalEncodingLength = 53

	// dConstant is (2 - A)/(A + 2) mod p, the d constant of the a = -1 view of the curve.
	dConstant = "2452716181725381856644875084906193393415092913133662187679137757399562559402223776760896555937275583243540028031723320155896995"

	// sqrtMinusOne is a square root of -1 mod p.
	sqrtMinusOne = "1125536906516536500462288751072116878795238505010065672221134269135451808572734403962317328989539260645101783109609626216749877"
)

var (
	fp = edwards.BaseField()

	dMinusOneView = field.String2Int(dConstant)
	sqrtM1        = field.String2Int(sqrtMinusOne)
)

// Order returns the prime order L of the group, in base 10.
func Order() string {
	return edwards.Order().String()
}

// inSubgroup returns whether the Edwards point p lies in the prime-order
// subgroup, i.e. L * p is the neutral element.
func inSubgroup(p *edwards.Point) bool {
	var t edwards.Point
	return t.ScalarMult(p, edwards.Order()).IsIdentity()
}

// FromEdwardsChecked returns an element of the prime-order group holding p.
// It accepts p if, and only if, L * p is the neutral element and p itself is
// not, and returns an error otherwise.
func FromEdwardsChecked(p *edwards.Point) (*Element, error) {
	if p == nil {
		return nil, internal.ErrParamNilPoint
	}

	if p.IsIdentity() {
		return nil, internal.ErrIdentity
	}

	if !inSubgroup(p) {
		return nil, internal.ErrNotPrimeOrder
	}

	e := &Element{}
	e.p.Set(p)

	return e, nil
}

// DConstant returns a copy of the (2 - A)/(A + 2) constant of the a = -1 view.
func DConstant() *big.Int {
	return new(big.Int).Set(dMinusOneView)
}

// SqrtMinusOne returns a copy of the group's square root of -1 mod p.
func SqrtMinusOne() *big.Int {
	return new(big.Int).Set(sqrtM1)
}
