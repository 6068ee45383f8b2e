// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto420

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/bytemare/curve420/internal"
	"github.com/bytemare/curve420/internal/edwards"
)

// Element implements the Element interface for the prime-order group over the
// 420-bit Edwards curve.
type Element struct {
	p edwards.Point
}

// NewElement returns a new element set to the neutral element.
func NewElement() *Element {
	e := &Element{}
	e.p.Identity()

	return e
}

func checkElement(element internal.Element) *Element {
	if element == nil {
		panic(internal.ErrParamNilPoint)
	}

	ec, ok := element.(*Element)
	if !ok {
		panic(internal.ErrCastElement)
	}

	return ec
}

// Base sets the element to the group's base point a.k.a. canonical generator.
func (e *Element) Base() internal.Element {
	e.p.Set(edwards.Base())
	return e
}

// Identity sets the element to the point at infinity of the Group's underlying curve.
func (e *Element) Identity() internal.Element {
	e.p.Identity()
	return e
}

// Add sets the receiver to the sum of the input and the receiver, and returns the receiver.
func (e *Element) Add(element internal.Element) internal.Element {
	ec := checkElement(element)
	e.p.Add(&e.p, &ec.p)

	return e
}

// Double sets the receiver to its double, and returns it.
func (e *Element) Double() internal.Element {
	e.p.Double(&e.p)
	return e
}

// Negate sets the receiver to its negation, and returns it.
func (e *Element) Negate() internal.Element {
	e.p.Negate(&e.p)
	return e
}

// Subtract subtracts the input from the receiver, and returns the receiver.
func (e *Element) Subtract(element internal.Element) internal.Element {
	ec := checkElement(element)
	e.p.Subtract(&e.p, &ec.p)

	return e
}

// Multiply sets the receiver to the scalar multiplication of the receiver with
// the given Scalar, and returns it. The multiplication runs in variable time.
func (e *Element) Multiply(scalar internal.Scalar) internal.Element {
	if scalar == nil {
		e.p.Identity()
		return e
	}

	sc := assert(scalar)
	e.p.ScalarMult(&e.p, &sc.scalar)

	return e
}

// Equal returns 1 if the elements are equivalent, and 0 otherwise.
func (e *Element) Equal(element internal.Element) int {
	ec := checkElement(element)
	return e.p.Equal(&ec.p)
}

// IsIdentity returns whether the Element is the point at infinity of the Group's underlying curve.
func (e *Element) IsIdentity() bool {
	return e.p.IsIdentity()
}

// Set sets the receiver to the value of the argument, and returns the receiver.
func (e *Element) Set(element internal.Element) internal.Element {
	if element == nil {
		return e.Identity()
	}

	ec := checkElement(element)
	e.p.Set(&ec.p)

	return e
}

// Copy returns a copy of the receiver.
func (e *Element) Copy() internal.Element {
	n := &Element{}
	n.p.Set(&e.p)

	return n
}

// Edwards returns a copy of the inner Edwards point.
func (e *Element) Edwards() *edwards.Point {
	p := edwards.NewPoint()
	return p.Set(&e.p)
}

// Encode returns the canonical 53-byte encoding of the element: the
// little-endian x coordinate, with the top bit of the last byte carrying the
// parity of y. Equal elements yield equal encodings.
func (e *Element) Encode() []byte {
	out := e.p.X()
	enc := fp.Bytes(out)
	enc[canonicalEncodingLength-1] |= byte(fp.Parity(e.p.Y())) << 7

	return enc
}

// AffineCoordinates returns the fixed-length big-endian encodings of the
// element's affine Edwards coordinates.
func (e *Element) AffineCoordinates() (x, y []byte) {
	return fp.BytesBE(e.p.X()), fp.BytesBE(e.p.Y())
}

// Decode sets the receiver to the decoding of the 53-byte input, and returns
// an error on failure. It rejects non-canonical field encodings, coordinates
// that are not on the curve, the identity, and points outside the prime-order
// subgroup.
func (e *Element) Decode(data []byte) error {
	if len(data) != canonicalEncodingLength {
		return internal.ErrParamInvalidPointEncoding
	}

	sign := uint(data[canonicalEncodingLength-1] >> 7)

	xb := make([]byte, canonicalEncodingLength)
	copy(xb, data)
	xb[canonicalEncodingLength-1] &= 0x7F

	var x big.Int
	if err := fp.SetBytes(&x, xb); err != nil {
		return fmt.Errorf("%w : %v", internal.ErrParamInvalidPointEncoding, err)
	}

	y, err := recoverY(&x, sign)
	if err != nil {
		return err
	}

	p, err := edwards.NewPointFromCoordinates(&x, y)
	if err != nil {
		return internal.ErrParamInvalidPointEncoding
	}

	q, err := FromEdwardsChecked(p)
	if err != nil {
		return err
	}

	e.p.Set(&q.p)

	return nil
}

// recoverY solves y^2 = (1 - a*x^2) / (1 - d*x^2) for the root with the given
// parity.
func recoverY(x *big.Int, sign uint) (*big.Int, error) {
	var x2, num, den big.Int

	fp.Square(&x2, x)

	fp.Mul(&num, edwards.A(), &x2)
	fp.Sub(&num, fp.One(), &num)

	fp.Mul(&den, edwards.D(), &x2)
	fp.Sub(&den, fp.One(), &den)

	if fp.IsZero(&den) {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	var y2 big.Int

	fp.Inv(&den, &den)
	fp.Mul(&y2, &num, &den)

	y := &big.Int{}
	if err := fp.Sqrt(y, &y2); err != nil {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	if fp.Parity(y) != sign {
		fp.Neg(y, y)
	}

	return y, nil
}

// Hex returns the fixed-sized hexadecimal encoding of e.
func (e *Element) Hex() string {
	return hex.EncodeToString(e.Encode())
}

// DecodeHex sets e to the decoding of the hex encoded element.
func (e *Element) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return e.Decode(b)
}

// MarshalBinary returns the compressed byte encoding of the element.
func (e *Element) MarshalBinary() ([]byte, error) {
	return e.Encode(), nil
}

// UnmarshalBinary sets e to the decoding of the byte encoded element.
func (e *Element) UnmarshalBinary(data []byte) error {
	return e.Decode(data)
}
