// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto420

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/bytemare/curve420/internal"
	"github.com/bytemare/curve420/internal/edwards"
	"github.com/bytemare/curve420/internal/montgomery"
)

func TestFromEdwardsChecked(t *testing.T) {
	if _, err := FromEdwardsChecked(edwards.Base()); err != nil {
		t.Fatalf("the generator must be accepted: %v", err)
	}

	if _, err := FromEdwardsChecked(edwards.NewPoint()); !errors.Is(err, internal.ErrIdentity) {
		t.Fatalf("expected %v, got %v", internal.ErrIdentity, err)
	}

	if _, err := FromEdwardsChecked(nil); !errors.Is(err, internal.ErrParamNilPoint) {
		t.Fatalf("expected %v, got %v", internal.ErrParamNilPoint, err)
	}

	// (0, -1) has order 2 and must be rejected
	var mOne big.Int
	fp.Sub(&mOne, fp.Zero(), fp.One())

	lowOrder, err := edwards.NewPointFromCoordinates(fp.Zero(), &mOne)
	if err != nil {
		t.Fatalf("(0, -1) must be on the curve: %v", err)
	}

	if _, err := FromEdwardsChecked(lowOrder); !errors.Is(err, internal.ErrNotPrimeOrder) {
		t.Fatalf("expected %v, got %v", internal.ErrNotPrimeOrder, err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	base := NewElement().Base()

	enc := base.Encode()
	if len(enc) != canonicalEncodingLength {
		t.Fatalf("invalid encoding length %d, expected %d", len(enc), canonicalEncodingLength)
	}

	dec := NewElement()
	if err := dec.Decode(enc); err != nil {
		t.Fatalf("decoding the generator failed: %v", err)
	}

	if dec.Equal(base) != 1 {
		t.Fatal("decode(encode(G)) != G")
	}

	// random multiples of the generator
	for i := 0; i < 5; i++ {
		e := NewElement().Base().Multiply(NewScalar().Random())

		dec := NewElement()
		if err := dec.Decode(e.(*Element).Encode()); err != nil {
			t.Fatalf("decoding failed: %v", err)
		}

		if dec.Equal(e) != 1 {
			t.Fatal("round-trip failed for a random element")
		}
	}
}

func TestEqualElementsEqualEncodings(t *testing.T) {
	k := NewScalar().Random()

	e1 := NewElement().Base().Multiply(k)
	e2 := NewElement().Base().Multiply(k)

	if !bytes.Equal(e1.(*Element).Encode(), e2.(*Element).Encode()) {
		t.Fatal("equal elements must encode to equal bytes")
	}
}

func TestDecodeRejections(t *testing.T) {
	e := NewElement()

	// wrong length
	if err := e.Decode(make([]byte, canonicalEncodingLength-1)); err == nil {
		t.Fatal("short encoding must be rejected")
	}

	// non-canonical field element: the prime itself
	nc := fp.Bytes(new(big.Int).Set(fp.Order()))
	if err := e.Decode(nc); err == nil {
		t.Fatal("non-canonical encoding must be rejected")
	}

	// identity: x = 0 with the parity bit of y = 1
	id := make([]byte, canonicalEncodingLength)
	id[canonicalEncodingLength-1] = 0x80
	if err := e.Decode(id); !errors.Is(err, internal.ErrIdentity) {
		t.Fatalf("expected %v, got %v", internal.ErrIdentity, err)
	}

	// low-order point: x = 0 with the parity bit of y = 0 decodes to (0, -1)
	lowOrder := make([]byte, canonicalEncodingLength)
	if err := e.Decode(lowOrder); !errors.Is(err, internal.ErrNotPrimeOrder) {
		t.Fatalf("expected %v, got %v", internal.ErrNotPrimeOrder, err)
	}
}

func TestGroupOperations(t *testing.T) {
	g := NewElement().Base()

	// 2*G via Add, Double, and Multiply agree
	var two big.Int
	two.SetInt64(2)

	sc := NewScalar()
	if err := sc.SetInt(&two); err != nil {
		t.Fatal(err)
	}

	viaAdd := NewElement().Base().Add(g)
	viaDouble := NewElement().Base().Double()
	viaMult := NewElement().Base().Multiply(sc)

	if viaAdd.Equal(viaDouble) != 1 || viaAdd.Equal(viaMult) != 1 {
		t.Fatal("2*G computed three ways disagrees")
	}

	// G - G is the identity
	if !NewElement().Base().Subtract(g).IsIdentity() {
		t.Fatal("G - G must be the identity")
	}

	// negation
	if !NewElement().Base().Negate().Add(g).IsIdentity() {
		t.Fatal("-G + G must be the identity")
	}
}

func TestRistrettoConstants(t *testing.T) {
	// D' * (A + 2) == (2 - A) mod p
	a := montgomery.A()

	var lhs, rhs big.Int
	fp.Add(&rhs, a, big.NewInt(2))
	fp.Mul(&lhs, DConstant(), &rhs)
	fp.Sub(&rhs, big.NewInt(2), a)

	if !fp.AreEqual(&lhs, &rhs) {
		t.Fatal("D' * (A + 2) != (2 - A) mod p")
	}

	// sqrt(-1)^2 == -1 mod p
	var sq, mOne big.Int
	fp.Square(&sq, SqrtMinusOne())
	fp.Sub(&mOne, fp.Zero(), fp.One())

	if !fp.AreEqual(&sq, &mOne) {
		t.Fatal("sqrt(-1)^2 != -1 mod p")
	}

	// and it matches the field's own root up to sign
	root := fp.SqrtMinusOne()

	var neg big.Int
	fp.Neg(&neg, root)

	if !fp.AreEqual(root, SqrtMinusOne()) && !fp.AreEqual(&neg, SqrtMinusOne()) {
		t.Fatal("cached sqrt(-1) differs from the field's root")
	}
}

func TestScalarCodec(t *testing.T) {
	s := NewScalar().Random().(*Scalar)

	enc := s.Encode()
	if len(enc) != canonicalEncodingLength {
		t.Fatalf("invalid scalar encoding length %d", len(enc))
	}

	dec := NewScalar()
	if err := dec.Decode(enc); err != nil {
		t.Fatalf("decoding failed: %v", err)
	}

	if dec.Equal(s) != 1 {
		t.Fatal("scalar round-trip failed")
	}

	// the group order is rejected
	nc := fl.Bytes(new(big.Int).Set(fl.Order()))
	if err := dec.Decode(nc); !errors.Is(err, internal.ErrParamScalarInvalidEncoding) {
		t.Fatalf("expected %v, got %v", internal.ErrParamScalarInvalidEncoding, err)
	}

	// wrong length
	if err := dec.Decode(enc[:10]); !errors.Is(err, internal.ErrParamScalarLength) {
		t.Fatalf("expected %v, got %v", internal.ErrParamScalarLength, err)
	}

	// empty
	if err := dec.Decode(nil); !errors.Is(err, internal.ErrParamNilScalar) {
		t.Fatalf("expected %v, got %v", internal.ErrParamNilScalar, err)
	}
}

func TestScalarArithmetic(t *testing.T) {
	s := NewScalar().Random()

	inv := s.Copy().Invert()
	if prod := s.Copy().Multiply(inv); prod.(*Scalar).BigInt().Cmp(big.NewInt(1)) != 0 {
		t.Fatal("s * s^-1 != 1 mod L")
	}

	if !NewScalar().Zero().IsZero() {
		t.Fatal("zero scalar is not zero")
	}

	if NewScalar().One().IsZero() {
		t.Fatal("one reported as zero")
	}

	// subtraction is the inverse of addition
	a := NewScalar().Random()
	b := NewScalar().Random()

	if a.Copy().Add(b).Subtract(b).Equal(a) != 1 {
		t.Fatal("a + b - b != a")
	}
}
