// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package schnorr implements Schnorr signatures over the prime-order group of
// the 420-bit Edwards curve, together with blind and partially-blind signing
// protocols.
package schnorr

import (
	"math/big"

	"github.com/bytemare/curve420"
	"github.com/bytemare/curve420/hash"
)

const (
	// dsSchnorr is the domain separation tag for plain and blind Schnorr challenges.
	dsSchnorr = "ed420-schnorr-v1"

	// dsPartiallyBlind is the domain separation tag for partially-blind Schnorr challenges.
	dsPartiallyBlind = "ed420-partially-blind-schnorr-v1"
)

// challenge hashes the domain separation tag, the big-endian affine
// coordinates of the points in order, and the trailing byte strings, and
// reduces the big-endian digest modulo the group order.
func challenge(domain string, points []*curve420.Element, data ...[]byte) *curve420.Scalar {
	h := hash.Default.Get()
	h.Reset()

	_, _ = h.Write([]byte(domain))

	for _, p := range points {
		x, y := p.AffineCoordinates()
		_, _ = h.Write(x)
		_, _ = h.Write(y)
	}

	for _, d := range data {
		_, _ = h.Write(d)
	}

	e := curve420.NewScalar()
	if err := e.SetInt(new(big.Int).SetBytes(h.Sum())); err != nil {
		// the digest is non-negative by construction
		panic(err)
	}

	return e
}

// GenerateKeyPair returns a fresh private key, uniform in [1, L), and the
// matching public key sk * G.
func GenerateKeyPair() (sk *curve420.Scalar, pk *curve420.Element) {
	sk = curve420.NewScalar().Random()
	pk = curve420.Base().Multiply(sk)

	return sk, pk
}

// Sign returns a signature over message with the key pair (sk, pk). The nonce
// is drawn uniformly from [1, L) for every call.
func Sign(sk *curve420.Scalar, pk *curve420.Element, message []byte) *Signature {
	k := curve420.NewScalar().Random()
	return sign(sk, pk, k, message)
}

// sign produces the signature (R, s) = (k * G, k + e * sk) for the given nonce.
func sign(sk *curve420.Scalar, pk *curve420.Element, k *curve420.Scalar, message []byte) *Signature {
	r := curve420.Base().Multiply(k)
	e := challenge(dsSchnorr, []*curve420.Element{r, pk}, message)

	s := k.Copy().Add(e.Multiply(sk))

	return &Signature{R: r, S: s}
}

// Verify returns whether sig is a valid signature over message under the
// public key pk. Malformed input, a zero or out-of-range s, and a failed
// group equation all yield false, with no distinction of the cause.
func Verify(pk *curve420.Element, message []byte, sig *Signature) bool {
	if pk == nil || sig == nil || sig.R == nil || sig.S == nil {
		return false
	}

	if sig.S.IsZero() {
		return false
	}

	e := challenge(dsSchnorr, []*curve420.Element{sig.R, pk}, message)

	// s * G == R + e * pk
	lhs := curve420.Base().Multiply(sig.S)
	rhs := sig.R.Copy().Add(pk.Copy().Multiply(e))

	return lhs.Equal(rhs) == 1
}
