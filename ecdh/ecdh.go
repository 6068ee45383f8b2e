// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ecdh implements u-only Diffie-Hellman over the Montgomery model of
// the 420-bit curve. Scalar multiplication goes through the Montgomery
// ladder, which performs one differential step per scalar bit and swaps its
// working points by arithmetic masking instead of branching.
package ecdh

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/bytemare/curve420/internal"
	"github.com/bytemare/curve420/internal/edwards"
	"github.com/bytemare/curve420/internal/field"
	"github.com/bytemare/curve420/internal/montgomery"
)

var (
	fp = edwards.BaseField()
	fl = field.NewField(edwards.Order())
)

// PrivateKey is a Diffie-Hellman private scalar in [1, L).
type PrivateKey struct {
	k big.Int
}

// GenerateKey returns a private key drawn uniformly from [1, L), using
// crypto/rand.
func GenerateKey() *PrivateKey {
	sk := &PrivateKey{}

	for {
		tmp, err := rand.Int(rand.Reader, edwards.Order())
		if err != nil {
			// We can as well not panic and try again in a loop
			panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
		}

		if tmp.Sign() != 0 {
			sk.k.Set(tmp)
			return sk
		}
	}
}

// NewPrivateKey decodes a 53-byte little-endian private key. It rejects
// encodings of a wrong length, zero, and values not strictly below L.
func NewPrivateKey(data []byte) (*PrivateKey, error) {
	sk := &PrivateKey{}
	if err := fl.SetBytes(&sk.k, data); err != nil {
		return nil, fmt.Errorf("%w : %v", internal.ErrParamScalarInvalidEncoding, err)
	}

	if sk.k.Sign() == 0 {
		return nil, internal.ErrParamScalarInvalidEncoding
	}

	return sk, nil
}

// Bytes returns the fixed-length little-endian encoding of the private key.
func (sk *PrivateKey) Bytes() []byte {
	return fl.Bytes(&sk.k)
}

// PublicKey returns the public u coordinate sk * G.
func (sk *PrivateKey) PublicKey() *PublicKey {
	pk := &PublicKey{}
	pk.u.Set(montgomery.Ladder(montgomery.BaseU(), &sk.k))

	return pk
}

// SharedSecret returns the fixed-length encoding of the u coordinate of
// sk * peer. It returns an error when the peer point has an order dividing the
// cofactor, and when the result is the point at infinity or the zero coordinate.
func (sk *PrivateKey) SharedSecret(peer *PublicKey) ([]byte, error) {
	if montgomery.Ladder(&peer.u, big.NewInt(edwards.Cofactor)).Sign() == 0 {
		return nil, internal.ErrIdentity
	}

	shared := montgomery.Ladder(&peer.u, &sk.k)
	if shared.Sign() == 0 {
		return nil, internal.ErrIdentity
	}

	return fp.Bytes(shared), nil
}

// PublicKey is an affine Montgomery u coordinate.
type PublicKey struct {
	u big.Int
}

// NewPublicKey decodes a 53-byte little-endian public key, rejecting
// non-canonical field encodings.
func NewPublicKey(data []byte) (*PublicKey, error) {
	pk := &PublicKey{}
	if err := fp.SetBytes(&pk.u, data); err != nil {
		return nil, fmt.Errorf("%w : %v", internal.ErrParamInvalidPointEncoding, err)
	}

	return pk, nil
}

// Bytes returns the fixed-length little-endian encoding of the public key.
func (pk *PublicKey) Bytes() []byte {
	return fp.Bytes(&pk.u)
}

// Equal returns 1 if both public keys hold the same coordinate, and 0 otherwise.
func (pk *PublicKey) Equal(other *PublicKey) int {
	if other == nil {
		return 0
	}

	if fp.AreEqual(&pk.u, &other.u) {
		return 1
	}

	return 0
}
