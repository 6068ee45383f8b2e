// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto420

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/bytemare/curve420/internal"
	"github.com/bytemare/curve420/internal/edwards"
	"github.com/bytemare/curve420/internal/field"
)

// fl is the scalar field GF(L).
var fl = field.NewField(edwards.Order())

// Scalar implements the Scalar interface for scalars modulo the prime group order L.
type Scalar struct {
	scalar big.Int
}

// NewScalar returns a new scalar set to 0.
func NewScalar() *Scalar {
	return &Scalar{}
}

func assert(scalar internal.Scalar) *Scalar {
	sc, ok := scalar.(*Scalar)
	if !ok {
		panic(internal.ErrCastScalar)
	}

	return sc
}

// Zero sets the scalar to 0, and returns it.
func (s *Scalar) Zero() internal.Scalar {
	s.scalar.SetInt64(0)
	return s
}

// One sets the scalar to 1, and returns it.
func (s *Scalar) One() internal.Scalar {
	s.scalar.SetInt64(1)
	return s
}

// Random sets the current scalar to a new random scalar and returns it.
// The random source is crypto/rand, and this functions is guaranteed to return a non-zero scalar.
func (s *Scalar) Random() internal.Scalar {
	for {
		tmp, err := rand.Int(rand.Reader, fl.Order())
		if err != nil {
			// We can as well not panic and try again in a loop
			panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
		}

		if tmp.Sign() != 0 {
			s.scalar.Set(tmp)
			return s
		}
	}
}

// Add sets the receiver to the sum of the input and the receiver, and returns the receiver.
func (s *Scalar) Add(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	sc := assert(scalar)
	fl.Add(&s.scalar, &s.scalar, &sc.scalar)

	return s
}

// Subtract subtracts the input from the receiver, and returns the receiver.
func (s *Scalar) Subtract(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	sc := assert(scalar)
	fl.Sub(&s.scalar, &s.scalar, &sc.scalar)

	return s
}

// Multiply multiplies the receiver with the input, and returns the receiver.
func (s *Scalar) Multiply(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s.Zero()
	}

	sc := assert(scalar)
	fl.Mul(&s.scalar, &s.scalar, &sc.scalar)

	return s
}

// Invert sets the receiver to the scalar's modular inverse ( 1 / scalar ), and returns it.
func (s *Scalar) Invert() internal.Scalar {
	fl.Inv(&s.scalar, &s.scalar)
	return s
}

// Equal returns 1 if the scalars are equal, and 0 otherwise.
func (s *Scalar) Equal(scalar internal.Scalar) int {
	if scalar == nil {
		return 0
	}

	sc := assert(scalar)
	if fl.AreEqual(&s.scalar, &sc.scalar) {
		return 1
	}

	return 0
}

// IsZero returns whether the scalar is 0.
func (s *Scalar) IsZero() bool {
	return fl.IsZero(&s.scalar)
}

// Set sets the receiver to the value of the argument scalar, and returns the receiver.
func (s *Scalar) Set(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s.Zero()
	}

	sc := assert(scalar)
	s.scalar.Set(&sc.scalar)

	return s
}

// SetInt sets s to i modulo the group order, and returns an error if i is nil or negative.
func (s *Scalar) SetInt(i *big.Int) error {
	if i == nil {
		return internal.ErrParamNilScalar
	}

	if i.Sign() < 0 {
		return internal.ErrParamNegScalar
	}

	s.scalar.Mod(i, fl.Order())

	return nil
}

// BigInt returns a copy of the scalar's integer value.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(&s.scalar)
}

// Copy returns a copy of the receiver.
func (s *Scalar) Copy() internal.Scalar {
	n := &Scalar{}
	n.scalar.Set(&s.scalar)

	return n
}

// Encode returns the canonical 53-byte little-endian encoding of the scalar.
func (s *Scalar) Encode() []byte {
	return fl.Bytes(&s.scalar)
}

// Decode sets the receiver to a decoding of the input data, and returns an
// error on failure. The encoding must be 53 bytes of little-endian integer
// strictly below the group order L.
func (s *Scalar) Decode(in []byte) error {
	if len(in) == 0 {
		return internal.ErrParamNilScalar
	}

	if len(in) != canonicalEncodingLength {
		return internal.ErrParamScalarLength
	}

	var tmp big.Int
	if err := fl.SetBytes(&tmp, in); err != nil {
		return fmt.Errorf("%w : %v", internal.ErrParamScalarInvalidEncoding, err)
	}

	s.scalar.Set(&tmp)

	return nil
}

// Hex returns the fixed-sized hexadecimal encoding of s.
func (s *Scalar) Hex() string {
	return hex.EncodeToString(s.Encode())
}

// DecodeHex sets s to the decoding of the hex encoded scalar.
func (s *Scalar) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return s.Decode(b)
}

// MarshalBinary returns the compressed byte encoding of the scalar.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Encode(), nil
}

// UnmarshalBinary sets s to the decoding of the byte encoded scalar.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	return s.Decode(data)
}
