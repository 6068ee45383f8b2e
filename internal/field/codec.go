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

var (
	// ErrEncodingLength is returned when a byte encoding has not the field's fixed length.
	ErrEncodingLength = errors.New("invalid field encoding length")

	// ErrNonCanonical is returned when a byte encoding decodes to an integer at least as big as the field order.
	ErrNonCanonical = errors.New("non-canonical field encoding")
)

// reverse returns a new byte slice with the order of in inverted.
func reverse(in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[len(in)-1-i] = b
	}

	return out
}

// Bytes returns the fixed-length little-endian encoding of x.
func (f *Field) Bytes(x *big.Int) []byte {
	return reverse(f.BytesBE(x))
}

// BytesBE returns the fixed-length big-endian encoding of x.
func (f *Field) BytesBE(x *big.Int) []byte {
	out := make([]byte, f.byteLen)
	x.FillBytes(out)

	return out
}

// SetBytes interprets in as a little-endian encoding, and sets res to the
// decoded value. It rejects encodings of a wrong length and any non-canonical
// encoding, i.e. one whose integer value is not strictly below the field order.
func (f *Field) SetBytes(res *big.Int, in []byte) error {
	if len(in) != f.byteLen {
		return ErrEncodingLength
	}

	res.SetBytes(reverse(in))

	if res.Cmp(f.prime) >= 0 {
		return ErrNonCanonical
	}

	return nil
}
