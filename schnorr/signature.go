// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package schnorr

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bytemare/curve420"
	"github.com/bytemare/curve420/internal"
)

// encodedLength is the byte length of an encoded signature, R followed by s.
const encodedLength = curve420.ElementLength + curve420.ScalarLength

// Signature is a Schnorr signature (R, s) satisfying s * G = R + e * pk.
type Signature struct {
	R *curve420.Element
	S *curve420.Scalar
}

// Encode returns the fixed-length byte encoding of the signature, the point
// R followed by the scalar s.
func (sig *Signature) Encode() []byte {
	out := make([]byte, 0, encodedLength)
	out = append(out, sig.R.Encode()...)
	out = append(out, sig.S.Encode()...)

	return out
}

// Decode sets the receiver to the decoding of the input, and returns an error
// on failure.
func (sig *Signature) Decode(data []byte) error {
	if len(data) != encodedLength {
		return internal.ErrParamInvalidPointEncoding
	}

	r := curve420.NewElement()
	if err := r.Decode(data[:curve420.ElementLength]); err != nil {
		return fmt.Errorf("signature point: %w", err)
	}

	s := curve420.NewScalar()
	if err := s.Decode(data[curve420.ElementLength:]); err != nil {
		return fmt.Errorf("signature scalar: %w", err)
	}

	sig.R = r
	sig.S = s

	return nil
}

// Hex returns the fixed-sized hexadecimal encoding of the signature.
func (sig *Signature) Hex() string {
	return hex.EncodeToString(sig.Encode())
}

// DecodeHex sets the receiver to the decoding of the hex encoded signature.
func (sig *Signature) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return sig.Decode(b)
}

// MarshalBinary returns the byte encoding of the signature.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	return sig.Encode(), nil
}

// UnmarshalBinary sets the receiver to the decoding of the byte encoded signature.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	return sig.Decode(data)
}

type signatureJSON struct {
	R string `json:"r"`
	S string `json:"s"`
}

// MarshalJSON implements the json.Marshaler interface.
func (sig *Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(signatureJSON{R: sig.R.Hex(), S: sig.S.Hex()})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (sig *Signature) UnmarshalJSON(data []byte) error {
	var in signatureJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%w", err)
	}

	r := curve420.NewElement()
	if err := r.DecodeHex(in.R); err != nil {
		return fmt.Errorf("signature point: %w", err)
	}

	s := curve420.NewScalar()
	if err := s.DecodeHex(in.S); err != nil {
		return fmt.Errorf("signature scalar: %w", err)
	}

	sig.R = r
	sig.S = s

	return nil
}
