// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package curve420 exposes the prime-order group over the 420-bit twisted
// Edwards curve with p = 2^420 - 335, wrapped so that cofactor artifacts
// never reach callers.
//
// Scalar multiplication on this surface runs in variable time. For secret
// scalars in adversarial settings, use the constant-time Montgomery ladder
// exposed by the ecdh package.
package curve420

import (
	"github.com/bytemare/curve420/internal/ristretto420"
)

// disallowEqual prevents comparison of wrapper types with ==, which would
// compare interface pointers instead of group values.
type disallowEqual [0]func()

const (
	// ScalarLength is the byte size of an encoded scalar.
	ScalarLength = 53

	// ElementLength is the byte size of an encoded element.
	ElementLength = 53

	// Cofactor is the ratio of the curve order to the prime group order L.
	Cofactor = 8
)

// NewScalar returns a new scalar set to 0.
func NewScalar() *Scalar {
	return newScalar(ristretto420.NewScalar())
}

// NewElement returns the identity element (point at infinity).
func NewElement() *Element {
	return newPoint(ristretto420.NewElement())
}

// Base returns the group's base point a.k.a. canonical generator.
func Base() *Element {
	e := NewElement()
	e.Element.Base()

	return e
}

// Order returns the prime order L of the group, in base 10.
func Order() string {
	return ristretto420.Order()
}
