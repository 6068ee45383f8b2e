// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package schnorr

import (
	"github.com/bytemare/curve420"
)

// PartiallyBlindSignature is a Schnorr signature carrying the public info tag
// that was bound into its challenge.
type PartiallyBlindSignature struct {
	R    *curve420.Element
	S    *curve420.Scalar
	Info []byte
}

// PartiallyBlindRequester is the requesting party of the partially-blind
// protocol. It runs the blind protocol with the challenge additionally bound
// to an info tag known to both parties.
type PartiallyBlindRequester struct {
	Requester
	info []byte
}

// NewPartiallyBlindRequester blinds the signer's commitment like NewRequester
// does, with the challenge computed over (R', pk, message, info).
func NewPartiallyBlindRequester(pk, commitment *curve420.Element, message, info []byte) *PartiallyBlindRequester {
	r := &PartiallyBlindRequester{
		Requester: Requester{
			pk:    pk.Copy(),
			alpha: curve420.NewScalar().Random(),
			beta:  curve420.NewScalar().Random(),
		},
		info: append([]byte(nil), info...),
	}

	r.rPrime = commitment.Copy().
		Add(curve420.Base().Multiply(r.alpha)).
		Subtract(pk.Copy().Multiply(r.beta))

	r.ePrime = challenge(dsPartiallyBlind, []*curve420.Element{r.rPrime, r.pk}, message, r.info)

	return r
}

// Finalize unblinds the signer's response into (R', s + alpha, info).
func (r *PartiallyBlindRequester) Finalize(s *curve420.Scalar) *PartiallyBlindSignature {
	return &PartiallyBlindSignature{
		R:    r.rPrime.Copy(),
		S:    s.Copy().Add(r.alpha),
		Info: append([]byte(nil), r.info...),
	}
}

// VerifyPartiallyBlind returns whether sig is a valid partially-blind
// signature over message and the info tag it carries, under the public key
// pk. Failures yield false with no distinction of the cause.
func VerifyPartiallyBlind(pk *curve420.Element, message []byte, sig *PartiallyBlindSignature) bool {
	if pk == nil || sig == nil || sig.R == nil || sig.S == nil {
		return false
	}

	if sig.S.IsZero() {
		return false
	}

	e := challenge(dsPartiallyBlind, []*curve420.Element{sig.R, pk}, message, sig.Info)

	lhs := curve420.Base().Multiply(sig.S)
	rhs := sig.R.Copy().Add(pk.Copy().Multiply(e))

	return lhs.Equal(rhs) == 1
}
