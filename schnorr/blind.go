// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package schnorr

import (
	"errors"

	"github.com/bytemare/curve420"
)

// ErrUsedCommitment is returned when a blind signer is asked to answer a
// second challenge with the same nonce commitment. Reusing the nonce across
// two challenges leaks the secret key, so a Signer is strictly single-use.
var ErrUsedCommitment = errors.New("nonce commitment already used")

// Signer is the signing party of the blind and partially-blind protocols. It
// owns the nonce k committed to by R = k * G, and answers exactly one blinded
// challenge.
type Signer struct {
	sk         *curve420.Scalar
	k          *curve420.Scalar
	commitment *curve420.Element
	used       bool
}

// NewSigner draws a fresh nonce k in [1, L) and returns a signer committed to
// R = k * G.
func NewSigner(sk *curve420.Scalar) *Signer {
	k := curve420.NewScalar().Random()

	return &Signer{
		sk:         sk.Copy(),
		k:          k,
		commitment: curve420.Base().Multiply(k),
	}
}

// Commitment returns the signer's nonce commitment R, to be sent to the
// requester.
func (s *Signer) Commitment() *curve420.Element {
	return s.commitment.Copy()
}

// Sign answers the blinded challenge with s = k + e * sk mod L. It can be
// called once: subsequent calls return ErrUsedCommitment, and the nonce is
// wiped after use.
func (s *Signer) Sign(blindedChallenge *curve420.Scalar) (*curve420.Scalar, error) {
	if s.used {
		return nil, ErrUsedCommitment
	}

	s.used = true

	res := blindedChallenge.Copy().Multiply(s.sk).Add(s.k)
	s.k.Zero()

	return res, nil
}

// Requester is the requesting party of the blind protocol. It owns the
// blinding scalars (alpha, beta) of a single session; concurrent sessions
// must use independent Requesters.
type Requester struct {
	pk     *curve420.Element
	alpha  *curve420.Scalar
	beta   *curve420.Scalar
	rPrime *curve420.Element
	ePrime *curve420.Scalar
}

// NewRequester blinds the signer's commitment into R' = R + alpha*G - beta*pk
// with fresh alpha, beta in [1, L), computes the challenge e' over (R', pk,
// message), and returns the session state.
func NewRequester(pk *curve420.Element, commitment *curve420.Element, message []byte) *Requester {
	r := &Requester{
		pk:    pk.Copy(),
		alpha: curve420.NewScalar().Random(),
		beta:  curve420.NewScalar().Random(),
	}

	r.rPrime = commitment.Copy().
		Add(curve420.Base().Multiply(r.alpha)).
		Subtract(pk.Copy().Multiply(r.beta))

	r.ePrime = challenge(dsSchnorr, []*curve420.Element{r.rPrime, r.pk}, message)

	return r
}

// BlindedChallenge returns e_blind = e' - beta mod L, to be sent to the signer.
func (r *Requester) BlindedChallenge() *curve420.Scalar {
	return r.ePrime.Copy().Subtract(r.beta)
}

// Finalize unblinds the signer's response into the signature (R', s + alpha),
// which verifies under plain Verify.
func (r *Requester) Finalize(s *curve420.Scalar) *Signature {
	return &Signature{
		R: r.rPrime.Copy(),
		S: s.Copy().Add(r.alpha),
	}
}
