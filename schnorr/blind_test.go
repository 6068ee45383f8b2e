// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package schnorr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlindSigning(t *testing.T) {
	sk, pk := schnorrKeyPair(t)
	message := []byte("vote=yes")

	// signer commits to a nonce
	signer := NewSigner(sk)

	// requester blinds the challenge
	requester := NewRequester(pk, signer.Commitment(), message)
	blinded := requester.BlindedChallenge()

	// signer answers
	response, err := signer.Sign(blinded)
	require.NoError(t, err)

	// requester unblinds
	sig := requester.Finalize(response)

	assert.True(t, Verify(pk, message, sig), "unblinded signature must verify under plain Schnorr")
	assert.False(t, Verify(pk, []byte("vote=no"), sig), "another message must not verify")
}

func TestBlindSignerView(t *testing.T) {
	sk, pk := schnorrKeyPair(t)
	message := []byte("hidden from the signer")

	signer := NewSigner(sk)
	commitment := signer.Commitment()

	requester := NewRequester(pk, commitment, message)
	blinded := requester.BlindedChallenge()

	response, err := signer.Sign(blinded)
	require.NoError(t, err)

	sig := requester.Finalize(response)

	// the signature components differ from everything the signer saw
	assert.Equal(t, 0, sig.R.Equal(commitment), "R' must differ from the signer's commitment")
	assert.Equal(t, 0, sig.S.Equal(response), "s' must differ from the signer's response")
	assert.Equal(t, 0, requester.ePrime.Equal(blinded), "e' must differ from the blinded challenge")
}

func TestSignerSingleUse(t *testing.T) {
	sk, pk := schnorrKeyPair(t)

	signer := NewSigner(sk)
	requester := NewRequester(pk, signer.Commitment(), []byte("first"))

	_, err := signer.Sign(requester.BlindedChallenge())
	require.NoError(t, err)

	// a second challenge against the same commitment must fail
	second := NewRequester(pk, signer.Commitment(), []byte("second"))

	_, err = signer.Sign(second.BlindedChallenge())
	assert.ErrorIs(t, err, ErrUsedCommitment)
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	sk, pk := schnorrKeyPair(t)

	m1 := []byte("session one")
	m2 := []byte("session two")

	s1 := NewSigner(sk)
	s2 := NewSigner(sk)

	assert.Equal(t, 0, s1.Commitment().Equal(s2.Commitment()), "sessions must use independent nonces")

	r1 := NewRequester(pk, s1.Commitment(), m1)
	r2 := NewRequester(pk, s2.Commitment(), m2)

	resp1, err := s1.Sign(r1.BlindedChallenge())
	require.NoError(t, err)

	resp2, err := s2.Sign(r2.BlindedChallenge())
	require.NoError(t, err)

	assert.True(t, Verify(pk, m1, r1.Finalize(resp1)))
	assert.True(t, Verify(pk, m2, r2.Finalize(resp2)))
}

func TestPartiallyBlindSigning(t *testing.T) {
	sk, pk := schnorrKeyPair(t)

	message := []byte("blinded part of the message")
	info := []byte("epoch=42")

	signer := NewSigner(sk)
	requester := NewPartiallyBlindRequester(pk, signer.Commitment(), message, info)

	response, err := signer.Sign(requester.BlindedChallenge())
	require.NoError(t, err)

	sig := requester.Finalize(response)

	require.Equal(t, info, sig.Info)
	assert.True(t, VerifyPartiallyBlind(pk, message, sig), "partially-blind signature must verify")

	// tampered message
	assert.False(t, VerifyPartiallyBlind(pk, []byte("different part"), sig))

	// tampered info
	tampered := &PartiallyBlindSignature{R: sig.R, S: sig.S, Info: []byte("epoch=43")}
	assert.False(t, VerifyPartiallyBlind(pk, message, tampered), "another info tag must not verify")
}

func TestPartiallyBlindMalformed(t *testing.T) {
	sk, pk := schnorrKeyPair(t)

	signer := NewSigner(sk)
	requester := NewPartiallyBlindRequester(pk, signer.Commitment(), []byte("m"), []byte("i"))

	response, err := signer.Sign(requester.BlindedChallenge())
	require.NoError(t, err)

	sig := requester.Finalize(response)

	assert.False(t, VerifyPartiallyBlind(nil, []byte("m"), sig))
	assert.False(t, VerifyPartiallyBlind(pk, []byte("m"), nil))
	assert.False(t, VerifyPartiallyBlind(pk, []byte("m"), &PartiallyBlindSignature{R: sig.R, S: nil}))
}
