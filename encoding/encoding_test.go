// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/curve420"
	"github.com/bytemare/curve420/encoding"
	"github.com/bytemare/curve420/schnorr"
)

// record mirrors a wire-format signature exchange.
type record struct {
	Signature []byte `json:"sig"`
	PublicKey []byte `json:"pk"`
	Message   []byte `json:"msg"`
}

func testRecord(t *testing.T) *record {
	t.Helper()

	sk, pk := schnorr.GenerateKeyPair()
	message := []byte("message over the wire")
	sig := schnorr.Sign(sk, pk, message)

	return &record{
		Signature: sig.Encode(),
		PublicKey: pk.Encode(),
		Message:   message,
	}
}

func TestAvailability(t *testing.T) {
	for _, e := range []encoding.Encoding{encoding.JSON, encoding.Gob, encoding.MessagePack} {
		assert.NoError(t, e.Available())
	}

	assert.Error(t, encoding.Encoding(0).Available())
	assert.Error(t, encoding.Encoding(250).Available())
}

func TestRecordRoundTrip(t *testing.T) {
	in := testRecord(t)

	for _, e := range []encoding.Encoding{encoding.JSON, encoding.Gob, encoding.MessagePack} {
		encoded, err := e.Encode(in)
		require.NoError(t, err)

		out, err := e.Decode(encoded, &record{})
		require.NoError(t, err)

		decoded, ok := out.(*record)
		require.True(t, ok)
		assert.Equal(t, in.Signature, decoded.Signature)
		assert.Equal(t, in.PublicKey, decoded.PublicKey)
		assert.Equal(t, in.Message, decoded.Message)

		// and the decoded signature still verifies
		sig := &schnorr.Signature{}
		require.NoError(t, sig.Decode(decoded.Signature))

		pk := curve420.NewElement()
		require.NoError(t, pk.Decode(decoded.PublicKey))

		assert.True(t, schnorr.Verify(pk, decoded.Message, sig))
	}
}

func TestSignatureJSON(t *testing.T) {
	sk, pk := schnorr.GenerateKeyPair()
	sig := schnorr.Sign(sk, pk, []byte("json encoded"))

	encoded, err := encoding.JSON.Encode(sig)
	require.NoError(t, err)

	out, err := encoding.JSON.Decode(encoded, &schnorr.Signature{})
	require.NoError(t, err)

	decoded, ok := out.(*schnorr.Signature)
	require.True(t, ok)
	assert.True(t, schnorr.Verify(pk, []byte("json encoded"), decoded))
}

func TestSignatureGob(t *testing.T) {
	sk, pk := schnorr.GenerateKeyPair()
	sig := schnorr.Sign(sk, pk, []byte("gob encoded"))

	encoded, err := encoding.Gob.Encode(sig)
	require.NoError(t, err)

	out, err := encoding.Gob.Decode(encoded, &schnorr.Signature{})
	require.NoError(t, err)

	decoded, ok := out.(*schnorr.Signature)
	require.True(t, ok)
	assert.True(t, schnorr.Verify(pk, []byte("gob encoded"), decoded))
}
