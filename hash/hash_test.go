// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash

import (
	"bytes"
	"testing"
)

var testData = []byte("the 420-bit curve challenge input")

func TestAvailability(t *testing.T) {
	for _, id := range []Hashing{SHA512, SHA3_512, SHAKE256} {
		if !id.Available() {
			t.Fatalf("%s must be available", id)
		}
	}

	if Hashing(0).Available() || maxHashing.Available() {
		t.Fatal("invalid identifiers must not be available")
	}
}

func TestOutputSizes(t *testing.T) {
	tests := []struct {
		id   Hashing
		size int
	}{
		{SHA512, 64},
		{SHA3_512, 64},
		{SHAKE256, 72},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			if tt.id.OutputSize() != tt.size {
				t.Fatalf("expected output size %d, got %d", tt.size, tt.id.OutputSize())
			}

			out := tt.id.Get().Hash(testData)
			if len(out) != tt.size {
				t.Fatalf("expected digest length %d, got %d", tt.size, len(out))
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	for _, id := range []Hashing{SHA512, SHA3_512, SHAKE256} {
		h1 := id.Get().Hash(testData)
		h2 := id.Get().Hash(testData)

		if !bytes.Equal(h1, h2) {
			t.Fatalf("%s is not deterministic", id)
		}
	}
}

func TestReuseAfterReset(t *testing.T) {
	h := Default.Get()

	first := h.Hash(testData)
	second := h.Hash(testData)

	if !bytes.Equal(first, second) {
		t.Fatal("hashing twice with the same handle must agree")
	}
}

func TestDistinctInputsDistinctDigests(t *testing.T) {
	h := Default.Get()

	if bytes.Equal(h.Hash([]byte("a")), h.Hash([]byte("b"))) {
		t.Fatal("distinct inputs must not collide")
	}
}

func TestVariadicConcatenation(t *testing.T) {
	h := Default.Get()

	joined := h.Hash([]byte("ab"), []byte("cd"))
	single := h.Hash([]byte("abcd"))

	if !bytes.Equal(joined, single) {
		t.Fatal("variadic input must hash as the concatenation")
	}
}

func TestDefaultChallengeMargin(t *testing.T) {
	// the challenge digest must exceed the 418-bit group order by at least 128 bits
	if Default.OutputSize()*8 < 418+128 {
		t.Fatal("default digest output is too short for challenge reduction")
	}
}
