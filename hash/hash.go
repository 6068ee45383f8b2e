// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package hash provides an interface to the hashing functions used throughout
// the library. Challenge hashing is fixed per build to the Default function.
package hash

import (
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Hashing defines registered hashing engines.
type Hashing byte

const (
	// SHA512 identifies the Sha2 hashing function with 512 bit output.
	SHA512 Hashing = 1 + iota

	// SHA3_512 identifies the Sha3 hashing function with 512 bit output.
	SHA3_512

	// SHAKE256 identifies the SHAKE256 Extendable-Output Function.
	SHAKE256

	maxHashing

	// string IDs for the hash functions.
	sha512s   = "SHA512"
	sha3_512s = "SHA3-512"
	shake256s = "SHAKE256"

	// output size in bytes.
	size512 = 64

	// shake256Output is wide enough to leave a 128-bit margin over the
	// 418-bit group order when reduced modulo L.
	shake256Output = 72

	// security level in bits.
	sec256 = 256

	// block size in bytes.
	blockSHA3512  = 576 / 8
	blockSHAKE256 = 1088 / 8

	// Default hash used for protocol challenges, fixed per build.
	Default = SHAKE256
)

type params struct {
	newHashFunc func() hash.Hash
	newXOF      func() sha3.ShakeHash
	name        string
	blockSize   int
	outputSize  int
	security    int
}

var registeredHashing map[Hashing]*params

// Get returns a pointer to an initialised Hash structure for the according hash primitive.
func (i Hashing) Get() *Hash {
	p := registeredHashing[i]
	h := &Hash{Hashing: i, outputSize: p.outputSize}

	if p.newXOF != nil {
		h.xof = p.newXOF()
	} else {
		h.hash = p.newHashFunc()
	}

	return h
}

// Available reports whether the given hash function is linked into the binary.
func (i Hashing) Available() bool {
	return i < maxHashing && registeredHashing[i] != nil
}

// BlockSize returns the hash's block size.
func (i Hashing) BlockSize() int {
	return registeredHashing[i].blockSize
}

// OutputSize returns the hash's output size in bytes, and for a XOF the
// fixed output length it is registered with.
func (i Hashing) OutputSize() int {
	return registeredHashing[i].outputSize
}

// SecurityLevel returns the hash function's bit security level.
func (i Hashing) SecurityLevel() int {
	return registeredHashing[i].security
}

// String returns the hash function's common name.
func (i Hashing) String() string {
	return registeredHashing[i].name
}

func (i Hashing) register(f func() hash.Hash, xof func() sha3.ShakeHash, name string, blockSize, outputSize, security int) {
	registeredHashing[i] = &params{
		name:        name,
		blockSize:   blockSize,
		outputSize:  outputSize,
		security:    security,
		newHashFunc: f,
		newXOF:      xof,
	}
}

func init() {
	registeredHashing = make(map[Hashing]*params)

	SHA512.register(sha512.New, nil, sha512s, sha512.BlockSize, sha512.Size, sec256)
	SHA3_512.register(sha3.New512, nil, sha3_512s, blockSHA3512, size512, sec256)
	SHAKE256.register(nil, sha3.NewShake256, shake256s, blockSHAKE256, shake256Output, sec256)
}

// Hash offers an easy to use API for common cryptographic hash operations.
type Hash struct {
	Hashing
	hash       hash.Hash
	xof        sha3.ShakeHash
	outputSize int
}

// Write implements io.Writer.
func (h *Hash) Write(p []byte) (n int, err error) {
	if h.xof != nil {
		return h.xof.Write(p)
	}

	return h.hash.Write(p)
}

// Reset resets the Hash to its initial state.
func (h *Hash) Reset() {
	if h.xof != nil {
		h.xof.Reset()
	} else {
		h.hash.Reset()
	}
}

// Sum returns the digest of everything written so far.
func (h *Hash) Sum() []byte {
	if h.xof != nil {
		out := make([]byte, h.outputSize)
		_, _ = h.xof.Read(out)

		return out
	}

	return h.hash.Sum(nil)
}

// Hash returns the hash of the input arguments.
func (h *Hash) Hash(input ...[]byte) []byte {
	h.Reset()

	for _, i := range input {
		_, _ = h.Write(i)
	}

	return h.Sum()
}
