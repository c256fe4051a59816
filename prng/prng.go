// prng.go - Entropy sources.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package prng provides the entropy sources that feed the Kyber1024 seeds.
//
// Reader quality is the caller's responsibility: the KEM assumes that every
// seed it is handed is uniformly random and used exactly once.  System is
// the right choice outside of testing.  The ChaCha20 DRBG exists so that a
// complete run can be replayed from a single 32 byte seed.
package prng

import (
	"crypto/rand"
	"errors"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the ChaCha20 DRBG seed size in bytes.
const SeedSize = chacha20.KeySize

// ErrReset is the error returned when reading from a DRBG after Reset.
var ErrReset = errors.New("prng: DRBG has been reset")

// System is the operating system's CSPRNG.  It is safe for concurrent use.
var System io.Reader = rand.Reader

// Zero returns nothing but zero bytes.  It reproduces the all zero seed test
// vector and must never be used to generate real keys.
var Zero io.Reader = zeroReader{}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// ChaCha20 is a deterministic random bit generator that returns the
// ChaCha20 keystream under the seed, with an all zero nonce.  It is safe for
// concurrent use, though concurrent readers observe an unspecified
// interleaving of the stream.
type ChaCha20 struct {
	mu sync.Mutex
	c  *chacha20.Cipher
}

// NewChaCha20 returns a DRBG keyed with seed.  The seed is not retained, and
// may be wiped by the caller once this returns.
func NewChaCha20(seed *[SeedSize]byte) *ChaCha20 {
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		panic("prng: " + err.Error())
	}
	return &ChaCha20{c: c}
}

// Read fills p with the next len(p) bytes of the keystream.  It panics once
// 256 GiB have been produced, as the block counter would wrap.
func (r *ChaCha20) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.c == nil {
		return 0, ErrReset
	}

	for i := range p {
		p[i] = 0
	}
	r.c.XORKeyStream(p, p)
	return len(p), nil
}

// Reset discards the keystream state.  Subsequent reads fail with
// ErrReset.
func (r *ChaCha20) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.c = nil
}
