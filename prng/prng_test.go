// prng_test.go - Entropy source tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package prng

import (
	"encoding/hex"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChaCha20Vector(t *testing.T) {
	// RFC 7539 appendix A.1, test vector 1.
	var seed [SeedSize]byte
	r := NewChaCha20(&seed)

	out := make([]byte, 64)
	_, err := io.ReadFull(r, out)
	require.NoError(t, err)
	require.Equal(t,
		"76b8e0ada0f13d90405d6ae55386bd28bdd219b8a08ded1aa836efcc8b770dc7"+
			"da41597c5157488d7724e03fb8d84a376a43b8f41518a11cc387b669b2ee6586",
		hex.EncodeToString(out))
}

func TestChaCha20Streaming(t *testing.T) {
	var seed [SeedSize]byte
	seed[0] = 1

	whole := make([]byte, 200)
	_, err := io.ReadFull(NewChaCha20(&seed), whole)
	require.NoError(t, err)

	r := NewChaCha20(&seed)
	var parts []byte
	for _, n := range []int{1, 63, 64, 7, 65} {
		buf := make([]byte, n)
		_, err := io.ReadFull(r, buf)
		require.NoError(t, err)
		parts = append(parts, buf...)
	}
	require.Equal(t, whole, parts)
}

func TestChaCha20Reset(t *testing.T) {
	var seed [SeedSize]byte
	r := NewChaCha20(&seed)
	r.Reset()

	_, err := r.Read(make([]byte, 1))
	require.ErrorIs(t, err, ErrReset)
}

func TestChaCha20Concurrent(t *testing.T) {
	var seed [SeedSize]byte
	r := NewChaCha20(&seed)

	// The DRBG serializes readers internally rather than through an
	// exported lock.
	_, isLocker := interface{}(r).(sync.Locker)
	require.False(t, isLocker)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < cap(errs); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := io.ReadFull(r, make([]byte, 100))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// 800 bytes were consumed in total, whatever the interleaving.
	next := make([]byte, 64)
	_, err := io.ReadFull(r, next)
	require.NoError(t, err)

	want := make([]byte, 800+64)
	_, err = io.ReadFull(NewChaCha20(&seed), want)
	require.NoError(t, err)
	require.Equal(t, want[800:], next)
}

func TestSystem(t *testing.T) {
	a, b := make([]byte, 32), make([]byte, 32)
	_, err := io.ReadFull(System, a)
	require.NoError(t, err)
	_, err = io.ReadFull(System, b)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	n, err := Zero.Read(b)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{0, 0, 0}, b)
}
