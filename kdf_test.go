// kdf_test.go - Kyber1024 KDF tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func testKDF() *KDF {
	var preKey, ctHash [symBytes]byte
	for i := range preKey {
		preKey[i] = byte(i)
		ctHash[i] = byte(0xff - i)
	}
	return newKDF(&preKey, &ctHash)
}

func TestKDFStreaming(t *testing.T) {
	for _, split := range [][2]int{{0, 64}, {1, 63}, {32, 32}, {135, 200}, {136, 1}, {500, 700}} {
		whole := make([]byte, split[0]+split[1])
		testKDF().Squeeze(whole)

		k := testKDF()
		first := make([]byte, split[0])
		second := make([]byte, split[1])
		k.Squeeze(first)
		k.Squeeze(second)

		require.Equal(t, whole, append(first, second...), "split %v", split)
	}
}

func TestKDFMatchesShake256(t *testing.T) {
	var in [2 * symBytes]byte
	for i := 0; i < symBytes; i++ {
		in[i] = byte(i)
		in[symBytes+i] = byte(0xff - i)
	}

	want := make([]byte, 100)
	sha3.ShakeSum256(want, in[:])

	got := make([]byte, 100)
	testKDF().Squeeze(got)
	require.Equal(t, want, got)
}

func TestKDFCloneAfterSqueeze(t *testing.T) {
	var seed [SeedSize]byte
	pk, _ := KeyGen(&seed, &seed)
	_, k := Encapsulate(&seed, pk)

	var first [1]byte
	k.Squeeze(first[:])
	c := k.Clone()

	want := make([]byte, 1+SharedSecretSize)
	_, fresh := Encapsulate(&seed, pk)
	fresh.Squeeze(want)

	got := c.SharedSecret()
	require.Equal(t, want[1:], got[:])
	require.Equal(t, want[:1], first[:])
}

func TestKDFReset(t *testing.T) {
	k := testKDF()
	c := k.Clone()
	k.Reset()
	k.Reset()

	var out [8]byte
	require.PanicsWithValue(t, ErrKDFReset, func() { k.Squeeze(out[:]) })
	require.PanicsWithValue(t, ErrKDFReset, func() { k.SharedSecret() })
	require.PanicsWithValue(t, ErrKDFReset, func() { k.Clone().Squeeze(out[:]) })

	// Clones taken before the reset are unaffected.
	want := make([]byte, len(out))
	testKDF().Squeeze(want)
	c.Squeeze(out[:])
	require.Equal(t, want, out[:])
}

func TestKDFClone(t *testing.T) {
	k := testKDF()
	var prefix [10]byte
	k.Squeeze(prefix[:])

	c := k.Clone()
	a, b := k.SharedSecret(), c.SharedSecret()
	require.Equal(t, a, b)

	// The clone is independent of the original.
	var x, y [16]byte
	k.Squeeze(x[:])
	k.Squeeze(y[:])
	var z [16]byte
	c.Squeeze(z[:])
	require.Equal(t, x, z)
	require.NotEqual(t, y, z)
}
