// kdf.go - Kyber1024 key derivation function.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

import (
	"errors"

	"golang.org/x/crypto/sha3"
)

// ErrKDFReset is the panic value raised when squeezing a KDF after Reset.
var ErrKDFReset = errors.New("kyber1024: KDF has been reset")

// KDF is the key derivation state returned by Encapsulate and Decapsulate.
// It is a SHAKE-256 instance that has absorbed the pre-key and the hash of
// the ciphertext, and from which any amount of shared secret material may be
// squeezed.
//
// A KDF is not safe for concurrent use.  Every encapsulation and
// decapsulation returns a fresh instance, so independent exchanges never
// share state.
type KDF struct {
	xof sha3.ShakeHash
}

func newKDF(preKey, ctHash *[symBytes]byte) *KDF {
	xof := sha3.NewShake256()
	xof.Write(preKey[:])
	xof.Write(ctHash[:])
	return &KDF{xof: xof}
}

// Squeeze fills out with the next len(out) bytes of shared secret material.
// Successive calls continue the same output stream, so squeezing L1 and then
// L2 bytes yields the same bytes as squeezing L1+L2 bytes at once.  It
// panics with ErrKDFReset if k has been reset.
func (k *KDF) Squeeze(out []byte) {
	if k.xof == nil {
		panic(ErrKDFReset)
	}
	k.xof.Read(out)
}

// SharedSecret squeezes the next SharedSecretSize bytes.  For a fresh KDF
// this is the standard Kyber1024 shared secret.
func (k *KDF) SharedSecret() [SharedSecretSize]byte {
	var ss [SharedSecretSize]byte
	k.Squeeze(ss[:])
	return ss
}

// Clone returns an independent copy of k, positioned at the same point of
// the output stream.  Cloning a reset KDF yields a reset KDF.
func (k *KDF) Clone() *KDF {
	if k.xof == nil {
		return &KDF{}
	}
	return &KDF{xof: k.xof.Clone()}
}

// Reset discards the KDF state.  Subsequent calls to Squeeze panic with
// ErrKDFReset.  Reset may be called more than once.
func (k *KDF) Reset() {
	if k.xof == nil {
		return
	}
	k.xof.Reset()
	k.xof = nil
}
