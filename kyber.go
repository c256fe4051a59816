// kyber.go - Kyber1024 interface.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber1024 implements the Kyber1024 IND-CCA2-secure key
// encapsulation mechanism, based on the hardness of the Module Learning
// with Errors problem.  It is compatible with the round 3 submission of
// CRYSTALS-Kyber by Roberto Avanzi, Joppe Bos, Léo Ducas, Eike Kiltz,
// Tancrède Lepoint, Vadim Lyubashevsky, John M. Schanck, Peter Schwabe,
// Gregor Seiler, and Damien Stehlé.
//
// Unlike most KEM interfaces, encapsulation and decapsulation return a KDF
// rather than a fixed size shared secret, so that callers may squeeze as
// much key material as they require.
//
// For more information see: https://pq-crystals.org/kyber/data/kyber-specification-round3-20210804.pdf
package kyber1024

import (
	"crypto/subtle"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

const (
	// UpstreamVersion is the version of the upstream specification this
	// implementation is compatible with.
	UpstreamVersion = "20210804"

	skPublicKeyOffset = cpaPrivateKeySize
	skHashOffset      = skPublicKeyOffset + cpaPublicKeySize
	skZOffset         = skHashOffset + symBytes
)

// ErrInvalidLength is the error returned when a serialized key or
// ciphertext has the wrong length.
var ErrInvalidLength = errors.New("kyber1024: invalid length")

// PublicKey is a Kyber1024 public key.
type PublicKey [PublicKeySize]byte

// PrivateKey is a Kyber1024 private key.  It embeds the public key, the
// hash of the public key, and the implicit rejection secret.
type PrivateKey [PrivateKeySize]byte

// Ciphertext is a Kyber1024 ciphertext.
type Ciphertext [CiphertextSize]byte

// ParsePublicKey copies b into a PublicKey.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, ErrInvalidLength
	}
	pk := new(PublicKey)
	copy(pk[:], b)
	return pk, nil
}

// ParsePrivateKey copies b into a PrivateKey.
func ParsePrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, ErrInvalidLength
	}
	sk := new(PrivateKey)
	copy(sk[:], b)
	return sk, nil
}

// ParseCiphertext copies b into a Ciphertext.
func ParseCiphertext(b []byte) (*Ciphertext, error) {
	if len(b) != CiphertextSize {
		return nil, ErrInvalidLength
	}
	ct := new(Ciphertext)
	copy(ct[:], b)
	return ct, nil
}

// PublicKey returns a copy of the public key embedded in sk.
func (sk *PrivateKey) PublicKey() *PublicKey {
	pk := new(PublicKey)
	copy(pk[:], sk[skPublicKeyOffset:skHashOffset])
	return pk
}

// Reset zeros the key data so that it will no longer appear in the
// process's memory.
func (sk *PrivateKey) Reset() {
	memwipe(sk[:])
}

func memwipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// KeyGen deterministically derives a key pair from the CPAPKE seed d and the
// implicit rejection seed z.  Both seeds must be uniformly random and must
// never be reused; the caller is responsible for wiping them.
func KeyGen(d, z *[SeedSize]byte) (*PublicKey, *PrivateKey) {
	pk, sk := new(PublicKey), new(PrivateKey)

	cpaKeyGen(pk[:], sk[:cpaPrivateKeySize], d)

	// sk <- sk' || pk || H(pk) || z
	copy(sk[skPublicKeyOffset:], pk[:])
	h := sha3.Sum256(pk[:])
	copy(sk[skHashOffset:], h[:])
	copy(sk[skZOffset:], z[:])

	return pk, sk
}

// GenerateKeyPair returns a public/private key pair.  The seeds are read from
// the given reader, which must return cryptographically secure random data.
func GenerateKeyPair(rand io.Reader) (*PublicKey, *PrivateKey, error) {
	var d, z [SeedSize]byte
	defer memwipe(d[:])
	defer memwipe(z[:])

	if _, err := io.ReadFull(rand, d[:]); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(rand, z[:]); err != nil {
		return nil, nil, err
	}

	pk, sk := KeyGen(&d, &z)
	return pk, sk, nil
}

// encapsulate runs the deterministic encryption path shared by both sides:
// (K, r) <- G(m || H(pk)), c <- Enc(pk, m, r).  The pre-key K is written to
// preKey.
func encapsulate(ct []byte, preKey *[symBytes]byte, pk []byte, pkHash, m *[symBytes]byte) {
	var buf [2 * symBytes]byte
	var coins [symBytes]byte
	defer memwipe(buf[:])
	defer memwipe(coins[:])

	copy(buf[:], m[:])
	copy(buf[symBytes:], pkHash[:])
	kr := sha3.Sum512(buf[:])
	defer memwipe(kr[:])

	copy(preKey[:], kr[:symBytes])
	copy(coins[:], kr[symBytes:])
	cpaEncrypt(ct, pk, m, &coins)
}

// Encapsulate deterministically encapsulates a fresh key to pk, with the
// randomness derived from seed.  It returns the ciphertext, and the KDF from
// which the shared secret is squeezed.  seed must be uniformly random and
// must never be reused; the caller is responsible for wiping it.
func Encapsulate(seed *[SeedSize]byte, pk *PublicKey) (*Ciphertext, *KDF) {
	var m, preKey [symBytes]byte
	defer memwipe(m[:])
	defer memwipe(preKey[:])

	// m <- H(seed)
	m = sha3.Sum256(seed[:])

	pkHash := sha3.Sum256(pk[:])
	ct := new(Ciphertext)
	encapsulate(ct[:], &preKey, pk[:], &pkHash, &m)

	// K <- KDF(K' || H(c))
	ctHash := sha3.Sum256(ct[:])
	return ct, newKDF(&preKey, &ctHash)
}

// EncapsulateRandom is Encapsulate, with the seed read from the given reader,
// which must return cryptographically secure random data.
func EncapsulateRandom(rand io.Reader, pk *PublicKey) (*Ciphertext, *KDF, error) {
	var seed [SeedSize]byte
	defer memwipe(seed[:])

	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, nil, err
	}

	ct, kdf := Encapsulate(&seed, pk)
	return ct, kdf, nil
}

// Decapsulate recovers the KDF encapsulated in ct with sk.
//
// Decapsulation never fails.  If ct was not produced by an honest
// Encapsulate to the matching public key, the returned KDF is derived from
// the implicit rejection secret instead, which is indistinguishable to
// anybody not holding sk.  The choice is made without branching on secret
// data.
func Decapsulate(sk *PrivateKey, ct *Ciphertext) *KDF {
	var m, preKey, pkHash [symBytes]byte
	var cmp Ciphertext
	defer memwipe(m[:])
	defer memwipe(preKey[:])

	// m' <- Dec(s, c)
	cpaDecrypt(&m, ct[:], sk[:cpaPrivateKeySize])

	// c' <- Enc(pk, m', r')
	copy(pkHash[:], sk[skHashOffset:skZOffset])
	encapsulate(cmp[:], &preKey, sk[skPublicKeyOffset:skHashOffset], &pkHash, &m)

	// K <- z if c != c', K' otherwise
	reject := 1 - subtle.ConstantTimeCompare(ct[:], cmp[:])
	subtle.ConstantTimeCopy(reject, preKey[:], sk[skZOffset:])

	ctHash := sha3.Sum256(ct[:])
	return newKDF(&preKey, &ctHash)
}
