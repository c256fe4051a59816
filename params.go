// params.go - Kyber1024 parameters.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

const (
	paramN   = 256
	paramK   = 4
	paramQ   = 3329
	paramEta = 2 // used in sampler, for both eta1 and eta2
	paramDu  = 11
	paramDv  = 5

	symBytes = 32

	polyBytes              = 12 * paramN / 8
	polyVecBytes           = paramK * polyBytes
	polyCompressedBytes    = paramDv * paramN / 8
	polyVecCompressedBytes = paramK * paramDu * paramN / 8

	cpaPublicKeySize  = polyVecBytes + symBytes
	cpaPrivateKeySize = polyVecBytes
)

const (
	// SeedSize is the length of every seed consumed by the KEM in bytes.
	SeedSize = symBytes

	// PublicKeySize is the length of a serialized public key in bytes.
	PublicKeySize = cpaPublicKeySize

	// PrivateKeySize is the length of a serialized private key in bytes.
	PrivateKeySize = cpaPrivateKeySize + cpaPublicKeySize + 2*symBytes

	// CiphertextSize is the length of a ciphertext in bytes.
	CiphertextSize = polyVecCompressedBytes + polyCompressedBytes

	// SharedSecretSize is the conventional length of a shared secret
	// squeezed from a KDF in bytes.
	SharedSecretSize = 32
)
