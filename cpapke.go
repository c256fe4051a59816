// cpapke.go - Kyber1024 CPA-secure public key encryption.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

import "golang.org/x/crypto/sha3"

func encodePublicKey(r []byte, t *nttPolyVec, rho *[symBytes]byte) {
	t.toBytes(r)
	copy(r[polyVecBytes:], rho[:])
}

func decodePublicKey(t *nttPolyVec, rho *[symBytes]byte, r []byte) {
	t.fromBytes(r)
	copy(rho[:], r[polyVecBytes:cpaPublicKeySize])
}

func encodeCiphertext(r []byte, u *polyVec, v *poly) {
	u.compressTo(r)
	v.compressTo(r[polyVecCompressedBytes:], paramDv)
}

func decodeCiphertext(u *polyVec, v *poly, r []byte) {
	u.decompressFrom(r)
	v.decompressFrom(r[polyVecCompressedBytes:], paramDv)
}

// cpaKeyGen writes a CPAPKE key pair derived from seed to pk and sk.
func cpaKeyGen(pk, sk []byte, seed *[symBytes]byte) {
	var a matrix
	var s, e polyVec
	var sHat, eHat, t nttPolyVec
	var rho, sigma [symBytes]byte

	// (rho, sigma) <- G(d)
	h := sha3.Sum512(seed[:])
	copy(rho[:], h[:symBytes])
	copy(sigma[:], h[symBytes:])
	memwipe(h[:])
	defer func() {
		// Scrub the sensitive stuff...
		memwipe(sigma[:])
		s.reset()
		e.reset()
		sHat.reset()
		eHat.reset()
	}()

	// A <- Parse(XOF(rho, j, i))
	a.expand(&rho, false)

	// s, e <- CBD_eta(PRF(sigma, N))
	s.getNoise(&sigma, 0)
	e.getNoise(&sigma, paramK)
	sHat.ntt(&s)
	eHat.ntt(&e)

	// t <- As + e
	t.mulVec(&a, &sHat)
	t.add(&t, &eHat)

	encodePublicKey(pk, &t, &rho)
	sHat.toBytes(sk)
}

// cpaEncrypt writes the encryption of msg under pk, using coins as the
// source of randomness, to c.
func cpaEncrypt(c, pk []byte, msg, coins *[symBytes]byte) {
	var at matrix
	var t, rHat, uHat nttPolyVec
	var rho [symBytes]byte
	var r, e1, u polyVec
	var e2, k, v poly
	var vHat nttPoly
	defer func() {
		// Scrub the sensitive stuff...
		r.reset()
		e1.reset()
		e2.reset()
		rHat.reset()
		uHat.reset()
		u.reset()
		vHat.reset()
		v.reset()
		k.reset()
	}()

	decodePublicKey(&t, &rho, pk)

	// A^T <- Parse(XOF(rho, i, j))
	at.expand(&rho, true)

	// r, e1, e2 <- CBD_eta(PRF(coins, N))
	r.getNoise(coins, 0)
	e1.getNoise(coins, paramK)
	e2.getNoise(coins, 2*paramK)
	rHat.ntt(&r)

	// u <- A^T r + e1
	uHat.mulVec(&at, &rHat)
	u.invNTT(&uHat)
	u.add(&u, &e1)

	// v <- t^T r + e2 + Decompress_1(m)
	vHat.innerProduct(&t, &rHat)
	v.invNTT(&vHat)
	v.add(&v, &e2)
	k.fromMsg(msg)
	v.add(&v, &k)

	encodeCiphertext(c, &u, &v)
}

// cpaDecrypt writes the decryption of c under sk to msg.
func cpaDecrypt(msg *[symBytes]byte, c, sk []byte) {
	var u polyVec
	var v, mp poly
	var s, uHat nttPolyVec
	var w nttPoly
	defer func() {
		// Scrub the sensitive stuff...
		s.reset()
		w.reset()
		mp.reset()
	}()

	decodeCiphertext(&u, &v, c)
	s.fromBytes(sk)

	// m <- Compress_1(v - s^T NTT(u))
	uHat.ntt(&u)
	w.innerProduct(&s, &uHat)
	mp.invNTT(&w)
	mp.sub(&v, &mp)
	mp.toMsg(msg)
}
