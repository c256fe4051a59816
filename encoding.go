// encoding.go - Kyber1024 serialization and compression.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

// compress returns round(x * 2^d / q) mod 2^d for x in [0, q).
//
// The division is done with a Barrett reduction so that the running time
// does not depend on x.  Both the quotient and the remainder are needed for
// rounding, so barrettReduce can not be used directly.
func compress(x uint16, d uint) uint16 {
	product := uint32(x) << d
	quotient := uint32((uint64(product) * barrettMultiplier) >> barrettShift)
	remainder := product - quotient*paramQ // In [0, 2q).

	quotient += ctLess(halfQ, remainder)
	quotient += ctLess(paramQ+halfQ, remainder)
	return uint16(quotient) & (1<<d - 1)
}

// decompress returns round(y * q / 2^d) for y in [0, 2^d).
func decompress(y uint16, d uint) uint16 {
	product := uint32(y) * paramQ
	return uint16((product >> d) + ((product >> (d - 1)) & 1))
}

// packCoeffs serializes the low bits of every coefficient, least
// significant bit first.  out must be at least bits*32 bytes.
func packCoeffs(out []byte, c *[paramN]uint16, bits uint) {
	var acc uint32
	var accBits uint

	off := 0
	for _, v := range c {
		acc |= uint32(v) << accBits
		accBits += bits
		for accBits >= 8 {
			out[off] = byte(acc)
			off++
			acc >>= 8
			accBits -= 8
		}
	}
}

// unpackCoeffs is the inverse of packCoeffs.
func unpackCoeffs(c *[paramN]uint16, in []byte, bits uint) {
	var acc uint32
	var accBits uint

	mask := uint32(1)<<bits - 1
	off := 0
	for i := range c {
		for accBits < bits {
			acc |= uint32(in[off]) << accBits
			off++
			accBits += 8
		}
		c[i] = uint16(acc & mask)
		acc >>= bits
		accBits -= bits
	}
}

// toBytes serializes p with 12 bits per coefficient.
func (p *nttPoly) toBytes(r []byte) {
	packCoeffs(r, &p.coeffs, 12)
}

// fromBytes deserializes 12 bit coefficients.  Encodings are not required
// to be canonical: a value in [q, 2^12) is reduced once, which leaves every
// later computation unchanged modulo q.
func (p *nttPoly) fromBytes(a []byte) {
	unpackCoeffs(&p.coeffs, a, 12)
	for i, v := range p.coeffs {
		p.coeffs[i] = reduceOnce(v)
	}
}

// compressTo writes the d bit compression of p to r.
func (p *poly) compressTo(r []byte, d uint) {
	var t [paramN]uint16
	for i, v := range p.coeffs {
		t[i] = compress(v, d)
	}
	packCoeffs(r, &t, d)
}

// decompressFrom sets p to the decompression of d bit values read from a.
func (p *poly) decompressFrom(a []byte, d uint) {
	unpackCoeffs(&p.coeffs, a, d)
	for i, v := range p.coeffs {
		p.coeffs[i] = decompress(v, d)
	}
}

// fromMsg maps every message bit b to b * round(q/2).
func (p *poly) fromMsg(msg *[symBytes]byte) {
	p.decompressFrom(msg[:], 1)
}

// toMsg rounds every coefficient to the nearest of 0 and q/2 and packs the
// resulting bits.  The intermediate bits are wiped as they are message
// material.
func (p *poly) toMsg(msg *[symBytes]byte) {
	var t [paramN]uint16
	for i, v := range p.coeffs {
		t[i] = compress(v, 1)
	}
	packCoeffs(msg[:], &t, 1)
	for i := range t {
		t[i] = 0
	}
}
