// sample.go - Kyber1024 samplers.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

const (
	shake128Rate = 168 // Stupid that this isn't exposed.

	// Enough blocks for a single squeeze to succeed with overwhelming
	// probability, as in the reference implementation.
	uniformBlocks = (12*paramN/8*(1<<12)/paramQ + shake128Rate) / shake128Rate

	noiseBytes = paramEta * paramN / 4
)

// uniform sets p to Parse(SHAKE-128(seed || x || y)).  Every coefficient is
// uniform over [0, q) thanks to rejection sampling.  The result is directly
// interpreted as being in the NTT domain.
func (p *nttPoly) uniform(seed *[symBytes]byte, x, y byte) {
	var extSeed [symBytes + 2]byte
	var buf [shake128Rate * uniformBlocks]byte

	copy(extSeed[:], seed[:])
	extSeed[symBytes] = x
	extSeed[symBytes+1] = y

	// h and buf are left unscrubbed because the output is public.
	h := sha3.NewShake128()
	h.Write(extSeed[:])
	h.Read(buf[:])

	// The rate is a multiple of 3, so candidates never straddle a refill.
	n := len(buf)
	for ctr, pos := 0, 0; ctr < paramN; {
		if pos+3 > n {
			n = shake128Rate
			h.Read(buf[:n])
			pos = 0
		}

		d1 := uint16(buf[pos]) | (uint16(buf[pos+1])&0x0f)<<8
		d2 := uint16(buf[pos+1])>>4 | uint16(buf[pos+2])<<4
		pos += 3

		if d1 < paramQ {
			p.coeffs[ctr] = d1
			ctr++
		}
		if d2 < paramQ && ctr < paramN {
			p.coeffs[ctr] = d2
			ctr++
		}
	}
}

// getNoise sets p to a sample of the centered binomial distribution with
// eta = 2, using SHAKE-256(seed || nonce) as the source of randomness.
func (p *poly) getNoise(seed *[symBytes]byte, nonce byte) {
	var extSeed [symBytes + 1]byte
	var buf [noiseBytes]byte

	copy(extSeed[:], seed[:])
	extSeed[symBytes] = nonce

	h := sha3.NewShake256()
	h.Write(extSeed[:])
	h.Read(buf[:])
	h.Reset()

	for i := 0; i < paramN/8; i++ {
		t := binary.LittleEndian.Uint32(buf[4*i:])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := uint(0); j < 8; j++ {
			a := uint16((d >> (4 * j)) & 0x3)
			b := uint16((d >> (4*j + 2)) & 0x3)
			p.coeffs[8*i+int(j)] = reduceOnce(a + paramQ - b)
		}
	}

	// Scrub the random bits...
	memwipe(extSeed[:])
	memwipe(buf[:])
}
