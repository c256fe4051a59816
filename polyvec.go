// polyvec.go - Kyber1024 polynomial vectors and matrices.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

type polyVec [paramK]poly

type nttPolyVec [paramK]nttPoly

type matrix [paramK]nttPolyVec

func (v *polyVec) reset() {
	for i := range v {
		v[i].reset()
	}
}

func (v *polyVec) getNoise(seed *[symBytes]byte, nonce byte) {
	for i := range v {
		v[i].getNoise(seed, nonce+byte(i))
	}
}

func (v *polyVec) add(a, b *polyVec) {
	for i := range v {
		v[i].add(&a[i], &b[i])
	}
}

func (v *polyVec) invNTT(a *nttPolyVec) {
	for i := range v {
		v[i].invNTT(&a[i])
	}
}

func (v *polyVec) compressTo(r []byte) {
	const stride = paramDu * paramN / 8
	for i := range v {
		v[i].compressTo(r[i*stride:], paramDu)
	}
}

func (v *polyVec) decompressFrom(a []byte) {
	const stride = paramDu * paramN / 8
	for i := range v {
		v[i].decompressFrom(a[i*stride:], paramDu)
	}
}

func (v *nttPolyVec) reset() {
	for i := range v {
		v[i].reset()
	}
}

func (v *nttPolyVec) ntt(a *polyVec) {
	for i := range v {
		v[i].ntt(&a[i])
	}
}

func (v *nttPolyVec) add(a, b *nttPolyVec) {
	for i := range v {
		v[i].add(&a[i], &b[i])
	}
}

func (v *nttPolyVec) toBytes(r []byte) {
	for i := range v {
		v[i].toBytes(r[i*polyBytes:])
	}
}

func (v *nttPolyVec) fromBytes(a []byte) {
	for i := range v {
		v[i].fromBytes(a[i*polyBytes:])
	}
}

// innerProduct sets p to the sum of a[i]*b[i].
func (p *nttPoly) innerProduct(a, b *nttPolyVec) {
	p.reset()
	for i := range a {
		p.mulAcc(&a[i], &b[i])
	}
}

// expand deterministically derives the public matrix from seed.  When
// transposed is set the result is the transpose of the matrix used during
// key generation.
func (m *matrix) expand(seed *[symBytes]byte, transposed bool) {
	for i := range m {
		for j := range m[i] {
			if transposed {
				m[i][j].uniform(seed, byte(i), byte(j))
			} else {
				m[i][j].uniform(seed, byte(j), byte(i))
			}
		}
	}
}

// mulVec sets v to m*a.
func (v *nttPolyVec) mulVec(m *matrix, a *nttPolyVec) {
	for i := range v {
		v[i].innerProduct(&m[i], a)
	}
}
