// poly.go - Kyber1024 polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

// poly is an element of Z_q[X]/(X^256 + 1) in the normal domain.  All
// coefficients are kept fully reduced, in [0, q).
type poly struct {
	coeffs [paramN]uint16
}

// nttPoly is an element of Z_q[X]/(X^256 + 1) in the NTT domain.  The two
// types are deliberately distinct so that pointwise multiplication can not be
// applied to a polynomial that was never transformed.
type nttPoly struct {
	coeffs [paramN]uint16
}

func (p *poly) reset() {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}

func (p *poly) add(a, b *poly) {
	addCoeffs(&p.coeffs, &a.coeffs, &b.coeffs)
}

func (p *poly) sub(a, b *poly) {
	subCoeffs(&p.coeffs, &a.coeffs, &b.coeffs)
}

// invNTT sets p to the inverse transform of a.
func (p *poly) invNTT(a *nttPoly) {
	p.coeffs = a.coeffs
	invNTT(&p.coeffs)
}

func (p *nttPoly) reset() {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}

func (p *nttPoly) add(a, b *nttPoly) {
	addCoeffs(&p.coeffs, &a.coeffs, &b.coeffs)
}

func (p *nttPoly) sub(a, b *nttPoly) {
	subCoeffs(&p.coeffs, &a.coeffs, &b.coeffs)
}

// ntt sets p to the forward transform of a.
func (p *nttPoly) ntt(a *poly) {
	p.coeffs = a.coeffs
	ntt(&p.coeffs)
}

// pointwise sets p to a*b.  The product is computed as 128 products of
// degree one polynomials modulo X^2 - zeta^(2*br(i)+1).
func (p *nttPoly) pointwise(a, b *nttPoly) {
	for i := 0; i < paramN/2; i++ {
		a0, a1 := uint32(a.coeffs[2*i]), uint32(a.coeffs[2*i+1])
		b0, b1 := uint32(b.coeffs[2*i]), uint32(b.coeffs[2*i+1])

		t := uint32(barrettReduce(a1 * b1))
		p.coeffs[2*i] = barrettReduce(a0*b0 + t*uint32(gammas[i]))
		p.coeffs[2*i+1] = barrettReduce(a0*b1 + a1*b0)
	}
}

// mulAcc adds a*b to p.
func (p *nttPoly) mulAcc(a, b *nttPoly) {
	var t nttPoly
	t.pointwise(a, b)
	p.add(p, &t)
	t.reset()
}

func addCoeffs(r, a, b *[paramN]uint16) {
	for i := range r {
		r[i] = reduceOnce(a[i] + b[i])
	}
}

func subCoeffs(r, a, b *[paramN]uint16) {
	for i := range r {
		r[i] = reduceOnce(a[i] - b[i] + paramQ)
	}
}
