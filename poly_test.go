// poly_test.go - Kyber1024 polynomial arithmetic tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoly(rng *rand.Rand) *poly {
	p := new(poly)
	for i := range p.coeffs {
		p.coeffs[i] = uint16(rng.Intn(paramQ))
	}
	return p
}

// schoolbook computes a*b in Z_q[X]/(X^256 + 1) the slow way.
func schoolbook(a, b *poly) *poly {
	var acc [paramN]int64
	for i := 0; i < paramN; i++ {
		for j := 0; j < paramN; j++ {
			t := int64(a.coeffs[i]) * int64(b.coeffs[j])
			if k := i + j; k < paramN {
				acc[k] += t
			} else {
				acc[k-paramN] -= t
			}
		}
	}

	r := new(poly)
	for i, v := range acc {
		v %= paramQ
		if v < 0 {
			v += paramQ
		}
		r.coeffs[i] = uint16(v)
	}
	return r
}

func TestReduce(t *testing.T) {
	for x := uint32(0); x < 2*paramQ; x++ {
		require.Equal(t, uint16(x%paramQ), reduceOnce(uint16(x)), "reduceOnce(%d)", x)
	}

	const bound = paramQ + 2*paramQ*paramQ
	for x := uint32(0); x < bound; x += 997 {
		require.Equal(t, uint16(x%paramQ), barrettReduce(x), "barrettReduce(%d)", x)
	}
	require.Equal(t, uint16((bound-1)%paramQ), barrettReduce(bound-1))
}

func TestNTTInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a := randomPoly(rng)

		var aHat nttPoly
		var b poly
		aHat.ntt(a)
		b.invNTT(&aHat)
		require.Equal(t, a.coeffs, b.coeffs)
	}
}

func TestNTTCoefficientsReduced(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var aHat nttPoly
	aHat.ntt(randomPoly(rng))
	for i, v := range aHat.coeffs {
		require.Less(t, v, uint16(paramQ), "coefficient %d", i)
	}
}

func TestPointwiseMatchesSchoolbook(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		a, b := randomPoly(rng), randomPoly(rng)

		var aHat, bHat, cHat nttPoly
		var c poly
		aHat.ntt(a)
		bHat.ntt(b)
		cHat.pointwise(&aHat, &bHat)
		c.invNTT(&cHat)

		require.Equal(t, schoolbook(a, b).coeffs, c.coeffs)
	}
}

func TestMulAcc(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a, b, c, d := randomPoly(rng), randomPoly(rng), randomPoly(rng), randomPoly(rng)

	var aHat, bHat, cHat, dHat, accHat nttPoly
	aHat.ntt(a)
	bHat.ntt(b)
	cHat.ntt(c)
	dHat.ntt(d)
	accHat.mulAcc(&aHat, &bHat)
	accHat.mulAcc(&cHat, &dHat)

	var got, want poly
	got.invNTT(&accHat)
	want.add(schoolbook(a, b), schoolbook(c, d))
	require.Equal(t, want.coeffs, got.coeffs)
}

func TestAddSub(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a, b := randomPoly(rng), randomPoly(rng)

	var sum, diff poly
	sum.add(a, b)
	diff.sub(&sum, b)
	require.Equal(t, a.coeffs, diff.coeffs)

	for i := range sum.coeffs {
		require.Equal(t, (a.coeffs[i]+b.coeffs[i])%paramQ, sum.coeffs[i])
	}

	// The transform is linear, so both domains must agree.
	var aHat, bHat, sumHat nttPoly
	var back poly
	aHat.ntt(a)
	bHat.ntt(b)
	sumHat.add(&aHat, &bHat)
	back.invNTT(&sumHat)
	require.Equal(t, sum.coeffs, back.coeffs)
}
