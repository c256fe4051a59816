// reduce.go - Modular reduction.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber1024

const (
	halfQ = (paramQ - 1) / 2

	// floor(2^24 / q)
	barrettMultiplier = 5039
	barrettShift      = 24

	// 128^-1 mod q, the scaling factor applied by the inverse NTT.
	inverseDegree = 3303
)

// reduceOnce maps x in [0, 2q) to x mod q without branching.
func reduceOnce(x uint16) uint16 {
	m := x - paramQ
	c := 0 - (m >> 15) // All ones iff x < q.
	return (c & x) | (^c & m)
}

// barrettReduce returns x mod q for x < q + 2q^2.
func barrettReduce(x uint32) uint16 {
	quotient := uint32((uint64(x) * barrettMultiplier) >> barrettShift)
	return reduceOnce(uint16(x - quotient*paramQ))
}

// ctLess returns 1 if a < b and 0 otherwise.  Both operands must be
// below 2^31.
func ctLess(a, b uint32) uint32 {
	return (a - b) >> 31
}
