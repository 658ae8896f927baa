// reduce.go - Barrett and full reduction mod q.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	barrettV     = 20159 // round(2^26 / q), q = 3329
	barrettShift = 26
)

// barrettReduce reduces a modulo q for a in roughly (-2^15, 2^15), the range
// produced by summing a handful of already-reduced coefficients. The result
// lies in (-q, q); it is not yet normalized to [0, q) (see freeze).
func barrettReduce(a int16) int16 {
	t := (int32(barrettV) * int32(a)) >> barrettShift
	t *= q
	return a - int16(t)
}

// freeze normalizes a into [0, q).
func freeze(a int16) uint16 {
	a = barrettReduce(a)
	if a < 0 {
		a += q
	}
	return uint16(a)
}

// productReduce fully reduces a wide accumulator into [0, q). It is used
// wherever an intermediate value exceeds the range barrettReduce assumes:
// the NTT butterflies and the base-case multiplication of PolyNTT (spec
// sections 4.4 and 4.5) both produce coefficient products up to q^2 in
// magnitude, and base-case multiplication sums two such products.
func productReduce(a int64) uint16 {
	r := a % q
	if r < 0 {
		r += q
	}
	return uint16(r)
}
