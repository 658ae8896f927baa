// polyntt.go - the NTT domain T_q, R_q's image under the number-theoretic
// transform: 128 degree-one quotient rings Z_q[X]/(X^2-gamma_i).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "io"

// PolyNTT is a polynomial in the NTT domain.
type PolyNTT struct {
	coeffs [n]uint16
}

// gammas holds gamma_i = zeta^{2*br7(i)+1} mod q, the modulus each degree-one
// quotient ring X^2 - gamma_i uses in BaseMul.
var gammas [128]uint16

func init() {
	for i := 0; i < 128; i++ {
		gammas[i] = uint16(modexp(zeta, 2*bitrev7(i)+1, q))
	}
}

// Add returns p + other, coefficient-wise (the NTT is linear, so this is
// also (p_poly + other_poly) transformed).
func (p *PolyNTT) Add(other *PolyNTT) *PolyNTT {
	var r PolyNTT
	for i := range r.coeffs {
		r.coeffs[i] = addQ(p.coeffs[i], other.coeffs[i])
	}
	return &r
}

// BaseMul returns the product of p and other in T_q: 128 independent
// products in the degree-one rings Z_q[X]/(X^2-gamma_i) (spec section 4.5,
// Algorithm 12). For each pair of coefficients (a0 + a1*X, b0 + b1*X):
//
//	c0 = a0*b0 + gamma_i*a1*b1
//	c1 = a0*b1 + a1*b0
func (p *PolyNTT) BaseMul(other *PolyNTT) *PolyNTT {
	var r PolyNTT
	for i := 0; i < 128; i++ {
		a0, a1 := p.coeffs[2*i], p.coeffs[2*i+1]
		b0, b1 := other.coeffs[2*i], other.coeffs[2*i+1]
		gamma := gammas[i]

		c0 := int64(a0)*int64(b0) + int64(gamma)*int64(a1)*int64(b1)
		c1 := int64(a0)*int64(b1) + int64(a1)*int64(b0)

		r.coeffs[2*i] = productReduce(c0)
		r.coeffs[2*i+1] = productReduce(c1)
	}
	return &r
}

// InvNTT maps p back out of the NTT domain, per spec section 4.4
// (Algorithm 10): seven layers of Gentleman-Sande butterflies run in
// reverse of NTT's layer order, followed by a scale-down by nInv = 128^-1
// mod q.
func (p *PolyNTT) InvNTT() *Poly {
	coeffs := p.coeffs

	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := coeffs[j]
				coeffs[j] = addQ(t, coeffs[j+length])
				diff := subQ(coeffs[j+length], t)
				coeffs[j+length] = productReduce(int64(zeta) * int64(diff))
			}
		}
	}

	for i := range coeffs {
		coeffs[i] = productReduce(int64(coeffs[i]) * int64(nInv))
	}

	return &Poly{coeffs: coeffs}
}

// SampleNTT draws a polynomial directly in the NTT domain via rejection
// sampling from a uniform byte stream (spec section 4.5, Algorithm 7):
// each group of 3 bytes yields two 12-bit candidates, and a candidate is
// kept only if it falls below q, discarding 767 of every 4096 values
// (roughly 1 in 5).
func SampleNTT(xof io.Reader) *PolyNTT {
	var p PolyNTT

	var buf [3]byte
	i := 0
	for i < n {
		if _, err := io.ReadFull(xof, buf[:]); err != nil {
			panic("mlkem: SampleNTT: xof stream exhausted: " + err.Error())
		}

		d1 := uint16(buf[0]) | (uint16(buf[1]&0x0f) << 8)
		d2 := uint16(buf[1]>>4) | (uint16(buf[2]) << 4)

		if d1 < q {
			p.coeffs[i] = d1
			i++
		}
		if d2 < q && i < n {
			p.coeffs[i] = d2
			i++
		}
	}

	return &p
}

// ByteEncode12 packs p's coefficients as 12-bit values (spec section 4.1),
// used to serialize NTT-domain vectors such as t-hat into an encapsulation
// key.
func (p *PolyNTT) ByteEncode12() []byte {
	return byteEncode(p.coeffs[:], 12)
}

// PolyNTTByteDecode12 unpacks a 384-byte encoding into a PolyNTT.
func PolyNTTByteDecode12(b []byte) *PolyNTT {
	var p PolyNTT
	copy(p.coeffs[:], byteDecode(b, 12))
	return &p
}
