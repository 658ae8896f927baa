// polyring.go - the polynomial ring R_q = Z_q[X]/(X^n+1).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// Poly is an element of R_q: n coefficients, each held reduced to [0, q).
type Poly struct {
	coeffs [n]uint16
}

// addQ and subQ are the pointwise add/subtract every butterfly and every
// Poly.Add/Poly.Sub/PolyNTT.Add goes through; both route their reduction through
// barrettReduce/freeze (reduce.go), matching the teacher's reduce-on-every-
// addition style rather than leaving sums to drift before a later freeze.
func addQ(a, b uint16) uint16 {
	return freeze(int16(a) + int16(b))
}

func subQ(a, b uint16) uint16 {
	return freeze(int16(a) - int16(b))
}

// Add returns p + other.
func (p *Poly) Add(other *Poly) *Poly {
	var r Poly
	for i := range r.coeffs {
		r.coeffs[i] = addQ(p.coeffs[i], other.coeffs[i])
	}
	return &r
}

// Sub returns p - other.
func (p *Poly) Sub(other *Poly) *Poly {
	var r Poly
	for i := range r.coeffs {
		r.coeffs[i] = subQ(p.coeffs[i], other.coeffs[i])
	}
	return &r
}

// Mul returns the product of p and other in R_q, computed by schoolbook
// negacyclic convolution (X^n = -1 folds high-degree terms back in negated).
// This is a reference/test path only: K-PKE multiplies in the NTT domain via
// PolyNTT.BaseMul, which is the one that actually runs on the hot path.
func (p *Poly) Mul(other *Poly) *Poly {
	var acc [n]int64
	for i := 0; i < n; i++ {
		if p.coeffs[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			term := int64(p.coeffs[i]) * int64(other.coeffs[j])
			idx := i + j
			if idx >= n {
				idx -= n
				term = -term
			}
			acc[idx] += term
		}
	}

	var r Poly
	for i := range acc {
		r.coeffs[i] = productReduce(acc[i])
	}
	return &r
}

// SamplePolyCBD draws a polynomial from the centered binomial distribution
// with parameter eta, consuming exactly 64*eta bytes of buf (spec section
// 4.3/4.6, PRF_eta output). Coefficient i is (sum of eta bits) - (sum of the
// next eta bits), reduced mod q.
func SamplePolyCBD(buf []byte, eta int) *Poly {
	if len(buf) != 64*eta {
		panic("mlkem: SamplePolyCBD: wrong input length")
	}

	getBit := func(pos int) int {
		return int((buf[pos/8] >> uint(pos%8)) & 1)
	}

	var p Poly
	bitPos := 0
	for i := 0; i < n; i++ {
		a := 0
		for j := 0; j < eta; j++ {
			a += getBit(bitPos)
			bitPos++
		}
		b := 0
		for j := 0; j < eta; j++ {
			b += getBit(bitPos)
			bitPos++
		}
		diff := a - b
		if diff < 0 {
			diff += q
		}
		p.coeffs[i] = uint16(diff)
	}

	return &p
}

// NTT maps p into the NTT domain, per spec section 4.4 (Algorithm 9): seven
// layers of Cooley-Tukey butterflies, stopping at length-2 blocks (the
// degree-one pairs PolyNTT.BaseMul multiplies directly).
func (p *Poly) NTT() *PolyNTT {
	coeffs := p.coeffs

	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := productReduce(int64(zeta) * int64(coeffs[j+length]))
				coeffs[j+length] = subQ(coeffs[j], t)
				coeffs[j] = addQ(coeffs[j], t)
			}
		}
	}

	return &PolyNTT{coeffs: coeffs}
}

// ByteEncode12 packs p's coefficients as 12-bit values (spec section 4.1).
func (p *Poly) ByteEncode12() []byte {
	return byteEncode(p.coeffs[:], 12)
}

// PolyByteDecode12 unpacks a 384-byte encoding into a Poly.
func PolyByteDecode12(b []byte) *Poly {
	var p Poly
	copy(p.coeffs[:], byteDecode(b, 12))
	return &p
}

// Compress lossily rounds every coefficient of p to a d-bit value in place.
func (p *Poly) Compress(d int) {
	compressPoly(p, d)
}

// Decompress lossily expands every coefficient of p from a d-bit value in
// place, the approximate inverse of Compress.
func (p *Poly) Decompress(d int) {
	decompressPoly(p, d)
}

// ByteEncodeCompressed packs p's coefficients as d-bit values (d < 12);
// callers compress first.
func (p *Poly) ByteEncodeCompressed(d int) []byte {
	return byteEncode(p.coeffs[:], d)
}

// PolyByteDecodeCompressed unpacks a d-bit packed encoding into a Poly;
// callers decompress afterward.
func PolyByteDecodeCompressed(b []byte, d int) *Poly {
	var p Poly
	copy(p.coeffs[:], byteDecode(b, d))
	return &p
}

// PolyFromMsg decodes a 32-byte message into R_q per spec section 4.6 step
// 6: bit i of m becomes coefficient i, expanded via Decompress_1 (0 -> 0,
// 1 -> ceil(q/2)).
func PolyFromMsg(m []byte) *Poly {
	if len(m) != SymSize {
		panic("mlkem: PolyFromMsg: wrong input length")
	}

	var p Poly
	for i := 0; i < n; i++ {
		bit := (m[i/8] >> uint(i%8)) & 1
		p.coeffs[i] = decompress(uint16(bit), 1)
	}
	return &p
}

// ToMsg encodes p back into a 32-byte message, the inverse of PolyFromMsg,
// via Compress_1.
func (p *Poly) ToMsg() []byte {
	m := make([]byte, SymSize)
	for i := 0; i < n; i++ {
		bit := compress(p.coeffs[i], 1)
		m[i/8] |= byte(bit) << uint(i%8)
	}
	return m
}
