// kpke.go - K-PKE, the IND-CPA-secure public-key encryption scheme ML-KEM
// wraps with a Fujisaki-Okamoto transform (spec section 4.6).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// sampleMatrix deterministically expands a 32-byte seed into the k*k matrix
// A of uniformly-random NTT-domain polynomials (spec section 4.6, the
// "generate A" step of both KeyGen and Encrypt): entry [i][j] is
// SampleNTT(XOF(rho, i, j)).
func (p *ParameterSet) sampleMatrix(rho []byte) [][]*PolyNTT {
	a := make([][]*PolyNTT, p.k)
	for i := range a {
		a[i] = make([]*PolyNTT, p.k)
		for j := range a[i] {
			a[i][j] = SampleNTT(newXOF(rho, byte(i), byte(j)))
		}
	}
	return a
}

// kpkeKeyGen implements Algorithm 13, K-PKE.KeyGen(d): derive (rho, sigma)
// from the seed, sample A, s and e, and form t = A*s + e. Returns the raw
// PKE encryption and decryption keys (ek is 384*k+32 bytes, dk is 384*k
// bytes); ML-KEM's KeyGenInternal wraps these with z and H(ek).
func (p *ParameterSet) kpkeKeyGen(d []byte) (ek, dk []byte) {
	seed := make([]byte, SymSize+1)
	copy(seed, d)
	seed[SymSize] = byte(p.k)
	rho, sigma := hashG(seed)

	a := p.sampleMatrix(rho[:])

	var nonce byte
	s := make([]*PolyNTT, p.k)
	for i := range s {
		s[i] = SamplePolyCBD(prf(p.eta1, sigma[:], nonce), p.eta1).NTT()
		nonce++
	}
	e := make([]*PolyNTT, p.k)
	for i := range e {
		e[i] = SamplePolyCBD(prf(p.eta1, sigma[:], nonce), p.eta1).NTT()
		nonce++
	}

	t := make([]*PolyNTT, p.k)
	for i := 0; i < p.k; i++ {
		acc := &PolyNTT{}
		for j := 0; j < p.k; j++ {
			acc = acc.Add(a[i][j].BaseMul(s[j]))
		}
		t[i] = acc.Add(e[i])
	}

	ek = make([]byte, 0, 384*p.k+SymSize)
	for i := range t {
		ek = append(ek, t[i].ByteEncode12()...)
	}
	ek = append(ek, rho[:]...)

	dk = make([]byte, 0, 384*p.k)
	for i := range s {
		dk = append(dk, s[i].ByteEncode12()...)
	}

	return ek, dk
}

// kpkeEncrypt implements Algorithm 14, K-PKE.Encrypt(ek, m, r): recover A
// and t-hat from ek, sample y, e1, e2 from the coins r, and form
// u = A^T*y + e1, v = t-hat . y + e2 + Decompress_1(m).
func (p *ParameterSet) kpkeEncrypt(ek, m, r []byte) []byte {
	t := make([]*PolyNTT, p.k)
	for i := 0; i < p.k; i++ {
		t[i] = PolyNTTByteDecode12(ek[384*i : 384*(i+1)])
	}
	rho := ek[384*p.k:]

	a := p.sampleMatrix(rho)

	var nonce byte
	y := make([]*PolyNTT, p.k)
	for i := range y {
		y[i] = SamplePolyCBD(prf(p.eta1, r, nonce), p.eta1).NTT()
		nonce++
	}
	e1 := make([]*Poly, p.k)
	for i := range e1 {
		e1[i] = SamplePolyCBD(prf(p.eta2, r, nonce), p.eta2)
		nonce++
	}
	e2 := SamplePolyCBD(prf(p.eta2, r, nonce), p.eta2)

	u := make([]*Poly, p.k)
	for i := 0; i < p.k; i++ {
		acc := &PolyNTT{}
		for j := 0; j < p.k; j++ {
			acc = acc.Add(a[j][i].BaseMul(y[j]))
		}
		u[i] = acc.InvNTT().Add(e1[i])
	}

	mu := PolyFromMsg(m)

	vAcc := &PolyNTT{}
	for i := 0; i < p.k; i++ {
		vAcc = vAcc.Add(t[i].BaseMul(y[i]))
	}
	v := vAcc.InvNTT().Add(e2).Add(mu)

	c := make([]byte, 0, p.ctSize)
	for i := 0; i < p.k; i++ {
		uc := *u[i]
		uc.Compress(p.du)
		c = append(c, uc.ByteEncodeCompressed(p.du)...)
	}
	vc := *v
	vc.Compress(p.dv)
	c = append(c, vc.ByteEncodeCompressed(p.dv)...)

	return c
}

// kpkeDecrypt implements Algorithm 15, K-PKE.Decrypt(dk, c): recover
// u', v' from c, s-hat from dk, and return Compress_1(v' - s-hat.u')
// packed back into a 32-byte message.
func (p *ParameterSet) kpkeDecrypt(dk, c []byte) []byte {
	uBytes := 32 * p.du
	uLen := uBytes * p.k
	c1, c2 := c[:uLen], c[uLen:]

	uPrime := make([]*Poly, p.k)
	for i := 0; i < p.k; i++ {
		up := PolyByteDecodeCompressed(c1[uBytes*i:uBytes*(i+1)], p.du)
		up.Decompress(p.du)
		uPrime[i] = up
	}

	vPrime := PolyByteDecodeCompressed(c2, p.dv)
	vPrime.Decompress(p.dv)

	s := make([]*PolyNTT, p.k)
	for i := 0; i < p.k; i++ {
		s[i] = PolyNTTByteDecode12(dk[384*i : 384*(i+1)])
	}

	acc := &PolyNTT{}
	for i := 0; i < p.k; i++ {
		acc = acc.Add(s[i].BaseMul(uPrime[i].NTT()))
	}
	w := vPrime.Sub(acc.InvNTT())

	return w.ToMsg()
}
