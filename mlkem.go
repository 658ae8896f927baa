// mlkem.go - the ML-KEM key encapsulation mechanism: K-PKE wrapped with a
// Fujisaki-Okamoto transform for IND-CCA2 security (spec section 4.7).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/subtle"
	"io"
)

// EncapsulationKey is the public half of an ML-KEM key pair.
type EncapsulationKey struct {
	p     *ParameterSet
	bytes []byte
	h     [SymSize]byte // cached H(ek), reused by every Encaps call
}

// Bytes returns the byte serialization of ek.
func (ek *EncapsulationKey) Bytes() []byte {
	return ek.bytes
}

// EncapsulationKeyFromBytes deserializes an EncapsulationKey for parameter
// set p. Only the length is checked; no modulus check rejects the key:
// byteDecode's d==12 case silently reduces any 12-bit value in [q, 4096)
// modulo q when the key's t-hat blocks are later decoded (see bitpack.go).
func (p *ParameterSet) EncapsulationKeyFromBytes(b []byte) (*EncapsulationKey, error) {
	if len(b) != p.ekSize {
		return nil, ErrMalformedKey
	}

	ek := &EncapsulationKey{
		p:     p,
		bytes: append([]byte(nil), b...),
		h:     hashH(b),
	}
	return ek, nil
}

// DecapsulationKey is the private half of an ML-KEM key pair. Its byte
// layout is dk_pke(384k) || ek_pke(384k+32) || H(ek)(32) || z(32), per spec
// section 4.7.
type DecapsulationKey struct {
	p     *ParameterSet
	bytes []byte
}

// Bytes returns the byte serialization of dk.
func (dk *DecapsulationKey) Bytes() []byte {
	return dk.bytes
}

// DecapsulationKeyFromBytes deserializes a DecapsulationKey for parameter
// set p, rejecting the "hash check" failure case of FIPS 203 section 7.3:
// the embedded H(ek) must match a fresh hash of the embedded ek.
func (p *ParameterSet) DecapsulationKeyFromBytes(b []byte) (*DecapsulationKey, error) {
	if len(b) != p.dkSize {
		return nil, ErrMalformedKey
	}

	ekPKE := b[384*p.k : 768*p.k+32]
	wantH := b[768*p.k+32 : 768*p.k+64]
	gotH := hashH(ekPKE)
	if subtle.ConstantTimeCompare(wantH, gotH[:]) != 1 {
		return nil, ErrMalformedKey
	}

	dk := &DecapsulationKey{p: p, bytes: append([]byte(nil), b...)}
	return dk, nil
}

// KeyGenInternal implements Algorithm 16, ML-KEM.KeyGen_internal(d, z). It is
// exported so known-answer tests can drive ML-KEM deterministically from
// fixed d, z inputs instead of an RNG (spec section 6, "internal variants
// for deterministic testing against known-answer tests"); GenerateKeyPair is
// the randomized entry point ordinary callers want.
func (p *ParameterSet) KeyGenInternal(d, z []byte) (*EncapsulationKey, *DecapsulationKey) {
	ekBytes, dkPKE := p.kpkeKeyGen(d)
	h := hashH(ekBytes)

	dkBytes := make([]byte, 0, p.dkSize)
	dkBytes = append(dkBytes, dkPKE...)
	dkBytes = append(dkBytes, ekBytes...)
	dkBytes = append(dkBytes, h[:]...)
	dkBytes = append(dkBytes, z...)

	ek := &EncapsulationKey{p: p, bytes: ekBytes, h: h}
	dk := &DecapsulationKey{p: p, bytes: dkBytes}
	return ek, dk
}

// GenerateKeyPair draws d and z from rng and runs KeyGenInternal. Per FIPS
// 203 section 7.1, a failure reading rng must not silently produce a key
// pair from short or absent randomness; callers get the read error. A nil
// rng falls back to DefaultRandomSource.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*EncapsulationKey, *DecapsulationKey, error) {
	rng = orDefault(rng)

	var d, z [SymSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(rng, z[:]); err != nil {
		return nil, nil, err
	}

	ek, dk := p.KeyGenInternal(d[:], z[:])
	return ek, dk, nil
}

// EncapsInternal implements Algorithm 17, ML-KEM.Encaps_internal(ek, m). It
// is exported for the same reason as KeyGenInternal: deterministic
// known-answer reproduction from a fixed m rather than an RNG draw.
func (ek *EncapsulationKey) EncapsInternal(m []byte) (sharedSecret, ciphertext []byte) {
	seed := make([]byte, 0, 2*SymSize)
	seed = append(seed, m...)
	seed = append(seed, ek.h[:]...)

	k, r := hashG(seed)
	c := ek.p.kpkeEncrypt(ek.bytes, m, r[:])

	return k[:], c
}

// Encaps draws randomness m from rng and runs EncapsInternal, returning a
// fresh shared secret and its ciphertext (Algorithm 20). A nil rng falls
// back to DefaultRandomSource.
func (ek *EncapsulationKey) Encaps(rng io.Reader) (sharedSecret, ciphertext []byte, err error) {
	rng = orDefault(rng)

	var m [SymSize]byte
	if _, err := io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}

	k, c := ek.EncapsInternal(m[:])
	return k, c, nil
}

// DecapsInternal implements Algorithm 18, ML-KEM.Decaps_internal(dk, c):
// re-encrypt the recovered message and, in constant time, return the
// recovered shared secret only if the re-encryption matches c, falling back
// to an implicit-rejection value derived from z otherwise (spec section 5,
// the mandatory constant-time requirement; spec section 4.7's "implicit
// rejection"). Unlike original_source's `if c != c_prime` branch, the
// comparison and selection below never branch on secret data, matching the
// teacher's own crypto/subtle usage in its superseded KEMDecrypt.
func (dk *DecapsulationKey) DecapsInternal(c []byte) []byte {
	p := dk.p

	dkPKE := dk.bytes[:384*p.k]
	ekPKE := dk.bytes[384*p.k : 768*p.k+32]
	hVal := dk.bytes[768*p.k+32 : 768*p.k+64]
	z := dk.bytes[768*p.k+64:]

	mPrime := p.kpkeDecrypt(dkPKE, c)

	gSeed := make([]byte, 0, 2*SymSize)
	gSeed = append(gSeed, mPrime...)
	gSeed = append(gSeed, hVal...)
	kPrime, rPrime := hashG(gSeed)

	jSeed := make([]byte, 0, SymSize+len(c))
	jSeed = append(jSeed, z...)
	jSeed = append(jSeed, c...)
	kBar := hashJ(jSeed)

	cPrime := p.kpkeEncrypt(ekPKE, mPrime, rPrime[:])

	equal := subtle.ConstantTimeCompare(c, cPrime)
	result := make([]byte, SymSize)
	subtle.ConstantTimeCopy(equal, result, kPrime[:])
	subtle.ConstantTimeCopy(1-equal, result, kBar[:])

	return result
}

// Decaps implements Algorithm 21, ML-KEM.Decaps(dk, c): recover the shared
// secret associated with ciphertext c, or an implicit-rejection value if c
// was tampered with. It panics if c is not CiphertextSize() bytes, matching
// the teacher's treatment of an obviously malformed ciphertext as a
// programmer error rather than a recoverable one.
func (dk *DecapsulationKey) Decaps(c []byte) []byte {
	if len(c) != dk.p.ctSize {
		panic(ErrMalformedCiphertext)
	}
	return dk.DecapsInternal(c)
}
