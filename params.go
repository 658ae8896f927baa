// params.go - ML-KEM parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "errors"

const (
	// SymSize is the size in bytes of the shared key, and of the seeds and
	// hashes used internally (d, z, m, r, H(ek), the shared secret K).
	SymSize = 32

	n = 256
	q = 3329

	// zeta is the primitive 256-th root of unity mod q used to build the
	// NTT twiddle factor table.
	zeta = 17

	// nInv is 128^-1 mod q, the scaling factor applied at the end of the
	// inverse NTT. The transform separates R_q into 128 degree-one blocks
	// (it stops at block length 2, see polyring.go), so the correction factor
	// is 128^-1, not 256^-1.
	nInv = 3303
)

var (
	// ErrInvalidParameters is returned by Construct when k, eta or the
	// compression widths fall outside the ranges FIPS 203 permits.
	ErrInvalidParameters = errors.New("mlkem: invalid parameter set")

	// ErrMalformedKey is returned when a byte serialized key does not have
	// the length its parameter set requires, or when a decapsulation key's
	// embedded H(ek) does not match its embedded ek.
	ErrMalformedKey = errors.New("mlkem: malformed key")

	// ErrMalformedCiphertext is the value Decaps panics with when a
	// ciphertext does not have the length its parameter set requires.
	ErrMalformedCiphertext = errors.New("mlkem: malformed ciphertext")
)

var (
	// MLKEM512 aims for security comparable to AES-128.
	//
	// This parameter set has a 1632 byte decapsulation key, 800 byte
	// encapsulation key, and a 768 byte ciphertext.
	MLKEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4)

	// MLKEM768 aims for security comparable to AES-192.
	//
	// This parameter set has a 2400 byte decapsulation key, 1184 byte
	// encapsulation key, and a 1088 byte ciphertext.
	MLKEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

	// MLKEM1024 aims for security comparable to AES-256.
	//
	// This parameter set has a 3168 byte decapsulation key, 1568 byte
	// encapsulation key, and a 1568 byte ciphertext.
	MLKEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5)
)

// ParameterSet names one of the standard ML-KEM parameterizations. It is
// immutable once constructed; there is no runtime parameter negotiation.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	ekSize int
	dkSize int
	ctSize int
}

// Name returns the name of the parameter set, e.g. "ML-KEM-768".
func (p *ParameterSet) Name() string {
	return p.name
}

// EncapsulationKeySize returns the byte length of ek: 384*k + 32.
func (p *ParameterSet) EncapsulationKeySize() int {
	return p.ekSize
}

// DecapsulationKeySize returns the byte length of dk: 768*k + 96.
func (p *ParameterSet) DecapsulationKeySize() int {
	return p.dkSize
}

// CiphertextSize returns the byte length of a ciphertext: 32*(du*k + dv).
func (p *ParameterSet) CiphertextSize() int {
	return p.ctSize
}

// SharedSecretSize returns the byte length of a shared secret, always 32.
func (p *ParameterSet) SharedSecretSize() int {
	return SymSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	if err := validateParams(k, eta1, eta2, du, dv); err != nil {
		panic("mlkem: " + err.Error())
	}

	p := &ParameterSet{
		name: name,
		k:    k,
		eta1: eta1,
		eta2: eta2,
		du:   du,
		dv:   dv,
	}

	p.ekSize = 384*k + 32
	p.dkSize = 768*k + 96
	p.ctSize = 32 * (du*k + dv)

	return p
}

func validateParams(k, eta1, eta2, du, dv int) error {
	if k < 2 || k > 4 {
		return ErrInvalidParameters
	}
	if eta1 != 2 && eta1 != 3 {
		return ErrInvalidParameters
	}
	if eta2 != 2 && eta2 != 3 {
		return ErrInvalidParameters
	}
	if du < 1 || du > 12 || dv < 1 || dv > 12 {
		return ErrInvalidParameters
	}
	return nil
}

// Construct validates a (k, eta1, eta2, du, dv) tuple and returns the
// corresponding parameter set, for callers that need a non-standard
// combination instead of one of MLKEM512/768/1024.
func Construct(k, eta1, eta2, du, dv int) (*ParameterSet, error) {
	if err := validateParams(k, eta1, eta2, du, dv); err != nil {
		return nil, err
	}
	return newParameterSet("ML-KEM-custom", k, eta1, eta2, du, dv), nil
}

// zetas holds zeta_i = zeta^{br7(i)} mod q for i = 1..127, in the order the
// forward/inverse NTT consume them (see polyring.go and polyntt.go). Index 0
// is an unused
// sentinel: the NTT loops number their blocks starting from 1.
var zetas [128]uint16

func init() {
	for i := 1; i < 128; i++ {
		zetas[i] = uint16(modexp(zeta, bitrev7(i), q))
	}
}

// bitrev7 reverses the low 7 bits of i.
func bitrev7(i int) int {
	var r int
	for b := 0; b < 7; b++ {
		r |= ((i >> uint(b)) & 1) << uint(6-b)
	}
	return r
}

func modexp(base, exp, mod int) int {
	result := 1
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % mod
		}
		exp >>= 1
		base = (base * base) % mod
	}
	return result
}
