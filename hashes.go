// hashes.go - domain-named wrappers over SHA-3/SHAKE.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// hashH is H(s) = SHA3-256(s), 32 bytes.
func hashH(s []byte) [SymSize]byte {
	return sha3.Sum256(s)
}

// hashJ is J(s) = SHAKE-256(s) truncated to 32 bytes.
func hashJ(s []byte) [SymSize]byte {
	var out [SymSize]byte
	sha3.ShakeSum256(out[:], s)
	return out
}

// hashG is G(c) = SHA3-512(c), split into two 32-byte halves.
func hashG(c []byte) (a, b [SymSize]byte) {
	sum := sha3.Sum512(c)
	copy(a[:], sum[:SymSize])
	copy(b[:], sum[SymSize:])
	return
}

// prf is PRF_eta(s, b) = SHAKE-256(s || b) truncated to 64*eta bytes. s is
// 32 bytes, b is a single byte nonce, eta is 2 or 3.
func prf(eta int, s []byte, b byte) []byte {
	if eta != 2 && eta != 3 {
		panic("mlkem: prf: eta must be in {2,3}")
	}

	h := sha3.NewShake256()
	h.Write(s)
	h.Write([]byte{b})

	out := make([]byte, 64*eta)
	h.Read(out)
	return out
}

// newXOF returns a SHAKE-128 stream seeded with rho || j || i, per
// XOF(rho, i, j) = SHAKE-128(rho || j || i).
func newXOF(rho []byte, i, j byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{j, i})
	return h
}
