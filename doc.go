// doc.go - mlkem godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements ML-KEM, the post-quantum key encapsulation
// mechanism standardized in FIPS 203 and derived from CRYSTALS-Kyber.
//
// ML-KEM turns a lattice-based public key encryption scheme (K-PKE, built
// on the hardness of the module learning-with-errors problem over
// Z_q[X]/(X^256+1), q=3329) into an IND-CCA2-secure KEM via a
// Fujisaki-Okamoto-style transform with implicit rejection: a malformed or
// tampered ciphertext never surfaces as an error, it decapsulates to a
// pseudo-random key indistinguishable from a genuine one.
//
// Three parameter sets are provided: MLKEM512, MLKEM768 and MLKEM1024,
// trading ciphertext/key size for security margin.
package mlkem
