// random.go - the source of randomness GenerateKeyPair and Encaps draw on.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/rand"
	"io"
)

// RandomSource is anything that can fill a byte slice with randomness
// suitable for key generation and encapsulation. An io.Reader already is
// exactly this: "fill a byte slice" is what Read does, so no bespoke
// interface is introduced here. GenerateKeyPair and Encaps accept one so
// tests and deterministic KAT reproduction can hand in a fixed byte stream;
// passing nil falls back to DefaultRandomSource.
type RandomSource = io.Reader

// DefaultRandomSource returns the operating system's cryptographic random
// number generator, the correct choice for every caller outside of tests
// and known-answer reproduction. GenerateKeyPair and Encaps call this
// themselves when handed a nil RandomSource.
func DefaultRandomSource() RandomSource {
	return rand.Reader
}

// orDefault substitutes DefaultRandomSource for a nil rng.
func orDefault(rng RandomSource) RandomSource {
	if rng == nil {
		return DefaultRandomSource()
	}
	return rng
}
