// bitpack_test.go - round-trip property for ByteEncode/ByteDecode.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBitPackRoundTrip checks invariant 7: for d in [1,12] and f of length
// 256 with entries in [0, m), where m is 2^d for d < 12 and q for d = 12,
// ByteDecode_d(ByteEncode_d(f)) = f.
func TestBitPackRoundTrip(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(1))

	for d := 1; d <= 12; d++ {
		f := make([]uint16, n)
		mod := uint16(1) << uint(d)
		if d == 12 {
			mod = q
		}
		for i := range f {
			f[i] = uint16(rng.Intn(int(mod)))
		}

		encoded := byteEncode(f, d)
		require.Len(encoded, n*d/8, "d=%d: encoded length", d)

		decoded := byteDecode(encoded, d)
		require.Equal(f, decoded, "d=%d: round trip", d)
	}
}

func TestByteEncodePanicsOnOversizedCoefficient(t *testing.T) {
	require := require.New(t)

	f := make([]uint16, n)
	f[0] = 1 << 3 // does not fit in 3 bits

	require.Panics(func() { byteEncode(f, 3) })
}

func TestByteDecode12SilentlyReducesModQ(t *testing.T) {
	require := require.New(t)

	f := make([]uint16, n)
	f[0] = q // in [q, 4096), a value FIPS 203 accepts and reduces rather than rejects
	encoded := byteEncode(f, 12)

	decoded := byteDecode(encoded, 12)
	require.Equal(uint16(0), decoded[0], "12-bit decode should reduce q to 0")
}
