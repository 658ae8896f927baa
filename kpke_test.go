// kpke_test.go - K-PKE known-answer test and round-trip property.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKPKEKnownAnswer is S4, carried over from the K-PKE regression test in
// the source repository this module was derived from (a fixed seed run
// through KeyGen then Encrypt must reproduce an exact ciphertext).
func TestKPKEKnownAnswer(t *testing.T) {
	require := require.New(t)

	p := MLKEM768
	require.Equal(3, p.k)

	seed := []byte("Salut de la part de moi meme lee")
	require.Len(seed, SymSize)
	message := []byte("Ce message est tres confidentiel")
	require.Len(message, SymSize)

	ek, dk := p.kpkeKeyGen(seed)
	require.Len(ek, p.ekSize)
	require.Len(dk, 384*p.k)

	ct := p.kpkeEncrypt(ek, message, seed)
	require.Len(ct, p.ctSize)

	want, err := hex.DecodeString("012ac1758bc94772b397ca25074f4a215bdf198f247b7c752570718c8cb343026ab5d3d2f3d077b027eadb4f48e5f03b2e6269a526404b2da74b3f37fece1d855839434f9d9248bae4d368cf641ec582de41d5844123b0154e9ec72e1bf945c65e3b3b07fd838c1b2f810f1ba7b6edc8ff2f8c30cdc5bb962a9cf003763442388ff329714fff31d74614572c3d29106a58400e8c0192fe956a48f80b0d9ae0702b5ab92e3fa21b08185418acd32f7e95f451e5577138bf88c04e792544f325dacff933cb44bca9ed3c947d4b1af6bed402dd9abefdd752cf835924c1497f3fb0e8a5fc0af2e4256120f0eeac759194661a6e3fdb21f7b2dd69bc35cecc827fa63639dab275a2979b52db602a7bb82bbaeb00ff77e0f2a0c9eb62cc67eb374cf930b59afa48b1bffcb4ec35c9050a5b3f3ee1e7602eec383095b3405a5c2a9a34a1bd65349706ace75e4e5700661a49097bc395e3529cea3dad0a60360166fd6c39a3e4448b7b9a019810ae1f2788ea4e59c70fc3a86402bce1de829b300c765fc04fb868ddbfe18415742d87d9c61b04dbb25212a4d0f94cef95b1a0ae14802d7a2ed594c72744fd8edb3b5042bb097e6b3ee2453ea11f8ec3c605de358ab9e20d030c709963084da663a0d9960fe219f565ddd28de3cf55700ca52fefacaeff1eb4a33acd0e03451f7426cd366d2bc2ec15908fe8df228d18eb895cb02bc58881dc7d0257212e8a0629ce9e7dfbc1d6e5674ad03ecb856896effefdf4a2e04b8d2751588d50202e6561c557058bc4987f91e992039a8c113a0ee0526b8bdfe3794988e7def3d274db03bb44b6641cc1796ebdfac2168d40aa2bbee9676d8f7526883579f3244c80ba7c052adeaa25e897621c2e723738ab1d3d357be714f1c1098185e46df87152ab4036da585f5c6c8afe971d9ffefa49bd446e4c625e9e9455c79d7f8f744c4e6baccb8cb85dfbb06f10348ee605eb6764623175fcfd90ceb9c62e5969618bf4663650798d96acd35c5840ba5eb9cf01b61f62677648e4f4087589be566edc9df121f686665b1eb56ab265807125abba488df00d174d6f01aa9b5c70b83ae18cfced6aad04eebfb41831d65b4169cd36f0d6a18888d1244eba5b659a2be54f70ee2d3c4a6431b83f63b676dc636169b8d3f3aa8ac3b285339fd657087745a70324a35904c501f9a60d3d89463e063ea9757c381b33bf1aa3ec6acfef970e54a1369e5d123e357f4b28dedaf0775fe24014414a83a6b603cd2d0e51aab08238b11f7edc685697328adf7fce4bf05e20de54b4843f163060dc2848685338584a90660d52fdf9f482f49669fee04bdd9a0c4296de160cf2405e249844de8ba1ba815bc6ad86146a8798ea723f00601e77f1455872be02cabf47dde765913ed904b34eb00efee1d7bc3181b4dddb3441b12d5660803a50658a2bb567ccf50af9ef7e07903902265f43d57270374a30d89bc964ec5a076cc8276c4788e289957fb0efa5a7d5ea688ff56c55e91488c4b79bc3177fcf2c469b7c9b")
	require.NoError(err)

	require.Equal(want, ct, "K-PKE.Encrypt known-answer mismatch")

	got := p.kpkeDecrypt(dk, ct)
	require.Equal(message, got, "K-PKE.Decrypt did not recover the message")
}

func TestKPKERoundTripRandom(t *testing.T) {
	require := require.New(t)

	for _, p := range allParams {
		var seed, message, coins [SymSize]byte
		_, err := rand.Read(seed[:])
		require.NoError(err)
		_, err = rand.Read(message[:])
		require.NoError(err)
		_, err = rand.Read(coins[:])
		require.NoError(err)

		ek, dk := p.kpkeKeyGen(seed[:])
		ct := p.kpkeEncrypt(ek, message[:], coins[:])
		got := p.kpkeDecrypt(dk, ct)

		require.Equal(message[:], got, "%s: K-PKE round trip", p.Name())
	}
}
