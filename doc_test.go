// doc_test.go - ML-KEM godoc examples.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/rand"
)

func Example_keyEncapsulationMechanism() {
	// Alice, step 1: Generate a key pair.
	aliceEncapsKey, aliceDecapsKey, err := MLKEM768.GenerateKeyPair(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Alice, step 2: Send the encapsulation key to Bob (not shown).

	// Bob, step 1: Deserialize Alice's encapsulation key from the binary
	// encoding.
	peerEncapsKey, err := MLKEM768.EncapsulationKeyFromBytes(aliceEncapsKey.Bytes())
	if err != nil {
		panic(err)
	}

	// Bob, step 2: Generate the ciphertext and shared secret.
	bobSharedSecret, cipherText, err := peerEncapsKey.Encaps(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Bob, step 3: Send the ciphertext to Alice (not shown).

	// Alice, step 3: Decapsulate the ciphertext.
	aliceSharedSecret := aliceDecapsKey.Decaps(cipherText)

	// Alice and Bob now hold identical shared secrets.
	if !bytes.Equal(aliceSharedSecret, bobSharedSecret) {
		panic("shared secrets mismatch")
	}
}
