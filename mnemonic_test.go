// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMnemonic(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(mnemonic), 12)
	assert.True(t, Bip39Codec{}.Validate(mnemonic))

	// Fresh randomness every call.
	mnemonic2, err := GenerateMnemonic()
	require.NoError(t, err)
	assert.NotEqual(t, mnemonic, mnemonic2)
}

func TestMnemonicEncryptionRoundTrip(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	require.NoError(t, err)

	ciphertext, err := EncryptMnemonic(mnemonic, "hunter2")
	require.NoError(t, err)
	assert.NotContains(t, string(ciphertext), strings.Fields(mnemonic)[0])

	recovered, err := DecryptMnemonic(ciphertext, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, mnemonic, recovered)

	_, err = DecryptMnemonic(ciphertext, "hunter3")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestEncryptMnemonicRejectsInvalidPhrase(t *testing.T) {
	_, err := EncryptMnemonic("definitely not a bip39 phrase", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestEncryptMnemonicSaltsPayload(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	require.NoError(t, err)

	first, err := EncryptMnemonic(mnemonic, "hunter2")
	require.NoError(t, err)
	second, err := EncryptMnemonic(mnemonic, "hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestBip39CodecSeed(t *testing.T) {
	codec := Bip39Codec{}

	mnemonic, err := codec.NewMnemonic()
	require.NoError(t, err)

	seed, err := codec.Seed(mnemonic)
	require.NoError(t, err)
	assert.Len(t, seed, 64)

	seed2, err := codec.Seed(mnemonic)
	require.NoError(t, err)
	assert.Equal(t, seed, seed2)

	_, err = codec.Seed("not a phrase")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}
