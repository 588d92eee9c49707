// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import (
	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits is the entropy size used when generating a new
// mnemonic. 128 bits yields a 12-word phrase.
const MnemonicEntropyBits = 128

// MnemonicCodec converts between mnemonic phrases and seed bytes.
type MnemonicCodec interface {
	// NewMnemonic generates a fresh phrase from cryptographically
	// secure randomness.
	NewMnemonic() (string, error)

	// Validate reports whether the phrase has a valid word list and
	// checksum.
	Validate(mnemonic string) bool

	// Seed derives the wallet seed bytes from the phrase.
	Seed(mnemonic string) ([]byte, error)
}

// Bip39Codec is the default MnemonicCodec, implementing the BIP39 word
// list and seed derivation with an empty passphrase.
type Bip39Codec struct{}

func (Bip39Codec) NewMnemonic() (string, error) {
	ent, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(ent)
}

func (Bip39Codec) Validate(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

func (Bip39Codec) Seed(mnemonic string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeedWithErrorChecking(mnemonic, "")
}

// GenerateMnemonic returns a new 12-word mnemonic phrase.
func GenerateMnemonic(opts ...Option) (string, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return "", err
	}
	return cfg.codec.NewMnemonic()
}

// EncryptMnemonic encrypts a mnemonic phrase against a password. The
// phrase must pass BIP39 validation. Callers typically hex-encode the
// returned bytes for storage.
func EncryptMnemonic(mnemonic, password string, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if !cfg.codec.Validate(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return cfg.cipher.Encrypt([]byte(mnemonic), password)
}

// DecryptMnemonic recovers a mnemonic phrase from an encrypted payload.
// An authentication failure surfaces as ErrIncorrectPassword.
func DecryptMnemonic(ciphertext []byte, password string, opts ...Option) (string, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return "", err
	}
	plaintext, err := cfg.cipher.Decrypt(ciphertext, password)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
