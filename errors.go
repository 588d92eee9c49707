// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import "errors"

var (
	// ErrInvalidKeychain is returned when a serialized extended key
	// cannot be parsed.
	ErrInvalidKeychain = errors.New("invalid keychain")

	// ErrIncorrectPassword is returned when decryption of an encrypted
	// mnemonic fails authentication. The underlying cipher error is
	// deliberately not exposed.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrInvalidIndex is returned when a derivation index does not fit
	// in 31 bits.
	ErrInvalidIndex = errors.New("derivation index out of range")

	// ErrInvalidChainType is returned when a chain type is neither
	// ExternalAddress nor ChangeAddress.
	ErrInvalidChainType = errors.New("invalid chain type")

	// ErrInvalidHashLength is returned when a SHA-256 digest is not 64
	// hex characters. This signals a broken hash implementation rather
	// than bad input.
	ErrInvalidHashLength = errors.New("invalid hash length")

	// ErrInvalidMnemonic is returned when a phrase fails BIP39
	// validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrMalformedCiphertext is returned when an encrypted payload is
	// too short to contain the cipher framing.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)
