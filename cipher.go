// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

// PasswordCipher provides password-based authenticated encryption of an
// arbitrary byte buffer. Decrypt must report an authentication failure
// as ErrIncorrectPassword rather than leaking the cipher's own error;
// any other failure propagates unmodified.
type PasswordCipher interface {
	Encrypt(plaintext []byte, password string) ([]byte, error)
	Decrypt(ciphertext []byte, password string) ([]byte, error)
}

const (
	scryptN = 16384 // 2^14
	scryptR = 8
	scryptP = 1

	cipherSaltSize  = 16
	cipherNonceSize = 24
	cipherKeySize   = 32
)

// ScryptSecretboxCipher is the default PasswordCipher. The key is
// derived from the password with scrypt over a random salt and the
// payload is sealed with an XSalsa20-Poly1305 secretbox. Payload layout
// is salt || nonce || box.
type ScryptSecretboxCipher struct{}

func (ScryptSecretboxCipher) Encrypt(plaintext []byte, password string) ([]byte, error) {
	var salt [cipherSaltSize]byte
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return nil, err
	}
	key, err := deriveCipherKey(password, salt[:])
	if err != nil {
		return nil, err
	}

	var nonce [cipherNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}

	out := make([]byte, 0, cipherSaltSize+cipherNonceSize+len(plaintext)+secretbox.Overhead)
	out = append(out, salt[:]...)
	out = append(out, nonce[:]...)
	return secretbox.Seal(out, plaintext, &nonce, key), nil
}

func (ScryptSecretboxCipher) Decrypt(ciphertext []byte, password string) ([]byte, error) {
	if len(ciphertext) < cipherSaltSize+cipherNonceSize {
		return nil, ErrMalformedCiphertext
	}
	key, err := deriveCipherKey(password, ciphertext[:cipherSaltSize])
	if err != nil {
		return nil, err
	}

	var nonce [cipherNonceSize]byte
	copy(nonce[:], ciphertext[cipherSaltSize:cipherSaltSize+cipherNonceSize])

	opened, ok := secretbox.Open(nil, ciphertext[cipherSaltSize+cipherNonceSize:], &nonce, key)
	if !ok {
		return nil, ErrIncorrectPassword
	}
	return opened, nil
}

func deriveCipherKey(password string, salt []byte) (*[cipherKeySize]byte, error) {
	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, cipherKeySize)
	if err != nil {
		return nil, err
	}
	var key [cipherKeySize]byte
	copy(key[:], derived)
	return &key, nil
}
