// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import (
	"errors"
)

// Derivation path constants. These are fixed for the life of the key
// tree; changing any of them breaks compatibility with every wallet
// derived so far.
const (
	identityPurpose uint32 = 888
	bitcoinPurpose  uint32 = 44
	bitcoinCoinType uint32 = 0
	bitcoinAccount  uint32 = 0
	appsNodeIndex   uint32 = 0
	externalChain   uint32 = 0
	changeChain     uint32 = 1
)

// Wallet wraps a single root extended key. It holds no other state;
// every derivation method is a pure function of the root and its
// arguments, so concurrent use needs no locking.
type Wallet struct {
	rootNode KeyNode
}

// NewWalletFromRootNode constructs a Wallet from an existing KeyNode.
func NewWalletFromRootNode(root KeyNode) *Wallet {
	return &Wallet{rootNode: root}
}

// NewWalletFromSeed constructs a Wallet from raw seed bytes.
func NewWalletFromSeed(seed []byte, opts ...Option) (*Wallet, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	root, err := cfg.deriver.NewMaster(seed)
	if err != nil {
		return nil, err
	}
	return &Wallet{rootNode: root}, nil
}

// NewWalletFromMnemonic constructs a Wallet from a plaintext mnemonic
// phrase.
func NewWalletFromMnemonic(mnemonic string, opts ...Option) (*Wallet, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	seed, err := cfg.codec.Seed(mnemonic)
	if err != nil {
		return nil, err
	}
	root, err := cfg.deriver.NewMaster(seed)
	if err != nil {
		return nil, err
	}
	return &Wallet{rootNode: root}, nil
}

// NewWalletFromKeychain constructs a Wallet from a serialized extended
// key. A malformed string fails with ErrInvalidKeychain.
func NewWalletFromKeychain(serialized string, opts ...Option) (*Wallet, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	root, err := cfg.deriver.Parse(serialized)
	if err != nil {
		return nil, err
	}
	return &Wallet{rootNode: root}, nil
}

// NewWalletFromEncryptedMnemonic decrypts an encrypted mnemonic payload
// with the given password and constructs a Wallet from the recovered
// phrase. An authentication failure surfaces as ErrIncorrectPassword;
// any other decrypt failure propagates unmodified. This is the only
// blocking construction path; it performs a single key-stretching
// decrypt and either returns a wallet or an error, with no partial
// state.
func NewWalletFromEncryptedMnemonic(ciphertext []byte, password string, opts ...Option) (*Wallet, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	plaintext, err := cfg.cipher.Decrypt(ciphertext, password)
	if err != nil {
		if errors.Is(err, ErrIncorrectPassword) {
			log.Debug("Mnemonic decryption failed authentication")
		}
		return nil, err
	}
	seed, err := cfg.codec.Seed(string(plaintext))
	if err != nil {
		return nil, err
	}
	root, err := cfg.deriver.NewMaster(seed)
	if err != nil {
		return nil, err
	}
	log.Debug("Wallet restored from encrypted mnemonic")
	return &Wallet{rootNode: root}, nil
}

// RootNode returns the wallet's root extended key.
func (w *Wallet) RootNode() KeyNode {
	return w.rootNode
}
