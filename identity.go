// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import (
	"crypto/sha256"
	"encoding/hex"
)

// IdentityKeyPair holds the material for one identity index: the
// private key hex, the compressed public key hex (the key's ID), its
// payment address, the serialized private apps node from which
// per-application keys are derived, and the wallet-level salt.
type IdentityKeyPair struct {
	Key         string `json:"key"`
	KeyID       string `json:"keyID"`
	Address     string `json:"address"`
	AppsNodeKey string `json:"appsNodeKey"`
	Salt        string `json:"salt"`
}

// IdentityPrivateKeychain derives the root of the identity subtree,
// root -> h(888) -> h(0).
func (w *Wallet) IdentityPrivateKeychain() (KeyNode, error) {
	purpose, err := w.rootNode.HardenedChild(identityPurpose)
	if err != nil {
		return nil, err
	}
	return purpose.HardenedChild(0)
}

// IdentityPublicKeychain returns the neutered identity subtree root,
// safe to export to contexts that must not hold signing capability.
func (w *Wallet) IdentityPublicKeychain() (KeyNode, error) {
	keychain, err := w.IdentityPrivateKeychain()
	if err != nil {
		return nil, err
	}
	return keychain.Neuter()
}

// IdentityAddressNode derives the identity node for the given address
// index.
func (w *Wallet) IdentityAddressNode(index uint32) (KeyNode, error) {
	keychain, err := w.IdentityPrivateKeychain()
	if err != nil {
		return nil, err
	}
	return keychain.HardenedChild(index)
}

// AppsNode derives the applications node under an identity address
// node. Per-application keys hang off this node.
func AppsNode(identityNode KeyNode) (KeyNode, error) {
	return identityNode.HardenedChild(appsNodeIndex)
}

// IdentitySalt returns the wallet's salt: the SHA-256 digest of the
// hex-encoded public key of the identity private keychain root. The
// salt is per-wallet, not per-identity, and is recomputed on each call;
// the result is deterministic so repeated calls are equivalent.
func (w *Wallet) IdentitySalt() (string, error) {
	keychain, err := w.IdentityPrivateKeychain()
	if err != nil {
		return "", err
	}
	pubHex, err := keychain.PublicKeyHex()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(pubHex))
	return hex.EncodeToString(sum[:]), nil
}

// IdentityKeyPair assembles the identity material for the given index.
// When alwaysUncompressed is set, the compression flag byte is stripped
// from the private key hex, forcing the 64-character representation
// that legacy uncompressed-address consumers expect. Only the textual
// form changes; the key material is identical.
func (w *Wallet) IdentityKeyPair(index uint32, alwaysUncompressed bool) (*IdentityKeyPair, error) {
	node, err := w.IdentityAddressNode(index)
	if err != nil {
		return nil, err
	}
	address, err := node.Address()
	if err != nil {
		return nil, err
	}
	keyHex, err := node.PrivateKeyHex()
	if err != nil {
		return nil, err
	}
	if alwaysUncompressed && len(keyHex) == 66 {
		keyHex = keyHex[:64]
	}
	keyID, err := node.PublicKeyHex()
	if err != nil {
		return nil, err
	}
	appsNode, err := AppsNode(node)
	if err != nil {
		return nil, err
	}
	salt, err := w.IdentitySalt()
	if err != nil {
		return nil, err
	}
	return &IdentityKeyPair{
		Key:         keyHex,
		KeyID:       keyID,
		Address:     address,
		AppsNodeKey: appsNode.String(),
		Salt:        salt,
	}, nil
}
