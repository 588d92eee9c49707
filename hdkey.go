// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// compressionFlag is appended to the hex encoding of private keys whose
// paired public key serializes in compressed form. Extended keys always
// use compressed public keys, so every private-capable node carries it.
const compressionFlag = "01"

// KeyNode is a position in a BIP32 tree. Nodes are immutable; deriving
// a child never mutates the parent. A node is either private-capable or
// public-only (neutered), and the descendants of a neutered node can
// never yield private keys.
type KeyNode interface {
	// Child derives the non-hardened child at index i. i must be
	// below 2^31.
	Child(i uint32) (KeyNode, error)

	// HardenedChild derives the hardened child at index i. i must be
	// below 2^31.
	HardenedChild(i uint32) (KeyNode, error)

	// Neuter returns the public-only counterpart of this node.
	Neuter() (KeyNode, error)

	// IsPrivate reports whether the node can yield private keys.
	IsPrivate() bool

	// String returns the standard base58-check serialization of the
	// extended key.
	String() string

	// PrivateKeyHex returns the node's private key as 66 hex
	// characters: 64 characters of key material plus the compression
	// flag byte. Fails on neutered nodes.
	PrivateKeyHex() (string, error)

	// PublicKeyHex returns the compressed public key as 66 hex
	// characters.
	PublicKeyHex() (string, error)

	// Address returns the base58 pay-to-pubkey-hash address for the
	// node's public key.
	Address() (string, error)
}

// KeyDeriver creates KeyNodes from seed material or from a serialized
// extended key.
type KeyDeriver interface {
	NewMaster(seed []byte) (KeyNode, error)
	Parse(serialized string) (KeyNode, error)
}

// SecpDeriver is the default KeyDeriver. It produces secp256k1 extended
// keys per BIP32.
type SecpDeriver struct {
	Params *chaincfg.Params
}

func (d *SecpDeriver) net() *chaincfg.Params {
	if d.Params == nil {
		return &chaincfg.MainNetParams
	}
	return d.Params
}

func (d *SecpDeriver) NewMaster(seed []byte) (KeyNode, error) {
	key, err := hdkeychain.NewMaster(seed, d.net())
	if err != nil {
		return nil, err
	}
	return &secpKeyNode{key: key, params: d.net()}, nil
}

func (d *SecpDeriver) Parse(serialized string) (KeyNode, error) {
	key, err := hdkeychain.NewKeyFromString(serialized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeychain, err)
	}
	return &secpKeyNode{key: key, params: d.net()}, nil
}

type secpKeyNode struct {
	key    *hdkeychain.ExtendedKey
	params *chaincfg.Params
}

func (n *secpKeyNode) Child(i uint32) (KeyNode, error) {
	if i >= hdkeychain.HardenedKeyStart {
		return nil, ErrInvalidIndex
	}
	child, err := n.key.Derive(i)
	if err != nil {
		return nil, err
	}
	return &secpKeyNode{key: child, params: n.params}, nil
}

func (n *secpKeyNode) HardenedChild(i uint32) (KeyNode, error) {
	if i >= hdkeychain.HardenedKeyStart {
		return nil, ErrInvalidIndex
	}
	child, err := n.key.Derive(hdkeychain.HardenedKeyStart + i)
	if err != nil {
		return nil, err
	}
	return &secpKeyNode{key: child, params: n.params}, nil
}

func (n *secpKeyNode) Neuter() (KeyNode, error) {
	neutered, err := n.key.Neuter()
	if err != nil {
		return nil, err
	}
	return &secpKeyNode{key: neutered, params: n.params}, nil
}

func (n *secpKeyNode) IsPrivate() bool {
	return n.key.IsPrivate()
}

func (n *secpKeyNode) String() string {
	return n.key.String()
}

func (n *secpKeyNode) PrivateKeyHex() (string, error) {
	priv, err := n.key.ECPrivKey()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(priv.Serialize()) + compressionFlag, nil
}

func (n *secpKeyNode) PublicKeyHex() (string, error) {
	pub, err := n.key.ECPubKey()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(pub.SerializeCompressed()), nil
}

func (n *secpKeyNode) Address() (string, error) {
	addr, err := n.key.Address(n.params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}
