// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

// ChainType selects the external (receive) or change chain of a
// Bitcoin keychain.
type ChainType string

const (
	ExternalAddress ChainType = "EXTERNAL_ADDRESS"
	ChangeAddress   ChainType = "CHANGE_ADDRESS"
)

// BitcoinPrivateKeychain derives the root of the Bitcoin subtree,
// root -> h(44) -> h(0) -> h(0). Coin type and account index are both
// pinned to zero.
func (w *Wallet) BitcoinPrivateKeychain() (KeyNode, error) {
	purpose, err := w.rootNode.HardenedChild(bitcoinPurpose)
	if err != nil {
		return nil, err
	}
	coin, err := purpose.HardenedChild(bitcoinCoinType)
	if err != nil {
		return nil, err
	}
	return coin.HardenedChild(bitcoinAccount)
}

// BitcoinPublicKeychain returns the neutered Bitcoin subtree root for
// watch-only export.
func (w *Wallet) BitcoinPublicKeychain() (KeyNode, error) {
	keychain, err := w.BitcoinPrivateKeychain()
	if err != nil {
		return nil, err
	}
	return keychain.Neuter()
}

// BitcoinAddressNode derives the external-chain node at the given
// address index from the wallet's own private keychain.
func (w *Wallet) BitcoinAddressNode(index uint32) (KeyNode, error) {
	keychain, err := w.BitcoinPrivateKeychain()
	if err != nil {
		return nil, err
	}
	chain, err := keychain.Child(externalChain)
	if err != nil {
		return nil, err
	}
	return chain.Child(index)
}

// BitcoinAddress returns the external-chain address at the given index.
func (w *Wallet) BitcoinAddress(index uint32) (string, error) {
	node, err := w.BitcoinAddressNode(index)
	if err != nil {
		return "", err
	}
	return node.Address()
}

// BitcoinPrivateKey returns the external-chain private key hex at the
// given index.
func (w *Wallet) BitcoinPrivateKey(index uint32) (string, error) {
	node, err := w.BitcoinAddressNode(index)
	if err != nil {
		return "", err
	}
	return node.PrivateKeyHex()
}

// NodeFromBitcoinKeychain derives an address node from a previously
// exported Bitcoin keychain. The keychain may be public-only, enabling
// watch-only address generation without private key material. The
// chain child (0 external, 1 change) is selected by chainType; any
// other value fails with ErrInvalidChainType.
func NodeFromBitcoinKeychain(serialized string, addressIndex uint32, chainType ChainType, opts ...Option) (KeyNode, error) {
	var chainIndex uint32
	switch chainType {
	case ExternalAddress:
		chainIndex = externalChain
	case ChangeAddress:
		chainIndex = changeChain
	default:
		return nil, ErrInvalidChainType
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	keychain, err := cfg.deriver.Parse(serialized)
	if err != nil {
		return nil, err
	}
	chain, err := keychain.Child(chainIndex)
	if err != nil {
		return nil, err
	}
	return chain.Child(addressIndex)
}

// AddressFromBitcoinKeychain returns the external-chain address at the
// given index of an exported keychain.
func AddressFromBitcoinKeychain(serialized string, addressIndex uint32, opts ...Option) (string, error) {
	node, err := NodeFromBitcoinKeychain(serialized, addressIndex, ExternalAddress, opts...)
	if err != nil {
		return "", err
	}
	return node.Address()
}
