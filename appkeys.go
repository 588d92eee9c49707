// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// appIndexChunkSize is the number of hex characters consumed per
// derivation step by AppPrivateKey. Three bytes per index keeps every
// index below the hardened-derivation ceiling.
const appIndexChunkSize = 6

// appDomainDigest hashes the UTF-8 bytes of appDomain followed by salt
// and returns the hex digest.
func appDomainDigest(appDomain, salt string) string {
	sum := sha256.Sum256([]byte(appDomain + salt))
	return hex.EncodeToString(sum[:])
}

// AppPrivateKey derives the application-specific private key for
// appDomain from a serialized private apps node and the wallet salt.
//
// The hex digest of domain||salt is sliced into chunks of six
// characters starting at offsets 0, 6, ... 60. The final chunk is only
// four characters; the slicing is part of the derivation contract and
// must not be regularized. Each chunk, parsed base 16, is applied as a
// hardened child index in order. The resulting node's private key hex,
// truncated to 64 characters, is the application key.
func AppPrivateKey(appsNodeKey, salt, appDomain string, opts ...Option) (string, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return "", err
	}
	digest := appDomainDigest(appDomain, salt)
	if len(digest) != 2*sha256.Size {
		return "", ErrInvalidHashLength
	}
	node, err := cfg.deriver.Parse(appsNodeKey)
	if err != nil {
		return "", err
	}
	for offset := 0; offset < len(digest); offset += appIndexChunkSize {
		end := offset + appIndexChunkSize
		if end > len(digest) {
			end = len(digest)
		}
		index, err := strconv.ParseUint(digest[offset:end], 16, 32)
		if err != nil {
			return "", err
		}
		node, err = node.HardenedChild(uint32(index))
		if err != nil {
			return "", err
		}
	}
	return truncatedPrivateKeyHex(node)
}

// LegacyAppPrivateKey derives an application key using the original
// single-step scheme. It hashes domain||salt the same way as
// AppPrivateKey but condenses the whole digest into one hardened index
// via a 32-bit string hash. Keys issued under this scheme are still in
// circulation, so this function is kept alongside AppPrivateKey under
// its own name; the two produce unrelated keys for the same inputs.
func LegacyAppPrivateKey(appsNodeKey, salt, appDomain string, opts ...Option) (string, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return "", err
	}
	digest := appDomainDigest(appDomain, salt)
	if len(digest) != 2*sha256.Size {
		return "", ErrInvalidHashLength
	}
	node, err := cfg.deriver.Parse(appsNodeKey)
	if err != nil {
		return "", err
	}
	child, err := node.HardenedChild(hashCode(digest))
	if err != nil {
		return "", err
	}
	return truncatedPrivateKeyHex(child)
}

// hashCode is the classic 32-bit string hash (h = h*31 + c with
// wraparound), masked to a non-negative 31-bit value. It must stay
// bit-for-bit stable; legacy application keys depend on it.
func hashCode(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h & 0x7fffffff
}

// truncatedPrivateKeyHex strips the compression flag byte, returning
// the bare 64-character key hex.
func truncatedPrivateKeyHex(node KeyNode) (string, error) {
	keyHex, err := node.PrivateKeyHex()
	if err != nil {
		return "", err
	}
	if len(keyHex) > 64 {
		keyHex = keyHex[:64]
	}
	return keyHex, nil
}
