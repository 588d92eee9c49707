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

const (
	testAppDomain = "https://banter.pub"

	// Derived from zeroSeedAppsNodeKey/zeroSeedSalt for testAppDomain.
	zeroSeedAppKey       = "1b21866c2279e08f483cc77929e15eee390fd1912e3f5647168bcfe3deba20a7"
	zeroSeedLegacyAppKey = "0ad244c9bede2263d78d74cfa69aa499ef08c6f63e5a1d78c8cf1f362c09b515"
)

func TestAppPrivateKey(t *testing.T) {
	key, err := AppPrivateKey(zeroSeedAppsNodeKey, zeroSeedSalt, testAppDomain)
	require.NoError(t, err)
	assert.Equal(t, zeroSeedAppKey, key)
	assert.Len(t, key, 64)

	// Idempotent.
	key2, err := AppPrivateKey(zeroSeedAppsNodeKey, zeroSeedSalt, testAppDomain)
	require.NoError(t, err)
	assert.Equal(t, key, key2)

	// Different domains yield unrelated keys.
	other, err := AppPrivateKey(zeroSeedAppsNodeKey, zeroSeedSalt, "https://example.com")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)

	_, err = AppPrivateKey("notakeychain", zeroSeedSalt, testAppDomain)
	assert.ErrorIs(t, err, ErrInvalidKeychain)
}

func TestLegacyAppPrivateKey(t *testing.T) {
	key, err := LegacyAppPrivateKey(zeroSeedAppsNodeKey, zeroSeedSalt, testAppDomain)
	require.NoError(t, err)
	assert.Equal(t, zeroSeedLegacyAppKey, key)
	assert.Len(t, key, 64)
}

func TestAppKeyAlgorithmDivergence(t *testing.T) {
	current, err := AppPrivateKey(zeroSeedAppsNodeKey, zeroSeedSalt, testAppDomain)
	require.NoError(t, err)
	legacy, err := LegacyAppPrivateKey(zeroSeedAppsNodeKey, zeroSeedSalt, testAppDomain)
	require.NoError(t, err)
	assert.NotEqual(t, current, legacy)
}

func TestAppPrivateKeyUnicodeDomain(t *testing.T) {
	domain := "https://приложение.example/🔑"
	key, err := AppPrivateKey(zeroSeedAppsNodeKey, zeroSeedSalt, domain)
	require.NoError(t, err)
	key2, err := AppPrivateKey(zeroSeedAppsNodeKey, zeroSeedSalt, domain)
	require.NoError(t, err)
	assert.Equal(t, key, key2)
	assert.Len(t, key, 64)
}

func TestHashCode(t *testing.T) {
	assert.Equal(t, uint32(0), hashCode(""))
	assert.Equal(t, uint32(96354), hashCode("abc"))
	assert.Equal(t, uint32(1979187606),
		hashCode("0523ae59cb84cdf3de2b931c0d20510d8e92fe2fad101065ab1d2bf01a5efa20"))
}

// recordingNode is a fake KeyNode that records the hardened indices
// applied to it, isolating the digest-slicing logic from the curve.
type recordingNode struct {
	indices *[]uint32
}

func (n recordingNode) Child(i uint32) (KeyNode, error) { return n, nil }
func (n recordingNode) Neuter() (KeyNode, error)        { return n, nil }
func (n recordingNode) IsPrivate() bool                 { return true }
func (n recordingNode) String() string                  { return "recording" }
func (n recordingNode) PublicKeyHex() (string, error)   { return strings.Repeat("02", 33), nil }
func (n recordingNode) Address() (string, error)        { return "1recording", nil }

func (n recordingNode) HardenedChild(i uint32) (KeyNode, error) {
	if i >= 1<<31 {
		return nil, ErrInvalidIndex
	}
	*n.indices = append(*n.indices, i)
	return n, nil
}

func (n recordingNode) PrivateKeyHex() (string, error) {
	return strings.Repeat("ab", 32) + "01", nil
}

type recordingDeriver struct {
	indices *[]uint32
}

func (d recordingDeriver) NewMaster(seed []byte) (KeyNode, error) {
	return recordingNode{indices: d.indices}, nil
}

func (d recordingDeriver) Parse(serialized string) (KeyNode, error) {
	return recordingNode{indices: d.indices}, nil
}

// The digest must be consumed as eleven chunks at offsets 0,6,...,60,
// the last one four characters short.
func TestAppPrivateKeyChunking(t *testing.T) {
	var indices []uint32
	_, err := AppPrivateKey("anything", zeroSeedSalt, testAppDomain,
		Deriver(recordingDeriver{indices: &indices}))
	require.NoError(t, err)

	// sha256("https://banter.pub" + salt) =
	// 0523ae59cb84cdf3de2b931c0d20510d8e92fe2fad101065ab1d2bf01a5efa20
	assert.Equal(t, []uint32{
		0x0523ae, 0x59cb84, 0xcdf3de, 0x2b931c, 0x0d2051, 0x0d8e92,
		0xfe2fad, 0x101065, 0xab1d2b, 0xf01a5e, 0xfa20,
	}, indices)
}

func TestLegacyAppPrivateKeyIndex(t *testing.T) {
	var indices []uint32
	_, err := LegacyAppPrivateKey("anything", zeroSeedSalt, testAppDomain,
		Deriver(recordingDeriver{indices: &indices}))
	require.NoError(t, err)
	assert.Equal(t, []uint32{1979187606}, indices)
}
