// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import (
	"errors"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pterm/pterm"
)

// Option is a configuration option function for wallet construction and
// the stand-alone derivation helpers.
type Option func(cfg *config) error

// Params identifies which chain parameters key serialization and
// address encoding use. Defaults to mainnet.
func Params(params *chaincfg.Params) Option {
	return func(cfg *config) error {
		if params == nil {
			return errors.New("params cannot be nil")
		}
		cfg.params = params
		return nil
	}
}

// Deriver overrides the BIP32 key deriver. Useful for testing the path
// logic against a deterministic fake curve.
func Deriver(deriver KeyDeriver) Option {
	return func(cfg *config) error {
		cfg.deriver = deriver
		return nil
	}
}

// Codec overrides the mnemonic codec.
func Codec(codec MnemonicCodec) Option {
	return func(cfg *config) error {
		cfg.codec = codec
		return nil
	}
}

// Cipher overrides the password cipher used to protect mnemonics at
// rest.
func Cipher(cipher PasswordCipher) Option {
	return func(cfg *config) error {
		cfg.cipher = cipher
		return nil
	}
}

// Logger sets the logger used by the package.
func Logger(logger *pterm.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}

type config struct {
	params  *chaincfg.Params
	deriver KeyDeriver
	codec   MnemonicCodec
	cipher  PasswordCipher
	logger  *pterm.Logger
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.params == nil {
		cfg.params = &chaincfg.MainNetParams
	}
	if cfg.deriver == nil {
		cfg.deriver = &SecpDeriver{Params: cfg.params}
	}
	if cfg.codec == nil {
		cfg.codec = Bip39Codec{}
	}
	if cfg.cipher == nil {
		cfg.cipher = ScryptSecretboxCipher{}
	}
	if cfg.logger != nil {
		log = cfg.logger
	}
	return cfg, nil
}
