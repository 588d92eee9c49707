// Copyright (c) 2024 The cryptobuks developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletlib

import "github.com/pterm/pterm"

var log = pterm.DefaultLogger.WithLevel(pterm.LogLevelInfo)

// UpdateLogger replaces the package logger. Applications embedding the
// library typically pass in their own configured instance.
func UpdateLogger(logger *pterm.Logger) {
	log = logger
}
