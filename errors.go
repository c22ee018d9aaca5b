// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"errors"

	"github.com/complex-gh/multiwallet/hdkey"
)

// Errors returned by this package. Use errors.Is to match them; they are
// usually wrapped with more context.
var (
	ErrInvalidMnemonic     = errors.New("invalid mnemonic")
	ErrInvalidWordCount    = errors.New("invalid word count")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnsupportedCoin     = errors.New("unsupported coin")
	ErrInvalidBech32Data   = errors.New("invalid bech32 data")

	ErrInvalidPath = hdkey.ErrInvalidPath
	ErrInvalidSeed = hdkey.ErrInvalidSeed
)
