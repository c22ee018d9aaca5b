// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/complex-gh/multiwallet/hdkey"
)

// Bech32 human-readable prefixes of Cosmos SDK account addresses.
const (
	CosmosPrefix = "cosmos"
	TerraPrefix  = "terra"
)

// EncodeBech32Address encodes data (usually a 20-byte key identifier) as a
// bech32 string with the given human-readable prefix. The BIP-173 checksum
// is used, not bech32m.
func EncodeBech32Address(hrp string, data []byte) (string, error) {
	words, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert bits: %w", err)
	}
	for _, w := range words {
		if w > 31 {
			return "", fmt.Errorf("%w: word %d out of 5-bit range", ErrInvalidBech32Data, w)
		}
	}

	addr, err := bech32.Encode(hrp, words)
	if err != nil {
		return "", fmt.Errorf("failed to encode bech32: %w", err)
	}
	return addr, nil
}

// DecodeBech32Address decodes a bech32 address into its human-readable
// prefix and 8-bit data. Strings carrying a bech32m checksum are rejected.
func DecodeBech32Address(addr string) (hrp string, data []byte, err error) {
	hrp, words, version, err := bech32.DecodeGeneric(addr)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode bech32: %w", err)
	}
	if version != bech32.Version0 {
		return "", nil, fmt.Errorf("%w: not a bech32 checksum", ErrInvalidBech32Data)
	}

	data, err = bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidBech32Data, err)
	}
	return hrp, data, nil
}

// cosmos derives a Cosmos SDK style wallet. The address is the bech32 form
// of the key identifier; ATOM reports its private key in base64 and Terra in
// hex.
func (w *Wallet) deriveCosmos(coin Coin, hrp string, path hdkey.Path) (*Record, error) {
	node, err := hdkey.DeriveSecp256k1(w.seed, path)
	if err != nil {
		return nil, err
	}

	address, err := EncodeBech32Address(hrp, node.Identifier())
	if err != nil {
		return nil, err
	}

	var private string
	if coin == ATOMCosmos {
		private = base64.StdEncoding.EncodeToString(node.PrivateKeyBytes())
	} else {
		private = hex.EncodeToString(node.PrivateKeyBytes())
	}

	return w.record(coin, address, private), nil
}
