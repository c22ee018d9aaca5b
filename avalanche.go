// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"encoding/hex"
	"fmt"

	"github.com/complex-gh/multiwallet/hdkey"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
)

// deriveAVAXNode walks path with go-bip32 rather than hdkey and returns the
// 32-byte private key of the leaf.
func deriveAVAXNode(seed []byte, path hdkey.Path) ([]byte, error) {
	if len(seed) != hdkey.SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidSeed, hdkey.SeedSize, len(seed))
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("could not create master key: %w", err)
	}
	for _, seg := range path {
		idx := seg.Index
		if seg.Hardened {
			idx += bip32.FirstHardenedChild
		}
		key, err = key.NewChildKey(idx)
		if err != nil {
			return nil, fmt.Errorf("could not derive child %d of %s: %w", seg.Index, path, err)
		}
	}

	// go-bip32 may hand back the scalar with a 0x00 prefix or without its
	// leading zero bytes.
	raw := key.Key
	if len(raw) == 33 && raw[0] == 0 {
		raw = raw[1:]
	}
	if len(raw) > 32 {
		return nil, fmt.Errorf("unexpected private key length %d", len(raw))
	}
	priv := make([]byte, 32)
	copy(priv[32-len(raw):], raw)
	return priv, nil
}

// avalanche derives an Avalanche C-Chain wallet. There is no Avalanche path
// in the table; the C-Chain is EVM compatible and uses ETHPath.
func (w *Wallet) deriveAvalanche() (*Record, error) {
	raw, err := deriveAVAXNode(w.seed, AVAX.Path())
	if err != nil {
		return nil, err
	}

	priv, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	addr := crypto.PubkeyToAddress(priv.PublicKey)

	return w.record(AVAX, "0x"+hex.EncodeToString(addr.Bytes()), hex.EncodeToString(crypto.FromECDSA(priv))), nil
}
