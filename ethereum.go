// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"encoding/hex"
	"fmt"

	"github.com/complex-gh/multiwallet/hdkey"
	"golang.org/x/crypto/sha3"
)

// EncodeEthereumAddress returns the 0x-prefixed lowercase address of an
// uncompressed secp256k1 public key (65 bytes with the 0x04 prefix, or the
// bare 64-byte X||Y form). No EIP-55 checksum casing is applied.
func EncodeEthereumAddress(pubKey []byte) (string, error) {
	switch {
	case len(pubKey) == 65 && pubKey[0] == 0x04:
		pubKey = pubKey[1:]
	case len(pubKey) == 64:
	default:
		return "", fmt.Errorf("public key must be 65 bytes uncompressed or 64 bytes raw, got %d", len(pubKey))
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(pubKey)
	sum := h.Sum(nil)

	return "0x" + hex.EncodeToString(sum[12:]), nil
}

func (w *Wallet) deriveEthereum() (*Record, error) {
	node, err := hdkey.DeriveSecp256k1(w.seed, ETHPath)
	if err != nil {
		return nil, err
	}

	address, err := EncodeEthereumAddress(node.UncompressedPublicKeyBytes())
	if err != nil {
		return nil, err
	}

	return w.record(ETH, address, "0x"+hex.EncodeToString(node.PrivateKeyBytes())), nil
}
