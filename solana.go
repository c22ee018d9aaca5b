// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"crypto/ed25519"
	"fmt"

	"github.com/complex-gh/multiwallet/hdkey"
	"github.com/gagliardetto/solana-go"
)

// EncodeSolanaAddress returns the base58 address of a 32-byte Ed25519
// public key.
func EncodeSolanaAddress(pubKey []byte) (string, error) {
	if len(pubKey) != ed25519.PublicKeySize {
		return "", fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pubKey))
	}
	return solana.PublicKeyFromBytes(pubKey).String(), nil
}

// EncodeSolanaPrivateKey returns the base58 form of a 64-byte Ed25519 secret
// key (seed followed by public key), as wallets import it.
func EncodeSolanaPrivateKey(secretKey []byte) (string, error) {
	if len(secretKey) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(secretKey))
	}
	return solana.PrivateKey(secretKey).String(), nil
}

func (w *Wallet) deriveSolana() (*Record, error) {
	node, err := hdkey.DeriveEd25519(w.seed, SOLPath)
	if err != nil {
		return nil, err
	}

	address, err := EncodeSolanaAddress(node.PublicKey)
	if err != nil {
		return nil, err
	}
	private, err := EncodeSolanaPrivateKey(node.PrivateKey)
	if err != nil {
		return nil, err
	}

	return w.record(SOL, address, private), nil
}
