// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkey

import (
	"crypto/ed25519"
	"fmt"

	slip10 "github.com/anyproto/go-slip10"
)

// EdNode is a derived Ed25519 key pair.
type EdNode struct {
	// Seed is the 32-byte SLIP-0010 leaf key, the Ed25519 private seed.
	Seed       []byte
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// DeriveEd25519 derives the SLIP-0010 Ed25519 key at path from a 64-byte
// seed. Ed25519 has no public child derivation, so every segment must be
// hardened.
func DeriveEd25519(seed []byte, path Path) (*EdNode, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}
	if !path.IsHardenedOnly() {
		return nil, fmt.Errorf("%w: %s has non-hardened segments, ed25519 supports hardened derivation only", ErrInvalidPath, path)
	}

	node, err := slip10.DeriveForPath(path.String(), seed)
	if err != nil {
		return nil, fmt.Errorf("could not derive %s: %w", path, err)
	}

	pub, priv := node.Keypair()
	privateKey := ed25519.PrivateKey(priv)

	return &EdNode{
		Seed:       privateKey.Seed(),
		PublicKey:  ed25519.PublicKey(pub),
		PrivateKey: privateKey,
	}, nil
}
