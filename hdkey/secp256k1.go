// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkey

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// Node is a derived secp256k1 key together with its BIP-32 metadata.
type Node struct {
	PrivateKey        *btcec.PrivateKey
	PublicKey         *btcec.PublicKey
	ChainCode         []byte
	ParentFingerprint uint32
	Depth             uint8
}

// PrivateKeyBytes returns the 32-byte private scalar.
func (n *Node) PrivateKeyBytes() []byte {
	return n.PrivateKey.Serialize()
}

// PublicKeyBytes returns the 33-byte compressed public key.
func (n *Node) PublicKeyBytes() []byte {
	return n.PublicKey.SerializeCompressed()
}

// UncompressedPublicKeyBytes returns the 65-byte 0x04-prefixed public key.
func (n *Node) UncompressedPublicKeyBytes() []byte {
	return n.PublicKey.SerializeUncompressed()
}

// Identifier returns RIPEMD160(SHA256(compressed public key)).
func (n *Node) Identifier() []byte {
	return btcutil.Hash160(n.PublicKeyBytes())
}

// DeriveSecp256k1 derives the BIP-32 node at path from a 64-byte seed.
// The master key uses the "Bitcoin seed" HMAC key for every coin.
func DeriveSecp256k1(seed []byte, path Path) (*Node, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}

	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("could not create master key: %w", err)
	}

	for _, seg := range path {
		idx := seg.Index
		if seg.Hardened {
			idx += hdkeychain.HardenedKeyStart
		}
		key, err = key.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("could not derive child %d of %s: %w", seg.Index, path, err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("could not get private key: %w", err)
	}
	pub, err := key.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("could not get public key: %w", err)
	}

	return &Node{
		PrivateKey:        priv,
		PublicKey:         pub,
		ChainCode:         key.ChainCode(),
		ParentFingerprint: key.ParentFingerprint(),
		Depth:             key.Depth(),
	}, nil
}
