// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/complex-gh/multiwallet/hdkey"
	"github.com/mr-tron/base58"
)

const nearKeyPrefix = "ed25519:"

// EncodeNearKey returns key in NEAR's "ed25519:<base58>" text form. It is
// used for both public keys and 64-byte secret keys.
func EncodeNearKey(key []byte) string {
	return nearKeyPrefix + base58.Encode(key)
}

// DecodeNearKey parses an "ed25519:<base58>" key.
func DecodeNearKey(s string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(s, nearKeyPrefix)
	if !ok {
		return nil, fmt.Errorf("key %q has no %q prefix", s, nearKeyPrefix)
	}
	key, err := base58.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base58 key: %w", err)
	}
	return key, nil
}

// near derives a NEAR wallet. The address is the implicit account ID, the
// hex form of the public key.
func (w *Wallet) deriveNear() (*Record, error) {
	node, err := hdkey.DeriveEd25519(w.seed, NearPath)
	if err != nil {
		return nil, err
	}

	public := EncodeNearKey(node.PublicKey)
	pub, err := DecodeNearKey(public)
	if err != nil {
		return nil, err
	}

	rec := w.record(NEAR, hex.EncodeToString(pub), EncodeNearKey(node.PrivateKey))
	rec.Public = public
	return rec, nil
}
