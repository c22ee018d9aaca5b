// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/complex-gh/multiwallet/hdkey"
)

// EncodeBitcoinAddress returns the mainnet native segwit (P2WPKH, bc1q...)
// address of a compressed secp256k1 public key.
func EncodeBitcoinAddress(pubKey []byte) (string, error) {
	if len(pubKey) != btcec.PubKeyBytesLenCompressed {
		return "", fmt.Errorf("public key must be %d bytes compressed, got %d", btcec.PubKeyBytesLenCompressed, len(pubKey))
	}
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return "", fmt.Errorf("invalid public key: %w", err)
	}

	addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pubKey), &chaincfg.MainNetParams)
	if err != nil {
		return "", fmt.Errorf("failed to create P2WPKH address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// EncodeWIF serializes a 32-byte private key in mainnet Wallet Import
// Format with the compressed public key flag set.
func EncodeWIF(privKey []byte) (string, error) {
	if len(privKey) != btcec.PrivKeyBytesLen {
		return "", fmt.Errorf("private key must be %d bytes, got %d", btcec.PrivKeyBytesLen, len(privKey))
	}
	priv, _ := btcec.PrivKeyFromBytes(privKey)

	wif, err := btcutil.NewWIF(priv, &chaincfg.MainNetParams, true)
	if err != nil {
		return "", fmt.Errorf("failed to encode WIF: %w", err)
	}
	return wif.String(), nil
}

// DecodeWIF parses a mainnet WIF string and returns the 32-byte private key
// and whether it is marked for a compressed public key.
func DecodeWIF(s string) (privKey []byte, compressed bool, err error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode WIF: %w", err)
	}
	if !wif.IsForNet(&chaincfg.MainNetParams) {
		return nil, false, errors.New("WIF is not for bitcoin mainnet")
	}
	return wif.PrivKey.Serialize(), wif.CompressPubKey, nil
}

func (w *Wallet) deriveBitcoin() (*Record, error) {
	node, err := hdkey.DeriveSecp256k1(w.seed, BTCPath)
	if err != nil {
		return nil, err
	}

	address, err := EncodeBitcoinAddress(node.PublicKeyBytes())
	if err != nil {
		return nil, err
	}
	private, err := EncodeWIF(node.PrivateKeyBytes())
	if err != nil {
		return nil, err
	}

	return w.record(BTC, address, private), nil
}
