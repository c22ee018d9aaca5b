// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"errors"
	"testing"

	"github.com/complex-gh/multiwallet/hdkey"
	"github.com/matryer/is"
)

// TestParseCoin tests every identifier and its reported name
func TestParseCoin(t *testing.T) {
	tests := []struct {
		id   string
		coin Coin
		name string
	}{
		{"BTC", BTC, "BTC"},
		{"ETH", ETH, "ETH"},
		{"ATOM-Cosmos", ATOMCosmos, "ATOM-Cosmos"},
		{"SOL", SOL, "SOL"},
		{"AVAX", AVAX, "AVAX-C"},
		{"LUNA", LUNA, "Terra-LUNA"},
		{"NEAR", NEAR, "NEAR"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			is := is.New(t)
			coin, err := ParseCoin(tt.id)
			is.NoErr(err)
			is.Equal(coin, tt.coin)
			is.Equal(coin.String(), tt.id)
			is.Equal(coin.Name(), tt.name)
		})
	}
}

// TestParseCoin_Unsupported tests identifiers outside the table
func TestParseCoin_Unsupported(t *testing.T) {
	for _, id := range []string{"DOGE", "btc", "AVAX-C", "Terra-LUNA", ""} {
		t.Run(id, func(t *testing.T) {
			is := is.New(t)
			_, err := ParseCoin(id)
			is.True(errors.Is(err, ErrUnsupportedCoin))
		})
	}
}

// TestCoinPaths tests the path table and curve selection
func TestCoinPaths(t *testing.T) {
	tests := map[Coin]struct {
		path  string
		curve hdkey.Curve
	}{
		BTC:        {"m/84'/0'/0'/0/0", hdkey.Secp256k1},
		ETH:        {"m/44'/60'/0'/0/0", hdkey.Secp256k1},
		ATOMCosmos: {"m/44'/118'/0'/0/0", hdkey.Secp256k1},
		SOL:        {"m/44'/501'/0'/0'", hdkey.Ed25519},
		AVAX:       {"m/44'/60'/0'/0/0", hdkey.Secp256k1},
		LUNA:       {"m/44'/330'/0'/0/0", hdkey.Secp256k1},
		NEAR:       {"m/44'/397'/0'", hdkey.Ed25519},
	}

	is := is.New(t)
	is.Equal(len(tests), len(Coins()))

	for _, coin := range Coins() {
		want := tests[coin]
		is.Equal(coin.Path().String(), want.path)
		is.Equal(coin.Curve(), want.curve)
		if coin.Curve() == hdkey.Ed25519 {
			is.True(coin.Path().IsHardenedOnly())
		}
	}

	is.True(Coin(99).Path() == nil)
}

// TestCoins_ReturnsCopy tests that callers cannot modify the coin list
func TestCoins_ReturnsCopy(t *testing.T) {
	is := is.New(t)

	list := Coins()
	list[0] = NEAR
	is.Equal(Coins()[0], BTC)
}
