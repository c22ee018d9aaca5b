// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"fmt"

	"github.com/complex-gh/multiwallet/hdkey"
)

// Coin identifies one of the supported networks.
type Coin int

// Supported coins, in output order.
const (
	BTC Coin = iota
	ETH
	ATOMCosmos
	SOL
	AVAX
	LUNA
	NEAR
)

var coins = []Coin{BTC, ETH, ATOMCosmos, SOL, AVAX, LUNA, NEAR}

// Derivation paths. AVAX has no path of its own and derives on ETHPath.
var (
	BTCPath        = hdkey.MustParsePath("m/84'/0'/0'/0/0")
	ETHPath        = hdkey.MustParsePath("m/44'/60'/0'/0/0")
	ATOMCosmosPath = hdkey.MustParsePath("m/44'/118'/0'/0/0")
	TerraLunaPath  = hdkey.MustParsePath("m/44'/330'/0'/0/0")
	SOLPath        = hdkey.MustParsePath("m/44'/501'/0'/0'")
	NearPath       = hdkey.MustParsePath("m/44'/397'/0'")
)

// Coins returns every supported coin.
func Coins() []Coin {
	out := make([]Coin, len(coins))
	copy(out, coins)
	return out
}

// ParseCoin maps a coin identifier (BTC, ETH, ATOM-Cosmos, SOL, AVAX, LUNA,
// NEAR) to a Coin. Matching is exact.
func ParseCoin(id string) (Coin, error) {
	for _, c := range coins {
		if c.String() == id {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCoin, id)
}

// String returns the identifier accepted by ParseCoin.
func (c Coin) String() string {
	switch c {
	case BTC:
		return "BTC"
	case ETH:
		return "ETH"
	case ATOMCosmos:
		return "ATOM-Cosmos"
	case SOL:
		return "SOL"
	case AVAX:
		return "AVAX"
	case LUNA:
		return "LUNA"
	case NEAR:
		return "NEAR"
	default:
		return fmt.Sprintf("Coin(%d)", int(c))
	}
}

// Name returns the coin name reported in a Record.
func (c Coin) Name() string {
	switch c {
	case AVAX:
		return "AVAX-C"
	case LUNA:
		return "Terra-LUNA"
	default:
		return c.String()
	}
}

// Path returns the fixed derivation path of the coin. It returns nil for
// values outside the enum.
func (c Coin) Path() hdkey.Path {
	switch c {
	case BTC:
		return BTCPath
	case ETH, AVAX:
		return ETHPath
	case ATOMCosmos:
		return ATOMCosmosPath
	case LUNA:
		return TerraLunaPath
	case SOL:
		return SOLPath
	case NEAR:
		return NearPath
	default:
		return nil
	}
}

// Curve returns the derivation family of the coin.
func (c Coin) Curve() hdkey.Curve {
	switch c {
	case SOL, NEAR:
		return hdkey.Ed25519
	default:
		return hdkey.Secp256k1
	}
}

func (c Coin) valid() bool {
	return c >= BTC && c <= NEAR
}
