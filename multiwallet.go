// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package multiwallet derives key pairs and addresses for several
// blockchains from a single BIP-39 mnemonic.
//
// Every supported coin has a fixed derivation path and its own address and
// private key encoding:
//
//   - BTC: native segwit P2WPKH address, WIF private key (BIP84 m/84'/0'/0'/0/0)
//   - ETH: 0x-prefixed lowercase address and private key (m/44'/60'/0'/0/0)
//   - ATOM-Cosmos: cosmos1 bech32 address, base64 private key (m/44'/118'/0'/0/0)
//   - LUNA: terra1 bech32 address, hex private key (m/44'/330'/0'/0/0)
//   - SOL: base58 address and 64-byte secret key (m/44'/501'/0'/0')
//   - AVAX: C-Chain address derived on the Ethereum path, hex private key
//   - NEAR: hex implicit account, ed25519:-prefixed public and secret keys (m/44'/397'/0')
//
// A Wallet holds the mnemonic and its seed. Each derivation starts again
// from the seed, nothing derived is cached, and a Wallet is safe for
// concurrent use.
package multiwallet

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Record is the result of deriving one coin's wallet.
type Record struct {
	Mnemonic string `json:"mnemonic"`
	CoinName string `json:"coinName"`
	Address  string `json:"address"`
	Private  string `json:"private"`
	Public   string `json:"public,omitempty"`
}

// Wallet derives coin wallets from one mnemonic.
type Wallet struct {
	mnemonic string
	seed     []byte
	logger   zerolog.Logger
}

type options struct {
	passphrase string
	language   string
	wordCount  int
	logger     zerolog.Logger
}

// Option configures New.
type Option func(*options)

// WithPassphrase sets the BIP-39 passphrase (the "25th word"). The default is
// the empty passphrase.
func WithPassphrase(passphrase string) Option {
	return func(o *options) {
		o.passphrase = passphrase
	}
}

// WithLanguage sets the mnemonic wordlist language, as a tag ("ja") or an
// English name ("Japanese").
func WithLanguage(language string) Option {
	return func(o *options) {
		o.language = language
	}
}

// WithWordCount sets the length of the mnemonic generated when New is given
// an empty one.
func WithWordCount(n int) Option {
	return func(o *options) {
		o.wordCount = n
	}
}

// WithLogger sets the logger for derivation events. Key material is never
// logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New returns a Wallet for mnemonic. An empty mnemonic is replaced with a
// freshly generated one.
func New(mnemonic string, opts ...Option) (*Wallet, error) {
	o := options{
		language:  DefaultLanguage,
		wordCount: DefaultWordCount,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	mnemonic = normalizeMnemonic(mnemonic)
	if mnemonic == "" {
		generated, err := GenerateMnemonic(o.wordCount, o.language)
		if err != nil {
			return nil, fmt.Errorf("could not generate mnemonic: %w", err)
		}
		mnemonic = generated
		o.logger.Debug().Int("words", o.wordCount).Str("language", o.language).Msg("generated mnemonic")
	}

	seed, err := SeedFromMnemonic(mnemonic, o.passphrase, o.language)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		mnemonic: mnemonic,
		seed:     seed,
		logger:   o.logger,
	}, nil
}

// Derive is a one-shot helper that builds a Wallet for an existing English
// mnemonic and derives a single coin.
func Derive(mnemonic, passphrase string, coin Coin) (*Record, error) {
	w, err := New(mnemonic, WithPassphrase(passphrase))
	if err != nil {
		return nil, err
	}
	return w.Derive(coin)
}

// Mnemonic returns the wallet's mnemonic.
func (w *Wallet) Mnemonic() string {
	return w.mnemonic
}

// CreateWallet derives the wallet of the coin with the given identifier
// (see ParseCoin).
func (w *Wallet) CreateWallet(id string) (*Record, error) {
	coin, err := ParseCoin(id)
	if err != nil {
		return nil, err
	}
	return w.Derive(coin)
}

// Derive derives the wallet of one coin.
func (w *Wallet) Derive(coin Coin) (*Record, error) {
	if !coin.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCoin, coin)
	}

	var (
		rec *Record
		err error
	)
	switch coin {
	case BTC:
		rec, err = w.deriveBitcoin()
	case ETH:
		rec, err = w.deriveEthereum()
	case ATOMCosmos:
		rec, err = w.deriveCosmos(ATOMCosmos, CosmosPrefix, ATOMCosmosPath)
	case SOL:
		rec, err = w.deriveSolana()
	case AVAX:
		rec, err = w.deriveAvalanche()
	case LUNA:
		rec, err = w.deriveCosmos(LUNA, TerraPrefix, TerraLunaPath)
	case NEAR:
		rec, err = w.deriveNear()
	}
	if err != nil {
		return nil, fmt.Errorf("could not derive %s wallet: %w", coin.Name(), err)
	}

	w.logger.Debug().
		Str("coin", coin.Name()).
		Str("path", coin.Path().String()).
		Str("curve", coin.Curve().String()).
		Str("address", rec.Address).
		Msg("derived wallet")

	return rec, nil
}

// DeriveAll derives the wallets of every supported coin, in Coins order.
func (w *Wallet) DeriveAll() ([]*Record, error) {
	records := make([]*Record, 0, len(coins))
	for _, coin := range coins {
		rec, err := w.Derive(coin)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (w *Wallet) record(coin Coin, address, private string) *Record {
	return &Record{
		Mnemonic: w.mnemonic,
		CoinName: coin.Name(),
		Address:  address,
		Private:  private,
	}
}
