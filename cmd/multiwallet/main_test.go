package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/complex-gh/multiwallet"
	"github.com/matryer/is"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestParseCoins(t *testing.T) {
	t.Run("empty selects all", func(t *testing.T) {
		is := is.New(t)
		coins, err := parseCoins("")
		is.NoErr(err)
		is.Equal(coins, multiwallet.Coins())

		coins, err = parseCoins(" , ")
		is.NoErr(err)
		is.Equal(coins, multiwallet.Coins())
	})

	t.Run("keeps order and drops duplicates", func(t *testing.T) {
		is := is.New(t)
		coins, err := parseCoins("NEAR, BTC,NEAR,ATOM-Cosmos")
		is.NoErr(err)
		is.Equal(coins, []multiwallet.Coin{multiwallet.NEAR, multiwallet.BTC, multiwallet.ATOMCosmos})
	})

	t.Run("unknown coin", func(t *testing.T) {
		is := is.New(t)
		_, err := parseCoins("BTC,DOGE")
		is.True(errors.Is(err, multiwallet.ErrUnsupportedCoin))
	})
}

func TestWriteRecords(t *testing.T) {
	records := []*multiwallet.Record{
		{Mnemonic: testMnemonic, CoinName: "ETH", Address: "0xaddr", Private: "0xpriv"},
		{Mnemonic: testMnemonic, CoinName: "NEAR", Address: "abcd", Private: "ed25519:priv", Public: "ed25519:pub"},
	}

	t.Run("existing mnemonic", func(t *testing.T) {
		is := is.New(t)
		var buf bytes.Buffer
		writeRecords(&buf, testMnemonic, false, records)

		out := buf.String()
		is.True(!strings.Contains(out, testMnemonic))
		is.Equal(out, "[ETH wallet]\n\n"+
			"0xaddr (address)\n"+
			"0xpriv (private key)\n\n"+
			"[NEAR wallet]\n\n"+
			"abcd (address)\n"+
			"ed25519:pub (public key)\n"+
			"ed25519:priv (private key)\n")
	})

	t.Run("generated mnemonic", func(t *testing.T) {
		is := is.New(t)
		var buf bytes.Buffer
		writeRecords(&buf, testMnemonic, true, records[:1])

		is.True(strings.HasPrefix(buf.String(), "[12 word seed phrase]\n\n"+testMnemonic+"\n\n[ETH wallet]"))
	})
}

func TestWriteJSON(t *testing.T) {
	is := is.New(t)

	w, err := multiwallet.New(testMnemonic)
	is.NoErr(err)
	rec, err := w.Derive(multiwallet.ETH)
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(writeJSON(&buf, []*multiwallet.Record{rec}))

	var got []map[string]string
	is.NoErr(json.Unmarshal(buf.Bytes(), &got))
	is.Equal(len(got), 1)
	is.Equal(got[0]["coinName"], "ETH")
	is.Equal(got[0]["mnemonic"], testMnemonic)
	is.Equal(got[0]["address"], "0x9858effd232b4033e47d90003d41ec34ecaeda94")
	_, hasPublic := got[0]["public"]
	is.True(!hasPublic)
}

func TestWriteCoinTable(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	writeCoinTable(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(len(lines), len(multiwallet.Coins()))
	is.True(strings.HasPrefix(lines[0], "BTC"))
	is.True(strings.Contains(lines[0], "m/84'/0'/0'/0/0"))
	is.True(strings.Contains(lines[len(lines)-1], "ed25519"))
}

func TestUserMessage(t *testing.T) {
	is := is.New(t)

	msg := userMessage(fmt.Errorf("wrapped: %w", multiwallet.ErrInvalidMnemonic))
	is.True(strings.Contains(msg, "seed phrase is not valid"))

	other := errors.New("boom")
	is.Equal(userMessage(other), "boom")
}
