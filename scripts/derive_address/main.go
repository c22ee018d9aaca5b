// derive_address prints the address of one coin's wallet for a BIP39 mnemonic.
//
// Usage:
//
//	go run ./scripts/derive_address BTC "your 12 word seed phrase here"
//
// Or with stdin:
//
//	echo "your 12 word seed phrase" | go run ./scripts/derive_address SOL
//
// MULTIWALLET_PASSPHRASE, when set, is used as the BIP39 passphrase.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/complex-gh/multiwallet"
)

func main() {
	if len(os.Args) < 2 { //nolint:mnd
		usage()
	}

	coin, err := multiwallet.ParseCoin(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var mnemonic string
	if len(os.Args) > 2 { //nolint:mnd
		mnemonic = strings.Join(os.Args[2:], " ")
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			mnemonic = strings.TrimSpace(scanner.Text())
		}
	}

	if mnemonic == "" {
		usage()
	}

	rec, err := multiwallet.Derive(mnemonic, os.Getenv("MULTIWALLET_PASSPHRASE"), coin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(rec.Address)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: derive_address COIN \"12 word seed phrase\"")
	fmt.Fprintln(os.Stderr, "   or: echo \"seed phrase\" | derive_address COIN")
	fmt.Fprintln(os.Stderr, "COIN is one of BTC, ETH, ATOM-Cosmos, SOL, AVAX, LUNA, NEAR")
	os.Exit(1)
}
