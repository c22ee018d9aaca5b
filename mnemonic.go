// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguage is the wordlist language used when none is given.
const DefaultLanguage = "en"

// DefaultWordCount is the length of generated mnemonics when none is given.
const DefaultWordCount = 12

// entropyBits maps a BIP-39 word count to its entropy size.
var entropyBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

var wordLists = map[lang.Tag][]string{
	lang.Chinese:              wordlists.ChineseSimplified,
	lang.SimplifiedChinese:    wordlists.ChineseSimplified,
	lang.TraditionalChinese:   wordlists.ChineseTraditional,
	lang.Czech:                wordlists.Czech,
	lang.AmericanEnglish:      wordlists.English,
	lang.BritishEnglish:       wordlists.English,
	lang.English:              wordlists.English,
	lang.French:               wordlists.French,
	lang.Italian:              wordlists.Italian,
	lang.Japanese:             wordlists.Japanese,
	lang.Korean:               wordlists.Korean,
	lang.Spanish:              wordlists.Spanish,
	lang.EuropeanSpanish:      wordlists.Spanish,
	lang.LatinAmericanSpanish: wordlists.Spanish,
}

// go-bip39 reads its wordlist from package state. wordlistMu serializes
// every call that depends on it.
var wordlistMu sync.Mutex

func withWordlist(list []string, fn func() error) error {
	wordlistMu.Lock()
	defer wordlistMu.Unlock()

	bip39.SetWordList(list)
	defer bip39.SetWordList(wordlists.English)

	return fn()
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// Wordlist returns the BIP-39 wordlist for a language given either as a
// BCP 47 tag ("en", "zh-Hant") or as its English name ("Spanish"). An empty
// language selects English.
func Wordlist(language string) ([]string, error) {
	if language == "" {
		language = DefaultLanguage
	}
	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages()
	for t := range wordLists {
		if sanitizeLang(en.Name(t)) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	if wl := wordLists[tag]; wl != nil {
		return wl, nil
	}
	base, _ := tag.Base()
	if wl := wordLists[lang.Make(base.String())]; wl != nil {
		return wl, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
}

// GenerateMnemonic returns a new random mnemonic of wordCount words in the
// given language. Valid word counts are 12, 15, 18, 21 and 24.
func GenerateMnemonic(wordCount int, language string) (string, error) {
	bits, ok := entropyBits[wordCount]
	if !ok {
		return "", fmt.Errorf("%w: %d (must be 12, 15, 18, 21, or 24)", ErrInvalidWordCount, wordCount)
	}
	list, err := Wordlist(language)
	if err != nil {
		return "", err
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("could not generate entropy: %w", err)
	}

	var mnemonic string
	err = withWordlist(list, func() error {
		var err error
		mnemonic, err = bip39.NewMnemonic(entropy)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("could not create a mnemonic set of words: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic reports whether mnemonic has a valid word count, only
// words from the language's wordlist and a valid checksum.
func ValidateMnemonic(mnemonic, language string) bool {
	list, err := Wordlist(language)
	if err != nil {
		return false
	}
	var valid bool
	_ = withWordlist(list, func() error {
		valid = bip39.IsMnemonicValid(mnemonic)
		return nil
	})
	return valid
}

// SeedFromMnemonic derives the 64-byte BIP-39 seed from a mnemonic and an
// optional passphrase. The mnemonic is checked against the language's
// wordlist first.
func SeedFromMnemonic(mnemonic, passphrase, language string) ([]byte, error) {
	list, err := Wordlist(language)
	if err != nil {
		return nil, err
	}

	var seed []byte
	err = withWordlist(list, func() error {
		var err error
		seed, err = bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	return seed, nil
}

// normalizeMnemonic collapses runs of whitespace into single spaces.
func normalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}
