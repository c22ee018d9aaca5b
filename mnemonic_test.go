// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package multiwallet

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// TestSeedFromMnemonic_Vector checks the BIP-39 seed of the abandon mnemonic
func TestSeedFromMnemonic_Vector(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "", "")
	is.NoErr(err)
	is.Equal(len(seed), 64)
	is.Equal(hex.EncodeToString(seed), "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4")
}

// TestSeedFromMnemonic_Deterministic verifies same inputs give the same seed and
// the passphrase changes it
func TestSeedFromMnemonic_Deterministic(t *testing.T) {
	is := is.New(t)

	a, err := SeedFromMnemonic(testMnemonic, "pass", "en")
	is.NoErr(err)
	b, err := SeedFromMnemonic(testMnemonic, "pass", "english")
	is.NoErr(err)
	c, err := SeedFromMnemonic(testMnemonic, "", "en")
	is.NoErr(err)

	is.Equal(a, b)
	is.True(hex.EncodeToString(a) != hex.EncodeToString(c))
}

// TestGenerateMnemonic_AllWordCounts tests every BIP-39 word count
func TestGenerateMnemonic_AllWordCounts(t *testing.T) {
	for _, count := range []int{12, 15, 18, 21, 24} {
		t.Run(strconv.Itoa(count), func(t *testing.T) {
			is := is.New(t)

			mnemonic, err := GenerateMnemonic(count, "en")
			is.NoErr(err)
			is.Equal(len(strings.Fields(mnemonic)), count)
			is.True(ValidateMnemonic(mnemonic, "en"))
		})
	}
}

// TestGenerateMnemonic_InvalidWordCount tests unsupported word counts
func TestGenerateMnemonic_InvalidWordCount(t *testing.T) {
	for _, count := range []int{0, 10, 11, 13, 16, 25, 30} {
		t.Run(strconv.Itoa(count), func(t *testing.T) {
			is := is.New(t)
			_, err := GenerateMnemonic(count, "en")
			is.True(errors.Is(err, ErrInvalidWordCount))
		})
	}
}

// TestGenerateMnemonic_Language tests generation with a non-English wordlist
func TestGenerateMnemonic_Language(t *testing.T) {
	is := is.New(t)

	mnemonic, err := GenerateMnemonic(12, "Spanish")
	is.NoErr(err)

	spanish := map[string]bool{}
	for _, w := range wordlists.Spanish {
		spanish[w] = true
	}
	for _, w := range strings.Fields(mnemonic) {
		is.True(spanish[w]) // word from the spanish list
	}

	is.True(ValidateMnemonic(mnemonic, "es"))

	// the package wordlist is restored afterwards
	is.True(ValidateMnemonic(testMnemonic, ""))

	w, err := New(mnemonic, WithLanguage("es"))
	is.NoErr(err)
	_, err = w.Derive(SOL)
	is.NoErr(err)
}

// TestWordlist tests language resolution by tag and by English name
func TestWordlist(t *testing.T) {
	tests := map[string][]string{
		"":        wordlists.English,
		"en":      wordlists.English,
		"en-US":   wordlists.English,
		"English": wordlists.English,
		"ja":      wordlists.Japanese,
		"korean":  wordlists.Korean,
		"zh-Hant": wordlists.ChineseTraditional,
		"cs":      wordlists.Czech,
		"fr":      wordlists.French,
		"it":      wordlists.Italian,
	}

	for language, want := range tests {
		t.Run(language, func(t *testing.T) {
			is := is.New(t)
			got, err := Wordlist(language)
			is.NoErr(err)
			is.Equal(got[0], want[0])
			is.Equal(len(got), 2048)
		})
	}
}

// TestWordlist_Unsupported tests languages without a BIP-39 wordlist
func TestWordlist_Unsupported(t *testing.T) {
	for _, language := range []string{"klingon", "de", "ru"} {
		t.Run(language, func(t *testing.T) {
			is := is.New(t)
			_, err := Wordlist(language)
			is.True(errors.Is(err, ErrUnsupportedLanguage))
		})
	}
}

// TestValidateMnemonic tests checksum and wordlist validation
func TestValidateMnemonic(t *testing.T) {
	is := is.New(t)

	is.True(ValidateMnemonic(testMnemonic, "en"))
	is.True(!ValidateMnemonic("zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo", "en"))
	is.True(!ValidateMnemonic(testMnemonic, "ja"))
	is.True(!ValidateMnemonic(testMnemonic, "klingon"))
}
