// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package hdkey derives child keys from a BIP-39 seed along a fixed
// derivation path. Two families are supported: BIP-32 over secp256k1 and
// SLIP-0010 over Ed25519 (hardened segments only).
package hdkey

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SeedSize is the only accepted seed length in bytes (BIP-39 output).
const SeedSize = 64

var (
	// ErrInvalidPath is returned for malformed paths and for paths that the
	// requested curve family cannot derive.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrInvalidSeed is returned when the seed is not SeedSize bytes long.
	ErrInvalidSeed = errors.New("invalid seed")
)

// Curve identifies the derivation family used for a path.
type Curve int

const (
	// Secp256k1 selects BIP-32 derivation.
	Secp256k1 Curve = iota
	// Ed25519 selects SLIP-0010 derivation.
	Ed25519
)

func (c Curve) String() string {
	switch c {
	case Secp256k1:
		return "secp256k1"
	case Ed25519:
		return "ed25519"
	default:
		return fmt.Sprintf("Curve(%d)", int(c))
	}
}

// Segment is one level of a derivation path.
type Segment struct {
	Index    uint32
	Hardened bool
}

// Path is an ordered list of segments below the master key.
type Path []Segment

// ParsePath parses BIP-32 path notation such as m/44'/60'/0'/0/0.
// Hardened segments may be marked with ', h or H.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with m", ErrInvalidPath, s)
	}

	path := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		seg := Segment{}
		if n := len(part); n > 0 && (part[n-1] == '\'' || part[n-1] == 'h' || part[n-1] == 'H') {
			seg.Hardened = true
			part = part[:n-1]
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %q in %q", ErrInvalidPath, part, s)
		}
		// the top bit is reserved for the hardened flag
		if idx > math.MaxInt32 {
			return nil, fmt.Errorf("%w: index %d out of range in %q", ErrInvalidPath, idx, s)
		}
		seg.Index = uint32(idx)
		path = append(path, seg)
	}

	return path, nil
}

// MustParsePath is like ParsePath but panics on error. It is meant for
// package-level path constants.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the path in m/44'/60'/0'/0/0 form.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(uint64(seg.Index), 10))
		if seg.Hardened {
			b.WriteByte('\'')
		}
	}
	return b.String()
}

// IsHardenedOnly reports whether every segment is hardened.
func (p Path) IsHardenedOnly() bool {
	for _, seg := range p {
		if !seg.Hardened {
			return false
		}
	}
	return true
}

func checkSeed(seed []byte) error {
	if len(seed) != SeedSize {
		return fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidSeed, SeedSize, len(seed))
	}
	return nil
}
