// Package polyalpha - the substitution transform.
//
// This file contains the single engine entry point (Substitute) and the
// repeating-key Vigenère convenience built on it.
//
// Design principles:
//   - Stage-1 validation, then a branch-free per-letter loop: every
//     error is detected eagerly, before the first output byte exists.
//   - Deterministic, side-effect free; no state survives the call.
//   - Strict sentinels from types.go; alphabet validity is forwarded
//     from the alphabet package unchanged.
package polyalpha

import (
	"strings"

	"github.com/katalvlaran/cipherbox/alphabet"
	"github.com/katalvlaran/cipherbox/keystream"
)

// Substitute applies the per-position modular transform to text.
//
// Contracts:
//   - text must already be normalized (uppercase A–Z only); any other
//     byte yields ErrUnencodableSymbol.
//   - len(shifts) must equal len(text); every shift must lie in [0,25].
//   - opts alphabets must each be a permutation of A–Z.
//
// Round-trip guarantee: for any valid alphabets, Mode and shift stream,
// Substitute(Substitute(text, Encrypt, …), Decrypt, …) == text with all
// other arguments unchanged — including PlainAlphabet ≠ CipherAlphabet
// and non-uniform streams.
//
// Complexity: O(n) time, one O(n) allocation for the output.
func Substitute(text string, dir Direction, shifts []int, opts Options) (string, error) {
	// Stage 1: eager validation; no partial output on any failure.
	if dir != Encrypt && dir != Decrypt {
		return "", ErrBadDirection
	}
	if opts.Mode != Add && opts.Mode != Subtract {
		return "", ErrBadMode
	}
	if err := opts.PlainAlphabet.Validate(); err != nil {
		return "", err
	}
	if err := opts.CipherAlphabet.Validate(); err != nil {
		return "", err
	}
	if len(shifts) != len(text) {
		return "", ErrLengthMismatch
	}
	for _, k := range shifts {
		if k < 0 || k >= alphabet.Size {
			return "", ErrShiftRange
		}
	}

	// Position tables: letter code ('A'..'Z' → 0..25) to alphabet index.
	var ppos, cpos [alphabet.Size]int
	for i := 0; i < alphabet.Size; i++ {
		ppos[opts.PlainAlphabet[i]-'A'] = i
		cpos[opts.CipherAlphabet[i]-'A'] = i
	}

	// Stage 2: the per-letter transform.
	var (
		b    strings.Builder
		t    byte
		p, c int
	)
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		t = text[i]
		if t < 'A' || t > 'Z' {
			return "", ErrUnencodableSymbol
		}
		k := shifts[i]
		if dir == Encrypt {
			p = ppos[t-'A']
			if opts.Mode == Add {
				c = (p + k) % alphabet.Size
			} else {
				c = (p - k + alphabet.Size) % alphabet.Size
			}
			b.WriteByte(opts.CipherAlphabet[c])
		} else {
			c = cpos[t-'A']
			if opts.Mode == Add {
				p = (c - k + alphabet.Size) % alphabet.Size
			} else {
				p = (c + k) % alphabet.Size
			}
			b.WriteByte(opts.PlainAlphabet[p])
		}
	}

	return b.String(), nil
}

// Vigenere runs the classical repeating-key Vigenère cipher: straight
// alphabets, Mode=Add, shifts from the key's straight-alphabet codes.
// Text and key are normalized here, so raw input is accepted.
//
// Errors: keystream.ErrEmptyKey when the key holds no letters and the
// text is non-empty.
//
// Complexity: O(n) time.
func Vigenere(text, key string, dir Direction) (string, error) {
	t := alphabet.Normalize(text)
	shifts, err := keystream.RepeatingKey(key).Resolve(len(t))
	if err != nil {
		return "", err
	}

	return Substitute(t, dir, shifts, DefaultOptions())
}
