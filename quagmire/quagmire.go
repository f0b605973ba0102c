// Package quagmire - the four Quagmire transforms.
//
// Encrypt and Decrypt share one pipeline: validate options, build the
// variant's alphabet pair, derive the periodic shift stream from the
// indicator/alignment arithmetic, then delegate the letter work to the
// polyalpha engine. The engine never learns which variant called it.
//
// Design principles:
//   - Staged validation first, strict sentinels from types.go.
//   - Deterministic and side-effect free; fresh alphabets per call.
//   - The per-period shifts are resolved through the keystream Numeric
//     policy, so length and range checks stay in one place.
package quagmire

import (
	"github.com/katalvlaran/cipherbox/alphabet"
	"github.com/katalvlaran/cipherbox/keystream"
	"github.com/katalvlaran/cipherbox/polyalpha"
)

// Encrypt enciphers text under opts. Text is normalized here; the
// Result reports the normalized ciphertext, the period and the
// per-indicator shifts.
//
// Complexity: O(n + 26) time.
func Encrypt(text string, opts Options) (Result, error) {
	return run(text, polyalpha.Encrypt, opts)
}

// Decrypt reverses Encrypt under the same options.
func Decrypt(text string, opts Options) (Result, error) {
	return run(text, polyalpha.Decrypt, opts)
}

// run is the shared pipeline behind Encrypt/Decrypt.
func run(text string, dir polyalpha.Direction, opts Options) (Result, error) {
	plain, ciph, err := alphabets(opts)
	if err != nil {
		return Result{}, err
	}

	align, err := alignment(opts.Alignment)
	if err != nil {
		return Result{}, err
	}

	indicator := alphabet.Normalize(opts.Indicator)
	if indicator == "" {
		return Result{}, ErrEmptyIndicator
	}

	// One shift per indicator letter: slide the ciphertext alphabet so
	// the indicator letter sits under the alignment letter.
	period := make([]int, len(indicator))
	base := plain.Index(align)
	for j := 0; j < len(indicator); j++ {
		period[j] = (ciph.Index(indicator[j]) - base + alphabet.Size) % alphabet.Size
	}

	t := alphabet.Normalize(text)
	stream := make([]int, len(t))
	for i := range stream {
		stream[i] = period[i%len(period)]
	}
	shifts, err := keystream.Numeric(stream).Resolve(len(t))
	if err != nil {
		return Result{}, err
	}

	out, err := polyalpha.Substitute(t, dir, shifts, polyalpha.Options{
		PlainAlphabet:  plain,
		CipherAlphabet: ciph,
		Mode:           polyalpha.Add,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Text: out, Period: len(indicator), Shifts: period}, nil
}

// alphabets builds the variant's plaintext/ciphertext alphabet pair.
func alphabets(opts Options) (plain, ciph alphabet.Alphabet, err error) {
	key := alphabet.Normalize(opts.Keyword)
	if key == "" {
		return plain, ciph, ErrEmptyKeyword
	}
	if opts.Variant != IV && alphabet.Normalize(opts.CipherKeyword) != "" {
		return plain, ciph, ErrCipherKeyword
	}

	switch opts.Variant {
	case I:
		return alphabet.NewKeyed(key), alphabet.Straight(), nil
	case II:
		return alphabet.Straight(), alphabet.NewKeyed(key), nil
	case III:
		keyed := alphabet.NewKeyed(key)

		return keyed, keyed, nil
	case IV:
		ckey := alphabet.Normalize(opts.CipherKeyword)
		if ckey == "" {
			return plain, ciph, ErrEmptyKeyword
		}

		return alphabet.NewKeyed(key), alphabet.NewKeyed(ckey), nil
	default:
		return plain, ciph, ErrBadVariant
	}
}

// alignment folds and validates the alignment letter; zero means 'A'.
func alignment(b byte) (byte, error) {
	switch {
	case b == 0:
		return 'A', nil
	case b >= 'a' && b <= 'z':
		return b - 'a' + 'A', nil
	case b >= 'A' && b <= 'Z':
		return b, nil
	default:
		return 0, ErrBadAlignment
	}
}
