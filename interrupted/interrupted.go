// Package interrupted - the interrupted-key transform.
//
// Design principles:
//   - Staged validation, strict sentinels, no partial output.
//   - The restart logic lives entirely in keystream derivation; the
//     engine sees an ordinary shift stream.
package interrupted

import (
	"errors"
	"strings"

	"github.com/katalvlaran/cipherbox/alphabet"
	"github.com/katalvlaran/cipherbox/keystream"
	"github.com/katalvlaran/cipherbox/polyalpha"
)

// Sentinel errors for interrupted-key configuration.
var (
	// ErrEmptyKey indicates a key with no letters.
	ErrEmptyKey = errors.New("interrupted: key contains no letters")
	// ErrBadInterruption indicates interruption positions that are not
	// strictly increasing or fall outside [1, len(text)-1].
	ErrBadInterruption = errors.New("interrupted: positions must be strictly increasing within the text")
)

// Options configures an interrupted-key call.
type Options struct {
	// Key is the repeating key; its straight-alphabet codes are the shifts.
	Key string
	// Interruptions are 0-based positions of the normalized text at
	// which the key restarts from its first letter. May be empty, which
	// degenerates to classical Vigenère.
	Interruptions []int
}

// Encrypt enciphers text under opts. Text is normalized here.
//
// Complexity: O(n + len(Interruptions)) time.
func Encrypt(text string, opts Options) (string, error) {
	return run(text, polyalpha.Encrypt, opts)
}

// Decrypt reverses Encrypt under the same options.
func Decrypt(text string, opts Options) (string, error) {
	return run(text, polyalpha.Decrypt, opts)
}

func run(text string, dir polyalpha.Direction, opts Options) (string, error) {
	key := alphabet.Normalize(opts.Key)
	if key == "" {
		return "", ErrEmptyKey
	}

	t := alphabet.Normalize(text)
	letters, err := interruptedKeystream(key, opts.Interruptions, len(t))
	if err != nil {
		return "", err
	}

	// Keystream beats repeating key in the resolver; with no
	// interruptions letters is empty and the plain key policy applies.
	shifts, err := keystream.Source{Letters: letters, Key: key}.Resolve(len(t))
	if err != nil {
		return "", err
	}

	return polyalpha.Substitute(t, dir, shifts, polyalpha.DefaultOptions())
}

// interruptedKeystream spells the key over n positions, snapping back to
// the key's first letter at every interruption. Returns "" when there is
// nothing to interrupt, so the caller can fall back to the plain key.
func interruptedKeystream(key string, positions []int, n int) (string, error) {
	if len(positions) == 0 {
		return "", nil
	}

	prev := 0
	for _, p := range positions {
		if p < 1 || p >= n || p <= prev {
			return "", ErrBadInterruption
		}
		prev = p
	}

	restart := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		restart[p] = struct{}{}
	}

	var b strings.Builder
	b.Grow(n)
	j := 0
	for i := 0; i < n; i++ {
		if _, ok := restart[i]; ok {
			j = 0
		}
		b.WriteByte(key[j%len(key)])
		j++
	}

	return b.String(), nil
}
