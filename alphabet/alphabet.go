// Package alphabet - normalization and alphabet construction.
//
// This file contains the two total construction paths (Straight, NewKeyed),
// the text normalizer they share with every cipher caller, and the small
// lookup/validation helpers the engine relies on.
//
// Design principles:
//   - Total functions: Normalize and NewKeyed accept arbitrary input and
//     never fail; the empty keyword degenerates to the straight alphabet.
//   - Deterministic, side-effect free, no globals and no caching; alphabets
//     are cheap enough to rebuild per call.
//   - Only sentinel errors from types.go; helpers on invalid positions
//     return out-of-band values (-1, 0) rather than panicking.
package alphabet

import "strings"

// Normalize returns the maximal subsequence of A–Z letters of s,
// uppercased, order preserved. It is a total function: input with no
// letters yields the empty string, which every downstream component
// treats as a legal trivial case.
//
// Multi-byte UTF-8 sequences never collide with ASCII letters, so a
// byte-wise scan is exact.
//
// Complexity: O(len(s)) time, one output allocation.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var c byte
	for i := 0; i < len(s); i++ {
		c = s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}

	return b.String()
}

// Straight returns the identity permutation A,B,C,…,Z.
//
// Complexity: O(26) time, zero heap allocations.
func Straight() Alphabet {
	var a Alphabet
	for i := 0; i < Size; i++ {
		a[i] = 'A' + byte(i)
	}

	return a
}

// NewKeyed builds a keyed alphabet from keyword: the keyword's letters at
// their first occurrence, followed by every unused letter in alphabetical
// order. Total for any keyword — the empty (or letter-free) keyword
// returns the straight alphabet.
//
// Complexity: O(len(keyword)+26) time, zero heap allocations beyond
// normalization.
func NewKeyed(keyword string) Alphabet {
	var (
		a    Alphabet
		seen [Size]bool
		n    int
	)
	key := Normalize(keyword)
	// Keyword letters first, duplicates dropped at their first occurrence.
	for i := 0; i < len(key); i++ {
		if !seen[key[i]-'A'] {
			seen[key[i]-'A'] = true
			a[n] = key[i]
			n++
		}
	}
	// Remaining letters in alphabetical order.
	for c := byte('A'); c <= 'Z'; c++ {
		if !seen[c-'A'] {
			a[n] = c
			n++
		}
	}

	return a
}

// Validate reports whether a is a length-26 permutation of A–Z.
// Returns ErrInvalidAlphabet otherwise; the zero Alphabet fails.
//
// Complexity: O(26) time, O(1) space.
func (a Alphabet) Validate() error {
	var seen [Size]bool
	for i := 0; i < Size; i++ {
		if a[i] < 'A' || a[i] > 'Z' || seen[a[i]-'A'] {
			return ErrInvalidAlphabet
		}
		seen[a[i]-'A'] = true
	}

	return nil
}

// Index returns the position of letter within a, or -1 when letter is
// not present (any byte outside the alphabet, including lowercase).
//
// Complexity: O(26) time, O(1) space.
func (a Alphabet) Index(letter byte) int {
	for i := 0; i < Size; i++ {
		if a[i] == letter {
			return i
		}
	}

	return -1
}

// Letter returns the letter at position pos, or 0 when pos is out of
// the valid range [0,25].
func (a Alphabet) Letter(pos int) byte {
	if pos < 0 || pos >= Size {
		return 0
	}

	return a[pos]
}

// String renders the alphabet as a 26-letter string, e.g.
// "LEPRACHUNBDFGIJKMOQSTVWXYZ".
func (a Alphabet) String() string {
	return string(a[:])
}
