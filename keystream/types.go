// Package keystream defines the Source variant type and sentinel errors
// for the keystream subpackage of github.com/katalvlaran/cipherbox.
package keystream

import (
	"errors"

	"github.com/katalvlaran/cipherbox/alphabet"
)

// Sentinel errors for shift-stream resolution.
var (
	// ErrNoSource indicates a Source with no policy input at all while
	// a non-empty stream was requested.
	ErrNoSource = errors.New("keystream: no shift source supplied")
	// ErrLengthMismatch indicates an explicit numeric stream whose
	// length differs from the requested stream length.
	ErrLengthMismatch = errors.New("keystream: numeric stream length does not match text length")
	// ErrShiftRange indicates a numeric shift outside [0,25].
	ErrShiftRange = errors.New("keystream: shift value outside [0,25]")
	// ErrEmptyKey indicates a keystream or repeating key that contains
	// no letters after normalization.
	ErrEmptyKey = errors.New("keystream: key contains no letters")
)

// Source describes where a shift stream comes from. Fill exactly one
// policy in the common case; when more than one is set, Resolve applies
// the documented precedence Numeric > Letters > Key.
//
// Fields:
//   - Numeric — explicit shifts, one per text position. nil means unset;
//     a non-nil empty slice means "explicitly empty" and must match n==0.
//   - Letters — an explicit keystream, mapped letter→position through
//     Ref and repeated cyclically to the requested length.
//   - Ref     — the reference alphabet for Letters. The zero Alphabet
//     means "use the straight alphabet" so the common case needs no
//     explicit construction.
//   - Key     — a repeating key; each letter's straight-alphabet code
//     (A=0 … Z=25) is the shift.
type Source struct {
	Numeric []int
	Letters string
	Ref     alphabet.Alphabet
	Key     string
}

// Numeric wraps explicit per-position shifts as a Source.
func Numeric(shifts []int) Source {
	return Source{Numeric: shifts}
}

// Keystream wraps an explicit letter keystream and its reference
// alphabet as a Source.
func Keystream(letters string, ref alphabet.Alphabet) Source {
	return Source{Letters: letters, Ref: ref}
}

// RepeatingKey wraps a classical repeating key as a Source.
func RepeatingKey(key string) Source {
	return Source{Key: key}
}
