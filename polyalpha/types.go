// Package polyalpha defines directions, modes, options and sentinel
// errors for the substitution engine of github.com/katalvlaran/cipherbox.
package polyalpha

import (
	"errors"

	"github.com/katalvlaran/cipherbox/alphabet"
)

// Sentinel errors for engine operations. Alphabet validity failures are
// forwarded as alphabet.ErrInvalidAlphabet.
var (
	// ErrLengthMismatch indicates len(shifts) != len(text).
	ErrLengthMismatch = errors.New("polyalpha: shift stream length does not match text length")
	// ErrShiftRange indicates a shift value outside [0,25].
	ErrShiftRange = errors.New("polyalpha: shift value outside [0,25]")
	// ErrUnencodableSymbol indicates a text symbol absent from the
	// alphabet it is looked up against. Normalized A–Z text can never
	// trigger it; it flags an inconsistent caller contract.
	ErrUnencodableSymbol = errors.New("polyalpha: text symbol not present in alphabet")
	// ErrBadDirection indicates a Direction outside {Encrypt, Decrypt}.
	ErrBadDirection = errors.New("polyalpha: unknown direction")
	// ErrBadMode indicates a Mode outside {Add, Subtract}.
	ErrBadMode = errors.New("polyalpha: unknown mode")
)

// Direction selects the forward or inverse transform.
type Direction uint8

const (
	// Encrypt applies the forward transform: plaintext index in,
	// ciphertext letter out.
	Encrypt Direction = iota
	// Decrypt applies the exact modular inverse of Encrypt.
	Decrypt
)

// Mode is the sign convention combining letter index and shift.
//
//   - Add:      encrypt c = (p + k) mod 26, decrypt p = (c − k) mod 26.
//   - Subtract: encrypt c = (p − k) mod 26, decrypt p = (c + k) mod 26.
//
// Mode stays explicit rather than being folded into the alphabet roles:
// Beaufort-style reciprocity only holds for symmetric alphabet pairs,
// and several callers rely on asymmetric ones.
type Mode uint8

const (
	// Add combines index and shift additively (classical Vigenère).
	Add Mode = iota
	// Subtract combines index and shift subtractively (variant
	// Beaufort when both alphabets are straight).
	Subtract
)

// Options configures one engine call. Both alphabets must be valid
// permutations of A–Z; they may be equal, distinct, straight or keyed
// in any combination.
type Options struct {
	// PlainAlphabet is the alphabet plaintext letters are read from
	// (Encrypt) or written to (Decrypt).
	PlainAlphabet alphabet.Alphabet
	// CipherAlphabet is the alphabet ciphertext letters are written to
	// (Encrypt) or read from (Decrypt).
	CipherAlphabet alphabet.Alphabet
	// Mode is the index/shift sign convention.
	Mode Mode
}

// DefaultOptions returns straight plaintext and ciphertext alphabets
// with Mode=Add — the classical Vigenère configuration.
func DefaultOptions() Options {
	return Options{
		PlainAlphabet:  alphabet.Straight(),
		CipherAlphabet: alphabet.Straight(),
		Mode:           Add,
	}
}
