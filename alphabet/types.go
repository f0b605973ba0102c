// Package alphabet defines the Alphabet value type and sentinel errors
// for the alphabet subpackage of github.com/katalvlaran/cipherbox.
package alphabet

import "errors"

// Size is the number of symbols in a cipher alphabet (A–Z).
const Size = 26

// Sentinel errors for alphabet operations.
var (
	// ErrInvalidAlphabet indicates a value that is not a length-26
	// permutation of the letters A–Z.
	ErrInvalidAlphabet = errors.New("alphabet: not a permutation of A-Z")
)

// Alphabet is an ordered sequence of the 26 uppercase letters forming a
// bijection position↔letter. The zero value is NOT a valid alphabet;
// obtain instances via Straight or NewKeyed, or call Validate on values
// received across an API boundary.
//
// Alphabet is a plain array value: copying, comparing with == and
// passing by value are all cheap and allocation-free.
type Alphabet [Size]byte
