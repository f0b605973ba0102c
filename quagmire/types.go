// Package quagmire defines the variant enum, options, result and
// sentinel errors for the quagmire subpackage of
// github.com/katalvlaran/cipherbox.
package quagmire

import "errors"

// Sentinel errors for Quagmire configuration.
var (
	// ErrBadVariant indicates a Variant outside I–IV.
	ErrBadVariant = errors.New("quagmire: unknown variant")
	// ErrEmptyKeyword indicates a required keyword with no letters.
	ErrEmptyKeyword = errors.New("quagmire: keyword contains no letters")
	// ErrEmptyIndicator indicates an indicator keyword with no letters.
	ErrEmptyIndicator = errors.New("quagmire: indicator contains no letters")
	// ErrCipherKeyword indicates a cipher keyword supplied for a
	// variant other than IV (only IV keys the two alphabets apart).
	ErrCipherKeyword = errors.New("quagmire: cipher keyword is only valid for variant IV")
	// ErrBadAlignment indicates an alignment byte that is not a letter.
	ErrBadAlignment = errors.New("quagmire: alignment must be a letter A-Z")
)

// Variant selects one of the four Quagmire ciphers.
type Variant uint8

const (
	// I keys the plaintext alphabet; the ciphertext alphabet is straight.
	I Variant = iota + 1
	// II keys the ciphertext alphabet; the plaintext alphabet is straight.
	II
	// III keys both alphabets with the same keyword.
	III
	// IV keys the plaintext alphabet with Keyword and the ciphertext
	// alphabet with CipherKeyword.
	IV
)

// Options configures a Quagmire call.
type Options struct {
	// Variant selects which alphabets are keyed.
	Variant Variant
	// Keyword keys the plaintext alphabet (I, III, IV) or the
	// ciphertext alphabet (II, III). Required for every variant.
	Keyword string
	// CipherKeyword keys the ciphertext alphabet; variant IV only.
	CipherKeyword string
	// Indicator is the secondary keyword whose letters, read
	// cyclically, fix one tableau row per text position. Its length is
	// the cipher's period. Required.
	Indicator string
	// Alignment is the plaintext-alphabet letter under which the
	// indicator is written. Zero means 'A'; lowercase is folded.
	Alignment byte
}

// DefaultOptions returns a variant III configuration with the
// conventional alignment under 'A'. Keyword and Indicator remain for
// the caller to fill.
func DefaultOptions() Options {
	return Options{
		Variant:   III,
		Alignment: 'A',
	}
}

// Result carries the transformed text together with the caller-facing
// metadata of the run.
type Result struct {
	// Text is the ciphertext (Encrypt) or recovered plaintext (Decrypt).
	Text string
	// Period is the indicator length after normalization.
	Period int
	// Shifts is one engine shift per indicator letter, in order.
	Shifts []int
}
