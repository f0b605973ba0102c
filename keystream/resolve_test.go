package keystream_test

import (
	"testing"

	"github.com/katalvlaran/cipherbox/alphabet"
	"github.com/katalvlaran/cipherbox/keystream"
	"github.com/stretchr/testify/assert"
)

// TestResolve_RepeatingKey checks the classical Vigenère stream:
// LEMON → 11,4,12,14,13, repeated and truncated to the text length.
func TestResolve_RepeatingKey(t *testing.T) {
	shifts, err := keystream.RepeatingKey("LEMON").Resolve(12)
	assert.NoError(t, err)
	assert.Equal(t, []int{11, 4, 12, 14, 13, 11, 4, 12, 14, 13, 11, 4}, shifts)
}

// TestResolve_RepeatingKeyNormalizes verifies keys are normalized before
// use: case and punctuation do not change the stream.
func TestResolve_RepeatingKeyNormalizes(t *testing.T) {
	want, err := keystream.RepeatingKey("LEMON").Resolve(7)
	assert.NoError(t, err)
	got, err := keystream.RepeatingKey("le mon!").Resolve(7)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestResolve_Numeric validates the explicit numeric policy: exact
// length required, range enforced, input copied not aliased.
func TestResolve_Numeric(t *testing.T) {
	in := []int{0, 25, 13}

	shifts, err := keystream.Numeric(in).Resolve(3)
	assert.NoError(t, err)
	assert.Equal(t, in, shifts)

	shifts[0] = 9
	assert.Equal(t, 0, in[0], "Resolve must copy, not alias, the numeric input")

	_, err = keystream.Numeric(in).Resolve(4)
	assert.ErrorIs(t, err, keystream.ErrLengthMismatch)

	_, err = keystream.Numeric([]int{0, 26, 0}).Resolve(3)
	assert.ErrorIs(t, err, keystream.ErrShiftRange)

	_, err = keystream.Numeric([]int{-1}).Resolve(1)
	assert.ErrorIs(t, err, keystream.ErrShiftRange)
}

// TestResolve_KeystreamThroughKeyedAlphabet maps keystream letters
// through a caller-chosen alphabet: in keyed(GRAVITY) =
// GRAVITYBCDEFHJKLMNOPQSUWXZ, K=14, E=10, Y=6.
func TestResolve_KeystreamThroughKeyedAlphabet(t *testing.T) {
	ref := alphabet.NewKeyed("GRAVITY")

	shifts, err := keystream.Keystream("KEY", ref).Resolve(7)
	assert.NoError(t, err)
	assert.Equal(t, []int{14, 10, 6, 14, 10, 6, 14}, shifts)
}

// TestResolve_KeystreamDefaultsToStraight verifies the zero Ref means
// the straight alphabet.
func TestResolve_KeystreamDefaultsToStraight(t *testing.T) {
	shifts, err := keystream.Source{Letters: "ABZ"}.Resolve(3)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 25}, shifts)
}

// TestResolve_Precedence asserts the documented order: numeric beats
// keystream beats repeating key.
func TestResolve_Precedence(t *testing.T) {
	src := keystream.Source{
		Numeric: []int{7, 7, 7},
		Letters: "AAA",
		Key:     "BBB",
	}
	shifts, err := src.Resolve(3)
	assert.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7}, shifts, "numeric must win over keystream and key")

	src.Numeric = nil
	shifts, err = src.Resolve(3)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, shifts, "keystream must win over repeating key")

	src.Letters = ""
	shifts, err = src.Resolve(3)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, shifts, "repeating key is the fallback")
}

// TestResolve_Errors covers the degenerate sources.
func TestResolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  keystream.Source
		n    int
		err  error
	}{
		{"NoSource", keystream.Source{}, 5, keystream.ErrNoSource},
		{"KeyWithoutLetters", keystream.RepeatingKey("123 !"), 5, keystream.ErrEmptyKey},
		{"KeystreamWithoutLetters", keystream.Keystream("...", alphabet.Straight()), 5, keystream.ErrEmptyKey},
		{"NegativeLength", keystream.RepeatingKey("KEY"), -1, keystream.ErrLengthMismatch},
		{"NumericTooShort", keystream.Numeric([]int{1}), 2, keystream.ErrLengthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.src.Resolve(tc.n)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestResolve_InvalidRef rejects a non-zero Ref that is not a
// permutation of A–Z.
func TestResolve_InvalidRef(t *testing.T) {
	bad := alphabet.Straight()
	bad[0] = 'B' // duplicate B, missing A

	_, err := keystream.Keystream("KEY", bad).Resolve(3)
	assert.ErrorIs(t, err, alphabet.ErrInvalidAlphabet)
}

// TestResolve_EmptyText verifies n==0 resolves to an empty stream for
// any source, including none at all — except a mismatched numeric one.
func TestResolve_EmptyText(t *testing.T) {
	for name, src := range map[string]keystream.Source{
		"NoSource":     {},
		"RepeatingKey": keystream.RepeatingKey("LEMON"),
		"Keystream":    keystream.Keystream("KEY", alphabet.Straight()),
		"NumericEmpty": keystream.Numeric([]int{}),
	} {
		t.Run(name, func(t *testing.T) {
			shifts, err := src.Resolve(0)
			assert.NoError(t, err)
			assert.Empty(t, shifts)
		})
	}

	_, err := keystream.Numeric([]int{3}).Resolve(0)
	assert.ErrorIs(t, err, keystream.ErrLengthMismatch, "numeric length is always strict")
}
