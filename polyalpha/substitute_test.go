package polyalpha_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cipherbox/alphabet"
	"github.com/katalvlaran/cipherbox/keystream"
	"github.com/katalvlaran/cipherbox/polyalpha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubstitute_ClassicVigenere pins the textbook vector: ATTACKATDAWN
// under LEMON encrypts to LXFOPVEFRNHR and decrypts back.
func TestSubstitute_ClassicVigenere(t *testing.T) {
	text := "ATTACKATDAWN"
	shifts, err := keystream.RepeatingKey("LEMON").Resolve(len(text))
	require.NoError(t, err)

	ct, err := polyalpha.Substitute(text, polyalpha.Encrypt, shifts, polyalpha.DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, "LXFOPVEFRNHR", ct)

	pt, err := polyalpha.Substitute(ct, polyalpha.Decrypt, shifts, polyalpha.DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, text, pt)
}

// TestVigenere_Helper checks the convenience wrapper end to end,
// including its internal normalization of raw text.
func TestVigenere_Helper(t *testing.T) {
	ct, err := polyalpha.Vigenere("Attack at dawn!", "lemon", polyalpha.Encrypt)
	assert.NoError(t, err)
	assert.Equal(t, "LXFOPVEFRNHR", ct)

	pt, err := polyalpha.Vigenere(ct, "LEMON", polyalpha.Decrypt)
	assert.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", pt)

	_, err = polyalpha.Vigenere("ATTACK", "1234", polyalpha.Encrypt)
	assert.ErrorIs(t, err, keystream.ErrEmptyKey)
}

// TestSubstitute_SubtractMode pins a variant-Beaufort vector: straight
// alphabets, Mode=Subtract, key LEMON.
func TestSubstitute_SubtractMode(t *testing.T) {
	text := "ATTACKATDAWN"
	shifts, err := keystream.RepeatingKey("LEMON").Resolve(len(text))
	require.NoError(t, err)

	opts := polyalpha.DefaultOptions()
	opts.Mode = polyalpha.Subtract

	ct, err := polyalpha.Substitute(text, polyalpha.Encrypt, shifts, opts)
	assert.NoError(t, err)
	assert.Equal(t, "PPHMPZWHPNLJ", ct)

	pt, err := polyalpha.Substitute(ct, polyalpha.Decrypt, shifts, opts)
	assert.NoError(t, err)
	assert.Equal(t, text, pt)
}

// TestSubstitute_EmptyText verifies the trivial case: empty text with
// any valid parameters returns an empty string, no error.
func TestSubstitute_EmptyText(t *testing.T) {
	for _, dir := range []polyalpha.Direction{polyalpha.Encrypt, polyalpha.Decrypt} {
		out, err := polyalpha.Substitute("", dir, []int{}, polyalpha.DefaultOptions())
		assert.NoError(t, err)
		assert.Equal(t, "", out)
	}
}

// TestSubstitute_ZeroShiftKeyedPlain checks the shift-by-zero degenerate:
// a keyed plaintext alphabet against a straight ciphertext alphabet with
// an all-zero stream is a pure one-to-one substitution. With
// keyed(LEPRACHAUN) = LEPRACHUNBDFGIJKMOQSTVWXYZ, L→A, E→B, P→C, ….
func TestSubstitute_ZeroShiftKeyedPlain(t *testing.T) {
	opts := polyalpha.DefaultOptions()
	opts.PlainAlphabet = alphabet.NewKeyed("LEPRACHAUN")

	text := "LEPRACHAUN"
	ct, err := polyalpha.Substitute(text, polyalpha.Encrypt, make([]int, len(text)), opts)
	assert.NoError(t, err)
	assert.Equal(t, "ABCDEFGEHI", ct)

	pt, err := polyalpha.Substitute(ct, polyalpha.Decrypt, make([]int, len(text)), opts)
	assert.NoError(t, err)
	assert.Equal(t, text, pt)
}

// TestSubstitute_Validation exercises the eager error taxonomy: every
// failure is detected before any output exists.
func TestSubstitute_Validation(t *testing.T) {
	var zero alphabet.Alphabet
	badPlain := polyalpha.DefaultOptions()
	badPlain.PlainAlphabet = zero
	badCipher := polyalpha.DefaultOptions()
	badCipher.CipherAlphabet = zero
	badMode := polyalpha.DefaultOptions()
	badMode.Mode = polyalpha.Mode(9)

	cases := []struct {
		name   string
		text   string
		dir    polyalpha.Direction
		shifts []int
		opts   polyalpha.Options
		err    error
	}{
		{"InvalidPlainAlphabet", "ABC", polyalpha.Encrypt, []int{0, 0, 0}, badPlain, alphabet.ErrInvalidAlphabet},
		{"InvalidCipherAlphabet", "ABC", polyalpha.Encrypt, []int{0, 0, 0}, badCipher, alphabet.ErrInvalidAlphabet},
		{"StreamTooShort", "ABC", polyalpha.Encrypt, []int{0, 0}, polyalpha.DefaultOptions(), polyalpha.ErrLengthMismatch},
		{"StreamTooLong", "ABC", polyalpha.Decrypt, []int{0, 0, 0, 0}, polyalpha.DefaultOptions(), polyalpha.ErrLengthMismatch},
		{"ShiftTooBig", "ABC", polyalpha.Encrypt, []int{0, 26, 0}, polyalpha.DefaultOptions(), polyalpha.ErrShiftRange},
		{"ShiftNegative", "ABC", polyalpha.Encrypt, []int{0, -1, 0}, polyalpha.DefaultOptions(), polyalpha.ErrShiftRange},
		{"LowercaseSymbol", "AbC", polyalpha.Encrypt, []int{0, 0, 0}, polyalpha.DefaultOptions(), polyalpha.ErrUnencodableSymbol},
		{"NonLetterSymbol", "A C", polyalpha.Decrypt, []int{0, 0, 0}, polyalpha.DefaultOptions(), polyalpha.ErrUnencodableSymbol},
		{"BadDirection", "ABC", polyalpha.Direction(7), []int{0, 0, 0}, polyalpha.DefaultOptions(), polyalpha.ErrBadDirection},
		{"BadMode", "ABC", polyalpha.Encrypt, []int{0, 0, 0}, badMode, polyalpha.ErrBadMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := polyalpha.Substitute(tc.text, tc.dir, tc.shifts, tc.opts)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, "", out, "no partial output on error")
		})
	}
}

// TestSubstitute_RoundTripRandomized is the fuzz property: for many
// randomized (text, alphabets, mode, stream) combinations, flipping the
// direction with all else unchanged reproduces the input exactly —
// including PlainAlphabet ≠ CipherAlphabet and non-uniform streams.
func TestSubstitute_RoundTripRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // deterministic across runs

	randomWord := func(maxLen int) string {
		n := rng.Intn(maxLen + 1)
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('A' + rng.Intn(alphabet.Size))
		}

		return string(b)
	}

	const iterations = 200
	for it := 0; it < iterations; it++ {
		text := randomWord(48)
		opts := polyalpha.Options{
			PlainAlphabet:  alphabet.NewKeyed(randomWord(12)),
			CipherAlphabet: alphabet.NewKeyed(randomWord(12)),
			Mode:           polyalpha.Mode(rng.Intn(2)),
		}
		shifts := make([]int, len(text))
		for i := range shifts {
			shifts[i] = rng.Intn(alphabet.Size)
		}

		ct, err := polyalpha.Substitute(text, polyalpha.Encrypt, shifts, opts)
		require.NoError(t, err, "iteration %d: encrypt failed", it)

		pt, err := polyalpha.Substitute(ct, polyalpha.Decrypt, shifts, opts)
		require.NoError(t, err, "iteration %d: decrypt failed", it)
		require.Equal(t, text, pt,
			"iteration %d: round trip broken (plain=%s cipher=%s mode=%d)",
			it, opts.PlainAlphabet, opts.CipherAlphabet, opts.Mode)
	}
}

// TestSubstitute_AsymmetricAlphabets pins one concrete asymmetric pair
// round trip with a non-uniform stream, outside the randomized sweep.
func TestSubstitute_AsymmetricAlphabets(t *testing.T) {
	opts := polyalpha.Options{
		PlainAlphabet:  alphabet.NewKeyed("SPRINGFEVER"),
		CipherAlphabet: alphabet.NewKeyed("PAULBRANDT"),
		Mode:           polyalpha.Subtract,
	}
	text := "MEETMEATMIDNIGHT"
	shifts := []int{3, 25, 0, 14, 7, 7, 1, 19, 22, 0, 25, 12, 6, 13, 4, 21}

	ct, err := polyalpha.Substitute(text, polyalpha.Encrypt, shifts, opts)
	require.NoError(t, err)
	assert.NotEqual(t, text, ct)

	pt, err := polyalpha.Substitute(ct, polyalpha.Decrypt, shifts, opts)
	require.NoError(t, err)
	assert.Equal(t, text, pt)
}
