// Package keystream resolves per-position shift streams for the
// cipherbox substitution engine.
//
// 🚀 What is a shift stream?
//
//	One integer in [0,25] per letter of (normalized) text: the modular
//	shift the engine applies at that position. A Source describes where
//	those integers come from; Resolve turns it into a concrete stream
//	of exactly the requested length.
//
// Three mutually exclusive policies, in precedence order:
//
//  1. Numeric — N integers supplied directly (e.g. from
//     indicator/alignment arithmetic). Validated for length and range.
//  2. Keystream — a letter sequence mapped to positions in a
//     caller-chosen reference alphabet, cyclically repeated/truncated.
//  3. RepeatingKey — a short key repeated cyclically; each letter's
//     straight-alphabet code is the shift (classical Vigenère).
//
// When a Source carries inputs for more than one policy the
// higher-precedence one wins, deterministically. That is deliberate:
// an advanced caller can override a default repeating-key stream with
// a precomputed one without changing the call contract (the
// interrupted-key cipher does exactly this).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cipherbox/keystream"
//
//	shifts, err := keystream.RepeatingKey("LEMON").Resolve(12)
//	// shifts = [11 4 12 14 13 11 4 12 14 13 11 4]
//
// Complexity: Resolve is O(n) time and allocates the one output slice.
package keystream
