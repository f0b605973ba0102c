// Package polyalpha implements the configurable periodic polyalphabetic
// substitution engine at the heart of cipherbox — an extended
// Vigenère-style transform.
//
// 🚀 What does the engine do?
//
//	For each position i of normalized text, with shift k = shifts[i]:
//	  Mode=Add:      encrypt  c = (p + k) mod 26
//	                 decrypt  p = (c − k) mod 26
//	  Mode=Subtract: encrypt  c = (p − k) mod 26
//	                 decrypt  p = (c + k) mod 26
//	where p is the letter's position in PlainAlphabet and c its position
//	in CipherAlphabet. Either alphabet may be straight or keyed, and the
//	two may differ — the Quagmire family depends on exactly that.
//
// ✨ Guarantees:
//   - Round trip: Decrypt(Encrypt(text)) == text for every valid
//     alphabet pair, both modes and any matching-length shift stream,
//     because forward and inverse formulas are exact modular inverses
//   - Eager validation: alphabets, stream length, shift range and text
//     symbols are all checked before any output is produced; every
//     failure is fatal to the call, never partial
//   - The engine has no idea which named cipher invoked it: callers own
//     normalization, alphabet policy and shift derivation
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/cipherbox/alphabet"
//	  "github.com/katalvlaran/cipherbox/keystream"
//	  "github.com/katalvlaran/cipherbox/polyalpha"
//	)
//
//	text := alphabet.Normalize("Attack at dawn")
//	shifts, _ := keystream.RepeatingKey("LEMON").Resolve(len(text))
//	out, err := polyalpha.Substitute(text, polyalpha.Encrypt, shifts,
//	  polyalpha.DefaultOptions())
//
// Complexity: O(n) time over the text, one output allocation.
package polyalpha
