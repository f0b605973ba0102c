// Package alphabet provides text normalization and 26-letter cipher
// alphabets for the cipherbox engine and its callers.
//
// 🚀 What is an alphabet here?
//
//	A fixed-size permutation of the letters A–Z. Two flavors exist:
//	  • the straight alphabet: A,B,C,…,Z (the identity permutation)
//	  • a keyed alphabet: keyword letters first (duplicates dropped),
//	    then every unused letter in alphabetical order
//
//	Keyed alphabets are the backbone of the Quagmire family and the
//	headline puzzle: NewKeyed("LEPRACHAUN") yields
//	LEPRACHUNBDFGIJKMOQSTVWXYZ.
//
// ✨ Key properties:
//   - Normalize and NewKeyed are total functions: any input, including
//     the empty string, produces a valid result (never an error)
//   - Alphabet is a plain value type ([26]byte): allocation-free to
//     construct, copy and compare; no globals, no caches
//   - Validate lets downstream components check alphabets received
//     across API boundaries before trusting them
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cipherbox/alphabet"
//
//	plain := alphabet.NewKeyed("SPRINGFEVER")
//	ciph := alphabet.Straight()
//	pos := plain.Index('F') // position of F in the keyed alphabet
//
// Complexity: construction O(26), Index O(26), Validate O(26) —
// everything is constant-time in practice.
package alphabet
