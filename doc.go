// Package cipherbox is your in-memory playground for classical,
// pencil-and-paper polyalphabetic ciphers — one reusable substitution
// engine plus the named ciphers built on top of it.
//
// 🚀 What is cipherbox?
//
//	A small, deterministic, I/O-free library that brings together:
//		• Alphabets: straight and keyword-keyed 26-letter permutations
//		• Shift streams: numeric, keystream and repeating-key policies
//		• The engine: an extended Vigenère transform (Add/Subtract,
//		  independent plaintext/ciphertext alphabets, per-position shifts)
//		• Quagmire I–IV: keyed-alphabet periodics with indicator keys
//		• Headlines: keyed alphabet slid to a per-message setting
//		• Interrupted key: repeating key with mid-text restarts
//
// ✨ Why choose cipherbox?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every encryption round-trips exactly
//   - Pure Go – no cgo, no hidden deps in the library packages
//   - Deterministic – no globals, no caches, every call stands alone
//
// Under the hood, everything is organized under focused subpackages:
//
//	alphabet/    — normalization + keyed/straight alphabet construction
//	keystream/   — shift-stream resolution (numeric > keystream > key)
//	polyalpha/   — the substitution engine and a Vigenère helper
//	quagmire/    — the four Quagmire variants
//	headlines/   — the headline-puzzle setting cipher
//	interrupted/ — interrupted-key Vigenère
//	cmd/cipherbox — a thin CLI over all of the above
//
// Quick sketch of the engine step at position i (Mode=Add):
//
//	p = PlainAlphabet.Index(text[i])
//	c = (p + shift[i]) mod 26
//	out[i] = CipherAlphabet[c]
//
// None of this is cryptographically secure; it is a faithful toolkit for
// classical cipher study, puzzle solving and recreational cryptanalysis.
//
//	go get github.com/katalvlaran/cipherbox
package cipherbox
