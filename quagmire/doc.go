// Package quagmire implements the four Quagmire ciphers — periodic
// polyalphabetic substitutions over keyed alphabets, driven by an
// indicator keyword and an alignment letter.
//
// 🚀 How a Quagmire works:
//
//	Conceptually the cipher is a tableau: the plaintext alphabet on top,
//	and one row of the ciphertext alphabet per indicator letter, each
//	row slid so that its indicator letter sits directly under the
//	alignment letter of the plaintext alphabet. Position i of the text
//	uses row i mod period.
//
//	That slide is a single shift per row:
//	  shift = (CipherAlphabet.Index(indicator[j]) −
//	           PlainAlphabet.Index(alignment)) mod 26
//	so the whole cipher reduces to one engine call with a periodic
//	numeric shift stream.
//
// The four variants differ only in which alphabets are keyed:
//
//	I   — keyed plaintext alphabet, straight ciphertext alphabet
//	II  — straight plaintext alphabet, keyed ciphertext alphabet
//	III — both keyed with the same keyword
//	IV  — plaintext and ciphertext alphabets keyed with different keywords
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cipherbox/quagmire"
//
//	opts := quagmire.DefaultOptions() // variant III, alignment 'A'
//	opts.Keyword = "GRAVITY"
//	opts.Indicator = "MOON"
//
//	res, err := quagmire.Encrypt("Defend the east wall", opts)
//	// res.Text is the ciphertext, res.Period == 4
//
// Complexity: O(n) over the text plus O(26) alphabet construction.
package quagmire
