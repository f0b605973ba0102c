// Package interrupted implements the interrupted-key Vigenère: a
// repeating key that restarts from its first letter at chosen positions
// of the text.
//
// 🚀 How it works:
//
//	A classical Vigenère reuses its key cyclically. The interrupted
//	variant breaks that cycle: at each interruption position the key
//	snaps back to its first letter, so the effective keystream for
//	SIGNAL interrupted at positions 5 and 9 over 15 letters reads
//
//	  SIGNA SIGN SIGNAL
//	  01234 5678 9…
//
//	With no interruptions the cipher degenerates to plain Vigenère.
//
// Implementation note: the caller-derived keystream letters are passed
// to the resolver together with the plain repeating key; the resolver's
// documented precedence (keystream over repeating key) picks the
// interrupted stream when one exists and falls back to the plain key
// otherwise — no branching in the cipher itself.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cipherbox/interrupted"
//
//	ct, err := interrupted.Encrypt("Attack at dawn now",
//	  interrupted.Options{Key: "SIGNAL", Interruptions: []int{5, 9}})
//
// Interruption positions are 0-based indices into the normalized text,
// strictly increasing, each in [1, len(text)-1].
//
// Complexity: O(n) over the text.
package interrupted
