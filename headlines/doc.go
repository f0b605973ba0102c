// Package headlines implements the headline-puzzle cipher: a keyed
// ciphertext alphabet slid to a per-message "setting".
//
// 🚀 How it works:
//
//	One keyword keys the ciphertext alphabet; the plaintext alphabet is
//	straight. A single setting letter fixes the slide for the whole
//	message: the shift is the setting letter's position in the keyed
//	alphabet. In the classic puzzle, several headlines share a key but
//	use successive setting letters, so each headline is a different
//	constant slide of the same alphabet.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cipherbox/headlines"
//
//	ct, err := headlines.Encrypt("War declared at dawn",
//	  headlines.Options{Key: "HEADLINE", Setting: 'M'})
//
//	// or all five puzzle headlines at once, one setting letter each:
//	cts, err := headlines.EncryptAll(texts, "HEADLINE", "MONDAY")
//
// The constant shift is resolved through the keystream policy that maps
// letters through a caller-chosen alphabet, so the engine stays unaware
// of the setting convention.
//
// Complexity: O(n) over each message.
package headlines
