package alphabet_test

import (
	"fmt"

	"github.com/katalvlaran/cipherbox/alphabet"
)

// ExampleNewKeyed builds the keyed alphabet used throughout the Quagmire
// family: keyword letters first (duplicates dropped), then the rest of
// A–Z in order.
func ExampleNewKeyed() {
	a := alphabet.NewKeyed("LEPRACHAUN")
	fmt.Println(a)
	fmt.Println(a.Index('U'))
	// Output:
	// LEPRACHUNBDFGIJKMOQSTVWXYZ
	// 7
}

// ExampleNormalize shows the normalizer restricting arbitrary text to
// uppercase A–Z.
func ExampleNormalize() {
	fmt.Println(alphabet.Normalize("Attack at dawn, 06:00!"))
	// Output:
	// ATTACKATDAWN
}
