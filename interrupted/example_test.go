package interrupted_test

import (
	"fmt"

	"github.com/katalvlaran/cipherbox/interrupted"
)

// ExampleEncrypt restarts the key SIGNAL at positions 5 and 9, so the
// effective keystream reads SIGNA-SIGN-SIGNAL.
func ExampleEncrypt() {
	opts := interrupted.Options{Key: "SIGNAL", Interruptions: []int{5, 9}}

	ct, err := interrupted.Encrypt("Attack at dawn now", opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	pt, _ := interrupted.Decrypt(ct, opts)
	fmt.Println(ct)
	fmt.Println(pt)
	// Output:
	// SBZNCCIZQSETAOH
	// ATTACKATDAWNNOW
}
