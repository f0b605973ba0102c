// Package main - the vigenere command: classical repeating-key Vigenère.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cipherbox/polyalpha"
)

var vigenereKey string

var vigenereCmd = &cobra.Command{
	Use:   "vigenere [text...]",
	Short: "Repeating-key Vigenère over straight alphabets",
	RunE:  runVigenere,
}

func init() {
	vigenereCmd.Flags().StringVarP(&vigenereKey, "key", "k", "", "repeating key (or CIPHERBOX_KEY)")
	rootCmd.AddCommand(vigenereCmd)
}

func runVigenere(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}
	key := stringSetting(vigenereKey, "key")

	dir := polyalpha.Encrypt
	if flagDecrypt {
		dir = polyalpha.Decrypt
	}

	out, err := polyalpha.Vigenere(text, key, dir)
	if err != nil {
		return err
	}

	log.Info().
		Int("key_len", len(key)).
		Int("text_len", len(out)).
		Bool("decrypt", flagDecrypt).
		Msg("vigenere")
	fmt.Println(out)

	return nil
}
