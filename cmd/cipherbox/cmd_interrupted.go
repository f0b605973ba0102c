// Package main - the interrupted command: interrupted-key Vigenère.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cipherbox/interrupted"
)

var (
	intKey string
	intAt  []int
)

var interruptedCmd = &cobra.Command{
	Use:   "interrupted [text...]",
	Short: "Vigenère with a key that restarts at chosen text positions",
	RunE:  runInterrupted,
}

func init() {
	interruptedCmd.Flags().StringVarP(&intKey, "key", "k", "", "repeating key (or CIPHERBOX_KEY)")
	interruptedCmd.Flags().IntSliceVar(&intAt, "at", nil, "0-based restart positions, strictly increasing")
	rootCmd.AddCommand(interruptedCmd)
}

func runInterrupted(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	opts := interrupted.Options{
		Key:           stringSetting(intKey, "key"),
		Interruptions: intAt,
	}

	var out string
	if flagDecrypt {
		out, err = interrupted.Decrypt(text, opts)
	} else {
		out, err = interrupted.Encrypt(text, opts)
	}
	if err != nil {
		return err
	}

	log.Info().
		Ints("restarts", intAt).
		Bool("decrypt", flagDecrypt).
		Msg("interrupted")
	fmt.Println(out)

	return nil
}
