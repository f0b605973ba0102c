// Package main - the alphabet command: inspect keyed alphabets.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cipherbox/alphabet"
)

var alphabetCmd = &cobra.Command{
	Use:   "alphabet [keyword]",
	Short: "Print the keyed alphabet a keyword produces",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAlphabet,
}

func init() {
	rootCmd.AddCommand(alphabetCmd)
}

func runAlphabet(cmd *cobra.Command, args []string) error {
	keyword := ""
	if len(args) == 1 {
		keyword = args[0]
	}

	a := alphabet.NewKeyed(keyword)
	fmt.Println(alphabet.Straight())
	fmt.Println(a)

	return nil
}
