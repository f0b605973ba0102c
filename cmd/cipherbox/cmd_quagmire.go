// Package main - the quagmire command: the four Quagmire variants.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cipherbox/quagmire"
)

var (
	quagVariant       uint8
	quagKeyword       string
	quagCipherKeyword string
	quagIndicator     string
	quagAlignment     string
)

var quagmireCmd = &cobra.Command{
	Use:   "quagmire [text...]",
	Short: "Quagmire I-IV keyed-alphabet periodic ciphers",
	Long: `Quagmire ciphers combine keyed alphabets with an indicator keyword:
variant 1 keys the plaintext alphabet, 2 the ciphertext alphabet,
3 both with one keyword, 4 each with its own keyword.`,
	RunE: runQuagmire,
}

func init() {
	quagmireCmd.Flags().Uint8VarP(&quagVariant, "variant", "v", 3, "variant 1-4")
	quagmireCmd.Flags().StringVarP(&quagKeyword, "keyword", "k", "", "alphabet keyword (or CIPHERBOX_KEYWORD)")
	quagmireCmd.Flags().StringVar(&quagCipherKeyword, "cipher-keyword", "", "ciphertext alphabet keyword, variant 4 only")
	quagmireCmd.Flags().StringVarP(&quagIndicator, "indicator", "i", "", "indicator keyword (or CIPHERBOX_INDICATOR)")
	quagmireCmd.Flags().StringVarP(&quagAlignment, "alignment", "a", "A", "alignment letter the indicator is written under")
	rootCmd.AddCommand(quagmireCmd)
}

func runQuagmire(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	opts := quagmire.Options{
		Variant:       quagmire.Variant(quagVariant),
		Keyword:       stringSetting(quagKeyword, "keyword"),
		CipherKeyword: quagCipherKeyword,
		Indicator:     stringSetting(quagIndicator, "indicator"),
	}
	if quagAlignment != "" {
		opts.Alignment = quagAlignment[0]
	}

	var res quagmire.Result
	if flagDecrypt {
		res, err = quagmire.Decrypt(text, opts)
	} else {
		res, err = quagmire.Encrypt(text, opts)
	}
	if err != nil {
		return err
	}

	log.Info().
		Uint8("variant", quagVariant).
		Int("period", res.Period).
		Ints("shifts", res.Shifts).
		Str("alignment", quagAlignment).
		Bool("decrypt", flagDecrypt).
		Msg("quagmire")
	fmt.Println(res.Text)

	return nil
}
