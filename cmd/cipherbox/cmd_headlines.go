// Package main - the headlines command: the headline-puzzle cipher.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cipherbox/headlines"
)

var (
	headKey     string
	headSetting string
)

var headlinesCmd = &cobra.Command{
	Use:   "headlines [text...]",
	Short: "Headline-puzzle cipher: keyed alphabet slid to a setting letter",
	RunE:  runHeadlines,
}

func init() {
	headlinesCmd.Flags().StringVarP(&headKey, "key", "k", "", "alphabet keyword (or CIPHERBOX_KEY)")
	headlinesCmd.Flags().StringVarP(&headSetting, "setting", "s", "", "setting letter fixing the slide")
	rootCmd.AddCommand(headlinesCmd)
}

func runHeadlines(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}
	if headSetting == "" {
		return headlines.ErrBadSetting
	}

	opts := headlines.Options{
		Key:     stringSetting(headKey, "key"),
		Setting: headSetting[0],
	}

	var out string
	if flagDecrypt {
		out, err = headlines.Decrypt(text, opts)
	} else {
		out, err = headlines.Encrypt(text, opts)
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("setting", headSetting).
		Bool("decrypt", flagDecrypt).
		Msg("headlines")
	fmt.Println(out)

	return nil
}
