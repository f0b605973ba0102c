// Package main implements the cipherbox CLI: thin cobra commands over
// the library's cipher packages. Text comes from the arguments or from
// stdin, results go to stdout, and run metadata (period, shifts, keys'
// shapes) is logged through zerolog so scripted use stays clean.
//
// Defaults for keys and indicators may come from flags, from
// CIPHERBOX_* environment variables, or from an optional config file
// (--config), resolved through viper in that order.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagDecrypt bool
	flagJSON    bool
	flagConfig  string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cipherbox",
	Short: "Classical polyalphabetic ciphers: Vigenère, Quagmire I-IV, Headlines, interrupted key",
	Long: `cipherbox enciphers and deciphers classical pencil-and-paper ciphers.

Text is taken from the command arguments, or from stdin when no
arguments are given. Input is normalized to the letters A-Z before any
transformation; the result is printed to stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = newLogger(flagJSON)

		viper.SetEnvPrefix("CIPHERBOX")
		viper.AutomaticEnv()
		if flagConfig != "" {
			viper.SetConfigFile(flagConfig)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
			log.Debug().Str("config", viper.ConfigFileUsed()).Msg("config loaded")
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagDecrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json-log", false, "log metadata as JSON instead of console output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "optional config file with default keys")
}

// newLogger mirrors the usual dev/prod split: human-readable console
// output by default, JSON when asked.
func newLogger(jsonOut bool) zerolog.Logger {
	if jsonOut {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

// readText joins the positional arguments, or drains stdin when none
// are given. Normalization happens inside the cipher packages.
func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return string(data), nil
}

// stringSetting prefers the flag value and falls back to viper
// (environment or config file) under the same name.
func stringSetting(flag, name string) string {
	if flag != "" {
		return flag
	}

	return viper.GetString(name)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
