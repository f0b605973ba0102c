// Package headlines - the setting-slide transform and its batch helpers.
//
// Design principles:
//   - Staged validation, strict sentinels, no partial output.
//   - The setting letter is fed through the keystream Letters policy
//     with the keyed alphabet as reference: the "slide" never leaks
//     into the engine as anything but an ordinary shift stream.
package headlines

import (
	"errors"

	"github.com/katalvlaran/cipherbox/alphabet"
	"github.com/katalvlaran/cipherbox/keystream"
	"github.com/katalvlaran/cipherbox/polyalpha"
)

// Sentinel errors for headlines configuration.
var (
	// ErrEmptyKey indicates a key with no letters.
	ErrEmptyKey = errors.New("headlines: key contains no letters")
	// ErrBadSetting indicates a setting byte that is not a letter.
	ErrBadSetting = errors.New("headlines: setting must be a letter A-Z")
	// ErrSettingCount indicates a settings string whose letter count
	// does not match the number of headlines.
	ErrSettingCount = errors.New("headlines: one setting letter required per headline")
)

// Options configures one headline.
type Options struct {
	// Key keys the ciphertext alphabet.
	Key string
	// Setting is the letter fixing the slide; lowercase is folded.
	Setting byte
}

// Encrypt enciphers one headline: straight plaintext alphabet, keyed
// ciphertext alphabet, constant shift = the setting letter's position
// in the keyed alphabet. Text is normalized here.
//
// Complexity: O(n + 26) time.
func Encrypt(text string, opts Options) (string, error) {
	return run(text, polyalpha.Encrypt, opts)
}

// Decrypt reverses Encrypt under the same options.
func Decrypt(text string, opts Options) (string, error) {
	return run(text, polyalpha.Decrypt, opts)
}

// EncryptAll enciphers several headlines under one key, taking one
// setting letter per headline from settings (normalized, in order).
func EncryptAll(texts []string, key, settings string) ([]string, error) {
	return runAll(texts, polyalpha.Encrypt, key, settings)
}

// DecryptAll reverses EncryptAll.
func DecryptAll(texts []string, key, settings string) ([]string, error) {
	return runAll(texts, polyalpha.Decrypt, key, settings)
}

func run(text string, dir polyalpha.Direction, opts Options) (string, error) {
	if alphabet.Normalize(opts.Key) == "" {
		return "", ErrEmptyKey
	}
	setting, err := foldSetting(opts.Setting)
	if err != nil {
		return "", err
	}

	ciph := alphabet.NewKeyed(opts.Key)
	t := alphabet.Normalize(text)
	// Constant slide: the setting letter's position in the keyed
	// alphabet, repeated over the whole message.
	shifts, err := keystream.Keystream(string(setting), ciph).Resolve(len(t))
	if err != nil {
		return "", err
	}

	return polyalpha.Substitute(t, dir, shifts, polyalpha.Options{
		PlainAlphabet:  alphabet.Straight(),
		CipherAlphabet: ciph,
		Mode:           polyalpha.Add,
	})
}

func runAll(texts []string, dir polyalpha.Direction, key, settings string) ([]string, error) {
	s := alphabet.Normalize(settings)
	if len(s) != len(texts) {
		return nil, ErrSettingCount
	}

	out := make([]string, len(texts))
	for i, text := range texts {
		res, err := run(text, dir, Options{Key: key, Setting: s[i]})
		if err != nil {
			return nil, err
		}
		out[i] = res
	}

	return out, nil
}

// foldSetting uppercases and validates the setting letter.
func foldSetting(b byte) (byte, error) {
	switch {
	case b >= 'a' && b <= 'z':
		return b - 'a' + 'A', nil
	case b >= 'A' && b <= 'Z':
		return b, nil
	default:
		return 0, ErrBadSetting
	}
}
