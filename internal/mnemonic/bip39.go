package mnemonic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"
)

const DefaultStrength = 128 // 12 words

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// NewMnemonic draws entropy from crypto/rand.
func NewMnemonic(strength int) (string, error) {
	if strength == 0 {
		strength = DefaultStrength
	}
	entropy, err := bip39.NewEntropy(strength)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// NewMnemonicFrom reads strength/8 bytes of entropy from r.
func NewMnemonicFrom(r io.Reader, strength int) (string, error) {
	if strength == 0 {
		strength = DefaultStrength
	}
	if err := ValidateStrength(strength); err != nil {
		return "", err
	}
	entropy := make([]byte, strength/8)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return NewMnemonicFromEntropy(entropy)
}

func NewMnemonicFromEntropy(entropy []byte) (string, error) {
	return bip39.NewMnemonic(entropy)
}

// ValidateStrength accepts 128..256 bits in steps of 32 (12..24 words).
func ValidateStrength(strength int) error {
	if strength < 128 || strength > 256 || strength%32 != 0 {
		return fmt.Errorf("entropy strength %d: must be 128..256 in steps of 32", strength)
	}
	return nil
}

// Seed checks the BIP-39 checksum and stretches mn into a 64-byte seed.
func Seed(mn, passphrase string) ([]byte, error) {
	mn = Normalize(mn)
	if !bip39.IsMnemonicValid(mn) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeed(mn, passphrase), nil
}

func Normalize(mn string) string {
	return strings.Join(strings.Fields(strings.ToLower(mn)), " ")
}

func WordCount(mn string) int {
	return len(strings.Fields(mn))
}
