package chain

import (
	"errors"
	"fmt"
	"strings"
)

type Chain string

const (
	Solana   Chain = "solana"
	Ethereum Chain = "ethereum"
)

const (
	SolanaPath   = "m/44'/501'/0'/0'"
	EthereumPath = "m/44'/60'/0'/0'"
)

var ErrUnknownChain = errors.New("unknown chain")

func All() []Chain {
	return []Chain{Solana, Ethereum}
}

// Parse accepts chain names case-insensitively, plus the short aliases sol/eth.
func Parse(s string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solana", "sol":
		return Solana, nil
	case "ethereum", "eth":
		return Ethereum, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChain, s)
	}
}

// Path returns the SLIP-10 derivation path for the chain.
// Anything that is not Ethereum derives on the Solana path.
func (c Chain) Path() string {
	switch c {
	case Ethereum:
		return EthereumPath
	case Solana:
		return SolanaPath
	default:
		return SolanaPath
	}
}

func (c Chain) Known() bool {
	return c == Solana || c == Ethereum
}

func (c Chain) String() string { return string(c) }

// Title is the display name, e.g. "Solana".
func (c Chain) Title() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}
