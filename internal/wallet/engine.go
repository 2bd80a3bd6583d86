package wallet

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gagliardetto/solana-go"

	"PhaseWallet/internal/chain"
	"PhaseWallet/internal/hdkey"
	"PhaseWallet/internal/mnemonic"
)

// Record is one generated wallet. Treat it as a value: copy, never edit.
type Record struct {
	Mnemonic   string      `json:"mnemonic"`
	PublicKey  string      `json:"publickey"`
	PrivateKey string      `json:"privatekey"` // 64-byte ed25519 secret key (seed || public)
	Chain      chain.Chain `json:"walletType"`
	Path       string      `json:"path,omitempty"`
	Address    string      `json:"address,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type DerivationError struct {
	Op  string // entropy|mnemonic|seed|path|keygen
	Err error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("derive %s: %v", e.Op, e.Err)
}

func (e *DerivationError) Unwrap() error { return e.Err }

// Engine turns a chain selector into a fresh wallet. The zero value draws
// 128 bits of entropy from crypto/rand.
type Engine struct {
	Strength int       // entropy bits, 0 = 128
	Rand     io.Reader // nil = crypto/rand
}

func NewEngine(strength int) *Engine {
	return &Engine{Strength: strength}
}

// Derive generates a new mnemonic and derives the keypair for c.
func (e *Engine) Derive(c chain.Chain) (Record, error) {
	var (
		mn  string
		err error
	)
	if e.Rand != nil {
		mn, err = mnemonic.NewMnemonicFrom(e.Rand, e.Strength)
	} else {
		mn, err = mnemonic.NewMnemonic(e.Strength)
	}
	if err != nil {
		return Record{}, &DerivationError{Op: "entropy", Err: err}
	}
	return e.Restore(mn, c)
}

// Restore runs the derivation for an existing mnemonic (empty passphrase).
func (e *Engine) Restore(mn string, c chain.Chain) (Record, error) {
	mn = mnemonic.Normalize(mn)
	seed, err := mnemonic.Seed(mn, "")
	if err != nil {
		return Record{}, &DerivationError{Op: "mnemonic", Err: err}
	}
	priv, path, err := FromSeed(seed, c)
	if err != nil {
		return Record{}, err
	}
	pub := priv.Public().(ed25519.PublicKey)
	return Record{
		Mnemonic:   mn,
		PublicKey:  hex.EncodeToString(pub),
		PrivateKey: hex.EncodeToString(priv),
		Chain:      c,
		Path:       path,
		Address:    Address(c, pub),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// FromSeed derives the signing key for c from a BIP-39 seed and returns it
// together with the path used.
func FromSeed(seed []byte, c chain.Chain) (ed25519.PrivateKey, string, error) {
	path := c.Path()
	node, err := hdkey.DerivePath(path, seed)
	if err != nil {
		op := "keygen"
		if errors.Is(err, hdkey.ErrInvalidPath) || errors.Is(err, hdkey.ErrNonHardened) {
			op = "path"
		} else if errors.Is(err, hdkey.ErrInvalidSeed) {
			op = "seed"
		}
		return nil, "", &DerivationError{Op: op, Err: err}
	}
	return node.PrivateKey(), path, nil
}

// Address is the on-chain address for pub: base58 for Solana, empty for
// Ethereum since ed25519 keys have no Ethereum account.
func Address(c chain.Chain, pub ed25519.PublicKey) string {
	if c.Path() != chain.SolanaPath {
		return ""
	}
	return solana.PublicKeyFromBytes(pub).String()
}

// Signer decodes the stored secret key and checks it against PublicKey.
func (r Record) Signer() (ed25519.PrivateKey, error) {
	raw, err := hex.DecodeString(r.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("private key: want %d bytes, got %d", ed25519.PrivateKeySize, len(raw))
	}
	priv := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(raw, priv) || hex.EncodeToString(raw[ed25519.SeedSize:]) != r.PublicKey {
		return nil, errors.New("private key does not match public key")
	}
	return priv, nil
}
