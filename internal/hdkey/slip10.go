// Package hdkey validates SLIP-10 paths and derives ed25519 keys along them.
// Only hardened children exist on this curve.
package hdkey

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/anyproto/go-slip10"
)

// FirstHardened is the offset added to every hardened index.
const FirstHardened = slip10.FirstHardenedIndex

var (
	ErrInvalidPath = errors.New("invalid derivation path")
	ErrNonHardened = errors.New("ed25519 supports hardened derivation only")
	ErrInvalidSeed = errors.New("seed must be between 16 and 64 bytes")
)

type Key struct {
	node slip10.Node
}

func NewMaster(seed []byte) (*Key, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}
	node, err := slip10.NewMasterNode(seed)
	if err != nil {
		return nil, fmt.Errorf("master node: %w", err)
	}
	return &Key{node: node}, nil
}

// Child derives the hardened child at index. index must already carry the
// hardened offset.
func (k *Key) Child(index uint32) (*Key, error) {
	if index < FirstHardened {
		return nil, fmt.Errorf("%w: index %d", ErrNonHardened, index)
	}
	node, err := k.node.Derive(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %w", index-FirstHardened, err)
	}
	return &Key{node: node}, nil
}

func (k *Key) PrivateKey() ed25519.PrivateKey {
	_, priv := k.node.Keypair()
	return priv
}

func (k *Key) PublicKey() ed25519.PublicKey {
	pub, _ := k.node.Keypair()
	return pub
}

// Seed is the 32-byte key material of the node.
func (k *Key) Seed() []byte {
	return k.PrivateKey().Seed()
}

// DerivePath walks path (e.g. "m/44'/501'/0'/0'") from the master key of seed.
func DerivePath(path string, seed []byte) (*Key, error) {
	segments, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}
	if len(segments) == 0 {
		return NewMaster(seed)
	}
	node, err := slip10.DeriveForPath(canonical(segments), seed)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", path, err)
	}
	return &Key{node: node}, nil
}

// ParsePath returns the hardened indexes of path. Both ' and h mark a
// hardened segment.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with m", ErrInvalidPath, path)
	}
	out := make([]uint32, 0, len(parts)-1)
	for _, seg := range parts[1:] {
		raw := strings.TrimRight(seg, "'hH")
		if seg == "" || raw == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
		if raw == seg {
			return nil, fmt.Errorf("%w: segment %q", ErrNonHardened, seg)
		}
		if len(seg)-len(raw) != 1 {
			return nil, fmt.Errorf("%w: segment %q", ErrInvalidPath, seg)
		}
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || uint32(n) >= FirstHardened {
			return nil, fmt.Errorf("%w: segment %q", ErrInvalidPath, seg)
		}
		out = append(out, uint32(n)+FirstHardened)
	}
	return out, nil
}

// canonical renders hardened indexes in the m/44'/0' form the library parses.
func canonical(segments []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range segments {
		b.WriteString("/")
		b.WriteString(strconv.FormatUint(uint64(idx-FirstHardened), 10))
		b.WriteString("'")
	}
	return b.String()
}
