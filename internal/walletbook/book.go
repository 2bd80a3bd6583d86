package walletbook

import (
	"errors"
	"fmt"
	"sync"

	"PhaseWallet/internal/wallet"
)

var ErrIndexOutOfRange = errors.New("wallet index out of range")

// Book is the ordered list of wallets generated in one session, along with
// which entries currently show their private key.
type Book struct {
	mu       sync.RWMutex
	records  []wallet.Record
	revealed []bool
}

func New(recs ...wallet.Record) *Book {
	b := &Book{}
	for _, r := range recs {
		b.Add(r)
	}
	return b
}

// Add appends r and returns its index.
func (b *Book) Add(r wallet.Record) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, r)
	b.revealed = append(b.revealed, false)
	return len(b.records) - 1
}

func (b *Book) Delete(i int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.check(i); err != nil {
		return err
	}
	b.records = append(b.records[:i:i], b.records[i+1:]...)
	b.revealed = append(b.revealed[:i:i], b.revealed[i+1:]...)
	return nil
}

func (b *Book) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = nil
	b.revealed = nil
}

func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}

// List returns a copy.
func (b *Book) List() []wallet.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]wallet.Record, len(b.records))
	copy(out, b.records)
	return out
}

func (b *Book) Get(i int) (wallet.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.check(i); err != nil {
		return wallet.Record{}, err
	}
	return b.records[i], nil
}

// SeedPhrase is the mnemonic of the first wallet in the book.
func (b *Book) SeedPhrase() (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.records) == 0 {
		return "", false
	}
	return b.records[0].Mnemonic, true
}

// ToggleReveal flips private key visibility of entry i and returns the new state.
func (b *Book) ToggleReveal(i int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.check(i); err != nil {
		return false, err
	}
	b.revealed[i] = !b.revealed[i]
	return b.revealed[i], nil
}

func (b *Book) Revealed(i int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return i >= 0 && i < len(b.revealed) && b.revealed[i]
}

func (b *Book) check(i int) error {
	if i < 0 || i >= len(b.records) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(b.records))
	}
	return nil
}
