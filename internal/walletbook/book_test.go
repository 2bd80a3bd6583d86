package walletbook

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PhaseWallet/internal/chain"
	"PhaseWallet/internal/wallet"
)

func rec(pub string) wallet.Record {
	return wallet.Record{Mnemonic: "mn-" + pub, PublicKey: pub, Chain: chain.Solana}
}

func TestBook_AddListDelete(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.Add(rec("a")))
	assert.Equal(t, 1, b.Add(rec("b")))
	assert.Equal(t, 2, b.Add(rec("c")))

	require.NoError(t, b.Delete(1))
	list := b.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].PublicKey)
	assert.Equal(t, "c", list[1].PublicKey)

	assert.ErrorIs(t, b.Delete(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Delete(-1), ErrIndexOutOfRange)
}

func TestBook_ListIsCopy(t *testing.T) {
	b := New(rec("a"))
	list := b.List()
	list[0].PublicKey = "changed"

	got, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "a", got.PublicKey)
}

func TestBook_SeedPhraseIsFirstWallet(t *testing.T) {
	b := New()
	_, ok := b.SeedPhrase()
	assert.False(t, ok)

	b.Add(rec("a"))
	b.Add(rec("b"))
	mn, ok := b.SeedPhrase()
	assert.True(t, ok)
	assert.Equal(t, "mn-a", mn)

	require.NoError(t, b.Delete(0))
	mn, _ = b.SeedPhrase()
	assert.Equal(t, "mn-b", mn)
}

func TestBook_RevealShiftsOnDelete(t *testing.T) {
	b := New(rec("a"), rec("b"), rec("c"))

	on, err := b.ToggleReveal(2)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, b.Revealed(2))

	require.NoError(t, b.Delete(0))
	assert.True(t, b.Revealed(1))
	assert.False(t, b.Revealed(0))
	assert.False(t, b.Revealed(2))

	on, err = b.ToggleReveal(1)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = b.ToggleReveal(9)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBook_Clear(t *testing.T) {
	b := New(rec("a"), rec("b"))
	_, _ = b.ToggleReveal(0)
	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Revealed(0))
	b.Add(rec("c"))
	assert.False(t, b.Revealed(0))
}

func TestBook_ConcurrentAdd(t *testing.T) {
	b := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Add(rec("x"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, b.Len())
}
