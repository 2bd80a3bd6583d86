package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	assert.Equal(t, "m/44'/501'/0'/0'", Solana.Path())
	assert.Equal(t, "m/44'/60'/0'/0'", Ethereum.Path())
}

func TestPath_UnknownFallsBackToSolana(t *testing.T) {
	for _, c := range []Chain{"", "bitcoin", "ETHEREUM"} {
		assert.Equal(t, SolanaPath, c.Path(), "chain %q", c)
		assert.False(t, c.Known())
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Chain{
		"solana":     Solana,
		"SOL":        Solana,
		" Ethereum ": Ethereum,
		"eth":        Ethereum,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.True(t, got.Known())
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("dogecoin")
	assert.ErrorIs(t, err, ErrUnknownChain)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Solana", Solana.Title())
	assert.Equal(t, "Ethereum", Ethereum.Title())
	assert.Equal(t, "", Chain("").Title())
}
