package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PhaseWallet/internal/chain"
	"PhaseWallet/internal/sink"
)

func TestRun_WritesExactlyCount(t *testing.T) {
	base := t.TempDir()
	res, err := Run(context.Background(), Options{
		Chain:       chain.Ethereum,
		Count:       7,
		Workers:     3,
		OutBase:     base,
		HideSecrets: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Written)

	recs, err := sink.ReadRecords(res.File)
	require.NoError(t, err)
	require.Len(t, recs, 7)

	seen := make(map[string]struct{})
	for _, r := range recs {
		assert.Equal(t, chain.Ethereum, r.Chain)
		assert.Equal(t, chain.EthereumPath, r.Path)
		assert.Len(t, r.PublicKey, 64)
		assert.Len(t, r.PrivateKey, 128)
		seen[r.Mnemonic] = struct{}{}
	}
	assert.Len(t, seen, 7)

	_, err = os.Stat(filepath.Join(res.Dir, "app.log"))
	assert.NoError(t, err)
	rel, err := filepath.Rel(base, res.Dir)
	require.NoError(t, err)
	assert.Equal(t, "ethereum", strings.Split(rel, string(filepath.Separator))[0])
}

func TestRun_WorkersCappedByCount(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Chain:    chain.Solana,
		Count:    2,
		Workers:  16,
		Strength: 256,
		OutBase:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Written)

	recs, err := sink.ReadRecords(res.File)
	require.NoError(t, err)
	for _, r := range recs {
		assert.NotEmpty(t, r.Address)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, Options{Chain: chain.Solana, Count: 100, Workers: 2, OutBase: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, res.Written, 100)
}

func TestRun_InvalidCount(t *testing.T) {
	_, err := Run(context.Background(), Options{Chain: chain.Solana, Count: 0, OutBase: t.TempDir()})
	assert.Error(t, err)
}

func TestOptions_Normalize(t *testing.T) {
	o := Options{Count: 3}
	require.NoError(t, o.normalize())
	assert.LessOrEqual(t, o.Workers, 3)
	assert.Greater(t, o.Workers, 0)
	assert.Equal(t, "logs", o.OutBase)
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "42s", humanDuration(42*time.Second))
	assert.Equal(t, "3m05s", humanDuration(3*time.Minute+5*time.Second))
	assert.Equal(t, "2h01m09s", humanDuration(2*time.Hour+time.Minute+9*time.Second))
}
