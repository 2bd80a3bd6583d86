package logx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const secretHex = "37df573b3ac4ad5b522e064e25b63ea16bcbe79d449e81a0268d1047948bb445f036276246a75b9de3349ed42b15e232f6518fc20f5fcd4f1d64e81f9bd258f7"

func observed() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(NewMaskingCore(core)).Sugar(), logs
}

func TestMaskingCore_RedactsSensitiveKeys(t *testing.T) {
	log, logs := observed()
	log.Infow("wallet added",
		"mnemonic", "abandon abandon about",
		"PrivateKey", secretHex,
		"chain", "solana",
	)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, redacted, ctx["mnemonic"])
	assert.Equal(t, redacted, ctx["PrivateKey"])
	assert.Equal(t, "solana", ctx["chain"])
}

func TestMaskingCore_MasksHexInMessageAndValues(t *testing.T) {
	log, logs := observed()
	log.Infof("secret %s leaked", secretHex)
	log.Infow("note", "detail", "pk="+secretHex[:64])

	all := logs.All()
	require.Len(t, all, 2)
	assert.Equal(t, "secret [REDACTED] leaked", all[0].Message)
	assert.Equal(t, "pk=[REDACTED]", all[1].ContextMap()["detail"])
}

func TestMaskingCore_KeepsShortHexAndAddresses(t *testing.T) {
	log, logs := observed()
	log.Infow("ok", "address", "HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk", "attempt", 3)

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk", ctx["address"])
	assert.EqualValues(t, 3, ctx["attempt"])
}

func TestMaskingCore_PublicKeyPassesThrough(t *testing.T) {
	pub := secretHex[64:]
	log, logs := observed()
	log.Infow("wallet added", "publickey", pub, "PublicKey", pub, "private_key", secretHex)

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, pub, ctx["publickey"])
	assert.Equal(t, pub, ctx["PublicKey"])
	assert.Equal(t, redacted, ctx["private_key"])
}

func TestMaskingCore_With(t *testing.T) {
	log, logs := observed()
	log.With("seed", "deadbeef").Infow("derived")

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, redacted, ctx["seed"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestResolvePath(t *testing.T) {
	p := resolvePath("logs/{start}_{pid}.log")
	assert.False(t, strings.Contains(p, "{"))
}
