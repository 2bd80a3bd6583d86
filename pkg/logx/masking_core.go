package logx

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const redacted = "[REDACTED]"

// maskingCore redacts sensitive structured fields and hex key material in
// Entry.Message. Console output only.
type maskingCore struct {
	zapcore.Core
	sensitive    map[string]struct{} // lowercased keys, always redacted
	public       map[string]struct{} // lowercased keys never masked by pattern
	maskPattern  *regexp.Regexp
	replaceValue string
}

func NewMaskingCore(core zapcore.Core) zapcore.Core {
	return &maskingCore{
		Core:         core,
		sensitive:    keySet(defaultSensitiveKeys()...),
		public:       keySet(defaultPublicKeys()...),
		maskPattern:  defaultMaskPattern(),
		replaceValue: redacted,
	}
}

func (m *maskingCore) With(fields []zapcore.Field) zapcore.Core {
	return &maskingCore{
		Core:         m.Core.With(m.redact(fields)),
		sensitive:    m.sensitive,
		public:       m.public,
		maskPattern:  m.maskPattern,
		replaceValue: m.replaceValue,
	}
}

func (m *maskingCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if m.Enabled(entry.Level) {
		return ce.AddCore(entry, m)
	}
	return ce
}

func (m *maskingCore) redact(fields []zapcore.Field) []zapcore.Field {
	if len(fields) == 0 {
		return fields
	}
	out := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		key := strings.ToLower(f.Key)
		if _, ok := m.sensitive[key]; ok {
			out = append(out, zap.String(f.Key, m.replaceValue))
			continue
		}
		if _, ok := m.public[key]; ok {
			out = append(out, f)
			continue
		}
		if f.Type == zapcore.StringType && m.maskPattern != nil {
			f.String = m.maskPattern.ReplaceAllString(f.String, m.replaceValue)
		}
		out = append(out, f)
	}
	return out
}

func (m *maskingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if m.maskPattern != nil && entry.Message != "" {
		entry.Message = m.maskPattern.ReplaceAllString(entry.Message, m.replaceValue)
	}
	return m.Core.Write(entry, m.redact(fields))
}

func defaultSensitiveKeys() []string {
	return []string{
		"private", "private_key", "privatekey", "secret", "secret_key",
		"mnemonic", "seed", "seed_phrase", "passphrase", "key",
	}
}

// public keys are 64 hex as well, so they must bypass the pattern
func defaultPublicKeys() []string {
	return []string{"publickey", "public_key", "pubkey", "address", "path", "chain"}
}

func keySet(keys ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[strings.ToLower(k)] = struct{}{}
	}
	return m
}

func defaultMaskPattern() *regexp.Regexp {
	// 128 hex (ed25519 secret key) or 64 hex (seed half / raw key)
	return regexp.MustCompile(`(?i)\b([a-f0-9]{128}|[a-f0-9]{64})\b`)
}
