package appcfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"PhaseWallet/internal/chain"
	"PhaseWallet/internal/mnemonic"
)

// EnvPrefix prefixes every environment override, e.g. PHASE_LOG_LEVEL.
const EnvPrefix = "PHASE"

type Config struct {
	Language             string `yaml:"language" envconfig:"LANGUAGE"`   // "ru" | "en"
	LogLevel             string `yaml:"log_level" envconfig:"LOG_LEVEL"` // "debug"|"info"|"warn"|"error"
	HideSecretsInConsole bool   `yaml:"hide_secrets_in_console" envconfig:"HIDE_SECRETS_IN_CONSOLE"`
	Cores                int    `yaml:"cores" envconfig:"CORES"`
	DefaultChain         string `yaml:"default_chain" envconfig:"DEFAULT_CHAIN"`
	MnemonicStrength     int    `yaml:"mnemonic_strength" envconfig:"MNEMONIC_STRENGTH"`
	OutputDir            string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	BatchCount           int    `yaml:"batch_count" envconfig:"BATCH_COUNT"`
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the YAML file at path, applies PHASE_* environment overrides
// and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	var c Config

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("open app config %q: %w", path, err)
	default:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&c); err != nil {
			return nil, fmt.Errorf("decode app yaml %q: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("app config %q: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultChain == "" {
		c.DefaultChain = string(chain.Solana)
	}
	if c.MnemonicStrength == 0 {
		c.MnemonicStrength = mnemonic.DefaultStrength
	}
	if c.OutputDir == "" {
		c.OutputDir = "logs"
	}
	if c.BatchCount == 0 {
		c.BatchCount = 1
	}
}

func (c *Config) Validate() error {
	if c.Language != "en" && c.Language != "ru" {
		return fmt.Errorf("language %q: must be en or ru", c.Language)
	}
	if _, err := chain.Parse(c.DefaultChain); err != nil {
		return fmt.Errorf("default_chain: %w", err)
	}
	if err := mnemonic.ValidateStrength(c.MnemonicStrength); err != nil {
		return fmt.Errorf("mnemonic_strength: %w", err)
	}
	if c.Cores < 0 {
		return errors.New("cores must be >= 0")
	}
	if c.BatchCount < 0 {
		return errors.New("batch_count must be >= 0")
	}
	return nil
}

// Chain is the parsed DefaultChain; call after Validate.
func (c *Config) Chain() chain.Chain {
	ch, err := chain.Parse(c.DefaultChain)
	if err != nil {
		return chain.Solana
	}
	return ch
}
