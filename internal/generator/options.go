package generator

import (
	"errors"
	"runtime"

	"PhaseWallet/internal/chain"
)

type Options struct {
	Chain    chain.Chain
	Count    int // wallets to write
	Workers  int // <= 0 means runtime.NumCPU()
	Strength int // mnemonic entropy bits, 128=12 words

	OutBase     string // logs
	HideSecrets bool   // console masking (handled by logx/masking_core)
}

func (o *Options) normalize() error {
	if o.Count <= 0 {
		return errors.New("count must be > 0")
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers > o.Count {
		o.Workers = o.Count
	}
	if o.OutBase == "" {
		o.OutBase = "logs"
	}
	return nil
}
