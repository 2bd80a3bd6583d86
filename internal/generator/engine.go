package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"PhaseWallet/internal/sink"
	"PhaseWallet/internal/wallet"
	"PhaseWallet/pkg/logx"
)

const progressEvery = 10 * time.Second

type Result struct {
	Dir     string // run directory
	File    string // wallets.jsonl
	Written int
}

type derivedEvent struct {
	Rec     wallet.Record
	Elapsed time.Duration
}

// Run derives opt.Count wallets on opt.Workers goroutines and appends them to
// <run dir>/wallets.jsonl. A cancelled ctx stops early and is returned as the
// error alongside the partial Result.
func Run(parent context.Context, opt Options) (Result, error) {
	if err := opt.normalize(); err != nil {
		return Result{}, err
	}

	// logs/<chain>/<DD.MM.YYYY>/<chain>_<HH-MM-SS>
	dir, err := sink.MakeRunDir(opt.OutBase, opt.Chain)
	if err != nil {
		return Result{}, err
	}
	res := Result{Dir: dir, File: filepath.Join(dir, "wallets.jsonl")}

	prev := logx.Current()
	if err := logx.Init(logx.Config{
		Level:                prev.Level,
		FilePath:             filepath.Join(dir, "app.log"),
		HideSecretsInConsole: opt.HideSecrets,
	}); err != nil {
		return res, fmt.Errorf("logx init for batch failed: %w", err)
	}
	defer func() {
		if err := logx.Init(prev); err != nil {
			logx.S().Errorw("restore logger failed", "err", err)
		}
	}()

	app := logx.With("batch")
	app.Infow("generation started",
		"chain", opt.Chain,
		"path", opt.Chain.Path(),
		"count", opt.Count,
		"workers", opt.Workers,
		"out", res.File,
	)

	start := time.Now()
	engine := wallet.NewEngine(opt.Strength)
	events := make(chan derivedEvent, opt.Workers*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		firstErr error
		errOnce  sync.Once
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		cancel()
	}

	// claimed hands out slots so workers never derive more than Count
	var claimed, derived uint64
	var written int
	var stopWriting bool

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for ev := range events {
			if stopWriting {
				continue
			}
			if err := sink.AppendRecord(res.File, ev.Rec); err != nil {
				app.Errorw("jsonl append failed", "err", err)
				stopWriting = true
				fail(fmt.Errorf("append record: %w", err))
				continue
			}
			written++
			app.Infow("wallet derived",
				"n", written,
				"chain", ev.Rec.Chain,
				"publickey", ev.Rec.PublicKey,
				"address", ev.Rec.Address,
				"mnemonic", ev.Rec.Mnemonic,
				"private_key", ev.Rec.PrivateKey,
				"elapsed", humanDuration(ev.Elapsed),
			)
		}
	}()

	statusDone := make(chan struct{})
	go func() {
		defer close(statusDone)
		ticker := time.NewTicker(progressEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				elapsed := now.Sub(start)
				n := atomic.LoadUint64(&derived)
				rate := 0.0
				if elapsed > 0 {
					rate = float64(n) / elapsed.Seconds()
				}
				app.Infow("progress",
					"derived", n,
					"of", opt.Count,
					"rate_per_sec", fmt.Sprintf("%.2f", rate),
					"elapsed", humanDuration(elapsed),
				)
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(opt.Workers)
	for i := 0; i < opt.Workers; i++ {
		go func() {
			defer wg.Done()
			worker(ctx, engine, opt, start, &claimed, &derived, events, fail)
		}()
	}

	wg.Wait()
	close(events)
	<-writerDone
	cancel()
	<-statusDone

	res.Written = written
	app.Infow("stopped",
		"elapsed", humanDuration(time.Since(start)),
		"written", written,
	)

	if firstErr != nil {
		return res, firstErr
	}
	if written < opt.Count {
		return res, parent.Err()
	}
	return res, nil
}

func worker(
	ctx context.Context,
	engine *wallet.Engine,
	opt Options,
	start time.Time,
	claimed *uint64,
	derived *uint64,
	out chan<- derivedEvent,
	fail func(error),
) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if atomic.AddUint64(claimed, 1) > uint64(opt.Count) {
			return
		}

		rec, err := engine.Derive(opt.Chain)
		if err != nil {
			// not transient: stop the whole batch
			logx.S().Errorw("derive failed", "chain", opt.Chain, "err", err)
			fail(err)
			return
		}
		atomic.AddUint64(derived, 1)

		select {
		case <-ctx.Done():
			return
		case out <- derivedEvent{Rec: rec, Elapsed: time.Since(start)}:
		}
	}
}

func humanDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
}
