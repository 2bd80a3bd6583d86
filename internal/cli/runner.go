package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"PhaseWallet/internal/chain"
	"PhaseWallet/internal/generator"
	"PhaseWallet/internal/sink"
	"PhaseWallet/internal/wallet"
	"PhaseWallet/internal/walletbook"
	"PhaseWallet/pkg/appcfg"
	"PhaseWallet/pkg/i18n"
	"PhaseWallet/pkg/logx"
)

const maskedKey = "••••••••••••••••••••••••••••••••••••••••"

type Runner struct {
	in     *bufio.Reader
	out    io.Writer
	msg    i18n.Messages
	cfg    *appcfg.Config
	engine *wallet.Engine
	book   *walletbook.Book

	selected chain.Chain
}

func NewRunner(in io.Reader, out io.Writer, cfg *appcfg.Config) *Runner {
	if cfg == nil {
		cfg = appcfg.Default()
	}
	return &Runner{
		in:     bufio.NewReader(in),
		out:    out,
		msg:    i18n.Get(cfg.Language),
		cfg:    cfg,
		engine: wallet.NewEngine(cfg.MnemonicStrength),
		book:   walletbook.New(),
	}
}

func (r *Runner) Book() *walletbook.Book { return r.book }

func (r *Runner) Selected() chain.Chain { return r.selected }

// prompt returns the trimmed line and false on EOF with no input.
func (r *Runner) prompt() (string, bool) {
	text, err := r.in.ReadString('\n')
	if err != nil && text == "" {
		return "", false
	}
	return strings.TrimSpace(text), true
}

func (r *Runner) ask(q string) (string, bool) {
	fmt.Fprint(r.out, q)
	return r.prompt()
}

func (r *Runner) fail(op string, err error) {
	r.printf(r.msg.Failed, err)
	logx.S().Errorw(op+" failed", "err", err)
}

func (r *Runner) println(a ...any)          { fmt.Fprintln(r.out, a...) }
func (r *Runner) printf(f string, a ...any) { fmt.Fprintf(r.out, f, a...) }

// Run loops until the user presses enter on an empty line or input ends.
func (r *Runner) Run() {
	for {
		if r.selected == "" {
			if !r.chooseChain() {
				return
			}
			continue
		}
		if !r.walletMenu() {
			return
		}
	}
}

func (r *Runner) chooseChain() bool {
	r.println()
	r.println(r.msg.AppTitle)
	r.println(r.msg.ChooseChain)
	chains := chain.All()
	for i, c := range chains {
		r.printf(r.msg.ChainOption, i+1, c.Title())
	}
	r.println(r.msg.PressEnterExit)
	fmt.Fprint(r.out, "> ")

	choice, ok := r.prompt()
	if !ok || choice == "" {
		return false
	}
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(chains) {
		r.selected = chains[n-1]
	} else if c, err := chain.Parse(choice); err == nil {
		r.selected = c
	} else {
		r.println(r.msg.UnknownCommand, choice)
		return true
	}
	logx.S().Infow("chain selected", "chain", r.selected, "path", r.selected.Path())
	return true
}

func (r *Runner) walletMenu() bool {
	r.println()
	r.printf(r.msg.WalletHeader, r.selected.Title(), r.book.Len())
	for _, item := range []string{
		r.msg.MenuAdd, r.msg.MenuList, r.msg.MenuToggle, r.msg.MenuDelete, r.msg.MenuClear,
		r.msg.MenuSeed, r.msg.MenuImport, r.msg.MenuSave, r.msg.MenuLoad, r.msg.MenuBatch,
	} {
		r.println(item)
	}
	r.println(r.msg.PressEnterExit)
	fmt.Fprint(r.out, "> ")

	choice, ok := r.prompt()
	if !ok {
		return false
	}
	switch choice {
	case "1":
		r.handleAdd()
	case "2":
		r.handleList()
	case "3":
		r.handleToggle()
	case "4":
		r.handleDelete()
	case "5":
		r.handleClear()
	case "6":
		r.handleSeed()
	case "7":
		r.handleImport()
	case "8":
		r.handleSave()
	case "9":
		r.handleLoad()
	case "10":
		r.handleBatch()
	case "":
		return false
	default:
		r.println(r.msg.UnknownCommand, choice)
	}
	return true
}

func (r *Runner) handleAdd() {
	rec, err := r.engine.Derive(r.selected)
	if err != nil {
		r.fail("derive", err)
		return
	}
	r.add(rec)
}

func (r *Runner) add(rec wallet.Record) {
	i := r.book.Add(rec)
	r.printf(r.msg.Added, i+1)
	logx.S().Infow("wallet added",
		"index", i+1,
		"chain", rec.Chain,
		"path", rec.Path,
		"publickey", rec.PublicKey,
		"address", rec.Address,
	)
}

func (r *Runner) handleList() {
	recs := r.book.List()
	if len(recs) == 0 {
		r.println(r.msg.NoWallets)
		return
	}
	for i, rec := range recs {
		r.println()
		r.printf(r.msg.WalletTitle, i+1)
		r.printf("  %s: %s\n", r.msg.Path, rec.Path)
		r.printf("  %s: %s\n", r.msg.PublicKey, rec.PublicKey)
		if rec.Address != "" {
			r.printf("  %s: %s\n", r.msg.Address, rec.Address)
		}
		priv := maskedKey
		if r.book.Revealed(i) {
			priv = rec.PrivateKey
		}
		r.printf("  %s: %s\n", r.msg.PrivateKey, priv)
	}
}

// askIndex reads a 1-based wallet number and returns the 0-based index.
func (r *Runner) askIndex() (int, bool) {
	s, ok := r.ask(r.msg.AskIndex)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.fail("parse index", fmt.Errorf("%q is not a number", s))
		return 0, false
	}
	return n - 1, true
}

func (r *Runner) handleToggle() {
	i, ok := r.askIndex()
	if !ok {
		return
	}
	on, err := r.book.ToggleReveal(i)
	if err != nil {
		r.fail("toggle", err)
		return
	}
	if on {
		r.println(r.msg.RevealOn)
	} else {
		r.println(r.msg.RevealOff)
	}
}

func (r *Runner) handleDelete() {
	i, ok := r.askIndex()
	if !ok {
		return
	}
	if err := r.book.Delete(i); err != nil {
		r.fail("delete", err)
		return
	}
	r.println(r.msg.Deleted)
	logx.S().Infow("wallet deleted", "index", i+1, "left", r.book.Len())
}

// handleClear drops every wallet and returns to chain selection.
func (r *Runner) handleClear() {
	r.book.Clear()
	r.selected = ""
	r.println(r.msg.Cleared)
	logx.S().Infow("wallets cleared")
}

func (r *Runner) handleSeed() {
	mn, ok := r.book.SeedPhrase()
	if !ok {
		r.println(r.msg.NoWallets)
		return
	}
	yn, _ := r.ask(r.msg.ShowSeedConfirm)
	if yn = strings.ToLower(yn); yn != "y" && yn != "yes" {
		r.println(r.msg.SeedHidden)
		return
	}
	r.printf("%s:\n", r.msg.SeedPhrase)
	for i, w := range strings.Fields(mn) {
		r.printf("  %2d. %s\n", i+1, w)
	}
}

func (r *Runner) handleImport() {
	mn, ok := r.ask(r.msg.AskMnemonic)
	if !ok || mn == "" {
		return
	}
	rec, err := r.engine.Restore(mn, r.selected)
	if err != nil {
		r.fail("restore", err)
		return
	}
	r.add(rec)
}

func (r *Runner) defaultFile() string {
	return filepath.Join(r.cfg.OutputDir, "wallets.jsonl")
}

func (r *Runner) askPath() (string, bool) {
	def := r.defaultFile()
	p, ok := r.ask(fmt.Sprintf(r.msg.AskPath, def))
	if !ok {
		return "", false
	}
	if p == "" {
		p = def
	}
	return p, true
}

func (r *Runner) handleSave() {
	path, ok := r.askPath()
	if !ok {
		return
	}
	recs := r.book.List()
	if err := sink.WriteRecords(path, recs); err != nil {
		r.fail("save", err)
		return
	}
	r.printf(r.msg.Saved, len(recs), path)
	logx.S().Infow("wallets saved", "count", len(recs), "file", path)
}

func (r *Runner) handleLoad() {
	path, ok := r.askPath()
	if !ok {
		return
	}
	recs, err := sink.ReadRecords(path)
	if err != nil {
		r.fail("load", err)
		return
	}
	// one chain per session
	keep := recs[:0]
	for _, rec := range recs {
		if rec.Chain != r.selected {
			continue
		}
		if _, err := rec.Signer(); err != nil {
			r.fail("load", fmt.Errorf("%s: %w", rec.PublicKey, err))
			return
		}
		keep = append(keep, rec)
	}
	skipped := len(recs) - len(keep)
	for _, rec := range keep {
		r.book.Add(rec)
	}
	r.printf(r.msg.Loaded, len(keep), path)
	if skipped > 0 {
		r.printf(r.msg.LoadSkipped, skipped, r.selected.Title())
	}
	logx.S().Infow("wallets loaded", "count", len(keep), "skipped", skipped, "chain", r.selected, "file", path)
}

func (r *Runner) handleBatch() {
	s, ok := r.ask(r.msg.AskCount)
	if !ok {
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		r.fail("batch", fmt.Errorf("count %q must be a positive number", s))
		return
	}
	ctx, stop := withInterrupt(context.Background())
	defer stop()

	res, err := RunBatch(ctx, r.cfg, r.selected, n)
	if err != nil && !errors.Is(err, context.Canceled) {
		r.fail("batch", err)
		return
	}
	r.printf(r.msg.BatchDone, res.Written, res.File)
}

// RunBatch runs the concurrent generator with the app settings.
func RunBatch(ctx context.Context, cfg *appcfg.Config, c chain.Chain, count int) (generator.Result, error) {
	logx.S().Infow("start generation", "chain", c, "count", count, "workers", cfg.Cores)
	res, err := generator.Run(ctx, generator.Options{
		Chain:       c,
		Count:       count,
		Workers:     cfg.Cores,
		Strength:    cfg.MnemonicStrength,
		OutBase:     cfg.OutputDir,
		HideSecrets: cfg.HideSecretsInConsole,
	})
	if err != nil {
		logx.S().Errorw("generation error", "err", err)
	} else {
		logx.S().Infow("generation done", "written", res.Written, "file", res.File)
	}
	return res, err
}

func withInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
