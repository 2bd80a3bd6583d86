package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"PhaseWallet/internal/cli"
	"PhaseWallet/pkg/appcfg"
	"PhaseWallet/pkg/logx"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "getwd: %v\n", err)
		os.Exit(2)
	}

	appConf, err := appcfg.Load(filepath.Join(cwd, "configs", "app.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config: %v (use defaults)\n", err)
		appConf = appcfg.Default()
	}

	if err := logx.Init(logx.Config{
		Level:                appConf.LogLevel,
		ConsoleOnly:          true,
		HideSecretsInConsole: appConf.HideSecretsInConsole,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "log init: %v\n", err)
		os.Exit(1)
	}
	defer logx.Close()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	logx.S().Infow("phasewallet started",
		"cwd", cwd,
		"lang", appConf.Language,
		"log_level", appConf.LogLevel,
		"hide_secrets_in_console", appConf.HideSecretsInConsole,
		"default_chain", appConf.DefaultChain,
		"interactive", interactive,
	)

	if interactive {
		cli.NewRunner(os.Stdin, os.Stdout, appConf).Run()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	res, err := cli.RunBatch(ctx, appConf, appConf.Chain(), appConf.BatchCount)
	if err != nil && !errors.Is(err, context.Canceled) {
		logx.Close()
		os.Exit(1)
	}
	fmt.Println(res.File)
}
