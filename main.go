// render-icon draws the placeholder application icon and writes it to disk.
//
// Usage: render-icon [-output PATH] [-letter CHAR] [-size N] [-font NAME] ...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/appicon/internal/app"
	"github.com/rook-computer/appicon/internal/config"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return exitConfig
	}

	// Best-effort: keep stdout/stderr (and panics) in a file when asked to.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	logger, closeLog, err := app.OpenLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "debug log open error:", err)
	}
	defer closeLog()
	logger.Infof("main", "output=%s letter=%q size=%d font=%s engine=%s", cfg.Output, cfg.Letter, cfg.Size, cfg.Font, cfg.FontEngine)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	a.Logger = logger
	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "render-icon:", err)
		return exitFailed
	}
	return exitOK
}
