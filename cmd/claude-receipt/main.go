package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/anomredux/claude-receipt/internal/config"
	"github.com/anomredux/claude-receipt/internal/hook"
	"github.com/anomredux/claude-receipt/internal/pricing"
	"github.com/anomredux/claude-receipt/internal/receipt"
	"github.com/anomredux/claude-receipt/internal/watcher"
)

// version is set by goreleaser via ldflags.
var version = "dev"

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "config file path")
		format      = flag.String("format", "", "output format: html, svg, or both (overrides config)")
		outDir      = flag.String("dir", "", "receipts directory (overrides config)")
		printOut    = flag.Bool("print", false, "also render the receipt to stdout")
		watch       = flag.Bool("watch", false, "watch the data directory instead of reading a hook payload")
		dataDir     = flag.String("data-dir", defaultDataDir(), "Claude Code data directory (watch mode)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("claude-receipt", version)
		return
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.TimeOnly,
	}))

	// The hook must never break the host's session-end flow: every
	// failure below is logged and the process still exits 0.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("receipt generation failed", "panic", r)
		}
	}()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	if *format != "" {
		if config.ValidFormat(*format) {
			cfg.Output.Format = *format
		} else {
			logger.Warn("ignoring invalid -format value", "format", *format)
		}
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *printOut {
		cfg.Output.Print = true
	}

	table, err := pricing.LoadDefault()
	if err != nil {
		logger.Error("embedded pricing table unreadable", "err", err)
		table = pricing.Table{}
	}
	table.MergeMultipliers(cfg.Pricing.Multipliers)

	calc := pricing.NewCalculator(table)
	calc.SetRates(cfg.Pricing.PricePerMillion, cfg.Pricing.CacheReadDiscount)

	if *watch {
		runWatch(cfg, table, calc, *dataDir, logger)
		return
	}

	in, err := hook.ReadInput(os.Stdin)
	if err != nil {
		logger.Error("bad hook payload", "err", err)
		return
	}
	generate(in, cfg, table, calc, logger)
}

// generate runs the full pipeline for one ended session.
func generate(in hook.Input, cfg config.Config, table pricing.Table, calc *pricing.Calculator, logger *slog.Logger) {
	settings, err := hook.LoadSettings(hook.SettingsPath(in.TranscriptPath))
	switch {
	case errors.Is(err, hook.ErrNoSettings), errors.Is(err, hook.ErrNoTokens):
		logger.Info("skipping receipt", "session", in.SessionID, "reason", err)
		return
	case err != nil:
		logger.Error("settings unreadable", "session", in.SessionID, "err", err)
		return
	}

	session := hook.BuildSession(in, settings, hook.LastTimestamp(in.TranscriptPath))
	data := receipt.Build(session, table, calc.Breakdown(session.Model, session.Tokens))

	w := receipt.NewWriter(cfg.Output.Dir)
	if cfg.WantHTML() {
		path, err := w.WriteHTML(session.SessionID, data)
		if err != nil {
			logger.Error("write html receipt", "err", err)
		} else {
			logger.Info("receipt saved", "path", path)
		}
	}
	if cfg.WantSVG() {
		path, err := w.WriteSVG(session.SessionID, data)
		if err != nil {
			logger.Error("write svg receipt", "err", err)
		} else {
			logger.Info("receipt saved", "path", path)
		}
	}
	if cfg.Output.Print {
		fmt.Println(receipt.RenderTerminal(data))
	}
}

// runWatch generates receipts as settings files are flushed, for hosts
// without SessionEnd hook support. Blocks until SIGINT/SIGTERM.
func runWatch(cfg config.Config, table pricing.Table, calc *pricing.Calculator, dataDir string, logger *slog.Logger) {
	interval := time.Duration(cfg.Watch.Interval) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}

	w := watcher.New([]string{dataDir}, interval, func(path string) {
		generate(inputFromSettingsPath(path), cfg, table, calc, logger)
	})
	if err := w.InitialScan(); err != nil {
		logger.Error("scan data directory", "dir", dataDir, "err", err)
		return
	}
	if err := w.Start(); err != nil {
		logger.Error("start watcher", "err", err)
		return
	}
	logger.Info("watching for session ends", "dir", dataDir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	w.Stop()
}

// inputFromSettingsPath reconstructs the hook payload from a settings
// file path: the file name carries the session id and the project
// directory stands in for the working directory.
func inputFromSettingsPath(path string) hook.Input {
	base := strings.TrimSuffix(filepath.Base(path), ".settings.json")
	return hook.Input{
		SessionID:      base,
		TranscriptPath: strings.TrimSuffix(path, ".settings.json") + ".jsonl",
		Cwd:            filepath.Dir(path),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".claude", "projects")
	}
	return filepath.Join(home, ".claude", "projects")
}
