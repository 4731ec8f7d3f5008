// ABOUTME: CLI entry point for kilo with terminal crash recovery
// ABOUTME: Parses flags, loads config, enters raw mode, runs the editor loop

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/kilo-go/internal/config"
	"github.com/mauromedda/kilo-go/internal/editor"
	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(1)
	}

	if args.version {
		fmt.Printf("kilo %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings, puts the terminal in raw mode and drives the editor.
// Raw mode is always restored before run returns.
func run(args cliArgs) (err error) {
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	settings, err := loadSettings(args)
	if err != nil {
		return err
	}

	logPath := settings.LogFile
	if args.logFile != "" {
		logPath = args.logFile
	}
	closeLog, err := setupLog(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("kilo %s starting", version)

	// Signals must be caught before raw mode is entered.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	t := terminal.NewProcessTerminal()
	if err := t.EnableRawMode(); err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer func() {
		if rerr := t.DisableRawMode(); rerr != nil {
			log.Warn("restoring terminal: %v", rerr)
			err = errors.Join(err, fmt.Errorf("restoring terminal: %w", rerr))
		}
	}()
	defer terminal.RestoreOnPanic(t)

	banner := settings.Banner
	if banner == "" {
		banner = "Kilo editor -- version " + version
	}

	ed, err := editor.New(t, editor.Options{
		Banner:  banner,
		Glyph:   settings.EmptyLineGlyph,
		Signals: sigCh,
	})
	if err != nil {
		log.Error("starting editor: %v", err)
		return err
	}
	if err := ed.Run(); err != nil {
		log.Error("editor stopped: %v", err)
		return err
	}
	return nil
}

func loadSettings(args cliArgs) (*config.Settings, error) {
	if args.config != "" {
		return config.LoadFile(args.config)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return config.Load(cwd)
}

// setupLog routes log output to path, or discards it when path is empty:
// stderr shares the screen with the editor while raw mode is active.
func setupLog(path string) (func(), error) {
	if path == "" {
		prev := log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}
