package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mfd/internal/apps"
	"mfd/internal/mfd"
	"mfd/internal/settings"
	"mfd/internal/telemetry"
	"mfd/internal/term"
	"mfd/internal/ui"
)

var version = "dev"

// config holds the parsed command line.
type config struct {
	settingsPath string
	logPath      string
	logLevel     string
	showVersion  bool
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.settingsPath, "config", settings.DefaultPath(), "path to the settings file")
	flag.StringVar(&cfg.logPath, "log", "", "write logs to this file (default: mfd.log next to the settings file)")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flag.BoolVar(&cfg.showVersion, "version", false, "print the version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mfd [flags]\n\n")
		fmt.Fprintf(os.Stderr, "mfd is a multi-function display for the terminal. F1-F5 pick an\n")
		fmt.Fprintf(os.Stderr, "application, F6-F10 pick a page, Esc quits.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if cfg.logPath == "" {
		cfg.logPath = filepath.Join(filepath.Dir(cfg.settingsPath), "mfd.log")
	}
	return cfg
}

// openLog returns a text logger writing to path. The terminal belongs to
// the display, so nothing is logged to stderr.
func openLog(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return logger, func() { f.Close() }, nil
}

func run(cfg config) error {
	logger, closeLog, err := openLog(cfg.logPath, cfg.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	store := settings.NewStore(cfg.settingsPath, logger)
	opts, err := store.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	logger.Info("starting", "version", version, "settings", cfg.settingsPath, "scheme", opts.ColorScheme)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tel, err := telemetry.New(ctx)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
		defer done()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", "error", err)
		}
	}()

	watcher := settings.NewWatcher(cfg.settingsPath, opts, logger)
	storeDone := make(chan struct{})
	go func() {
		defer close(storeDone)
		store.Run(ctx)
	}()
	go func() {
		if err := watcher.Run(ctx); err != nil {
			logger.Warn("settings watcher stopped", "error", err)
		}
	}()

	canvas := term.NewCanvas(term.DefaultWidth, term.DefaultHeight)
	bridge := term.NewBridge(canvas, term.DefaultEventBuffer, logger)
	display := ui.NewDisplay(canvas, opts.Scheme())
	bridge.TrackScheme(display.Scheme)

	controller := mfd.NewController(display,
		mfd.WithLogger(logger),
		mfd.WithTracer(tel.Tracer()),
		mfd.WithOptionsFeed(watcher),
		mfd.WithSaver(store),
	)
	all, home := apps.Build(ctx, controller, apps.Deps{Version: version, Logger: logger})
	controller.SetApps(all...)
	controller.SelectApp(home)

	program := tea.NewProgram(term.NewModel(bridge, opts.FPS), tea.WithAltScreen())

	loopErr := make(chan error, 1)
	go func() {
		err := controller.Run(ctx, bridge, bridge)
		program.Send(term.StopMsg{})
		loopErr <- err
	}()

	_, progErr := program.Run()
	cancel()
	<-storeDone
	err = <-loopErr
	logger.Info("stopped", "frames", controller.Frames(), "dropped_events", bridge.Dropped())
	if progErr != nil && !errors.Is(progErr, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal: %w", progErr)
	}
	return err
}

func main() {
	cfg := parseFlags()
	if cfg.showVersion {
		fmt.Println("mfd", version)
		return
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "mfd: %v\n", err)
		os.Exit(1)
	}
}
