package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"strife/internal/app"
	"strife/internal/logging"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"
)

// errorBox reports runtime failures in a native dialog, since desktop runs
// often have no visible terminal.
var errorBox = func(err error) {
	dialog.Message("%s", err).Title("Strife").Error()
}

func main() {
	cfg := app.DefaultConfig()
	cmd := &cobra.Command{
		Use:           "strife",
		Short:         "Layered event dispatch demo: a spinning triangle and a stats overlay",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	f.IntVar(&cfg.Width, "width", cfg.Width, "Initial window width in pixels")
	f.IntVar(&cfg.Height, "height", cfg.Height, "Initial window height in pixels")
	f.BoolVar(&cfg.Resizable, "resizable", cfg.Resizable, "Allow resizing the window")
	f.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window")
	f.IntVar(&cfg.Frames, "frames", cfg.Frames, "Stop after this many frames (0 runs until closed)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	f.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Copy log output to this file (empty disables)")
	f.BoolVar(&cfg.Color, "color", cfg.Color, "Color log levels on the terminal")
	f.StringVar(&cfg.Propagation, "propagation", cfg.Propagation, "Layer propagation: all or stop")
	f.BoolVar(&cfg.RawEvents, "raw-events", cfg.RawEvents, "Forward raw platform events to layers")
	f.BoolVar(&cfg.ShowStats, "stats", cfg.ShowStats, "Show the stats overlay")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := fang.Execute(ctx, cmd); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg app.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(logging.Options{
		Level: level,
		File:  cfg.LogFile,
		Color: cfg.Color,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close log file", "error", err)
		}
	}()

	a, err := app.New(cfg, app.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := a.Run(ctx); err != nil {
		logger.Error("application failed", "err", err)
		if !cfg.Headless {
			errorBox(err)
		}
		return fmt.Errorf("strife: %w", err)
	}
	return nil
}
