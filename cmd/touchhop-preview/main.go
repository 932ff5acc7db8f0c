// Command touchhop-preview opens an SDL window showing the views of a
// touchhop configuration and routes mouse and touch input through them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/config"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/preview"
)

var (
	configPath = flag.String("config", "", "path of the TOML configuration (default $TOUCHHOP_CONFIG or touchhop.toml)")
	writeTo    = flag.String("write-default", "", "write the default configuration to this path and exit")
	onTop      = flag.Bool("on-top", false, "keep the window above others")
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "touchhop-preview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *writeTo != "" {
		return config.Default().Write(*writeTo)
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}

	if cfg.LogPath != "" {
		touchhop.SetLogPath(cfg.LogPath)
	}
	touchhop.SetRawLogLevel(cfg.LogLevel)
	if touchhop.ParseLogLevel(cfg.LogLevel) == slog.LevelDebug {
		touchhop.SetRoutingLogLevel(slog.LevelDebug)
	}
	defer touchhop.CloseLogger()

	p, err := preview.New(cfg, preview.Options{
		Window: preview.WindowOptions{Resizable: true, AlwaysOnTop: *onTop},
	})
	if err != nil {
		return err
	}
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
