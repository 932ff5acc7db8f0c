// Command touchhop-evdev routes a Linux touchscreen through the views listed
// in a touchhop configuration file and logs every delivered event as JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/config"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/platform/evdevinput"
	"golang.org/x/sync/errgroup"
)

var (
	configPath = flag.String("config", "", "path of the TOML configuration (default $TOUCHHOP_CONFIG or touchhop.toml)")
	device     = flag.String("device", "", "input device to read, overriding [evdev] device")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "touchhop-evdev: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
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
	logger := touchhop.GetLogger()

	path := *device
	if path == "" {
		path = cfg.Evdev.Device
	}
	if path == "" {
		if path, err = evdevinput.FindTouchscreen(); err != nil {
			return err
		}
	}

	svc := touchhop.New(touchhop.Options{})
	for _, v := range cfg.Views {
		name := v.Name
		_, err := svc.Attach(touchhop.StaticSurface(v.Rect()), func(_ touchhop.ViewID, ev touchhop.TouchEvent) {
			logger.Info("touch",
				"view", name,
				"action", ev.Type.String(),
				"pointer", ev.ID,
				"x", ev.Location.X,
				"y", ev.Location.Y,
				"in_contact", ev.InContact,
			)
		}, touchhop.ViewOptions{
			Name:            v.Name,
			Capture:         v.Capture,
			PixelsToLogical: geom.DensityScaler(cfg.Density),
		})
		if err != nil {
			return err
		}
	}

	reader, err := evdevinput.Open(path, cfg.Evdev.ScreenWidth, cfg.Evdev.ScreenHeight)
	if err != nil {
		return err
	}
	logger.Info("routing touchscreen", "device", path, "views", len(cfg.Views))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := evdevinput.NewRouter(svc, reader.Calibration())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return router.Run(ctx, reader)
	})
	g.Go(func() error {
		<-ctx.Done()
		return reader.Close()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
