package main

import (
	"log/slog"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/trig-visualization/internal/config"
	"github.com/iburimskiy/trig-visualization/internal/game"
	"github.com/iburimskiy/trig-visualization/internal/logging"
)

func main() {
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.LoadOptional(".")
	if err != nil {
		fatal(err)
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.Log.Level),
	})))
	logging.Logger().Debug("config loaded", "rate", cfg.Animation.Rate, "max_radius", cfg.Geometry.MaxRadius)

	if err := game.Run(cfg); err != nil {
		fatal(err)
	}
}

// fatal reports a startup failure and exits. There is no degraded mode.
func fatal(err error) {
	logging.Logger().Error("fatal", "err", err)
	_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
	os.Exit(1)
}
