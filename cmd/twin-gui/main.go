//go:build ebiten

package main

import (
	"context"
	"errors"
	"fmt"

	"co2-twin/internal/app"
	"co2-twin/internal/twin"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithError(err).Warn("unknown log level, using info")
	}

	twinCfg := twin.DefaultConfig()
	if cfg.File != "" {
		loaded, err := twin.LoadConfig(cfg.File)
		if err != nil {
			log.WithError(err).Fatal("loading configuration")
		}
		twinCfg = loaded
	}

	scenario := twin.NewScenario(twinCfg, log)
	game := app.New(scenario, cfg)
	if cfg.Watch && cfg.File != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		w, err := twin.WatchConfig(ctx, cfg.File, twin.DefaultReloadDebounce, log)
		if err != nil {
			log.WithError(err).Fatal("watching configuration")
		}
		defer w.Close()
		game.Watch(w.Updates())
	}
	n := twinCfg.Dispersion.Size

	ebiten.SetWindowTitle(fmt.Sprintf("co2-twin (%dx%d)", n, n))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(n*cfg.Scale+cfg.HUDWidth, n*cfg.Scale)

	log.WithFields(logrus.Fields{"size": n, "sources": len(scenario.Sources())}).Info("starting co2-twin")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("running game")
	}
}
