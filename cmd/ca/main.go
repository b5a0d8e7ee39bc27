//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"lifeloop/internal/app"
	"lifeloop/internal/config"
	"lifeloop/internal/logger"
	"lifeloop/internal/session"
	_ "lifeloop/internal/sims/briansbrain"
	_ "lifeloop/internal/sims/elementary"
	_ "lifeloop/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logger.Configure(cfg.LogLevel, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.LogFile != "" {
		closer, err := logger.SetupFile(cfg.LogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer closer.Close()
	}
	log := logger.Named("main")

	sim, err := session.NewStepper(cfg)
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.New(cfg, sim)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("lifeloop - " + sim.Name())
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(w, h)
	log.WithField("sim", sim.Name()).WithField("fps", cfg.FPS).Info("starting")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
