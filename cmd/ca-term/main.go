package main

import (
	"fmt"
	"io"
	"os"

	"lifeloop/internal/config"
	"lifeloop/internal/logger"
	"lifeloop/internal/session"
	_ "lifeloop/internal/sims/briansbrain"
	_ "lifeloop/internal/sims/elementary"
	_ "lifeloop/internal/sims/life"
	"lifeloop/internal/term"
)

func main() {
	if err := run(os.Args[0], os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(name string, args []string) error {
	cfg, err := config.Parse(name, args)
	if err != nil {
		return err
	}
	// The terminal belongs to the UI; logs go to -log-file or nowhere.
	if err := logger.Configure(cfg.LogLevel, io.Discard); err != nil {
		return err
	}
	if cfg.LogFile != "" {
		closer, err := logger.SetupFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer closer.Close()
	}

	sim, err := session.NewStepper(cfg)
	if err != nil {
		return err
	}
	logger.Named("main").WithField("sim", sim.Name()).WithField("fps", cfg.FPS).Info("starting")
	return term.Run(cfg, sim)
}
