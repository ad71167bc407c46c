// Command attract-window runs the idle attract loop in a touch kiosk window
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/goldenmunch/attract/config"
	"github.com/goldenmunch/attract/host/window"
	"github.com/goldenmunch/attract/idle"
	"github.com/goldenmunch/attract/kiosk"
	"github.com/goldenmunch/attract/logging"
)

var (
	configPath = flag.String("config", "attract.toml", "path to kiosk config")
	profile    = flag.String("profile", "", "tuning profile, overrides the config file")
	fullscreen = flag.Bool("fullscreen", false, "start fullscreen, overrides the config file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *profile != "" {
		cfg.Profile = *profile
	}
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	kit, err := kiosk.Assemble(cfg, log)
	if err != nil {
		return err
	}
	defer kit.Close()

	host := window.New(window.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		Logger:     log,
	})

	var route string
	sim, err := idle.New(kit.Options(host, host.Surface(), func(r string) { route = r }))
	if err != nil {
		return err
	}
	host.Attach(sim)

	if err := host.Run(); err != nil {
		return err
	}
	log.Info("attract loop finished", zap.String("route", route))
	if route != "" {
		fmt.Println(route)
	}
	return nil
}
