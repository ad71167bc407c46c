// Command attract-terminal runs the idle attract loop in a terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/goldenmunch/attract/config"
	"github.com/goldenmunch/attract/host/term"
	"github.com/goldenmunch/attract/idle"
	"github.com/goldenmunch/attract/kiosk"
	"github.com/goldenmunch/attract/logging"
)

var (
	configPath = flag.String("config", "attract.toml", "path to kiosk config")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/attract.log")
	profile    = flag.String("profile", "", "tuning profile, overrides the config file")
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

	log, logFile, err := logging.Setup(*debugFlag, cfg.Logging)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	kit, err := kiosk.Assemble(cfg, log)
	if err != nil {
		return err
	}
	defer kit.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	crash := func(r any) {
		// Restore the terminal before anything is printed
		screen.Fini()
		log.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
		fmt.Fprintf(os.Stderr, "\n\x1b[31mATTRACT CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	host := term.New(screen, term.Options{
		FrameRate:  cfg.Terminal.FrameRate,
		StatusLine: cfg.Terminal.StatusLine,
		Mouse:      cfg.Terminal.Mouse,
		Locale:     cfg.Locale,
		Logger:     log,
		OnCrash:    crash,
	})

	var route string
	sim, err := idle.New(kit.Options(host, host.Surface(), func(r string) { route = r }))
	if err != nil {
		screen.Fini()
		return err
	}
	host.Attach(sim)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := host.Run(ctx)
	screen.Fini()
	if runErr != nil && runErr != context.Canceled {
		return runErr
	}

	// The launcher reads the exit route from stdout
	if route != "" {
		fmt.Println(route)
	}
	return nil
}
