package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/constrictor/audio"
	"github.com/brensch/constrictor/config"
	"github.com/brensch/constrictor/logging"
	"github.com/brensch/constrictor/tui"
)

func main() {
	os.Exit(run(os.Args[1:], tea.WithAltScreen()))
}

// run returns the process exit code. Everything it opens is closed before it
// returns, on success and on failure.
func run(args []string, opts ...tea.ProgramOption) int {
	cfg, err := config.Load("constrictor", args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Printf("Invalid log level: %v", err)
		return 1
	}
	logger, closeLog, err := logging.Open(cfg.LogPath, level)
	if err != nil {
		log.Printf("Failed to open log: %v", err)
		return 1
	}
	defer closeLog()
	logger, _ = logging.WithSession(logger)

	if err := play(cfg, logger, opts); err != nil {
		logger.Error("program exited with error", "error", err)
		log.Printf("Error running program: %v", err)
		return 1
	}
	logger.Info("exiting")
	return 0
}

func play(cfg config.Config, logger *slog.Logger, opts []tea.ProgramOption) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting",
		"width", cfg.Width,
		"height", cfg.Height,
		"tick", cfg.Tick,
		"seed", seed,
		"sound", cfg.Sound,
	)

	var player audio.Player = audio.Nop{}
	if cfg.Sound {
		spk, err := audio.NewSpeaker(0.3)
		if err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer spk.Close()
			player = spk
		}
	}

	model, err := tui.New(tui.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Tick:   cfg.Tick,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
		Audio:  player,
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, opts...).Run()
	return err
}
