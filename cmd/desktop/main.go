package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/laserdodge/internal/audio"
	"github.com/tomz197/laserdodge/internal/config"
	"github.com/tomz197/laserdodge/internal/desktop"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file (default $LASERDODGE_TUNING)")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Fatal("failed to load env", "err", err)
	}
	logger := config.NewLogger(os.Stderr, "laserdodge")

	path := *tuningPath
	if path == "" {
		path = config.GetEnv("LASERDODGE_TUNING", "")
	}
	tuning, err := config.LoadTuning(path)
	if err != nil {
		logger.Fatal("failed to load tuning", "path", path, "err", err)
	}

	var sound *audio.Player
	if tuning.Sound {
		sound = audio.NewPlayer()
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
			sound = nil
		}
		defer sound.Close()
	}

	app, err := desktop.New(desktop.Options{Tuning: tuning, Logger: logger, Sound: sound})
	if err != nil {
		logger.Fatal("failed to start game", "err", err)
	}
	if err := app.Run(tuning); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
