package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/laserdodge/internal/audio"
	"github.com/tomz197/laserdodge/internal/config"
	"github.com/tomz197/laserdodge/internal/loop"
	"github.com/tomz197/laserdodge/internal/tui"
)

func main() {
	useTcell := flag.Bool("tcell", false, "draw with tcell (mouse drags move the player)")
	tuningPath := flag.String("tuning", "", "YAML tuning file (default $LASERDODGE_TUNING)")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "env: %v\n", err)
		os.Exit(1)
	}
	// Logs go to stderr so they don't garble the board; redirect it to keep them.
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

	if *useTcell {
		runTcell(tuning, logger, sound)
		return
	}
	runTerminal(tuning, logger, sound)
}

func runTerminal(tuning config.Tuning, logger *log.Logger, sound *audio.Player) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	sess, err := loop.NewSession(reader, os.Stdout, loop.Options{
		Tuning: tuning,
		Logger: logger,
		Sound:  sound,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		logger.Fatal("failed to start game", "err", err)
	}
	if err := sess.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Fatal("game error", "err", err)
	}
}

func runTcell(tuning config.Tuning, logger *log.Logger, sound *audio.Player) {
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("failed to create screen", "err", err)
	}
	app, err := tui.New(screen, tui.Options{
		Tuning: tuning,
		Logger: logger,
		Sound:  sound,
	})
	if err != nil {
		logger.Fatal("failed to start game", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.Run(ctx); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
