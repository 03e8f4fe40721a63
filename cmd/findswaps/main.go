package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wafflesolver/board"
	"github.com/domino14/wafflesolver/config"
	"github.com/domino14/wafflesolver/playback"
	"github.com/domino14/wafflesolver/swapfinder"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	if len(cfg.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Expected 2 command line arguments but got %d\n", len(cfg.Args))
		fmt.Fprintf(os.Stderr, "usage: findswaps <from-board> <to-board>\n")
		os.Exit(2)
	}

	fromBoard, err := board.FromFile(cfg.Args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("could not load from-board")
	}
	intoBoard, err := board.FromFile(cfg.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("could not load to-board")
	}

	finder := &swapfinder.SwapFinder{}
	finder.Init(cfg)
	path, err := finder.Find(fromBoard, intoBoard)
	if errors.Is(err, swapfinder.ErrNoPath) {
		fmt.Println("Could not find a path.")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}
	player := playback.NewPlayer(os.Stdout)
	if err := player.Play(fromBoard, path); err != nil {
		log.Fatal().Err(err).Msg("could not replay path")
	}
}
