package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wafflesolver/config"
	"github.com/domino14/wafflesolver/wordfill"
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
		fmt.Fprintf(os.Stderr, "usage: findanswers <wordlist> <board>\n")
		os.Exit(2)
	}

	wordlist, err := wordfill.LoadWordlist(cfg.Args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("could not load wordlist")
	}
	cb, err := wordfill.BoardFromFile(cfg.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("could not load board")
	}

	filler := &wordfill.Filler{}
	filler.Init(cfg)
	solutions, err := filler.FindAll(context.Background(), cb, wordlist)
	if err != nil {
		log.Fatal().Err(err).Msg("fill failed")
	}
	for _, solution := range solutions {
		fmt.Println(solution)
		fmt.Println()
	}
}
