package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmind/internal/config"
	"github.com/robalobadob/wordmind/internal/console"
	"github.com/robalobadob/wordmind/internal/game"
	"github.com/robalobadob/wordmind/internal/session"
	"github.com/robalobadob/wordmind/internal/words"
)

func main() {
	_ = godotenv.Load()

	// Game text goes to stdout; diagnostics stay on stderr.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	cfg, err := config.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}

	wordsFile := flag.String("words", cfg.WordsFile, "path to a word list file (empty: embedded list)")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flag.Parse()

	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := loadWords(*wordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Debug().Int("words", list.Len()).Msg("word list ready")

	ctx := context.Background()

	stats, err := session.Open(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session store")
	}
	defer stats.Close()

	eng, err := game.New(list, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	if err := console.New(eng, stats, os.Stdin, os.Stdout).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}

func loadWords(path string) (*words.List, error) {
	if path == "" {
		return words.Default(), nil
	}
	return words.LoadFile(path)
}
