package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hex/experiments"
)

func main() {
	experiment := flag.String("experiment", "strength", "experiment to run: strength or speedup")
	size := flag.Int("size", 7, "board side length")
	games := flag.Int("games", 10, "games per matchup")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	var err error
	switch *experiment {
	case "strength":
		err = experiments.RunStrengthExperiment(*size, *games)
	case "speedup":
		err = experiments.RunSpeedupExperiment(*size, *games)
	default:
		log.Fatal().Str("experiment", *experiment).Msg("unknown experiment")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
