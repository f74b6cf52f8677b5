package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"antics/config"
	"antics/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg.LogLevel)

	fmt.Printf("Running %d training games...\n", cfg.Games)
	results, err := experiments.RunTraining(cfg)
	if err != nil {
		log.Fatal().Err(err).Int("completed", len(results)).Msg("training failed")
	}
	fmt.Printf("Finished training.\n")
}

func initLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
