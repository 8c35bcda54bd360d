package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/sirupsen/logrus"
)

func main() {
	games := flag.Int("games", 100, "Number of games to play before reporting.")
	duration := flag.Duration("duration", 30*time.Second, "Upper bound on the total run time.")
	seed := flag.Uint64("seed", 0, "Seed for pieces and moves (0 picks a random seed).")
	moves := flag.Int("moves", 2, "Random commands issued per frame.")
	configPath := flag.String("config", "", "YAML or JSON palette file (default: built-in tetrominoes).")
	verbose := flag.Bool("v", false, "Log every game start and end.")
	flag.Parse()

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.InfoLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.WithError(err).Fatal("failed to load config")
		}
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.WithError(err).Fatal("invalid palette")
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	report := bench(context.Background(), palette, benchOptions{
		Games:         *games,
		Duration:      *duration,
		Seed:          *seed,
		MovesPerFrame: *moves,
		Gravity:       cfg.Gravity,
	}, log)

	fmt.Println("\n--- Autoplay Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.WithError(err).Fatal("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
