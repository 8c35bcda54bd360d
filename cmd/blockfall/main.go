package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/session"
	"github.com/sirupsen/logrus"
)

// debugPanelWidth is the extra window width given to the ImGui windows.
const debugPanelWidth = 400

func main() {
	configPath := flag.String("config", "", "YAML or JSON file with COLORS and SHAPES (default: built-in tetrominoes)")
	seed := flag.Uint64("seed", 0, "seed for piece selection (0 picks a random seed)")
	debug := flag.Bool("debug", false, "show the Dear ImGui debug windows")
	verbose := flag.Bool("v", false, "log every piece lock")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
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
	swatches, err := config.Swatches(palette)
	if err != nil {
		log.WithError(err).Fatal("invalid palette color")
	}

	opts := []session.Option{session.WithLogger(log)}
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}

	s := session.New(palette, opts...)
	scheduler := session.NewScheduler(s)
	tally := session.Standard(scheduler, cfg.Gravity)

	game := newGame(cfg, scheduler, swatches)
	width, height := cfg.WindowSize()

	if *debug {
		game.backend = debugui_ebiten.NewImguiBackend("blockfall (debug)", width+debugPanelWidth, max(height, 780))
		game.imgui = debugui.Install(scheduler, tally, float32(width+20))
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("blockfall")
	}

	log.WithFields(logrus.Fields{
		"colors":  len(palette.Colors),
		"shapes":  len(palette.Shapes),
		"gravity": cfg.Gravity,
	}).Info("starting")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game loop failed")
	}

	lowest, mean, highest := tally.ScoreRange()
	log.WithFields(logrus.Fields{
		"games": tally.Games,
		"lines": tally.Lines,
		"min":   lowest,
		"avg":   mean,
		"max":   highest,
	}).Info("session finished")
}
