package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tui"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "YAML or JSON file with COLORS and SHAPES (default: built-in tetrominoes)")
	seed := flag.Uint64("seed", 0, "seed for piece selection (0 picks a random seed)")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(logrus.DebugLevel)
	} else {
		// Anything written to the terminal would corrupt the board.
		log.SetLevel(logrus.WarnLevel)
	}

	if err := run(log, *configPath, *seed, *mute); err != nil {
		log.WithError(err).Error("blockfall-tui failed")
		fmt.Fprintf(os.Stderr, "blockfall-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger, configPath string, seed uint64, mute bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	opts := []session.Option{session.WithLogger(log)}
	if seed != 0 {
		opts = append(opts, session.WithSeed(seed))
	}
	s := session.New(palette, opts...)
	scheduler := session.NewScheduler(s)
	session.Standard(scheduler, cfg.Gravity)

	if !mute {
		spk, err := tui.OpenSpeaker()
		if err != nil {
			// Non-fatal, the game runs without sound
			log.WithError(err).Warn("audio initialization failed")
		} else {
			defer spk.Close()
			scheduler.Register(&tui.SoundSystem{Player: spk})
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	renderer, err := tui.NewRenderer(screen, palette)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &tui.App{
		Screen:    screen,
		Scheduler: scheduler,
		Renderer:  renderer,
		Tick:      16 * time.Millisecond, // ~60 FPS
		Log:       log,
	}
	app.Run(ctx)
	return nil
}
