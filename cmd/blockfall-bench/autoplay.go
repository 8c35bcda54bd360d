package main

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/sirupsen/logrus"
)

// Autoplayer queues random commands every frame and confirms whenever no game
// is in progress, so a session keeps cycling through games.
type Autoplayer struct {
	rng           *rand.Rand
	MovesPerFrame int
}

// moves is weighted towards sideways movement so pieces spread over the board
// before a hard drop lands them.
var moves = []session.Command{
	session.MoveLeft, session.MoveLeft, session.MoveLeft,
	session.MoveRight, session.MoveRight, session.MoveRight,
	session.Rotate, session.Rotate,
	session.SoftDrop,
	session.HardDrop,
}

func NewAutoplayer(seed uint64, movesPerFrame int) *Autoplayer {
	return &Autoplayer{
		rng:           tetris.NewSource(seed),
		MovesPerFrame: movesPerFrame,
	}
}

func (a *Autoplayer) Execute(frame *session.Frame) {
	if !frame.Session.Playing() {
		frame.Commands.Push(session.Confirm)
		return
	}
	for range a.MovesPerFrame {
		frame.Commands.Push(moves[a.rng.IntN(len(moves))])
	}
}

type benchOptions struct {
	Games         int
	Duration      time.Duration
	Seed          uint64
	MovesPerFrame int
	Gravity       time.Duration
}

// frameTime is the simulated time per frame. The bench runs frames back to
// back, so gravity advances on simulated rather than wall-clock time.
const frameTime = 1.0 / 60

func bench(ctx context.Context, palette *tetris.Palette, opts benchOptions, log logrus.FieldLogger) *Report {
	ctx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	s := session.New(palette, session.WithSeed(opts.Seed), session.WithLogger(log))
	scheduler := session.NewScheduler(s)
	scheduler.Register(NewAutoplayer(opts.Seed, opts.MovesPerFrame))
	tally := session.Standard(scheduler, opts.Gravity)

	report := &Report{
		Games:         opts.Games,
		Duration:      opts.Duration,
		Seed:          opts.Seed,
		MovesPerFrame: opts.MovesPerFrame,
		Gravity:       opts.Gravity,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for tally.Games < opts.Games {
		select {
		case <-ctx.Done():
			report.TimedOut = true
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(frameTime)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Tally = tally
	report.Scheduler = scheduler.Stats()
	return report
}
