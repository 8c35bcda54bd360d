// Package session drives a game on behalf of a frontend: it owns the current
// engine, tracks whether play has started or ended, queues player commands and
// applies gravity on a fixed interval.
//
// A frontend creates a Session and a Scheduler, registers the stock systems
// plus its own, pushes commands as keys arrive and calls Scheduler.Once every
// frame. Everything runs on the caller's goroutine.
package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
	"github.com/sirupsen/logrus"
)

// Phase is the session-level lifecycle, wrapped around the engine's own
// running/over flags.
type Phase uint8

const (
	// Idle: the board is shown but play has not started.
	Idle Phase = iota
	// Playing: gravity and movement apply.
	Playing
	// Over: the game ended by spawn collision or by Stop. Restart begins a new one.
	Over
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Session owns the engine of the game in progress.
type Session struct {
	palette   *tetris.Palette
	newSource func() tetris.Source
	log       logrus.FieldLogger

	engine *tetris.Engine
	phase  Phase
	games  int
	outbox []Event
}

type Option func(*Session)

// WithSource sets the factory for each game's random source. Every restart
// calls it once.
func WithSource(fn func() tetris.Source) Option {
	return func(s *Session) {
		s.newSource = fn
	}
}

// WithSeed makes every game draw from a PCG source seeded with seed, seed+1, ...
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		next := seed
		s.newSource = func() tetris.Source {
			src := tetris.NewSource(next)
			next++
			return src
		}
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// New creates an idle session with a fresh engine ready to be drawn.
func New(palette *tetris.Palette, opts ...Option) *Session {
	s := &Session{
		palette: palette,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.newSource == nil {
		WithSeed(rand.Uint64())(s)
	}

	s.engine = tetris.NewEngine(s.palette, s.newSource())
	return s
}

// Engine returns the engine of the current game. It changes on Restart.
func (s *Session) Engine() *tetris.Engine { return s.engine }

func (s *Session) Phase() Phase { return s.phase }

// Games returns how many games have been started.
func (s *Session) Games() int { return s.games }

// Playing reports whether movement and gravity currently apply.
func (s *Session) Playing() bool {
	return s.phase == Playing && s.engine.Running()
}

// Start begins the first game. It only has an effect while Idle.
func (s *Session) Start() bool {
	if s.phase != Idle {
		return false
	}
	s.begin()
	return true
}

// Restart replaces a finished game with a new engine. It only has an effect
// once the session is Over.
func (s *Session) Restart() bool {
	if s.phase != Over {
		return false
	}
	s.engine = tetris.NewEngine(s.palette, s.newSource())
	s.begin()
	return true
}

func (s *Session) begin() {
	s.games++
	s.phase = Playing
	s.emit(Event{Kind: Started})
	s.log.WithField("game", s.games).Info("game started")

	// The first spawn of a new engine can already collide on a degenerate
	// palette; treat it like any other game over.
	if !s.engine.Running() {
		s.finish(GameOver)
	}
}

// Stop ends the game in progress at the player's request.
func (s *Session) Stop() bool {
	if s.phase != Playing {
		return false
	}
	s.engine.Stop()
	s.finish(Stopped)
	return true
}

// Confirm is the single "up" action: it starts an idle session, restarts a
// finished one and rotates the piece during play.
func (s *Session) Confirm() bool {
	switch s.phase {
	case Idle:
		return s.Start()
	case Over:
		return s.Restart()
	default:
		return s.Rotate()
	}
}

func (s *Session) MoveLeft() bool {
	return s.Playing() && s.engine.MoveLeft()
}

func (s *Session) MoveRight() bool {
	return s.Playing() && s.engine.MoveRight()
}

func (s *Session) Rotate() bool {
	return s.Playing() && s.engine.Rotate()
}

// Step applies one gravity step and moves the session to Over when the
// engine reports a game over.
func (s *Session) Step() tetris.Outcome {
	if !s.Playing() {
		return tetris.Outcome{Kind: tetris.Halted}
	}
	return s.settle(s.engine.MoveDown())
}

// Drop hard-drops the current piece.
func (s *Session) Drop() tetris.Outcome {
	if !s.Playing() {
		return tetris.Outcome{Kind: tetris.Halted}
	}
	return s.settle(s.engine.Drop())
}

func (s *Session) settle(outcome tetris.Outcome) tetris.Outcome {
	if outcome.Landed() {
		s.emit(Event{Kind: Locked, Lines: outcome.Lines})
		s.log.WithFields(logrus.Fields{
			"game":  s.games,
			"lines": outcome.Lines,
			"score": s.engine.Score(),
		}).Debug("piece locked")
	}
	if outcome.Kind == tetris.GameOver {
		s.finish(GameOver)
	}
	return outcome
}

func (s *Session) finish(kind EventKind) {
	s.phase = Over
	s.emit(Event{Kind: kind})
	s.log.WithFields(logrus.Fields{
		"game":   s.games,
		"score":  s.engine.Score(),
		"lines":  s.engine.Lines(),
		"pieces": s.engine.Pieces(),
		"reason": kind.String(),
	}).Info("game over")
}

func (s *Session) emit(e Event) {
	e.Game = s.games
	e.Score = s.engine.Score()
	s.outbox = append(s.outbox, e)
}

// Drain returns the events recorded since the last call and clears them.
func (s *Session) Drain() []Event {
	if len(s.outbox) == 0 {
		return nil
	}
	events := s.outbox
	s.outbox = nil
	return events
}
