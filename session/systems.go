package session

import "time"

// InputSystem applies the queued player commands.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *Frame) {
	frame.Commands.Flush(frame.Session)
}

// maxCatchUp bounds the gravity steps taken in one frame after a stall.
const maxCatchUp = 4

// GravitySystem moves the piece down once per Interval of accumulated frame
// time while a game is being played.
type GravitySystem struct {
	Interval time.Duration
	elapsed  float64
}

func NewGravitySystem(interval time.Duration) *GravitySystem {
	return &GravitySystem{Interval: interval}
}

func (g *GravitySystem) Execute(frame *Frame) {
	s := frame.Session
	interval := g.Interval.Seconds()
	if !s.Playing() || interval <= 0 {
		g.elapsed = 0
		return
	}

	g.elapsed += frame.DeltaTime
	for steps := 0; g.elapsed >= interval; steps++ {
		if steps == maxCatchUp {
			g.elapsed = 0
			return
		}

		g.elapsed -= interval
		s.Step()
		if !s.Playing() {
			g.elapsed = 0
			return
		}
	}
}

// TallySystem feeds every frame's events into a Tally.
type TallySystem struct {
	Tally *Tally
}

func NewTallySystem() *TallySystem {
	return &TallySystem{Tally: NewTally()}
}

func (t *TallySystem) Execute(frame *Frame) {
	for _, e := range frame.Events {
		t.Tally.Record(e)
	}
}

// Standard registers the input, gravity and tally systems in that order and
// returns the tally.
func Standard(scheduler *Scheduler, gravity time.Duration) *Tally {
	tally := NewTallySystem()
	scheduler.Register(&InputSystem{})
	scheduler.Register(NewGravitySystem(gravity))
	scheduler.Register(tally)
	return tally.Tally
}
