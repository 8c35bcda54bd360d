package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/session"
)

const (
	sampleRate = beep.SampleRate(44100)

	blipLength     = 60 * time.Millisecond
	blipGap        = 20 * time.Millisecond
	blipFrequency  = 660.0
	gameOverLength = 400 * time.Millisecond
	gameOverPitch  = 110.0
)

// Player accepts streamers to play in the background.
type Player interface {
	Play(s beep.Streamer)
}

// Speaker plays through the default audio device. Streamers are mixed so cues
// can overlap.
type Speaker struct {
	mixer *beep.Mixer
}

// OpenSpeaker initializes the audio device. Callers treat an error as "no
// sound" and carry on.
func OpenSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}

	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) Close() {
	speaker.Close()
}

// ClearTone is one rising blip per cleared line.
func ClearTone(lines int) beep.Streamer {
	var parts []beep.Streamer
	for i := range lines {
		if i > 0 {
			parts = append(parts, beep.Silence(sampleRate.N(blipGap)))
		}
		parts = append(parts, tone(blipFrequency*(1+0.25*float64(i)), blipLength, -1))
	}
	return beep.Seq(parts...)
}

// GameOverTone is a single low note.
func GameOverTone() beep.Streamer {
	return tone(gameOverPitch, gameOverLength, -0.5)
}

func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	n := sampleRate.N(d)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return &effects.Volume{Streamer: beep.Take(n, sine), Base: 2, Volume: volume}
}

// SoundSystem plays a cue for every line clear and game over of the frame.
// Register it after the systems that produce events.
type SoundSystem struct {
	Player Player
}

func (s *SoundSystem) Execute(frame *session.Frame) {
	if s.Player == nil {
		return
	}

	for _, e := range frame.Events {
		switch {
		case e.Kind == session.Locked && e.Lines > 0:
			s.Player.Play(ClearTone(e.Lines))
		case e.Kind == session.GameOver:
			s.Player.Play(GameOverTone())
		}
	}
}
