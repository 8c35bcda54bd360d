package tui

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/plus3/blockfall/session"
	"github.com/stretchr/testify/assert"
)

type recordingPlayer struct {
	played []beep.Streamer
}

func (p *recordingPlayer) Play(s beep.Streamer) {
	p.played = append(p.played, s)
}

// drain streams s to the end and returns the sample count.
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, sample := range buf[:n] {
			if sample[0] < -1 || sample[0] > 1 {
				panic("sample out of range")
			}
		}
		if !ok {
			return total
		}
	}
}

func TestClearToneLength(t *testing.T) {
	blip := sampleRate.N(blipLength)
	gap := sampleRate.N(blipGap)

	assert.Equal(t, blip, drain(ClearTone(1)))
	assert.Equal(t, 4*blip+3*gap, drain(ClearTone(4)))
	assert.Equal(t, 0, drain(ClearTone(0)))
}

func TestGameOverToneLength(t *testing.T) {
	assert.Equal(t, sampleRate.N(gameOverLength), drain(GameOverTone()))
}

func TestSoundSystem(t *testing.T) {
	player := &recordingPlayer{}
	system := &SoundSystem{Player: player}

	system.Execute(&session.Frame{Events: []session.Event{
		{Kind: session.Started},
		{Kind: session.Locked, Lines: 0},
		{Kind: session.Locked, Lines: 2},
		{Kind: session.Stopped},
	}})
	assert.Len(t, player.played, 1, "only the clear makes a sound")
	assert.Equal(t, 2*sampleRate.N(blipLength)+sampleRate.N(blipGap), drain(player.played[0]))

	system.Execute(&session.Frame{Events: []session.Event{
		{Kind: session.Locked, Lines: 0},
		{Kind: session.GameOver},
	}})
	assert.Len(t, player.played, 2)
}

func TestSoundSystemWithoutPlayer(t *testing.T) {
	system := &SoundSystem{}
	assert.NotPanics(t, func() {
		system.Execute(&session.Frame{Events: []session.Event{{Kind: session.GameOver}}})
	})
}
