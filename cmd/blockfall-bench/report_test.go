package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/session"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	tally := session.NewTally()
	for _, e := range []session.Event{
		{Kind: session.Locked},
		{Kind: session.Locked},
		{Kind: session.Locked, Lines: 1},
		{Kind: session.Locked, Lines: 2},
		{Kind: session.GameOver, Score: 90},
		{Kind: session.Stopped, Score: 30},
	} {
		tally.Record(e)
	}

	report := &Report{
		Games:         2,
		Duration:      time.Second,
		Seed:          7,
		MovesPerFrame: 2,
		Gravity:       600 * time.Millisecond,
		TotalUpdates:  10,
		Tally:         tally,
		Scheduler: &session.SchedulerStats{
			SystemCount: 1,
			Systems:     []session.SystemStats{{Name: "GravitySystem", ExecutionCount: 10}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "- **Seed:** 7")
	assert.Contains(t, out, "- **Completed:** 2\n")
	assert.Contains(t, out, "- **Lines Cleared:** 3")
	assert.Contains(t, out, "- **Score:** min 30 / avg 60 / max 90")
	assert.Contains(t, out, "- 0: 2 (50.0%)")
	assert.Contains(t, out, "- 1: 1 (25.0%)")
	assert.Contains(t, out, "- 2: 1 (25.0%)")
	assert.Contains(t, out, "- **GravitySystem:** 10 runs")
	assert.NotContains(t, out, "time limit reached")
}

func TestReportGenerateEmpty(t *testing.T) {
	report := &Report{
		TimedOut:  true,
		Tally:     session.NewTally(),
		Scheduler: &session.SchedulerStats{},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "- **Completed:** 0 (time limit reached)")
	assert.Contains(t, out, "- no pieces locked")
	assert.NotContains(t, out, "**Score:**")
}

func TestBench(t *testing.T) {
	palette, err := config.Default().Palette()
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()

	report := bench(context.Background(), palette, benchOptions{
		Games:         3,
		Duration:      10 * time.Second,
		Seed:          1,
		MovesPerFrame: 2,
		Gravity:       600 * time.Millisecond,
	}, logger)

	require.False(t, report.TimedOut)
	assert.Equal(t, 3, report.Tally.Games)
	assert.Positive(t, report.Tally.Locks)
	assert.Equal(t, report.TotalUpdates, int64(len(report.UpdateTime.Samples)))
	require.Len(t, report.Scheduler.Systems, 4)
	assert.Equal(t, "Autoplayer", report.Scheduler.Systems[0].Name)
	assert.Equal(t, report.TotalUpdates, report.Scheduler.Frames)
}

func TestBenchTimeLimit(t *testing.T) {
	palette, err := config.Default().Palette()
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()

	report := bench(context.Background(), palette, benchOptions{
		Games:         1 << 30,
		Duration:      20 * time.Millisecond,
		Seed:          1,
		MovesPerFrame: 1,
		Gravity:       600 * time.Millisecond,
	}, logger)

	assert.True(t, report.TimedOut)
	assert.Less(t, report.Tally.Games, 1<<30)
}
