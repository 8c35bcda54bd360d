package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/session"
)

type Report struct {
	// Configuration
	Games         int
	Duration      time.Duration
	Seed          uint64
	MovesPerFrame int
	Gravity       time.Duration

	// Results
	TimedOut      bool
	TotalUpdates  int64
	TotalTime     time.Duration
	UpdateTime    Stats
	Tally         *session.Tally
	Scheduler     *session.SchedulerStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Autoplay Report

## Configuration
- **Games:** {{.Games}}
- **Time Limit:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Moves Per Frame:** {{.MovesPerFrame}}
- **Gravity:** {{.Gravity}}

## Games
- **Completed:** {{.Tally.Games}}{{if .TimedOut}} (time limit reached){{end}}
- **Pieces Locked:** {{.Tally.Locks}}
- **Lines Cleared:** {{.Tally.Lines}}
{{- with scores .Tally}}
- **Score:** min {{.Min}} / avg {{.Avg}} / max {{.Max}}
{{- end}}

## Lines Cleared Per Lock
{{- range .Tally.Histogram}}
- {{.Lines}}: {{.Locks}} ({{percent .Locks $.Tally.Locks}})
{{- else}}
- no pieces locked
{{- end}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Run Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
{{- range .Scheduler.Systems}}
- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- Total GC Pause: {{.MemStatsEnd.PauseTotalNs | ns}}
`

	fm := template.FuncMap{
		"scores": func(t *session.Tally) *scoreRange {
			if len(t.Scores) == 0 {
				return nil
			}
			lowest, mean, highest := t.ScoreRange()
			return &scoreRange{Min: lowest, Avg: mean, Max: highest}
		},
		"percent": func(n, total int) string {
			if total == 0 {
				return "0.0%"
			}
			return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

type scoreRange struct {
	Min, Avg, Max int
}
