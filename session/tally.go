package session

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Tally accumulates results across the games of a session.
type Tally struct {
	Games  int
	Locks  int
	Lines  int
	Scores []int

	// rows cleared by a single lock -> number of such locks
	clears *intmap.Map[int, int]
}

// Bucket is one row of the clears histogram.
type Bucket struct {
	Lines int
	Locks int
}

func NewTally() *Tally {
	return &Tally{
		clears: intmap.New[int, int](8),
	}
}

// Record folds one event into the tally.
func (t *Tally) Record(e Event) {
	switch {
	case e.Kind == Locked:
		t.Locks++
		t.Lines += e.Lines
		n, _ := t.clears.Get(e.Lines)
		t.clears.Put(e.Lines, n+1)
	case e.Ended():
		t.Games++
		t.Scores = append(t.Scores, e.Score)
	}
}

// Clears returns how many locks cleared exactly lines rows.
func (t *Tally) Clears(lines int) int {
	n, _ := t.clears.Get(lines)
	return n
}

// Histogram returns the clears histogram ordered by line count.
func (t *Tally) Histogram() []Bucket {
	buckets := make([]Bucket, 0, t.clears.Len())
	for lines, locks := range t.clears.All() {
		buckets = append(buckets, Bucket{Lines: lines, Locks: locks})
	}
	slices.SortFunc(buckets, func(a, b Bucket) int {
		return a.Lines - b.Lines
	})
	return buckets
}

// ScoreRange returns the lowest, mean and highest final score. All zero when
// no game has finished.
func (t *Tally) ScoreRange() (lowest, mean, highest int) {
	if len(t.Scores) == 0 {
		return 0, 0, 0
	}

	total := 0
	for _, score := range t.Scores {
		total += score
	}
	return slices.Min(t.Scores), total / len(t.Scores), slices.Max(t.Scores)
}
