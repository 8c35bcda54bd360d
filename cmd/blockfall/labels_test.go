package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelCache(t *testing.T) {
	var rendered, released []string
	labels := newLabelCache(
		func(s string) string {
			rendered = append(rendered, s)
			return "<" + s + ">"
		},
		func(v string) { released = append(released, v) },
	)

	assert.Equal(t, "<Score: 0>", labels.get("Score: 0"))
	assert.Equal(t, "<Lines: 0>", labels.get("Lines: 0"))
	labels.sweep()

	t.Run("reused across frames", func(t *testing.T) {
		labels.get("Score: 0")
		labels.get("Lines: 0")
		labels.sweep()

		assert.Equal(t, []string{"Score: 0", "Lines: 0"}, rendered)
		assert.Empty(t, released)
	})

	t.Run("stale labels are released", func(t *testing.T) {
		assert.Equal(t, "<Score: 30>", labels.get("Score: 30"))
		labels.get("Lines: 0")
		labels.sweep()

		assert.Equal(t, []string{"<Score: 0>"}, released)
		assert.Len(t, labels.entries, 2)
	})
}
