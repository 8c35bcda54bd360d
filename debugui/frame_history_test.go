package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	h := newFrameHistory(3)
	assert.Equal(t, float32(0), h.Average())
	assert.Equal(t, []float32{0, 0, 0}, h.Ordered())

	h.Push(10)
	h.Push(20)
	assert.Equal(t, float32(15), h.Average(), "average only counts pushed samples")
	assert.Equal(t, []float32{0, 10, 20}, h.Ordered())

	h.Push(30)
	h.Push(40)
	assert.Equal(t, float32(30), h.Average())
	assert.Equal(t, []float32{20, 30, 40}, h.Ordered())
}

func TestFrameHistoryMinimumSize(t *testing.T) {
	h := newFrameHistory(0)
	h.Push(5)
	h.Push(7)
	assert.Equal(t, []float32{7}, h.Ordered())
}

func TestShapeRows(t *testing.T) {
	assert.Equal(t, []string{"###", "#.."}, shapeRows("###\n#..\n"))
	assert.Equal(t, []string{"##"}, shapeRows("##"))
}

func TestScoreSamples(t *testing.T) {
	assert.Equal(t, []float32{0, 30, 90}, scoreSamples([]int{0, 30, 90}))
	assert.Empty(t, scoreSamples(nil))
}
