package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/session"
)

func renderSessionWindow(s *session.Session, left float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(left, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 180), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	engine := s.Engine()
	imgui.Text(fmt.Sprintf("Phase: %s", s.Phase()))
	imgui.Text(fmt.Sprintf("Game: %d", s.Games()))
	imgui.Text(fmt.Sprintf("Score: %d", engine.Score()))
	imgui.Text(fmt.Sprintf("Lines: %d", engine.Lines()))
	imgui.Text(fmt.Sprintf("Pieces: %d", engine.Pieces()))
	imgui.Text(fmt.Sprintf("Filled cells: %d", engine.Board().Filled()))

	imgui.Separator()
	piece := engine.Piece()
	imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d), ghost y=%d", piece.Color, piece.X, piece.Y, engine.GhostY()))
	if imgui.TreeNodeStr("Shape") {
		for _, row := range shapeRows(piece.Shape.String()) {
			imgui.Text(row)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderTallyWindow(tally *session.Tally, left float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(left, 470), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("Tally", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	lowest, mean, highest := tally.ScoreRange()
	imgui.Text(fmt.Sprintf("Games: %d", tally.Games))
	imgui.Text(fmt.Sprintf("Locks: %d", tally.Locks))
	imgui.Text(fmt.Sprintf("Lines: %d", tally.Lines))
	imgui.Text(fmt.Sprintf("Score min/avg/max: %d / %d / %d", lowest, mean, highest))

	imgui.Separator()
	for _, bucket := range tally.Histogram() {
		imgui.BulletText(fmt.Sprintf("%d lines: %d locks", bucket.Lines, bucket.Locks))
	}

	if scores := scoreSamples(tally.Scores); len(scores) > 0 {
		if implot.BeginPlotV("Final Scores", imgui.NewVec2(-1, -1), 0) {
			implot.SetupAxesV("Game", "Score", 0, implot.AxisFlagsAutoFit)
			implot.PlotLineFloatPtrInt("score", &scores[0], int32(len(scores)))
			implot.EndPlot()
		}
	}

	imgui.End()
}

func scoreSamples(scores []int) []float32 {
	out := make([]float32, len(scores))
	for i, score := range scores {
		out[i] = float32(score)
	}
	return out
}

// shapeRows splits Shape.String output into its rows.
func shapeRows(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
