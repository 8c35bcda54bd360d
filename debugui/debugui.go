// Package debugui renders Dear ImGui windows over a running session.
// Windows are plain render functions collected by an ImguiSystem, which runs
// them as the last system of every frame. The caller brackets Scheduler.Once
// with the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/session"
)

// ImguiItem holds a Dear ImGui render function run once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming keyboard input.
type ImguiInputState struct {
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes the input capture state and runs every item.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// CapturesKeyboard reports whether a window had keyboard focus last frame.
// Frontends skip turning key presses into commands while it does. A nil
// system never captures.
func (i *ImguiSystem) CapturesKeyboard() bool {
	return i != nil && i.InputState.WantCaptureKeyboard
}

func (i *ImguiSystem) Execute(frame *session.Frame) {
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		item.Render()
	}
}

// Install registers an ImguiSystem carrying the stock windows on scheduler.
// It must be called after every other system has been registered so the
// performance window lists them all. Windows open in a column starting at
// left pixels from the window edge.
func Install(scheduler *session.Scheduler, tally *session.Tally, left float32) *ImguiSystem {
	stats := NewPerformanceStatsComponent(120)
	timer := NewFrameTimer()
	system := &ImguiSystem{}

	system.Add(func() {
		renderSessionWindow(scheduler.Session(), left)
	})
	system.Add(func() {
		stats.Render(scheduler, timer.GetDeltaTime(), left)
	})
	if tally != nil {
		system.Add(func() {
			renderTallyWindow(tally, left)
		})
	}

	scheduler.Register(system)
	return system
}
