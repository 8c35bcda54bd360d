package session

// Frame is handed to every system during one Scheduler.Once call.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *Session

	// Events holds the session events recorded so far in this frame, in order.
	// Systems registered later see the events of systems registered earlier.
	Events []Event
}

func newFrame(dt float64, session *Session, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  commands,
		Session:   session,
	}
}

func (f *Frame) collect() {
	f.Events = append(f.Events, f.Session.Drain()...)
}
