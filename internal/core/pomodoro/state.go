package pomodoro

import "pomodoro/internal/core/model"

// Phase labels the half of the cycle a session is in.
type Phase string

const (
	PhaseFocusing Phase = "Focusing"
	PhaseOnBreak  Phase = "On Break"
)

// Session is the countdown for the current phase.
type Session struct {
	Label         Phase
	TimeRemaining int // seconds
}

// State is the whole application state. A nil Session means idle.
type State struct {
	Running      bool
	Session      *Session
	FocusMinutes int
	BreakMinutes int
	Bounds       model.DurationBounds
}

// NewState builds an idle state from the timer configuration.
func NewState(config model.TimerConfig) State {
	config = config.Normalized()
	return State{
		FocusMinutes: config.FocusMinutes,
		BreakMinutes: config.BreakMinutes,
		Bounds:       config.Bounds,
	}
}

// Idle reports whether no session exists.
func (state State) Idle() bool {
	return state.Session == nil
}

// Paused reports whether a session exists but the countdown is halted.
func (state State) Paused() bool {
	return state.Session != nil && !state.Running
}

// PhaseMinutes returns the configured length of phase.
func (state State) PhaseMinutes(phase Phase) int {
	if phase == PhaseFocusing {
		return state.FocusMinutes
	}
	return state.BreakMinutes
}

// Clone returns a copy that shares no Session with state.
func (state State) Clone() State {
	if state.Session != nil {
		session := *state.Session
		state.Session = &session
	}
	return state
}
