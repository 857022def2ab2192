package pomodoro

// Dimension selects which duration an adjustment targets.
type Dimension string

const (
	DimensionFocus Dimension = "focus"
	DimensionBreak Dimension = "break"
)

// Direction selects the sign of an adjustment.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// NextTick counts the session down by one second, flooring at zero.
func NextTick(session Session) Session {
	session.TimeRemaining--
	if session.TimeRemaining < 0 {
		session.TimeRemaining = 0
	}
	return session
}

// NextSession starts the opposite phase at its full configured length.
func NextSession(current Session, focusMinutes, breakMinutes int) Session {
	if current.Label == PhaseFocusing {
		return Session{Label: PhaseOnBreak, TimeRemaining: breakMinutes * 60}
	}
	return Session{Label: PhaseFocusing, TimeRemaining: focusMinutes * 60}
}

// Adjust moves one duration by a minute, ignoring moves that leave its bounds.
// It does not look at the session; Reduce guards that.
func Adjust(state State, dimension Dimension, direction Direction) State {
	step := 1
	if direction == DirectionDecrease {
		step = -1
	} else if direction != DirectionIncrease {
		return state
	}

	switch dimension {
	case DimensionFocus:
		if next := state.FocusMinutes + step; state.Bounds.Focus.Contains(next) {
			state.FocusMinutes = next
		}
	case DimensionBreak:
		if next := state.BreakMinutes + step; state.Bounds.Break.Contains(next) {
			state.BreakMinutes = next
		}
	}
	return state
}

// TogglePlay flips the running flag, opening a focus session when starting
// from idle. A paused session resumes as it was.
func TogglePlay(state State) State {
	state = state.Clone()
	state.Running = !state.Running
	if state.Running && state.Session == nil {
		state.Session = &Session{
			Label:         PhaseFocusing,
			TimeRemaining: state.FocusMinutes * 60,
		}
	}
	return state
}

// Stop halts the countdown and discards the session.
func Stop(state State) State {
	state.Running = false
	state.Session = nil
	return state
}
