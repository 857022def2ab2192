package pomodoro

// ActionType tags what a reducer step does.
type ActionType int

const (
	ActionTick ActionType = iota
	ActionPhaseSwap
	ActionAdjust
	ActionTogglePlay
	ActionStop
)

func (actionType ActionType) String() string {
	switch actionType {
	case ActionTick:
		return "tick"
	case ActionPhaseSwap:
		return "phase_swap"
	case ActionAdjust:
		return "adjust"
	case ActionTogglePlay:
		return "toggle_play"
	case ActionStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Action is a single input to Reduce. Dimension and Direction are only read
// for ActionAdjust.
type Action struct {
	Type      ActionType
	Dimension Dimension
	Direction Direction
}

// Transition describes a phase swap produced by a reducer step.
type Transition struct {
	From Phase
	To   Phase
}

// Result is the outcome of a reducer step.
type Result struct {
	State      State
	Transition *Transition
}

// Reduce applies action to state. The input state is never modified.
func Reduce(state State, action Action) Result {
	state = state.Clone()

	switch action.Type {
	case ActionTick:
		if !state.Running || state.Session == nil {
			return Result{State: state}
		}
		if state.Session.TimeRemaining == 0 {
			return Reduce(state, Action{Type: ActionPhaseSwap})
		}
		next := NextTick(*state.Session)
		state.Session = &next
		return Result{State: state}

	case ActionPhaseSwap:
		if state.Session == nil {
			return Result{State: state}
		}
		from := state.Session.Label
		next := NextSession(*state.Session, state.FocusMinutes, state.BreakMinutes)
		state.Session = &next
		return Result{
			State:      state,
			Transition: &Transition{From: from, To: next.Label},
		}

	case ActionAdjust:
		if state.Session != nil {
			return Result{State: state}
		}
		return Result{State: Adjust(state, action.Dimension, action.Direction)}

	case ActionTogglePlay:
		return Result{State: TogglePlay(state)}

	case ActionStop:
		return Result{State: Stop(state)}
	}

	return Result{State: state}
}
