package timekeeper

import (
	"time"

	"pomodoro/internal/core/pomodoro"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventPhaseChange EventType = "phase_change"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type       EventType
	State      pomodoro.State
	Transition *pomodoro.Transition
	At         time.Time
}
