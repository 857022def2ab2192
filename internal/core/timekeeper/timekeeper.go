package timekeeper

import (
	"context"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
)

// Notifier is told about phase swaps. Calls are fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, transition pomodoro.Transition)
}

// TimeKeeper owns the pomodoro state and drives it with a one-second interval
// that only runs while the timer is running.
type TimeKeeper struct {
	// control serializes user commands so the interval matches the state.
	control sync.Mutex

	mu       sync.Mutex
	state    pomodoro.State
	notifier Notifier
	events   []chan Event
	closed   bool

	interval *Interval
	now      func() time.Time
}

// New creates an idle TimeKeeper with the provided configuration.
func New(config model.TimerConfig) *TimeKeeper {
	config = config.Normalized()
	keeper := &TimeKeeper{
		state: pomodoro.NewState(config),
		now:   time.Now,
	}
	keeper.interval = NewInterval(config.TickInterval, keeper.tick)
	return keeper
}

// SetNotifier injects the phase-change notifier.
func (keeper *TimeKeeper) SetNotifier(notifier Notifier) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.notifier = notifier
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		close(ch)
	} else {
		keeper.events = append(keeper.events, ch)
	}
	keeper.mu.Unlock()
	return ch
}

// Snapshot returns a copy of the current state.
func (keeper *TimeKeeper) Snapshot() pomodoro.State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state.Clone()
}

// PlayPause starts, pauses or resumes the countdown.
func (keeper *TimeKeeper) PlayPause() {
	keeper.control.Lock()
	defer keeper.control.Unlock()

	state, ok := keeper.dispatch(pomodoro.Action{Type: pomodoro.ActionTogglePlay}, EventStateChange)
	if !ok {
		return
	}
	keeper.syncInterval(state)
}

// Stop ends the current session and returns to idle.
func (keeper *TimeKeeper) Stop() {
	keeper.control.Lock()
	defer keeper.control.Unlock()

	state, ok := keeper.dispatch(pomodoro.Action{Type: pomodoro.ActionStop}, EventStateChange)
	if !ok {
		return
	}
	keeper.syncInterval(state)
}

// Adjust changes a duration by one minute. It is ignored while a session exists.
func (keeper *TimeKeeper) Adjust(dimension pomodoro.Dimension, direction pomodoro.Direction) {
	keeper.control.Lock()
	defer keeper.control.Unlock()

	keeper.dispatch(pomodoro.Action{
		Type:      pomodoro.ActionAdjust,
		Dimension: dimension,
		Direction: direction,
	}, EventStateChange)
}

// Close stops the interval and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.control.Lock()
	defer keeper.control.Unlock()

	keeper.interval.Stop()

	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) syncInterval(state pomodoro.State) {
	if state.Running {
		keeper.interval.Start()
		return
	}
	keeper.interval.Stop()
}

// dispatch reduces action under the state lock and publishes the result.
func (keeper *TimeKeeper) dispatch(action pomodoro.Action, eventType EventType) (pomodoro.State, bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return keeper.state.Clone(), false
	}

	result := pomodoro.Reduce(keeper.state, action)
	keeper.state = result.State
	now := keeper.now()

	if result.Transition != nil {
		keeper.notifyLocked(*result.Transition)
		keeper.emitLocked(Event{
			Type:       EventPhaseChange,
			State:      keeper.state.Clone(),
			Transition: result.Transition,
			At:         now,
		})
		return keeper.state.Clone(), true
	}

	keeper.emitLocked(Event{
		Type:  eventType,
		State: keeper.state.Clone(),
		At:    now,
	})
	return keeper.state.Clone(), true
}

func (keeper *TimeKeeper) tick(time.Time) {
	keeper.mu.Lock()
	running := keeper.state.Running
	keeper.mu.Unlock()
	if !running {
		return
	}
	keeper.dispatch(pomodoro.Action{Type: pomodoro.ActionTick}, EventTick)
}

func (keeper *TimeKeeper) notifyLocked(transition pomodoro.Transition) {
	if keeper.notifier == nil {
		return
	}
	go keeper.notifier.Notify(context.Background(), transition)
}

// emitLocked never blocks. A full observer drops its oldest event so the
// newest state always arrives.
func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}
