package timekeeper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
)

type recordingNotifier struct {
	transitions chan pomodoro.Transition
}

func (notifier *recordingNotifier) Notify(_ context.Context, transition pomodoro.Transition) {
	notifier.transitions <- transition
}

// newTestKeeper returns a keeper whose interval never fires on its own;
// tests drive it through tick.
func newTestKeeper(t *testing.T) *TimeKeeper {
	t.Helper()
	config := model.DefaultTimerConfig()
	config.TickInterval = time.Hour
	keeper := New(config)
	t.Cleanup(keeper.Close)
	return keeper
}

func TestPlayPauseDrivesInterval(t *testing.T) {
	keeper := newTestKeeper(t)

	keeper.PlayPause()
	state := keeper.Snapshot()
	require.NotNil(t, state.Session)
	assert.True(t, state.Running)
	assert.Equal(t, pomodoro.Session{Label: pomodoro.PhaseFocusing, TimeRemaining: 1500}, *state.Session)
	assert.True(t, keeper.interval.Running())

	keeper.PlayPause()
	assert.False(t, keeper.interval.Running())
	assert.True(t, keeper.Snapshot().Paused())

	keeper.PlayPause()
	assert.True(t, keeper.interval.Running())

	keeper.Stop()
	assert.False(t, keeper.interval.Running())
	assert.True(t, keeper.Snapshot().Idle())
}

func TestTickCountsDownOnlyWhileRunning(t *testing.T) {
	keeper := newTestKeeper(t)

	keeper.tick(time.Now())
	assert.True(t, keeper.Snapshot().Idle())

	keeper.PlayPause()
	keeper.tick(time.Now())
	keeper.tick(time.Now())
	assert.Equal(t, 1498, keeper.Snapshot().Session.TimeRemaining)

	keeper.PlayPause()
	keeper.tick(time.Now())
	assert.Equal(t, 1498, keeper.Snapshot().Session.TimeRemaining)
}

func TestPhaseChangeNotifiesAndPublishes(t *testing.T) {
	keeper := newTestKeeper(t)
	notifier := &recordingNotifier{transitions: make(chan pomodoro.Transition, 1)}
	keeper.SetNotifier(notifier)

	keeper.PlayPause()
	keeper.mu.Lock()
	keeper.state.Session.TimeRemaining = 0
	keeper.mu.Unlock()

	events := keeper.Subscribe(4)
	keeper.tick(time.Now())

	select {
	case transition := <-notifier.transitions:
		assert.Equal(t, pomodoro.Transition{From: pomodoro.PhaseFocusing, To: pomodoro.PhaseOnBreak}, transition)
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}

	event := <-events
	assert.Equal(t, EventPhaseChange, event.Type)
	require.NotNil(t, event.Transition)
	assert.Equal(t, pomodoro.Session{Label: pomodoro.PhaseOnBreak, TimeRemaining: 300}, *event.State.Session)
}

func TestAdjustIgnoredDuringSession(t *testing.T) {
	keeper := newTestKeeper(t)

	keeper.Adjust(pomodoro.DimensionFocus, pomodoro.DirectionIncrease)
	assert.Equal(t, 26, keeper.Snapshot().FocusMinutes)

	keeper.PlayPause()
	keeper.Adjust(pomodoro.DimensionFocus, pomodoro.DirectionIncrease)
	keeper.Adjust(pomodoro.DimensionBreak, pomodoro.DirectionDecrease)
	state := keeper.Snapshot()
	assert.Equal(t, 26, state.FocusMinutes)
	assert.Equal(t, 5, state.BreakMinutes)
	assert.Equal(t, 26*60, state.Session.TimeRemaining)
}

func TestSubscribeReceivesStateChanges(t *testing.T) {
	keeper := newTestKeeper(t)
	events := keeper.Subscribe(2)

	keeper.PlayPause()
	event := <-events
	assert.Equal(t, EventStateChange, event.Type)
	assert.True(t, event.State.Running)

	keeper.tick(time.Now())
	event = <-events
	assert.Equal(t, EventTick, event.Type)
	assert.Equal(t, 1499, event.State.Session.TimeRemaining)
}

func TestFullObserverKeepsLatestEvent(t *testing.T) {
	keeper := newTestKeeper(t)
	events := keeper.Subscribe(1)

	keeper.PlayPause()
	keeper.tick(time.Now())
	keeper.Stop()

	require.Len(t, events, 1)
	event := <-events
	assert.Equal(t, EventStateChange, event.Type)
	assert.True(t, event.State.Idle())
	assert.Equal(t, keeper.Snapshot(), event.State)
}

func TestSnapshotIsCopy(t *testing.T) {
	keeper := newTestKeeper(t)
	keeper.PlayPause()

	snapshot := keeper.Snapshot()
	snapshot.Session.TimeRemaining = 1

	assert.Equal(t, 1500, keeper.Snapshot().Session.TimeRemaining)
}

func TestCloseClosesObservers(t *testing.T) {
	keeper := newTestKeeper(t)
	events := keeper.Subscribe(1)
	keeper.PlayPause()
	<-events

	keeper.Close()
	keeper.Close()

	_, open := <-events
	assert.False(t, open)
	assert.False(t, keeper.interval.Running())

	late := keeper.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

func TestRealIntervalTicks(t *testing.T) {
	config := model.DefaultTimerConfig()
	config.TickInterval = 2 * time.Millisecond
	keeper := New(config)
	defer keeper.Close()

	keeper.PlayPause()
	assert.Eventually(t, func() bool {
		return keeper.Snapshot().Session.TimeRemaining <= 1497
	}, time.Second, time.Millisecond)

	keeper.PlayPause()
	paused := keeper.Snapshot().Session.TimeRemaining
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, paused, keeper.Snapshot().Session.TimeRemaining)
}
