package timekeeper

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalStartStopIdempotent(t *testing.T) {
	var calls atomic.Int32
	interval := NewInterval(2*time.Millisecond, func(time.Time) {
		calls.Add(1)
	})

	assert.False(t, interval.Running())
	interval.Stop()

	interval.Start()
	interval.Start()
	assert.True(t, interval.Running())

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	interval.Stop()
	interval.Stop()
	assert.False(t, interval.Running())

	stopped := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load(), "no callbacks after Stop")
}

func TestIntervalRestart(t *testing.T) {
	var calls atomic.Int32
	interval := NewInterval(2*time.Millisecond, func(time.Time) {
		calls.Add(1)
	})

	interval.Start()
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
	interval.Stop()

	before := calls.Load()
	interval.Start()
	defer interval.Stop()
	assert.Eventually(t, func() bool { return calls.Load() > before }, time.Second, time.Millisecond)
}

func TestNewIntervalDefaultsPeriod(t *testing.T) {
	interval := NewInterval(0, func(time.Time) {})
	assert.Equal(t, time.Second, interval.period)
}
