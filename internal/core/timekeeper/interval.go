package timekeeper

import (
	"sync"
	"time"
)

// Interval invokes a callback at a fixed period while started.
// Start and Stop are idempotent; a stopped Interval delivers no further calls.
type Interval struct {
	mu       sync.Mutex
	period   time.Duration
	callback func(time.Time)
	stopCh   chan struct{}
	done     chan struct{}
}

// NewInterval creates a stopped interval.
func NewInterval(period time.Duration, callback func(time.Time)) *Interval {
	if period <= 0 {
		period = time.Second
	}
	return &Interval{period: period, callback: callback}
}

// Start launches the ticking loop if it is not already running.
func (interval *Interval) Start() {
	interval.mu.Lock()
	defer interval.mu.Unlock()
	if interval.stopCh != nil {
		return
	}
	interval.stopCh = make(chan struct{})
	interval.done = make(chan struct{})
	go interval.run(interval.stopCh, interval.done)
}

// Stop halts the loop and waits for an in-flight callback to return.
// It must not be called from inside the callback.
func (interval *Interval) Stop() {
	interval.mu.Lock()
	if interval.stopCh == nil {
		interval.mu.Unlock()
		return
	}
	close(interval.stopCh)
	done := interval.done
	interval.stopCh = nil
	interval.done = nil
	interval.mu.Unlock()

	<-done
}

// Running reports whether the loop is active.
func (interval *Interval) Running() bool {
	interval.mu.Lock()
	defer interval.mu.Unlock()
	return interval.stopCh != nil
}

func (interval *Interval) run(stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval.period)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			interval.callback(tickTime)
		}
	}
}
