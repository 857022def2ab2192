package model

import "time"

// Bounds is an inclusive range of whole minutes.
type Bounds struct {
	Min int
	Max int
}

// Contains reports whether minutes lies inside the range.
func (bounds Bounds) Contains(minutes int) bool {
	return minutes >= bounds.Min && minutes <= bounds.Max
}

// Clamp pulls minutes into the range.
func (bounds Bounds) Clamp(minutes int) int {
	if minutes < bounds.Min {
		return bounds.Min
	}
	if minutes > bounds.Max {
		return bounds.Max
	}
	return minutes
}

// DurationBounds groups the adjustable ranges for both phases.
type DurationBounds struct {
	Focus Bounds
	Break Bounds
}

// DefaultDurationBounds returns the ranges the duration controls allow.
func DefaultDurationBounds() DurationBounds {
	return DurationBounds{
		Focus: Bounds{Min: 6, Max: 59},
		Break: Bounds{Min: 2, Max: 14},
	}
}

// TimerConfig contains runtime settings for the TimeKeeper.
type TimerConfig struct {
	FocusMinutes int
	BreakMinutes int
	Bounds       DurationBounds

	TickInterval time.Duration
}

// DefaultTimerConfig returns a 25/5 configuration ticking once per second.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		FocusMinutes: 25,
		BreakMinutes: 5,
		Bounds:       DefaultDurationBounds(),
		TickInterval: time.Second,
	}
}

// Normalized returns a copy with durations clamped and a usable tick interval.
func (config TimerConfig) Normalized() TimerConfig {
	if config.Bounds == (DurationBounds{}) {
		config.Bounds = DefaultDurationBounds()
	}
	config.FocusMinutes = config.Bounds.Focus.Clamp(config.FocusMinutes)
	config.BreakMinutes = config.Bounds.Break.Clamp(config.BreakMinutes)
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	return config
}
