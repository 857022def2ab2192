package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoundsClamp(t *testing.T) {
	bounds := Bounds{Min: 6, Max: 59}

	assert.Equal(t, 6, bounds.Clamp(1))
	assert.Equal(t, 25, bounds.Clamp(25))
	assert.Equal(t, 59, bounds.Clamp(90))
	assert.True(t, bounds.Contains(6))
	assert.True(t, bounds.Contains(59))
	assert.False(t, bounds.Contains(60))
}

func TestTimerConfigNormalized(t *testing.T) {
	config := TimerConfig{FocusMinutes: 120, BreakMinutes: 0}.Normalized()

	assert.Equal(t, DefaultDurationBounds(), config.Bounds)
	assert.Equal(t, 59, config.FocusMinutes)
	assert.Equal(t, 2, config.BreakMinutes)
	assert.Equal(t, time.Second, config.TickInterval)
}

func TestDefaultTimerConfigIsNormal(t *testing.T) {
	config := DefaultTimerConfig()
	assert.Equal(t, config, config.Normalized())
}
