package preferences

import "pomodoro/internal/core/model"

// Settings defines startup preferences read from the settings file.
type Settings struct {
	FocusMinutes int
	BreakMinutes int

	DesktopNotifications bool
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:         25,
		BreakMinutes:         5,
		DesktopNotifications: true,
	}
}

// TimerConfig converts settings to a TimerConfig, clamping durations into
// the adjustable range. The tick period is always one second.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		FocusMinutes: settings.FocusMinutes,
		BreakMinutes: settings.BreakMinutes,
		Bounds:       model.DefaultDurationBounds(),
	}.Normalized()
}
