package pomodoro

import "fmt"

// MinutesToDuration formats whole minutes as mm:ss.
func MinutesToDuration(minutes int) string {
	return SecondsToDuration(minutes * 60)
}

// SecondsToDuration formats seconds as mm:ss. Negative input renders as 00:00.
func SecondsToDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Progress returns the elapsed share of the current phase as a percentage.
func Progress(state State) float64 {
	if state.Session == nil {
		return 0
	}
	total := state.PhaseMinutes(state.Session.Label) * 60
	if total <= 0 {
		return 100
	}
	elapsed := total - state.Session.TimeRemaining
	progress := float64(elapsed) / float64(total) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// Title renders the session heading, e.g. "Focusing for 25:00 minutes".
func Title(state State) string {
	if state.Session == nil {
		return ""
	}
	minutes := state.PhaseMinutes(state.Session.Label)
	return fmt.Sprintf("%s for %s minutes", state.Session.Label, MinutesToDuration(minutes))
}

// Subtitle renders the remaining time line.
func Subtitle(state State) string {
	if state.Session == nil {
		return "Let's get to work. Start the timer!"
	}
	return SecondsToDuration(state.Session.TimeRemaining) + " remaining"
}

// Status is the one-line summary used outside the main window.
func Status(state State) string {
	if state.Session == nil {
		return "Idle"
	}
	status := fmt.Sprintf("%s %s", state.Session.Label, SecondsToDuration(state.Session.TimeRemaining))
	if !state.Running {
		status += " (paused)"
	}
	return status
}
