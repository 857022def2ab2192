package timer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/pomodoro"
)

// Hook names identify the controls for tests and automation.
const (
	HookDurationFocus   = "duration-focus"
	HookDecreaseFocus   = "decrease-focus"
	HookIncreaseFocus   = "increase-focus"
	HookDurationBreak   = "duration-break"
	HookDecreaseBreak   = "decrease-break"
	HookIncreaseBreak   = "increase-break"
	HookPlayPause       = "play-pause"
	HookStop            = "stop"
	HookSessionTitle    = "session-title"
	HookSessionSubTitle = "session-sub-title"
	HookProgress        = "progress"
)

// Controller receives the commands issued by the view.
type Controller interface {
	PlayPause()
	Stop()
	Adjust(dimension pomodoro.Dimension, direction pomodoro.Direction)
}

// View is the timer window content.
type View struct {
	controller Controller
	state      pomodoro.State

	focusLabel    *widget.Label
	decreaseFocus *widget.Button
	increaseFocus *widget.Button
	breakLabel    *widget.Label
	decreaseBreak *widget.Button
	increaseBreak *widget.Button
	playPause     *widget.Button
	stop          *widget.Button
	title         *widget.Label
	subtitle      *widget.Label
	progress      *widget.ProgressBar
	session       *fyne.Container

	content fyne.CanvasObject
	hooks   map[string]fyne.CanvasObject
}

// New builds the view and renders initial.
func New(controller Controller, initial pomodoro.State) *View {
	view := &View{controller: controller}

	view.focusLabel = widget.NewLabel("")
	view.decreaseFocus = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		view.adjust(pomodoro.DimensionFocus, pomodoro.DirectionDecrease)
	})
	view.increaseFocus = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		view.adjust(pomodoro.DimensionFocus, pomodoro.DirectionIncrease)
	})

	view.breakLabel = widget.NewLabel("")
	view.decreaseBreak = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		view.adjust(pomodoro.DimensionBreak, pomodoro.DirectionDecrease)
	})
	view.increaseBreak = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		view.adjust(pomodoro.DimensionBreak, pomodoro.DirectionIncrease)
	})

	view.playPause = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		view.controller.PlayPause()
	})
	view.playPause.Importance = widget.HighImportance

	view.stop = widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		if view.state.Session != nil {
			view.controller.Stop()
		}
	})

	view.title = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	view.subtitle = widget.NewLabel("")
	view.progress = widget.NewProgressBar()
	view.progress.Min = 0
	view.progress.Max = 100

	durations := container.NewGridWithColumns(2,
		container.NewHBox(view.focusLabel, layout.NewSpacer(), view.decreaseFocus, view.increaseFocus),
		container.NewHBox(view.breakLabel, layout.NewSpacer(), view.decreaseBreak, view.increaseBreak),
	)
	controls := container.NewHBox(view.playPause, view.stop)
	view.session = container.NewVBox(view.title, view.subtitle, view.progress)

	view.content = container.NewVBox(durations, controls, view.session)
	view.hooks = map[string]fyne.CanvasObject{
		HookDurationFocus:   view.focusLabel,
		HookDecreaseFocus:   view.decreaseFocus,
		HookIncreaseFocus:   view.increaseFocus,
		HookDurationBreak:   view.breakLabel,
		HookDecreaseBreak:   view.decreaseBreak,
		HookIncreaseBreak:   view.increaseBreak,
		HookPlayPause:       view.playPause,
		HookStop:            view.stop,
		HookSessionTitle:    view.title,
		HookSessionSubTitle: view.subtitle,
		HookProgress:        view.progress,
	}

	view.Render(initial)
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Hook returns the control registered under name, or nil.
func (view *View) Hook(name string) fyne.CanvasObject {
	return view.hooks[name]
}

// Render updates every control from state. Call it on the fyne thread.
func (view *View) Render(state pomodoro.State) {
	view.state = state.Clone()

	view.focusLabel.SetText("Focus Duration: " + pomodoro.MinutesToDuration(state.FocusMinutes))
	view.breakLabel.SetText("Break Duration: " + pomodoro.MinutesToDuration(state.BreakMinutes))

	if state.Running {
		view.playPause.SetIcon(theme.MediaPauseIcon())
	} else {
		view.playPause.SetIcon(theme.MediaPlayIcon())
	}

	idle := state.Session == nil
	setEnabled(view.decreaseFocus, idle)
	setEnabled(view.increaseFocus, idle)
	setEnabled(view.decreaseBreak, idle)
	setEnabled(view.increaseBreak, idle)
	setEnabled(view.stop, !idle)

	if idle {
		view.session.Hide()
		return
	}
	view.title.SetText(pomodoro.Title(state))
	view.subtitle.SetText(pomodoro.Subtitle(state))
	view.progress.SetValue(pomodoro.Progress(state))
	view.session.Show()
}

func (view *View) adjust(dimension pomodoro.Dimension, direction pomodoro.Direction) {
	if view.state.Session != nil {
		return
	}
	view.controller.Adjust(dimension, direction)
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
