package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"

	"pomodoro/internal/core/pomodoro"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow      func()
	OnPlayPause func()
	OnStop      func()
	OnQuit      func()
}

// Icons are the tray images for a counting and a halted timer.
type Icons struct {
	Active fyne.Resource
	Paused fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	title      string
	icons      Icons
	callbacks  Callbacks
	setTooltip func(string)

	statusItem *fyne.MenuItem
	playItem   *fyne.MenuItem
	stopItem   *fyne.MenuItem
	showItem   *fyne.MenuItem
	quitItem   *fyne.MenuItem

	running bool
}

// New creates a tray manager. A nil app keeps the menu off-screen.
func New(app desktop.App, title string, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:        app,
		title:      title,
		icons:      icons,
		callbacks:  callbacks,
		setTooltip: systray.SetTooltip,
	}

	manager.statusItem = fyne.NewMenuItem("Status: Idle", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	manager.playItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnPlayPause != nil {
			manager.callbacks.OnPlayPause()
		}
	})
	manager.stopItem = fyne.NewMenuItem("Stop", func() {
		if manager.callbacks.OnStop != nil {
			manager.callbacks.OnStop()
		}
	})
	manager.stopItem.Disabled = true
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	manager.refreshIcon()
	return manager
}

// Render mirrors the timer state into the menu, icon and tooltip.
func (manager *Manager) Render(state pomodoro.State) {
	status := pomodoro.Status(state)
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)

	switch {
	case state.Running:
		manager.playItem.Label = "Pause"
	case state.Paused():
		manager.playItem.Label = "Resume"
	default:
		manager.playItem.Label = "Start"
	}
	manager.stopItem.Disabled = state.Idle()

	iconChanged := manager.running != state.Running
	manager.running = state.Running

	manager.refreshMenu()
	if iconChanged {
		manager.refreshIcon()
	}
	if manager.app != nil && manager.setTooltip != nil {
		manager.setTooltip(fmt.Sprintf("%s: %s", manager.title, status))
	}
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(manager.title,
		manager.statusItem,
		manager.showItem,
		fyne.NewMenuItemSeparator(),
		manager.playItem,
		manager.stopItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Paused
	if manager.running {
		icon = manager.icons.Active
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}
