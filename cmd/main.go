package main

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timer"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

const appName = "Pomodoro"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("%s is already running", appName)
			return
		}
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings := loadSettings()

	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	keeper := timekeeper.New(settings.TimerConfig())
	defer keeper.Close()

	notifiers := notify.Multi{notify.NewSoundPlayer(notify.PhaseChangeSoundURL, nil)}
	if settings.DesktopNotifications {
		notifiers = append(notifiers, notify.NewDesktop(fyneApp, appName))
	}
	keeper.SetNotifier(notifiers)

	window := fyneApp.NewWindow(appName)
	view := timer.New(keeper, keeper.Snapshot())
	window.SetContent(view.Content())
	window.Resize(fyne.NewSize(560, 260))

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, appName, tray.Icons{
			Active: resources.MustIcon(resources.IconActive),
			Paused: resources.MustIcon(resources.IconPaused),
		}, tray.Callbacks{
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnPlayPause: keeper.PlayPause,
			OnStop:      keeper.Stop,
			OnQuit:      fyneApp.Quit,
		})
		window.SetCloseIntercept(func() {
			window.Hide()
		})
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			if event.Type == timekeeper.EventPhaseChange && event.Transition != nil {
				log.Printf("phase change: %s -> %s", event.Transition.From, event.Transition.To)
			}
			state := event.State
			fyne.Do(func() {
				view.Render(state)
				if trayManager != nil {
					trayManager.Render(state)
				}
			})
		}
	}()

	window.ShowAndRun()
}

func loadSettings() preferences.Settings {
	path, err := storage.SettingsPath(platform.ConfigDir, appName)
	if err != nil {
		log.Printf("settings path: %v", err)
		return preferences.DefaultSettings()
	}
	settings, err := storage.LoadSettings(path)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	return settings
}
