package notify

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"

	"pomodoro/internal/core/pomodoro"
)

// NotificationSender is the part of fyne.App used to post notifications.
type NotificationSender interface {
	SendNotification(*fyne.Notification)
}

// Desktop posts a system notification naming the phase that just began.
type Desktop struct {
	sender NotificationSender
	title  string
}

// NewDesktop creates a desktop notifier with the given notification title.
func NewDesktop(sender NotificationSender, title string) *Desktop {
	return &Desktop{sender: sender, title: title}
}

// Notify sends the notification.
func (desktop *Desktop) Notify(_ context.Context, transition pomodoro.Transition) {
	if desktop.sender == nil {
		return
	}
	desktop.sender.SendNotification(fyne.NewNotification(desktop.title, Message(transition)))
}

// Message describes a transition for humans.
func Message(transition pomodoro.Transition) string {
	switch transition.To {
	case pomodoro.PhaseOnBreak:
		return fmt.Sprintf("%s done. Time for a break.", transition.From)
	case pomodoro.PhaseFocusing:
		return "Break is over. Back to focusing."
	default:
		return fmt.Sprintf("Now %s.", transition.To)
	}
}
