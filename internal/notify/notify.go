package notify

import (
	"context"

	"pomodoro/internal/core/pomodoro"
)

// Notifier reacts to a phase swap. Implementations report their own failures.
type Notifier interface {
	Notify(ctx context.Context, transition pomodoro.Transition)
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, transition pomodoro.Transition)

// Notify calls fn.
func (fn Func) Notify(ctx context.Context, transition pomodoro.Transition) {
	fn(ctx, transition)
}

// Multi fans a transition out to several notifiers concurrently.
type Multi []Notifier

// Notify forwards to every non-nil notifier without waiting for them.
func (multi Multi) Notify(ctx context.Context, transition pomodoro.Transition) {
	for _, notifier := range multi {
		if notifier == nil {
			continue
		}
		go notifier.Notify(ctx, transition)
	}
}
