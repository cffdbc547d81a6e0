package v1

import (
	"context"
	"sync"

	pkgzerolog "github.com/duynhne/pkg/logger/zerolog"
)

// Notification is a user-facing message about the outcome of an operation.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Destructive bool   `json:"destructive,omitempty"`
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the request logger.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n Notification) {
	logger := pkgzerolog.FromContext(ctx)
	if n.Destructive {
		logger.Warn().Str("title", n.Title).Str("description", n.Description).Msg("Notification")
		return
	}
	logger.Info().Str("title", n.Title).Str("description", n.Description).Msg("Notification")
}

// Inbox keeps the most recent notifications and forwards each one to next.
type Inbox struct {
	next Notifier
	size int

	mu    sync.Mutex
	items []Notification
}

// NewInbox keeps up to size notifications. A nil next drops forwarding.
func NewInbox(next Notifier, size int) *Inbox {
	if size <= 0 {
		size = 20
	}
	return &Inbox{next: next, size: size}
}

func (in *Inbox) Notify(ctx context.Context, n Notification) {
	in.mu.Lock()
	in.items = append(in.items, n)
	if len(in.items) > in.size {
		in.items = in.items[len(in.items)-in.size:]
	}
	in.mu.Unlock()

	if in.next != nil {
		in.next.Notify(ctx, n)
	}
}

// Recent returns the kept notifications, oldest first.
func (in *Inbox) Recent() []Notification {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := make([]Notification, len(in.items))
	copy(out, in.items)
	return out
}

func notifyOK(ctx context.Context, n Notifier, title, description string) {
	n.Notify(ctx, Notification{Title: title, Description: description})
}

func notifyFail(ctx context.Context, n Notifier, title, description string) {
	n.Notify(ctx, Notification{Title: title, Description: description, Destructive: true})
}
