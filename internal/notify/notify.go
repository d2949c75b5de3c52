// Package notify sends desktop notifications for recorded videos.
package notify

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/handiism/tube-clipper/internal/config"
)

// ErrQueueFull is returned by Async.Notify when too many notifications are
// still waiting to be shown.
var ErrQueueFull = errors.New("notification queue full")

const queueSize = 8

// Notifier delivers a short message to the user.
type Notifier interface {
	Notify(title, message string) error
}

// Beeper plays an alert sound.
type Beeper interface {
	Beep() error
}

// Desktop shows notifications through the operating system.
type Desktop struct {
	logger *slog.Logger
}

// NewDesktop creates a Desktop notifier.
func NewDesktop(logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Desktop{logger: logger}
}

// Notify shows a desktop notification. Failures are logged and returned.
func (d *Desktop) Notify(title, message string) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		d.logger.Warn("desktop notification failed", "title", title, "error", err)
		return err
	}
	return nil
}

// Beep plays the system alert sound.
func (d *Desktop) Beep() error {
	if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		d.logger.Warn("system beep failed", "error", err)
		return err
	}
	return nil
}

// Nop discards notifications.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(title, message string) error { return nil }

type note struct {
	title   string
	message string
}

// Async hands notifications to a background goroutine, so Notify returns
// without waiting for the notification daemon.
//
// Example:
//
//	n := notify.NewAsync(notify.NewDesktop(logger), logger)
//	defer n.Close()
//	n.Notify("Title", "Downloaded Author Title")
type Async struct {
	next   Notifier
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	queue  chan note
	done   chan struct{}
}

// NewAsync starts delivering notifications to next in the background.
func NewAsync(next Notifier, logger *slog.Logger) *Async {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Async{
		next:   next,
		logger: logger,
		queue:  make(chan note, queueSize),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Async) run() {
	defer close(a.done)
	for n := range a.queue {
		if err := a.next.Notify(n.title, n.message); err != nil {
			a.logger.Debug("notification not delivered", "title", n.title, "error", err)
		}
	}
}

// Notify queues a notification. It never blocks; when the queue is full
// the notification is dropped and ErrQueueFull returned.
func (a *Async) Notify(title, message string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}

	select {
	case a.queue <- note{title: title, message: message}:
		return nil
	default:
		a.logger.Warn("notification dropped", "title", title, "error", ErrQueueFull)
		return ErrQueueFull
	}
}

// Beep plays the alert sound of the wrapped notifier in the background.
// It does nothing when the wrapped notifier cannot beep.
func (a *Async) Beep() error {
	if b, ok := a.next.(Beeper); ok {
		go b.Beep()
	}
	return nil
}

// Close stops accepting notifications and waits for queued ones to be shown.
func (a *Async) Close() error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	<-a.done
	return nil
}

// Close waits for the pending notifications of n, if it queues any.
func Close(n Notifier) {
	if c, ok := n.(io.Closer); ok {
		_ = c.Close()
	}
}

// FromSettings returns an Async desktop notifier when desktop notifications
// are enabled and Nop otherwise.
func FromSettings(settings *config.Settings, logger *slog.Logger) Notifier {
	if settings.DesktopNotifications {
		return NewAsync(NewDesktop(logger), logger)
	}
	return Nop{}
}
