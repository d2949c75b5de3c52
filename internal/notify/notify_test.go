package notify

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/handiism/tube-clipper/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// slowNotifier blocks every Notify until release is closed.
type slowNotifier struct {
	mu      sync.Mutex
	got     []string
	started chan struct{}
	release chan struct{}
	beeps   chan struct{}
}

func newSlowNotifier() *slowNotifier {
	return &slowNotifier{
		started: make(chan struct{}, 100),
		release: make(chan struct{}),
		beeps:   make(chan struct{}, 10),
	}
}

func (s *slowNotifier) Notify(title, message string) error {
	s.started <- struct{}{}
	<-s.release
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, title)
	return nil
}

func (s *slowNotifier) Beep() error {
	s.beeps <- struct{}{}
	return nil
}

func (s *slowNotifier) titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.got...)
}

func TestFromSettings(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		async   bool
	}{
		{"disabled", false, false},
		{"enabled", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.DesktopNotifications = tt.enabled

			n := FromSettings(settings, testLogger())
			a, isAsync := n.(*Async)
			if isAsync != tt.async {
				t.Fatalf("FromSettings() = %T, async = %v, want %v", n, isAsync, tt.async)
			}
			if isAsync {
				if _, ok := a.next.(*Desktop); !ok {
					t.Errorf("wrapped notifier = %T, want *Desktop", a.next)
				}
				a.Close()
			}
		})
	}
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	if err := n.Notify("title", "message"); err != nil {
		t.Errorf("Nop.Notify() = %v, want nil", err)
	}
	if _, ok := n.(Beeper); ok {
		t.Error("Nop should not beep")
	}
}

func TestAsync_DoesNotBlock(t *testing.T) {
	slow := newSlowNotifier()
	a := NewAsync(slow, testLogger())

	returned := make(chan error, 1)
	go func() { returned <- a.Notify("first", "Downloaded A T") }()

	select {
	case err := <-returned:
		if err != nil {
			t.Fatalf("Notify() = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a slow notifier")
	}

	close(slow.release)
	a.Close()

	if got := slow.titles(); len(got) != 1 || got[0] != "first" {
		t.Errorf("delivered = %v, want [first]", got)
	}
}

func TestAsync_QueueFull(t *testing.T) {
	slow := newSlowNotifier()
	a := NewAsync(slow, testLogger())

	if err := a.Notify("0", ""); err != nil {
		t.Fatalf("Notify(0) = %v", err)
	}
	<-slow.started

	for i := 0; i < queueSize; i++ {
		if err := a.Notify("queued", ""); err != nil {
			t.Fatalf("Notify #%d = %v, want nil", i, err)
		}
	}
	if err := a.Notify("overflow", ""); err != ErrQueueFull {
		t.Errorf("Notify() on full queue = %v, want ErrQueueFull", err)
	}

	close(slow.release)
	a.Close()

	if got := len(slow.titles()); got != queueSize+1 {
		t.Errorf("delivered = %d, want %d", got, queueSize+1)
	}
	if err := a.Notify("late", ""); err != nil {
		t.Errorf("Notify after Close = %v, want nil", err)
	}
}

func TestAsync_Beep(t *testing.T) {
	slow := newSlowNotifier()
	a := NewAsync(slow, testLogger())
	defer func() {
		close(slow.release)
		a.Close()
	}()

	if err := a.Beep(); err != nil {
		t.Fatalf("Beep() = %v", err)
	}
	select {
	case <-slow.beeps:
	case <-time.After(time.Second):
		t.Error("Beep was not forwarded")
	}

	quiet := NewAsync(Nop{}, testLogger())
	defer quiet.Close()
	if err := quiet.Beep(); err != nil {
		t.Errorf("Beep() without a beeper = %v, want nil", err)
	}
}

func TestClose(t *testing.T) {
	slow := newSlowNotifier()
	a := NewAsync(slow, testLogger())
	a.Notify("pending", "")
	close(slow.release)

	Close(a)
	if got := slow.titles(); len(got) != 1 {
		t.Errorf("delivered after Close = %v, want [pending]", got)
	}

	// Notifiers without a queue are left alone.
	Close(Nop{})
}
