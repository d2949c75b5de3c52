package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/tube-clipper/internal/monitor"
	"github.com/handiism/tube-clipper/internal/notify"
)

// Run starts the monitor loop and the TUI application together.
//
// It returns when the user quits, when the loop stops or when ctx is done.
// Each recorded video is also passed to notifier, which should not block
// (see notify.Async). A notifier that can beep is used for the test mode bell.
func Run(ctx context.Context, loop *monitor.Loop, notifier notify.Notifier) error {
	if notifier == nil {
		notifier = notify.Nop{}
	}

	m := NewModel(loop)
	m.bell = bellFor(notifier)
	p := tea.NewProgram(m, tea.WithAltScreen())

	loop.OnEvent(func(e monitor.Event) {
		if e.Kind == monitor.EventRecorded {
			_ = notifier.Notify(e.Notification.Title, e.Notification.Message)
		}
		p.Send(EventMsg{Event: e})
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer p.Quit()
		return loop.Run(gctx)
	})

	g.Go(func() error {
		defer loop.Quit()
		_, err := p.Run()
		return err
	})

	return g.Wait()
}
