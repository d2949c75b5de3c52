package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/handiism/tube-clipper/internal/clipboard"
	"github.com/handiism/tube-clipper/internal/config"
	"github.com/handiism/tube-clipper/internal/history"
	"github.com/handiism/tube-clipper/internal/model"
	"github.com/handiism/tube-clipper/internal/youtube"
)

// State is the position of the loop in the processing pipeline.
type State string

const (
	StateIdle        State = "idle"
	StateDetected    State = "detected"
	StateResolving   State = "resolving"
	StateDownloading State = "downloading"
	StateRecorded    State = "recorded"
	StateStopped     State = "stopped"
)

const defaultInterval = 500 * time.Millisecond

// Fetcher resolves a video reference to its metadata.
type Fetcher interface {
	Fetch(ctx context.Context, ref model.VideoReference) (*model.VideoMetadata, error)
}

// Executor writes a resolved audio stream to disk.
type Executor interface {
	Execute(ctx context.Context, meta *model.VideoMetadata, destination, filename string, testMode bool, onProgress func(written, total int64)) error
}

// Level indicates the severity of an event message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// EventKind identifies what an Event reports.
type EventKind int

const (
	// EventStateChanged is sent on every state transition.
	EventStateChanged EventKind = iota

	// EventProgress is sent while an audio track is being written.
	EventProgress

	// EventRecorded is sent once per item added to the history.
	EventRecorded

	// EventDropped is sent when an item fails to resolve or download.
	EventDropped
)

// Notification is the user-facing message for a recorded item.
type Notification struct {
	Title   string
	Message string
}

// Event is delivered to the callbacks registered with OnEvent.
type Event struct {
	Kind    EventKind
	Level   Level
	State   State
	Message string

	// URL and ItemID identify the item being processed, if any.
	URL    string
	ItemID string

	// Entry and Notification are set for EventRecorded.
	Entry        model.HistoryEntry
	Notification Notification

	// Written and Total are set for EventProgress.
	Written int64
	Total   int64

	// Err is set for EventDropped.
	Err error
}

// Loop polls the clipboard and turns copied video URLs into audio files.
//
// All processing happens on the goroutine calling Run; the accessors and
// ToggleTestMode/Quit are safe to call from any goroutine.
type Loop struct {
	source   clipboard.Source
	fetcher  Fetcher
	executor Executor
	ledger   *history.Ledger
	logger   *slog.Logger

	interval         time.Duration
	directory        string
	policy           model.FileNamePolicy
	markFailedAsSeen bool

	testMode atomic.Bool
	handlers []func(Event)

	mu      sync.RWMutex
	state   State
	lastURL string

	quit     chan struct{}
	quitOnce sync.Once
}

// New creates a Loop in the Idle state.
//
// Test mode starts as settings.StartInTestMode. A nil ledger is replaced by
// an empty one and a nil logger by slog.Default().
func New(settings *config.Settings, source clipboard.Source, fetcher Fetcher, executor Executor, ledger *history.Ledger, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	if ledger == nil {
		ledger = history.NewLedger()
	}
	interval := settings.PollEvery()
	if interval <= 0 {
		interval = defaultInterval
	}

	l := &Loop{
		source:           source,
		fetcher:          fetcher,
		executor:         executor,
		ledger:           ledger,
		logger:           logger,
		interval:         interval,
		directory:        settings.DownloadDirectory,
		policy:           settings.ToFileNamePolicy(),
		markFailedAsSeen: settings.MarkFailedAsSeen,
		state:            StateIdle,
		quit:             make(chan struct{}),
	}
	l.testMode.Store(settings.StartInTestMode)
	return l
}

// OnEvent registers a callback for loop events. It must be called before Run.
// Callbacks run on the loop goroutine and should return quickly.
func (l *Loop) OnEvent(fn func(Event)) {
	l.handlers = append(l.handlers, fn)
}

// Run polls the clipboard until Quit is called or ctx is done. Cancelling
// ctx has the same effect as Quit.
//
// The first poll happens immediately, then one per interval. A poll that
// outlasts the interval delays the next one; ticks are never queued.
func (l *Loop) Run(ctx context.Context) error {
	if l.State() == StateStopped {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-l.quit:
			cancel()
		case <-ctx.Done():
			l.Quit()
		}
	}()

	l.logger.Info("clipboard monitor started",
		"interval", l.interval.String(),
		"directory", l.directory,
		"test_mode", l.TestMode(),
	)

	l.poll(ctx)

	t := time.NewTicker(l.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			l.stop()
			l.logger.Info("clipboard monitor stopped")
			return nil
		case <-t.C:
			l.poll(ctx)
		}
	}
}

// poll runs one clipboard check and, when a new video URL is found, the
// whole resolve and download pipeline for it.
func (l *Loop) poll(ctx context.Context) {
	if l.stopped() {
		return
	}

	snapshot := l.source.Read()
	if snapshot == "" {
		return
	}

	ref, ok := youtube.Classify(snapshot)
	if !ok || ref.URL == l.LastURL() {
		return
	}

	it := &item{ref: ref, id: "item_" + uuid.New().String()[:8]}
	logger := l.logger.With("item", it.id)

	l.setState(StateDetected, it)
	l.source.Clear()
	logger.Debug("video url detected", "url", ref.URL)

	l.setState(StateResolving, it)
	meta, err := l.fetcher.Fetch(ctx, ref)
	if l.abandoned(ctx) {
		return
	}
	if err != nil {
		l.drop(it, logger, err)
		return
	}

	testMode := l.testMode.Load()
	l.setState(StateDownloading, it)

	ext := model.DefaultExtension
	if meta.Stream != nil && meta.Stream.Extension() != "" {
		ext = meta.Stream.Extension()
	}
	filename := model.AudioFileName(meta.Author, meta.Title, ext, l.policy)

	err = l.executor.Execute(ctx, meta, l.directory, filename, testMode, func(written, total int64) {
		l.emit(Event{
			Kind:    EventProgress,
			Level:   LevelVerbose,
			State:   StateDownloading,
			URL:     ref.URL,
			ItemID:  it.id,
			Written: written,
			Total:   total,
		})
	})
	if l.abandoned(ctx) {
		return
	}
	if err != nil {
		l.drop(it, logger, err)
		return
	}

	entry := model.NewHistoryEntry(ref, meta)
	l.ledger.Append(entry)
	l.setLastURL(ref.URL)

	logger.Info("video recorded",
		"url", ref.URL,
		"author", meta.Author,
		"title", meta.Title,
		"file", filename,
		"test_mode", testMode,
	)

	l.setState(StateRecorded, it)
	notification := Notification{
		Title:   meta.Title,
		Message: fmt.Sprintf("Downloaded %s %s", meta.Author, meta.Title),
	}
	message := notification.Message
	if testMode {
		message += " (test mode)"
	}
	l.emit(Event{
		Kind:         EventRecorded,
		Level:        LevelSuccess,
		State:        StateRecorded,
		Message:      message,
		URL:          ref.URL,
		ItemID:       it.id,
		Entry:        entry,
		Notification: notification,
	})

	l.setState(StateIdle, nil)
}

// item is the video being processed by one poll.
type item struct {
	ref model.VideoReference
	id  string
}

// drop abandons the current item after a failure.
func (l *Loop) drop(it *item, logger *slog.Logger, err error) {
	ref := it.ref
	var resErr *model.ResolutionError
	stage := "download"
	if errors.As(err, &resErr) {
		stage = "resolve"
	}

	logger.Warn("video dropped", "url", ref.URL, "stage", stage, "error", err)

	if l.markFailedAsSeen {
		l.setLastURL(ref.URL)
	}

	l.emit(Event{
		Kind:    EventDropped,
		Level:   LevelError,
		State:   l.State(),
		Message: fmt.Sprintf("Dropped %s: %v", ref.URL, err),
		URL:     ref.URL,
		ItemID:  it.id,
		Err:     err,
	})

	l.setState(StateIdle, nil)
}

// ToggleTestMode flips test mode and returns the new value. The change
// applies from the next download onwards.
func (l *Loop) ToggleTestMode() bool {
	for {
		old := l.testMode.Load()
		if l.testMode.CompareAndSwap(old, !old) {
			l.logger.Info("test mode toggled", "test_mode", !old)
			return !old
		}
	}
}

// TestMode reports whether downloads are currently skipped.
func (l *Loop) TestMode() bool {
	return l.testMode.Load()
}

// Quit stops the loop. An item in flight is abandoned and Run returns
// shortly after. Quit may be called more than once.
func (l *Loop) Quit() {
	l.quitOnce.Do(func() {
		l.mu.Lock()
		l.state = StateStopped
		l.mu.Unlock()
		close(l.quit)
	})
}

// State returns the current state.
func (l *Loop) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// LastURL returns the most recently processed URL.
func (l *Loop) LastURL() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastURL
}

// Entries returns a copy of the history in insertion order.
func (l *Loop) Entries() []model.HistoryEntry {
	return l.ledger.Entries()
}

// DownloadDirectory returns where audio files are written.
func (l *Loop) DownloadDirectory() string {
	return l.directory
}

func (l *Loop) stopped() bool {
	return l.State() == StateStopped
}

// abandoned reports whether the item in flight must be discarded: the loop
// was quit or its context was cancelled.
func (l *Loop) abandoned(ctx context.Context) bool {
	return ctx.Err() != nil || l.stopped()
}

// stop moves to Stopped and announces it. Used when Run exits.
func (l *Loop) stop() {
	l.Quit()
	l.emit(Event{
		Kind:    EventStateChanged,
		Level:   LevelVerbose,
		State:   StateStopped,
		Message: "Stopped",
	})
}

// setState records a transition for it (nil when no item is in flight).
// Once Stopped, the state never changes.
func (l *Loop) setState(state State, it *item) {
	l.mu.Lock()
	if l.state == StateStopped || l.state == state {
		l.mu.Unlock()
		return
	}
	l.state = state
	l.mu.Unlock()

	event := Event{
		Kind:    EventStateChanged,
		Level:   LevelVerbose,
		State:   state,
		Message: string(state),
	}
	if it != nil {
		event.URL = it.ref.URL
		event.ItemID = it.id
	}
	l.emit(event)
}

func (l *Loop) setLastURL(url string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastURL = url
}

func (l *Loop) emit(event Event) {
	for _, fn := range l.handlers {
		fn(event)
	}
}
