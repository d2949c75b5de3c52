package clipboard

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard backend exists on this system
// (e.g. Linux without xclip, xsel or wl-clipboard).
var ErrUnavailable = errors.New("clipboard backend unavailable")

// Source reads and clears the clipboard text.
//
// Read never fails: an inaccessible clipboard reads as "". Clear empties the
// clipboard so the same copy event is not seen twice.
type Source interface {
	Read() string
	Clear()
}

// System is the OS clipboard.
type System struct {
	logger *slog.Logger
}

// NewSystem returns the OS clipboard, or ErrUnavailable when there is no
// backend to talk to.
func NewSystem(logger *slog.Logger) (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnavailable
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &System{logger: logger}, nil
}

// Read returns the current clipboard text, or "" when it cannot be read.
func (s *System) Read() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		s.logger.Debug("clipboard read failed", "error", err)
		return ""
	}
	return text
}

// Clear sets the clipboard to the empty string.
func (s *System) Clear() {
	if err := clipboard.WriteAll(""); err != nil {
		s.logger.Warn("clipboard clear failed", "error", err)
	}
}

// Memory is an in-process clipboard.
type Memory struct {
	mu     sync.Mutex
	text   string
	clears int
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// Copy replaces the clipboard text, like a user copy.
func (m *Memory) Copy(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// Read returns the clipboard text.
func (m *Memory) Read() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Clear empties the clipboard.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = ""
	m.clears++
}

// Clears returns how many times Clear was called.
func (m *Memory) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}
