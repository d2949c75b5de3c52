// Package tui provides a Bubble Tea terminal user interface for tube-clipper.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/tube-clipper/internal/model"
	"github.com/handiism/tube-clipper/internal/monitor"
	"github.com/handiism/tube-clipper/internal/notify"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	testBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#FFE66D")).
			Padding(0, 1)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#95E1A3")).
			Padding(0, 2)
)

const (
	maxLogs       = 10
	toastDuration = 4 * time.Second
)

// Controller is the part of the monitor loop the UI drives.
type Controller interface {
	ToggleTestMode() bool
	TestMode() bool
	Quit()
	State() monitor.State
	Entries() []model.HistoryEntry
	DownloadDirectory() string
}

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   monitor.Level
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	controller Controller

	spinner  spinner.Model
	progress progress.Model
	history  table.Model
	help     help.Model
	keys     keyMap

	state    monitor.State
	testMode bool
	verbose  bool
	percent  float64
	logs     []LogEntry

	toast   string
	toastID int

	// bell is rung when test mode is toggled.
	bell func()

	width  int
	height int
}

// NewModel creates a new TUI model driving controller.
func NewModel(controller Controller) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	columns := []table.Column{
		{Title: "Title", Width: 32},
		{Title: "Author", Width: 20},
		{Title: "URL", Width: 44},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
		table.WithFocused(false),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#6C757D")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()
	tbl.SetStyles(styles)

	m := Model{
		controller: controller,
		spinner:    sp,
		progress:   prog,
		history:    tbl,
		help:       help.New(),
		keys:       defaultKeyMap(),
		state:      controller.State(),
		testMode:   controller.TestMode(),
		logs:       make([]LogEntry, 0),
		bell:       terminalBell,
	}
	m.refreshHistory()
	return m
}

// terminalBell rings the bell of the controlling terminal.
func terminalBell() { fmt.Fprint(os.Stderr, "\a") }

// bellFor returns the bell rung on test mode changes: the notifier's alert
// sound when it has one, the terminal bell otherwise.
func bellFor(n notify.Notifier) func() {
	if b, ok := n.(notify.Beeper); ok {
		return func() { _ = b.Beep() }
	}
	return terminalBell
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// EventMsg carries a monitor event into the UI.
	EventMsg struct {
		Event monitor.Event
	}

	// toastExpiredMsg hides the toast with the matching id.
	toastExpiredMsg struct {
		id int
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.controller.Quit()
			m.state = monitor.StateStopped
			return m, tea.Quit

		case key.Matches(msg, m.keys.TestMode):
			m.testMode = m.controller.ToggleTestMode()
			if m.bell != nil {
				m.bell()
			}
			level, text := monitor.LevelInfo, "Test mode off, downloads enabled"
			if m.testMode {
				level, text = monitor.LevelWarning, "Test mode on, downloads skipped"
			}
			m.addLog(LogEntry{Message: text, Level: level})

		case key.Matches(msg, m.keys.Verbose):
			m.verbose = !m.verbose
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case EventMsg:
		cmds = append(cmds, m.handleEvent(msg.Event))

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
	}

	return m, tea.Batch(cmds...)
}

// handleEvent applies a monitor event to the model.
func (m *Model) handleEvent(event monitor.Event) tea.Cmd {
	switch event.Kind {
	case monitor.EventStateChanged:
		m.state = event.State
		if event.State == monitor.StateDownloading {
			m.percent = 0
		}
		if event.State == monitor.StateStopped {
			return tea.Quit
		}
		if event.State == monitor.StateDetected {
			m.addLog(LogEntry{Message: "Detected " + event.URL, Level: monitor.LevelVerbose})
		}

	case monitor.EventProgress:
		if event.Total > 0 {
			m.percent = float64(event.Written) / float64(event.Total)
		}

	case monitor.EventRecorded:
		m.percent = 1
		m.refreshHistory()
		m.addLog(LogEntry{Message: event.Message, Level: event.Level})
		return m.showToast(event.Notification.Title + "\n" + event.Notification.Message)

	case monitor.EventDropped:
		m.addLog(LogEntry{Message: event.Message, Level: monitor.LevelError})
	}

	return nil
}

func (m *Model) addLog(entry LogEntry) {
	if entry.Level == monitor.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, entry)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m *Model) refreshHistory() {
	entries := m.controller.Entries()
	rows := make([]table.Row, 0, len(entries))
	// Newest first.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, table.Row{e.Title, e.Author, e.URL})
	}
	m.history.SetRows(rows)
}

// showToast displays text until toastDuration passes or a newer toast
// replaces it.
func (m *Model) showToast(text string) tea.Cmd {
	m.toastID++
	m.toast = text
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Tube Clipper"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Copy a YouTube link to save its audio to " + m.controller.DownloadDirectory()))
	b.WriteString("\n\n")

	b.WriteString(m.viewStatus())
	b.WriteString("\n\n")

	if m.state == monitor.StateDownloading || m.state == monitor.StateRecorded {
		b.WriteString(m.progress.ViewAs(m.percent))
		b.WriteString("\n\n")
	}

	if m.toast != "" {
		b.WriteString(toastStyle.Render(m.toast))
		b.WriteString("\n\n")
	}

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("History (%d)", len(m.history.Rows()))))
	b.WriteString("\n")
	b.WriteString(m.history.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) viewStatus() string {
	var b strings.Builder

	switch m.state {
	case monitor.StateIdle:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(infoStyle.Render("Watching clipboard..."))
	case monitor.StateDetected, monitor.StateResolving:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Fetching video info..."))
	case monitor.StateDownloading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Downloading audio..."))
	case monitor.StateRecorded:
		b.WriteString(successStyle.Render("✓ Saved"))
	case monitor.StateStopped:
		b.WriteString(dimStyle.Render("Stopped"))
	}

	if m.testMode {
		b.WriteString("  ")
		b.WriteString(testBadgeStyle.Render("TEST MODE"))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case monitor.LevelError:
			style = errorStyle
			prefix = "✗"
		case monitor.LevelWarning:
			style = warningStyle
			prefix = "!"
		case monitor.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case monitor.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}
