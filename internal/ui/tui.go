// Package ui provides the read-only terminal viewer for the task list.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/nibzard/tasklist-go/internal/store"
	"github.com/nibzard/tasklist-go/internal/table"
	"github.com/nibzard/tasklist-go/internal/task"
)

// Loader reads the task list shown by the viewer.
type Loader func() (*store.List, error)

// ViewerOption configures the viewer.
type ViewerOption func(*Model)

// WithClock sets the clock used to classify due dates.
func WithClock(now func() time.Time) ViewerOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithTableOptions sets how the task table is rendered.
func WithTableOptions(opts table.Options) ViewerOption {
	return func(m *Model) {
		m.table = opts
	}
}

// WithRefreshInterval reloads the file periodically. Zero disables it.
func WithRefreshInterval(d time.Duration) ViewerOption {
	return func(m *Model) {
		m.refreshInterval = d
	}
}

// RunViewer shows the task list in a full-screen viewer on out until the
// user quits or ctx is cancelled.
func RunViewer(ctx context.Context, in io.Reader, out io.Writer, path string, load Loader, opts ...ViewerOption) error {
	if !IsTTY(out) {
		return fmt.Errorf("view requires a TTY")
	}

	model := NewModel(path, load, opts...)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := program.Run()
	return err
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

const (
	// title, status line and the blank line after them
	headerRows = 3
	// blank line and footer
	footerRows = 2
)

// Model is the bubbletea model of the viewer.
type Model struct {
	path            string
	load            Loader
	now             func() time.Time
	table           table.Options
	refreshInterval time.Duration

	lines    []string
	counts   map[task.Urgency]int
	total    int
	loadErr  error
	offset   int
	height   int
	showHelp bool
}

type tickMsg time.Time

// NewModel creates a viewer model for the list at path.
func NewModel(path string, load Loader, opts ...ViewerOption) *Model {
	m := &Model{
		path:  path,
		load:  load,
		now:   time.Now,
		table: table.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	m.refresh()
	if m.refreshInterval > 0 {
		return tickCmd(m.refreshInterval)
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "j", "down":
			m.scroll(1)
		case "k", "up":
			m.scroll(-1)
		case "pgdown", " ":
			m.scroll(m.bodyRows())
		case "pgup":
			m.scroll(-m.bodyRows())
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.maxOffset()
		case "r", "f5":
			m.refresh()
		case "h", "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.scroll(0)
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.refreshInterval)
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasklist") + "\n")

	if m.showHelp {
		b.WriteString("\n")
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading "+m.path) + "\n\n")
		b.WriteString("  " + m.loadErr.Error() + "\n")
		writeFooter(&b)
		return b.String()
	}

	b.WriteString(statusStyle.Render(m.statusLine()) + "\n\n")
	for _, line := range m.visibleLines() {
		b.WriteString(line + "\n")
	}
	writeFooter(&b)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) refresh() {
	list, err := m.load()
	if err != nil {
		m.loadErr = err
		m.lines = nil
		return
	}
	m.loadErr = nil

	now := m.now()
	tasks := list.Tasks()
	m.lines = table.Render(tasks, now, m.table)
	m.total = len(tasks)
	m.counts = make(map[task.Urgency]int)
	for _, t := range tasks {
		if u, err := t.UrgencyAt(now); err == nil {
			m.counts[u]++
		}
	}
	m.scroll(0)
}

func (m *Model) statusLine() string {
	return fmt.Sprintf("%s | %d tasks | %d overdue | %d today | %d upcoming",
		m.path, m.total,
		m.counts[task.UrgencyOverdue],
		m.counts[task.UrgencyToday],
		m.counts[task.UrgencyUpcoming],
	)
}

// bodyRows returns how many table lines fit on screen, or all of them when
// the height is unknown.
func (m *Model) bodyRows() int {
	if m.height <= 0 {
		return len(m.lines)
	}
	if rows := m.height - headerRows - footerRows; rows > 0 {
		return rows
	}
	return 1
}

func (m *Model) maxOffset() int {
	if n := len(m.lines) - m.bodyRows(); n > 0 {
		return n
	}
	return 0
}

func (m *Model) scroll(delta int) {
	m.offset += delta
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) visibleLines() []string {
	end := m.offset + m.bodyRows()
	if end > len(m.lines) {
		end = len(m.lines)
	}
	return m.lines[m.offset:end]
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  j, down      Scroll down\n")
	b.WriteString("  k, up        Scroll up\n")
	b.WriteString("  space, pgdn  Page down\n")
	b.WriteString("  pgup         Page up\n")
	b.WriteString("  g, G         Jump to top or bottom\n")
	b.WriteString("  r, F5        Reload the task file\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("\n" + footerStyle.Render("Press h for help | q to quit") + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
