// Package tui renders the live progress display of an extraction run.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pdfwords/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pdfwords/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pdfwords/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driving"
	"github.com/custodia-labs/pdfwords/internal/logger"
)

const maxBarWidth = 60

// RunFunc runs a batch and reports each document through fn.
type RunFunc func(ctx context.Context, fn driving.ProgressFunc) (*domain.RunReport, error)

// logLine carries a log message to be printed above the display.
type logLine string

// Model is the progress display. It implements tea.Model.
type Model struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	cancel  context.CancelFunc
	bar     progress.Model
	spinner spinner.Model

	current  string
	done     int
	total    int
	failed   int
	stopping bool
	finished bool
	err      error
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// NewModel creates a progress display. cancel is called when the user asks
// to stop; the display keeps running until the batch returns.
func NewModel(s *styles.Styles, cancel context.CancelFunc) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if cancel == nil {
		cancel = func() {}
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(s.Title),
	)

	return &Model{
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		cancel:  cancel,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Stop) && !m.stopping {
			m.stopping = true
			m.cancel()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-20, maxBarWidth)
		if m.bar.Width < 10 {
			m.bar.Width = 10
		}
		return m, nil

	case messages.DocumentStarted:
		m.total = msg.Total
		m.current = msg.Document.Category + "/" + msg.Document.FileName()
		return m, nil

	case messages.DocumentDone:
		m.total = msg.Total
		m.done = msg.Index
		if !msg.OK {
			m.failed++
		}
		return m, nil

	case messages.RunFinished:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit

	case logLine:
		return m, tea.Println(string(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.finished {
		return ""
	}

	var b strings.Builder

	status := m.current
	switch {
	case m.stopping:
		status = "Stopping..."
	case status == "":
		status = "Scanning folders..."
	}
	b.WriteString(m.spinner.View() + " " + status + "\n")

	b.WriteString(m.bar.ViewAs(m.Percent()))
	b.WriteString(fmt.Sprintf(" %d/%d", m.done, m.total))
	if m.failed > 0 {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("  %d failed", m.failed)))
	}
	b.WriteString("\n")

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		help = append(help, k.Help().Key+" "+k.Help().Desc)
	}
	b.WriteString(m.styles.Help.Render(strings.Join(help, " • ")) + "\n")

	return b.String()
}

// Percent returns the completed fraction of the run.
func (m *Model) Percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// Err returns the error the run finished with.
func (m *Model) Err() error {
	return m.err
}

type outcome struct {
	report *domain.RunReport
	err    error
}

// lineWriter forwards log output into the program so it is printed above
// the display instead of through it.
type lineWriter struct {
	p *tea.Program
}

func (w lineWriter) Write(b []byte) (int, error) {
	w.p.Send(logLine(strings.TrimRight(string(b), "\n")))
	return len(b), nil
}

// Run executes run while drawing its progress to out. Stopping from the
// keyboard cancels the context passed to run. If the display fails, the
// batch still runs to completion.
func Run(ctx context.Context, out io.Writer, run RunFunc, opts ...tea.ProgramOption) (*domain.RunReport, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]tea.ProgramOption{tea.WithOutput(out)}, opts...)
	p := tea.NewProgram(NewModel(styles.DefaultStyles(), cancel), opts...)

	logOut := logger.Output()
	logger.SetOutput(lineWriter{p: p})
	defer logger.SetOutput(logOut)

	results := make(chan outcome, 1)
	go func() {
		report, err := run(ctx, func(ev domain.Progress) {
			p.Send(messages.FromProgress(ev))
		})
		p.Send(messages.RunFinished{Err: err})
		results <- outcome{report: report, err: err}
	}()

	if _, err := p.Run(); err != nil {
		logger.SetOutput(logOut)
		logger.Warn("Progress display failed: %v", err)
	}

	res := <-results
	return res.report, res.err
}
