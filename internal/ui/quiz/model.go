package quiz

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizsheet/internal/answersheet"
	"quizsheet/internal/session"
	"quizsheet/pkg/mcq"
)

// Options configures the quiz UI model.
type Options struct {
	NoColor        bool
	ExportDir      string
	ExportFilename string
}

// Model renders an interactive quiz session using Bubble Tea.
type Model struct {
	ctx     context.Context
	ctrl    *session.Controller
	opts    Options
	input   textinput.Model
	spinner spinner.Model
	editing bool
	cursor  int
	notice  string
	height  int
}

// NewModel constructs a UI model driving ctrl. The file prompt opens when no
// file is selected yet.
func NewModel(ctx context.Context, ctrl *session.Controller, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	input := textinput.New()
	input.Placeholder = "path/to/questions.pdf"
	input.Prompt = "PDF: "
	input.CharLimit = 4096

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !opts.NoColor {
		spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	}

	m := Model{
		ctx:     ctx,
		ctrl:    ctrl,
		opts:    opts,
		input:   input,
		spinner: spin,
	}
	if !ctrl.Snapshot().HasFile {
		m.editing = true
		m.input.Focus()
	}
	return m
}

// Init starts the cursor blink when the file prompt is open.
func (m Model) Init() tea.Cmd {
	if m.editing {
		return textinput.Blink
	}
	return nil
}

// uploadDoneMsg reports that an upload attempt finished.
type uploadDoneMsg struct {
	ticket session.Ticket
	err    error
}

// exportDoneMsg reports the outcome of writing the answer sheet.
type exportDoneMsg struct {
	path     string
	answered int
	total    int
	err      error
}

// Update handles key presses, upload results and spinner ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = typed.Height
		m.input.Width = max(typed.Width-len(m.input.Prompt)-2, 10)
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing {
			return m.updatePrompt(typed)
		}
		return m.updateForm(typed)
	case uploadDoneMsg:
		if !errors.Is(typed.err, session.ErrStaleResponse) {
			m.cursor = 0
		}
		return m, nil
	case exportDoneMsg:
		m.notice = formatExportNotice(typed)
		return m, nil
	case spinner.TickMsg:
		if !m.ctrl.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	}
	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updatePrompt handles keys while the file prompt is focused.
func (m Model) updatePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return m, nil
		}
		m.ctrl.SelectFile(mcq.FileFromPath(path))
		m.editing = false
		m.input.Blur()
		m.notice = ""
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// updateForm handles keys while browsing questions.
func (m Model) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.Snapshot()
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "f", "tab":
		m.editing = true
		return m, m.input.Focus()
	case "u":
		return m.startUpload()
	case "up", "k":
		m.cursor = moveCursor(m.cursor, -1, len(state.Questions))
	case "down", "j":
		m.cursor = moveCursor(m.cursor, 1, len(state.Questions))
	case "a", "b", "c", "d", "A", "B", "C", "D":
		if len(state.Questions) == 0 {
			return m, nil
		}
		if err := m.ctrl.SelectAnswer(m.cursor, strings.ToUpper(key.String())); err != nil {
			m.notice = err.Error()
		}
	case "e":
		if len(state.Questions) == 0 {
			return m, nil
		}
		return m, exportCmd(m.ctrl, m.opts)
	}
	return m, nil
}

// startUpload begins an upload and schedules its network half.
func (m Model) startUpload() (tea.Model, tea.Cmd) {
	ticket, file, err := m.ctrl.Begin()
	if err != nil {
		return m, nil
	}
	m.notice = ""
	m.cursor = 0
	return m, tea.Batch(m.spinner.Tick, uploadCmd(m.ctx, m.ctrl, ticket, file))
}

// uploadCmd runs the upload off the event loop.
func uploadCmd(ctx context.Context, ctrl *session.Controller, ticket session.Ticket, file mcq.File) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.Complete(ctx, ticket, file)
		return uploadDoneMsg{ticket: ticket, err: err}
	}
}

// exportCmd writes the current answer sheet.
func exportCmd(ctrl *session.Controller, opts Options) tea.Cmd {
	return func() tea.Msg {
		sheet := ctrl.ExportAnswers()
		path, err := answersheet.Write(opts.ExportDir, opts.ExportFilename, sheet)
		return exportDoneMsg{path: path, answered: sheet.Answered(), total: sheet.Len(), err: err}
	}
}

// moveCursor shifts the cursor within [0, count).
func moveCursor(cursor, delta, count int) int {
	if count <= 0 {
		return 0
	}
	cursor += delta
	if cursor < 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}
