package quiz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizsheet/internal/session"
	"quizsheet/pkg/mcq"
)

const (
	title          = "PDF Quiz"
	loadingMessage = "Processing PDF... please wait."
	formTitle      = "Interactive Quiz"
)

// View renders the quiz UI.
func (m Model) View() string {
	state := m.ctrl.Snapshot()
	sections := []string{
		renderHeader(state, m.opts.NoColor),
		m.renderFileLine(state),
	}
	if state.Loading {
		sections = append(sections, m.spinner.View()+" "+loadingMessage)
	}
	if line := renderError(state.Error, m.opts.NoColor); line != "" {
		sections = append(sections, line)
	}
	if len(state.Questions) > 0 {
		sections = append(sections, "", stylize(formTitle, m.opts.NoColor, lipgloss.Color("252")))
		sections = append(sections, renderQuestions(state, m.cursor, questionsPerPage(m.height), m.opts.NoColor))
	}
	if m.notice != "" {
		sections = append(sections, "", stylize(m.notice, m.opts.NoColor, lipgloss.Color("42")))
	}
	sections = append(sections, "", renderHelp(m.editing, len(state.Questions) > 0, m.opts.NoColor))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with the session id.
func renderHeader(state session.State, noColor bool) string {
	line := title
	if state.SessionID != "" {
		line += " | Session " + shortID(state.SessionID)
	}
	if state.Status != session.StatusIdle {
		line += " | " + state.Status.String()
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderFileLine shows the selected file or the path prompt.
func (m Model) renderFileLine(state session.State) string {
	if m.editing {
		return m.input.View()
	}
	if !state.HasFile {
		return stylize("File: (none selected)", m.opts.NoColor, lipgloss.Color("244"))
	}
	return "File: " + state.FileName
}

// renderError renders the user-facing error line.
func renderError(message string, noColor bool) string {
	if message == "" {
		return ""
	}
	return stylize("! "+message, noColor, lipgloss.Color("196"))
}

// renderQuestions renders the visible page of questions around the cursor.
func renderQuestions(state session.State, cursor, perPage int, noColor bool) string {
	start, end := visibleRange(len(state.Questions), cursor, perPage)
	blocks := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		answer, _ := state.Answer(i)
		blocks = append(blocks, renderQuestion(i, state.Questions[i], answer, i == cursor, noColor))
	}
	if start > 0 || end < len(state.Questions) {
		blocks = append(blocks, stylize(formatPage(start, end, len(state.Questions)), noColor, lipgloss.Color("244")))
	}
	return strings.Join(blocks, "\n\n")
}

// renderQuestion renders one question with its options.
func renderQuestion(index int, question mcq.Question, answer string, focused, noColor bool) string {
	marker := "  "
	if focused {
		marker = "> "
	}
	head := marker + formatQuestionNumber(index) + ": " + formatPrompt(question.Prompt)
	if focused {
		head = stylize(head, noColor, lipgloss.Color("39"))
	}
	lines := []string{head}
	for i, option := range question.Options {
		label, ok := mcq.LabelFor(i)
		if !ok {
			break
		}
		line := "    " + formatOption(label, option, label == answer)
		if label == answer {
			line = stylize(line, noColor, lipgloss.Color("42"))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderHelp lists the keys available in the current mode.
func renderHelp(editing, hasQuestions, noColor bool) string {
	var help string
	switch {
	case editing:
		help = "enter select file | esc cancel | ctrl+c quit"
	case hasQuestions:
		help = "j/k move | a-d answer | e export | u upload again | f change file | q quit"
	default:
		help = "u upload | f choose file | q quit"
	}
	return stylize(help, noColor, lipgloss.Color("240"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
