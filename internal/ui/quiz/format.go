package quiz

import (
	"strconv"
	"strings"
)

// formatQuestionNumber renders the one-based question label.
func formatQuestionNumber(index int) string {
	return "Q" + strconv.Itoa(index+1)
}

// formatPrompt collapses whitespace in question text.
func formatPrompt(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// formatOption renders one option line with its selection mark.
func formatOption(label, text string, selected bool) string {
	mark := "( )"
	if selected {
		mark = "(x)"
	}
	return mark + " " + label + ". " + formatPrompt(text)
}

// formatPage describes which questions are on screen.
func formatPage(start, end, total int) string {
	return "Questions " + strconv.Itoa(start+1) + "-" + strconv.Itoa(end) + " of " + strconv.Itoa(total)
}

// formatExportNotice describes the outcome of an export.
func formatExportNotice(msg exportDoneMsg) string {
	if msg.err != nil {
		return "Export failed: " + msg.err.Error()
	}
	return "Saved " + strconv.Itoa(msg.answered) + "/" + strconv.Itoa(msg.total) + " answers to " + msg.path
}

// shortID trims a session id for the header.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// questionsPerPage estimates how many question blocks fit the terminal.
// Zero height means unknown, so every question is shown.
func questionsPerPage(height int) int {
	if height <= 0 {
		return 0
	}
	const chrome = 9
	const block = 6
	return max((height-chrome)/block, 1)
}

// visibleRange returns the [start, end) window of questions keeping cursor visible.
func visibleRange(total, cursor, perPage int) (int, int) {
	if perPage <= 0 || perPage >= total {
		return 0, total
	}
	start := cursor - perPage/2
	if start < 0 {
		start = 0
	}
	if start+perPage > total {
		start = total - perPage
	}
	return start, start + perPage
}
