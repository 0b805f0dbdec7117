package answersheet

import (
	"strconv"
	"strings"
)

// DefaultFilename is the name the exported sheet is saved under.
const DefaultFilename = "my_answers.txt"

// NotAnswered marks questions without a recorded choice.
const NotAnswered = "Not answered"

// Line is one numbered entry of the sheet.
type Line struct {
	Number int
	Answer string
}

// Sheet is a rendered answer sheet.
type Sheet struct {
	lines []Line
}

// Render builds a sheet for count questions from a map of index to option label.
// Indices outside 0..count-1 are ignored.
func Render(count int, answers map[int]string) Sheet {
	if count <= 0 {
		return Sheet{}
	}
	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		answer := answers[i]
		if answer == "" {
			answer = NotAnswered
		}
		lines = append(lines, Line{Number: i + 1, Answer: answer})
	}
	return Sheet{lines: lines}
}

// Lines returns the sheet entries in question order.
func (s Sheet) Lines() []Line {
	return append([]Line(nil), s.lines...)
}

// Len returns the number of entries.
func (s Sheet) Len() int {
	return len(s.lines)
}

// Answered counts entries with a recorded choice.
func (s Sheet) Answered() int {
	count := 0
	for _, line := range s.lines {
		if line.Answer != NotAnswered {
			count++
		}
	}
	return count
}

// String renders the sheet as newline-terminated "<n>. <answer>" lines.
func (s Sheet) String() string {
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(strconv.Itoa(line.Number))
		b.WriteString(". ")
		b.WriteString(line.Answer)
		b.WriteByte('\n')
	}
	return b.String()
}

// Bytes returns the rendered sheet as UTF-8 bytes.
func (s Sheet) Bytes() []byte {
	return []byte(s.String())
}
