package mcq

import "strings"

// Labels are the option letters in display order.
var Labels = []string{"A", "B", "C", "D"}

// Question is a single multiple-choice question returned by the generation service.
type Question struct {
	Number  int      `json:"number,omitempty"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// Response is the decoded body of a successful upload.
type Response struct {
	MCQs         []Question `json:"mcqs"`
	FallbackUsed bool       `json:"fallback_used,omitempty"`
}

// LabelFor returns the option letter for a zero-based option index.
func LabelFor(index int) (string, bool) {
	if index < 0 || index >= len(Labels) {
		return "", false
	}
	return Labels[index], true
}

// LabelIndex returns the option index for a letter, accepting lower case.
func LabelIndex(label string) (int, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	for i, candidate := range Labels {
		if candidate == normalized {
			return i, true
		}
	}
	return -1, false
}

// IsLabel reports whether label is one of the option letters.
func IsLabel(label string) bool {
	for _, candidate := range Labels {
		if candidate == label {
			return true
		}
	}
	return false
}

// CloneQuestions returns a deep copy of a question list.
func CloneQuestions(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	out := make([]Question, len(questions))
	for i, question := range questions {
		question.Options = append([]string(nil), question.Options...)
		out[i] = question
	}
	return out
}
