package cli

import (
	"fmt"
	"strconv"
	"strings"

	"quizsheet/pkg/mcq"
)

// answerChoice is one --answer N=L flag: a one-based question number and a label.
type answerChoice struct {
	Number int
	Label  string
}

// answerFlags collects repeated --answer flags.
type answerFlags []answerChoice

func (a *answerFlags) String() string {
	parts := make([]string, 0, len(*a))
	for _, choice := range *a {
		parts = append(parts, fmt.Sprintf("%d=%s", choice.Number, choice.Label))
	}
	return strings.Join(parts, ",")
}

func (a *answerFlags) Set(value string) error {
	choice, err := parseAnswerChoice(value)
	if err != nil {
		return err
	}
	*a = append(*a, choice)
	return nil
}

// parseAnswerChoice parses "N=L" where N is a one-based question number and L an option label.
func parseAnswerChoice(value string) (answerChoice, error) {
	number, label, ok := strings.Cut(strings.TrimSpace(value), "=")
	if !ok {
		return answerChoice{}, fmt.Errorf("answer %q must look like N=L", value)
	}
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil || n < 1 {
		return answerChoice{}, fmt.Errorf("answer %q: question number must be a positive integer", value)
	}
	index, ok := mcq.LabelIndex(label)
	if !ok {
		return answerChoice{}, fmt.Errorf("answer %q: option must be one of %s", value, strings.Join(mcq.Labels, ", "))
	}
	canonical, _ := mcq.LabelFor(index)
	return answerChoice{Number: n, Label: canonical}, nil
}
