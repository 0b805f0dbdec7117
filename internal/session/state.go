package session

import (
	"quizsheet/pkg/mcq"
)

// Status is the upload lifecycle phase of a session.
type Status int

const (
	// StatusIdle means no upload has been attempted yet.
	StatusIdle Status = iota
	// StatusUploading means a request is in flight.
	StatusUploading
	// StatusPopulated means the latest upload returned questions.
	StatusPopulated
	// StatusEmpty means the latest upload succeeded without questions.
	StatusEmpty
	// StatusFailed means the latest upload failed in transport.
	StatusFailed
)

// String returns a lower-case label for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusUploading:
		return "uploading"
	case StatusPopulated:
		return "populated"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ticket identifies one upload attempt. Tickets increase monotonically per session.
type Ticket uint64

// State is a point-in-time copy of a session.
type State struct {
	SessionID string
	FileName  string
	HasFile   bool
	Status    Status
	Loading   bool
	Error     string
	Questions []mcq.Question
	Answers   map[int]string
	Ticket    Ticket
}

// Answer returns the recorded label for a question index.
func (s State) Answer(index int) (string, bool) {
	label, ok := s.Answers[index]
	return label, ok
}

// clone returns a deep copy safe to hand to callers.
func (s State) clone() State {
	out := s
	out.Questions = mcq.CloneQuestions(s.Questions)
	out.Answers = make(map[int]string, len(s.Answers))
	for index, label := range s.Answers {
		out.Answers[index] = label
	}
	return out
}
