package session

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"quizsheet/internal/answersheet"
	"quizsheet/pkg/mcq"
)

// Observer receives a copy of the session state after every transition, in the
// order the transitions happened.
type Observer interface {
	OnStateChange(state State)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(state State)

// OnStateChange calls f.
func (f ObserverFunc) OnStateChange(state State) {
	f(state)
}

// Options configures a Controller.
type Options struct {
	// Diagnostics receives transport failure details. Nil discards them.
	Diagnostics io.Writer
	Observer    Observer
	// SessionID overrides the generated session id.
	SessionID string
}

// Controller owns the state of one quiz session: the selected file, the fetched
// questions, the chosen answers and the upload status.
type Controller struct {
	generator mcq.Generator
	logger    *log.Logger
	observer  Observer

	// notifyMu orders transitions together with their observer calls.
	notifyMu sync.Mutex
	mu       sync.Mutex
	file     mcq.File
	state    State
}

// New constructs an idle session that uploads through generator.
func New(generator mcq.Generator, opts Options) *Controller {
	diagnostics := opts.Diagnostics
	if diagnostics == nil {
		diagnostics = io.Discard
	}
	id := opts.SessionID
	if id == "" {
		id = uuid.NewString()
	}
	return &Controller{
		generator: generator,
		logger:    log.New(diagnostics, "[UPLOAD] ", log.LstdFlags),
		observer:  opts.Observer,
		state: State{
			SessionID: id,
			Status:    StatusIdle,
			Answers:   map[int]string{},
		},
	}
}

// SessionID returns the id of this session.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.SessionID
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// SelectFile replaces the selected file. The file is not inspected until upload.
func (c *Controller) SelectFile(file mcq.File) {
	c.update(func(state *State) {
		c.file = file
		state.FileName = file.Name
		state.HasFile = !file.IsZero()
	})
}

// SubmitUpload uploads the selected file and applies the outcome.
// It returns nil when questions were stored, *ValidationError when no file is
// selected, *EmptyResultError when the service found no questions,
// *TransportError on any transport failure, and ErrStaleResponse when a newer
// upload started while this one was in flight.
func (c *Controller) SubmitUpload(ctx context.Context) error {
	ticket, file, err := c.Begin()
	if err != nil {
		return err
	}
	return c.Complete(ctx, ticket, file)
}

// Complete performs the network half of an upload started with Begin and
// applies its outcome. Loading is cleared even if the generator panics.
func (c *Controller) Complete(ctx context.Context, ticket Ticket, file mcq.File) error {
	finished := false
	defer func() {
		if finished {
			return
		}
		if r := recover(); r != nil {
			_ = c.Finish(ticket, mcq.Response{}, fmt.Errorf("generator panic: %v", r))
			panic(r)
		}
	}()
	resp, uploadErr := c.generator.Upload(ctx, file)
	finished = true
	return c.Finish(ticket, resp, uploadErr)
}

// Begin starts an upload attempt: it clears questions, answers and error, marks
// the session as uploading and returns the ticket the result must be applied with.
func (c *Controller) Begin() (Ticket, mcq.File, error) {
	var (
		ticket Ticket
		file   mcq.File
		err    error
	)
	c.update(func(state *State) {
		if c.file.IsZero() {
			state.Error = MessageNoFile
			err = &ValidationError{Field: "file", Message: "no file selected"}
			return
		}
		state.Ticket++
		ticket = state.Ticket
		file = c.file
		state.Status = StatusUploading
		state.Loading = true
		state.Error = ""
		state.Questions = nil
		state.Answers = map[int]string{}
	})
	if err == nil {
		c.logger.Printf("session=%s ticket=%d uploading %s", c.SessionID(), ticket, file.Name)
	}
	return ticket, file, err
}

// Finish applies the outcome of the upload identified by ticket. Outcomes of
// superseded uploads leave the state untouched and return ErrStaleResponse.
func (c *Controller) Finish(ticket Ticket, resp mcq.Response, uploadErr error) error {
	var (
		result error
		stale  bool
	)
	c.update(func(state *State) {
		if ticket != state.Ticket || state.Status != StatusUploading {
			stale = true
			return
		}
		defer func() { state.Loading = false }()
		switch {
		case uploadErr != nil:
			state.Status = StatusFailed
			state.Error = MessageUploadFailed
			result = &TransportError{Err: uploadErr}
		case len(resp.MCQs) == 0:
			state.Status = StatusEmpty
			state.Error = MessageNoQuestions
			result = &EmptyResultError{}
		default:
			state.Status = StatusPopulated
			state.Questions = mcq.CloneQuestions(resp.MCQs)
		}
	})

	id := c.SessionID()
	switch {
	case stale:
		c.logger.Printf("session=%s ticket=%d discarding stale response", id, ticket)
		return ErrStaleResponse
	case uploadErr != nil:
		c.logger.Printf("session=%s ticket=%d upload failed: %v", id, ticket, uploadErr)
	case result != nil:
		c.logger.Printf("session=%s ticket=%d response contained no questions", id, ticket)
	default:
		c.logger.Printf("session=%s ticket=%d received %d questions (fallback=%t)", id, ticket, len(resp.MCQs), resp.FallbackUsed)
	}
	return result
}

// SelectAnswer records label for the question at index, replacing any earlier choice.
func (c *Controller) SelectAnswer(index int, label string) error {
	var err error
	c.update(func(state *State) {
		if index < 0 || index >= len(state.Questions) {
			err = &ValidationError{Field: "question", Message: fmt.Sprintf("question %d does not exist", index+1)}
			return
		}
		if !mcq.IsLabel(label) {
			err = &ValidationError{Field: "option", Message: fmt.Sprintf("unknown option %q", label)}
			return
		}
		if option, _ := mcq.LabelIndex(label); option >= len(state.Questions[index].Options) {
			err = &ValidationError{Field: "option", Message: fmt.Sprintf("question %d has no option %s", index+1, label)}
			return
		}
		state.Answers[index] = label
	})
	return err
}

// ExportAnswers renders the answer sheet for the current questions.
func (c *Controller) ExportAnswers() answersheet.Sheet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return answersheet.Render(len(c.state.Questions), c.state.Answers)
}

// update mutates state under the lock and notifies the observer with a copy.
// Notifications are delivered one at a time in transition order; observers must
// not call mutating Controller methods.
func (c *Controller) update(fn func(state *State)) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.mu.Lock()
	before := c.state.clone()
	fn(&c.state)
	changed := !sameState(before, c.state)
	snapshot := c.state.clone()
	c.mu.Unlock()
	if changed && c.observer != nil {
		c.observer.OnStateChange(snapshot)
	}
}

// sameState reports whether two states render identically.
func sameState(a, b State) bool {
	if a.FileName != b.FileName || a.HasFile != b.HasFile || a.Status != b.Status ||
		a.Loading != b.Loading || a.Error != b.Error || a.Ticket != b.Ticket ||
		len(a.Questions) != len(b.Questions) || len(a.Answers) != len(b.Answers) {
		return false
	}
	for index, label := range a.Answers {
		if b.Answers[index] != label {
			return false
		}
	}
	return true
}
