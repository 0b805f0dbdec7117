package session

import (
	"errors"
	"fmt"
)

// User-facing messages. Transport details never reach the user.
const (
	MessageNoFile       = "Please select a PDF file first."
	MessageNoQuestions  = "No MCQs found in the PDF."
	MessageUploadFailed = "Something went wrong while uploading the PDF."
)

// ErrStaleResponse is returned when a response arrives for a superseded upload.
var ErrStaleResponse = errors.New("stale upload response discarded")

// ValidationError reports a rejected user action.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the validation message.
func (err *ValidationError) Error() string {
	if err.Field == "" {
		return err.Message
	}
	return fmt.Sprintf("%s: %s", err.Field, err.Message)
}

// EmptyResultError reports a successful response without questions.
type EmptyResultError struct{}

// Error describes the empty result.
func (err *EmptyResultError) Error() string {
	return "upload returned no questions"
}

// TransportError wraps any failure talking to the generation service.
type TransportError struct {
	Err error
}

// Error includes the underlying cause for diagnostics.
func (err *TransportError) Error() string {
	if err.Err == nil {
		return "upload failed"
	}
	return "upload failed: " + err.Err.Error()
}

// Unwrap exposes the cause.
func (err *TransportError) Unwrap() error {
	return err.Err
}

// UserMessage maps an operation error to the text shown to the user.
func UserMessage(err error) string {
	if err == nil || errors.Is(err, ErrStaleResponse) {
		return ""
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		if validation.Field == "file" {
			return MessageNoFile
		}
		return validation.Message
	}
	var empty *EmptyResultError
	if errors.As(err, &empty) {
		return MessageNoQuestions
	}
	return MessageUploadFailed
}
