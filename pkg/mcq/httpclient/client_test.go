package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"quizsheet/internal/testutil"
	"quizsheet/pkg/mcq"
)

// TestNewWithTimeoutSetsTimeout ensures the HTTP client timeout is applied.
func TestNewWithTimeoutSetsTimeout(t *testing.T) {
	timeout := 1500 * time.Millisecond
	client := NewWithTimeout("http://example/", timeout)
	if client.client.Timeout != timeout {
		t.Fatalf("expected timeout %s, got %s", timeout, client.client.Timeout)
	}
	if client.URL() != "http://example/upload" {
		t.Fatalf("unexpected url %q", client.URL())
	}
}

func TestWithUploadPathNormalizes(t *testing.T) {
	client := New("http://example").WithUploadPath("api/upload")
	if client.URL() != "http://example/api/upload" {
		t.Fatalf("unexpected url %q", client.URL())
	}
	client.WithUploadPath("")
	if client.URL() != "http://example/upload" {
		t.Fatalf("expected default path, got %q", client.URL())
	}
}

func TestUploadSendsMultipartFilePart(t *testing.T) {
	stub := testutil.StartMCQServer(t, testutil.JSONReply(t, testutil.SampleQuestions(3)))
	client := New(stub.BaseURL)

	resp, err := client.Upload(testutil.Context(t, 0), mcq.FileFromBytes("paper.pdf", []byte("%PDF-1.7 body")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.MCQs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(resp.MCQs))
	}

	uploads := stub.Uploads()
	if len(uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(uploads))
	}
	got := uploads[0]
	if got.PartName != FilePart {
		t.Fatalf("expected part %q, got %q", FilePart, got.PartName)
	}
	if got.FileName != "paper.pdf" {
		t.Fatalf("expected filename paper.pdf, got %q", got.FileName)
	}
	if string(got.Content) != "%PDF-1.7 body" {
		t.Fatalf("unexpected content %q", got.Content)
	}
	if !strings.HasPrefix(got.ContentType, "multipart/form-data") {
		t.Fatalf("expected multipart content type, got %q", got.ContentType)
	}
}

func TestUploadReportsServiceErrors(t *testing.T) {
	cases := []struct {
		name  string
		reply testutil.Reply
		want  string
	}{
		{name: "json error", reply: testutil.Reply{Status: http.StatusBadRequest, Body: `{"error": "No file uploaded"}`}, want: "http 400: No file uploaded"},
		{name: "plain error", reply: testutil.Reply{Status: http.StatusInternalServerError, Body: "boom"}, want: "http 500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := testutil.StartMCQServer(t, tc.reply)
			_, err := New(stub.BaseURL).Upload(testutil.Context(t, 0), mcq.FileFromBytes("x.pdf", nil))
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Error() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestUploadEmptySuccessBodyHasNoQuestions(t *testing.T) {
	stub := testutil.StartMCQServer(t, testutil.Reply{Status: http.StatusNoContent})
	resp, err := New(stub.BaseURL).Upload(testutil.Context(t, 0), mcq.FileFromBytes("blank.pdf", []byte("%PDF")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.MCQs) != 0 {
		t.Fatalf("expected no questions, got %d", len(resp.MCQs))
	}
}

func TestUploadRejectsMalformedBody(t *testing.T) {
	stub := testutil.StartMCQServer(t, testutil.Reply{Status: http.StatusOK, Body: `{"mcqs": {}}`})
	_, err := New(stub.BaseURL).Upload(testutil.Context(t, 0), mcq.FileFromBytes("x.pdf", nil))
	if !errors.Is(err, mcq.ErrMalformedResponse) {
		t.Fatalf("expected malformed response error, got %v", err)
	}
}

func TestUploadOpenFailureSkipsNetwork(t *testing.T) {
	stub := testutil.StartMCQServer(t)
	file := mcq.File{Name: "x.pdf", Open: func() (io.ReadCloser, error) { return nil, errors.New("denied") }}
	if _, err := New(stub.BaseURL).Upload(testutil.Context(t, 0), file); err == nil {
		t.Fatalf("expected open error")
	}
	if stub.UploadCount() != 0 {
		t.Fatalf("expected no request, got %d", stub.UploadCount())
	}
}

func TestUploadHonorsContextCancellation(t *testing.T) {
	release := make(chan struct{})
	stub := testutil.StartMCQServer(t, testutil.Reply{Status: http.StatusOK, Body: `{"mcqs": []}`, Release: release})
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := New(stub.BaseURL).Upload(ctx, mcq.FileFromBytes("x.pdf", nil))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
