package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"quizsheet/pkg/mcq"
)

// UploadRecord captures what the stub service received for one upload.
type UploadRecord struct {
	PartName    string
	FileName    string
	ContentType string
	Content     []byte
}

// Reply is the canned answer for one upload.
type Reply struct {
	Status int
	Body   string
	// Release, when set, holds the reply until it is closed.
	Release <-chan struct{}
}

// MCQServer is an in-process stand-in for the PDF-to-MCQ generation service.
type MCQServer struct {
	BaseURL string

	server  *httptest.Server
	mu      sync.Mutex
	replies []Reply
	uploads []UploadRecord
}

// StartMCQServer launches a stub generation service routed with gorilla/mux.
// Replies are served in order; the last reply repeats once the queue drains.
func StartMCQServer(t testing.TB, replies ...Reply) *MCQServer {
	t.Helper()
	stub := &MCQServer{replies: replies}
	router := mux.NewRouter()
	router.HandleFunc("/upload", stub.handleUpload).Methods(http.MethodPost)
	stub.server = httptest.NewServer(router)
	stub.BaseURL = stub.server.URL
	t.Cleanup(stub.server.Close)
	return stub
}

// JSONReply builds a 200 reply carrying the given questions.
func JSONReply(t testing.TB, questions []mcq.Question) Reply {
	t.Helper()
	if questions == nil {
		questions = []mcq.Question{}
	}
	data, err := json.Marshal(map[string]any{"mcqs": questions, "fallback_used": false})
	if err != nil {
		t.Fatalf("marshal mcq reply: %v", err)
	}
	return Reply{Status: http.StatusOK, Body: string(data)}
}

// SampleQuestions returns count well-formed questions.
func SampleQuestions(count int) []mcq.Question {
	questions := make([]mcq.Question, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, mcq.Question{
			Number:  i + 1,
			Prompt:  "Question " + string(rune('A'+i%26)),
			Options: []string{"first", "second", "third", "fourth"},
		})
	}
	return questions
}

// Uploads returns the uploads received so far.
func (s *MCQServer) Uploads() []UploadRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]UploadRecord(nil), s.uploads...)
}

// UploadCount reports how many uploads reached the service.
func (s *MCQServer) UploadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads)
}

func (s *MCQServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	record := UploadRecord{ContentType: r.Header.Get("Content-Type")}
	if err := r.ParseMultipartForm(32 << 20); err == nil {
		for name, headers := range r.MultipartForm.File {
			if len(headers) == 0 {
				continue
			}
			record.PartName = name
			record.FileName = headers[0].Filename
			if file, err := headers[0].Open(); err == nil {
				record.Content, _ = io.ReadAll(file)
				_ = file.Close()
			}
		}
	}

	s.mu.Lock()
	s.uploads = append(s.uploads, record)
	reply := Reply{Status: http.StatusOK, Body: `{"mcqs": []}`}
	if len(s.replies) > 0 {
		reply = s.replies[0]
		if len(s.replies) > 1 {
			s.replies = s.replies[1:]
		}
	}
	s.mu.Unlock()

	if reply.Release != nil {
		select {
		case <-reply.Release:
		case <-r.Context().Done():
			return
		}
	}
	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply.Body)
}
