package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"quizsheet/pkg/mcq"
)

// DefaultUploadPath is the generation service route that accepts documents.
const DefaultUploadPath = "/upload"

// FilePart is the multipart field name carrying the document.
const FilePart = "file"

// Client implements mcq.Generator against a remote generation service.
type Client struct {
	baseURL    string
	uploadPath string
	client     *http.Client
}

// New constructs a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		uploadPath: DefaultUploadPath,
		client:     &http.Client{},
	}
}

// NewWithTimeout constructs a client for the given base URL with a request timeout.
// A zero timeout leaves requests bounded only by their context.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	c := New(baseURL)
	c.client = &http.Client{Timeout: timeout}
	return c
}

// WithUploadPath overrides the upload route.
func (c *Client) WithUploadPath(path string) *Client {
	if path == "" {
		path = DefaultUploadPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	c.uploadPath = path
	return c
}

// URL returns the absolute upload URL.
func (c *Client) URL() string {
	return c.baseURL + c.uploadPath
}

// Upload sends the file as a multipart form and decodes the returned questions.
func (c *Client) Upload(ctx context.Context, file mcq.File) (mcq.Response, error) {
	if file.IsZero() {
		return mcq.Response{}, fmt.Errorf("upload: no file")
	}
	payload, contentType, err := encodeMultipart(file)
	if err != nil {
		return mcq.Response{}, err
	}
	body, status, err := c.post(ctx, payload, contentType)
	if err != nil {
		return mcq.Response{}, err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return mcq.Response{}, decodeHTTPError(status, body)
	}
	return mcq.DecodeResponse(body)
}

// encodeMultipart writes the document into a single-part multipart body.
func encodeMultipart(file mcq.File) (*bytes.Buffer, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	name := file.Name
	if name == "" {
		name = "upload.pdf"
	}
	part, err := writer.CreateFormFile(FilePart, name)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

func (c *Client) post(ctx context.Context, payload io.Reader, contentType string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), payload)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeHTTPError(status int, body []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return fmt.Errorf("http %d: %s", status, resp.Error)
	}
	return fmt.Errorf("http %d", status)
}
