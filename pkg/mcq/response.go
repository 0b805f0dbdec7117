package mcq

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedResponse reports a body that is not a valid upload response.
var ErrMalformedResponse = errors.New("malformed mcq response")

// DecodeResponse validates a response body against the response schema and decodes it.
// An empty or whitespace-only body carries no questions.
func DecodeResponse(data []byte) (Response, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Response{}, nil
	}
	schema, err := compiledResponseSchema()
	if err != nil {
		return Response{}, fmt.Errorf("compile response schema: %w", err)
	}
	var raw interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return Response{}, fmt.Errorf("%w: parse json: %v", ErrMalformedResponse, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return Response{}, fmt.Errorf("%w: trailing data after json document", ErrMalformedResponse)
	}
	if err := schema.Validate(raw); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp, nil
}
