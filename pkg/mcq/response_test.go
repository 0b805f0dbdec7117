package mcq

import (
	"errors"
	"testing"
)

func TestDecodeResponseAcceptsServiceBody(t *testing.T) {
	body := `{
  "mcqs": [
    {"number": 1, "question": "Unit of force?", "options": ["Newton", "Joule", "Watt", "Pascal"]},
    {"number": 2, "question": "Speed of light?", "options": ["3e8 m/s", "3e6 m/s", "340 m/s", "1 m/s"]}
  ],
  "fallback_used": true
}`
	resp, err := DecodeResponse([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.MCQs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(resp.MCQs))
	}
	if resp.MCQs[0].Prompt != "Unit of force?" {
		t.Fatalf("unexpected prompt %q", resp.MCQs[0].Prompt)
	}
	if got := resp.MCQs[1].Options[2]; got != "340 m/s" {
		t.Fatalf("expected option order preserved, got %q", got)
	}
	if !resp.FallbackUsed {
		t.Fatalf("expected fallback_used to be decoded")
	}
}

func TestDecodeResponseEmptyShapes(t *testing.T) {
	cases := map[string]string{
		"missing":    `{}`,
		"null":       `{"mcqs": null}`,
		"empty":      `{"mcqs": []}`,
		"extra":      `{"mcqs": [], "note": "nothing found"}`,
		"no body":    ``,
		"whitespace": " \r\n\t ",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp, err := DecodeResponse([]byte(body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(resp.MCQs) != 0 {
				t.Fatalf("expected no questions, got %d", len(resp.MCQs))
			}
		})
	}
}

func TestDecodeResponseRejectsMalformedBodies(t *testing.T) {
	cases := map[string]string{
		"not json":        `<html>oops</html>`,
		"array root":      `[]`,
		"mcqs not array":  `{"mcqs": "none"}`,
		"missing options": `{"mcqs": [{"question": "q"}]}`,
		"too many":        `{"mcqs": [{"question": "q", "options": ["a","b","c","d","e"]}]}`,
		"one option":      `{"mcqs": [{"question": "q", "options": ["a"]}]}`,
		"numeric option":  `{"mcqs": [{"question": "q", "options": ["a", 2, "c", "d"]}]}`,
		"trailing":        `{"mcqs": []} {}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeResponse([]byte(body))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}
