package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports a shape failure: model output that is empty, not valid
// JSON, or not conformant to the expected schema. It is distinct from a
// backend error, which is never retried.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Schema is a decodable record that can validate itself after decoding.
type Schema interface {
	Validate() error
}

// ExtractJSON pulls a JSON object out of a raw model response. Markdown code
// fences are stripped line-wise; otherwise the text is sliced from the first
// '{' to the last '}' to tolerate leading and trailing prose the model added
// despite instructions.
func ExtractJSON(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", &ParseError{Reason: "response was empty"}
	}

	if strings.HasPrefix(text, "```") {
		var kept []string
		for _, line := range strings.Split(text, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				continue
			}
			kept = append(kept, line)
		}
		return strings.TrimSpace(strings.Join(kept, "\n")), nil
	}

	left := strings.Index(text, "{")
	right := strings.LastIndex(text, "}")
	if left != -1 && right > left {
		return text[left : right+1], nil
	}
	return text, nil
}

// ParseInto extracts the JSON object from raw, decodes it into target, and
// validates the result. Every failure mode is a *ParseError.
func ParseInto(raw string, target Schema) error {
	cleaned, err := ExtractJSON(raw)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return &ParseError{Reason: "response was not valid JSON", Err: err}
	}

	if err := target.Validate(); err != nil {
		return &ParseError{Reason: "response did not match the expected schema", Err: err}
	}
	return nil
}
