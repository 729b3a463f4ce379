package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object found in response")

// ExtractJSON pulls the JSON object out of a completion. Models often wrap
// the object in Markdown fences or surround it with prose; both are
// stripped. The outermost {...} span is returned when the text itself is
// not valid JSON.
func ExtractJSON(text string) (json.RawMessage, error) {
	s := stripCodeFences(text)
	if strings.HasPrefix(s, "{") && json.Valid([]byte(s)) {
		return json.RawMessage(s), nil
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, errNoJSONObject
	}

	candidate := s[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, errors.New("response contains malformed JSON")
	}
	return json.RawMessage(candidate), nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
