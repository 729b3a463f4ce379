package quizgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizgen/internal/llm"
)

// questionText decodes the "question" field, which models sometimes send
// as {"description": "..."} instead of a plain string. Any other object is
// kept as its JSON text.
type questionText string

func (q *questionText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = questionText(s)
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("question must be a string or object: %w", err)
	}
	if desc, ok := obj["description"].(string); ok {
		*q = questionText(desc)
		return nil
	}
	*q = questionText(bytes.TrimSpace(data))
	return nil
}

// mcqOutput is the raw LLM response before validation.
type mcqOutput struct {
	Question      questionText `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correct_answer"`
}

// fillBlankOutput is the raw LLM response before validation.
type fillBlankOutput struct {
	Question questionText `json:"question"`
	Answer   string       `json:"answer"`
}

// parseMCQ decodes a completion into an MCQQuestion. Text is trimmed and a
// correct answer that matches an option case-insensitively is replaced by
// that option's exact text.
func parseMCQ(content []byte) (*MCQQuestion, error) {
	var raw mcqOutput
	if err := decodeObject(content, &raw); err != nil {
		return nil, err
	}

	q := &MCQQuestion{
		Question:      strings.TrimSpace(string(raw.Question)),
		Options:       make([]string, len(raw.Options)),
		CorrectAnswer: strings.TrimSpace(raw.CorrectAnswer),
	}
	for i, o := range raw.Options {
		q.Options[i] = strings.TrimSpace(o)
	}
	for _, o := range q.Options {
		if strings.EqualFold(o, q.CorrectAnswer) {
			q.CorrectAnswer = o
			break
		}
	}
	return q, nil
}

// parseFillBlank decodes a completion into a FillBlankQuestion.
func parseFillBlank(content []byte) (*FillBlankQuestion, error) {
	var raw fillBlankOutput
	if err := decodeObject(content, &raw); err != nil {
		return nil, err
	}
	return &FillBlankQuestion{
		Question: strings.TrimSpace(string(raw.Question)),
		Answer:   strings.TrimSpace(raw.Answer),
	}, nil
}

func decodeObject(content []byte, v any) error {
	obj, err := llm.ExtractJSON(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if err := json.Unmarshal(obj, v); err != nil {
		return fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return nil
}
