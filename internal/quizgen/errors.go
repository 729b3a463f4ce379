package quizgen

import "fmt"

// Kind names the question type a GenerationError belongs to.
type Kind string

const (
	KindMCQ       Kind = "MCQ"
	KindFillBlank Kind = "fill-blank"
)

// GenerationError is returned when every attempt of a generate call failed.
// It wraps the error of the last attempt.
type GenerationError struct {
	Kind     Kind
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
