package quizgen

import (
	"fmt"
	"strings"
)

// MCQStructuralValidator checks that the question text is present and that
// exactly OptionCount options were returned.
type MCQStructuralValidator struct{}

func (v *MCQStructuralValidator) Name() string { return "structural" }

func (v *MCQStructuralValidator) Validate(q *MCQQuestion) *ValidationError {
	if q.Question == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
		}
	}
	if len(q.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)),
		}
	}
	return nil
}

// ChoiceValidator checks that options are non-empty and distinct, and that
// the correct answer is one of them.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choices" }

func (v *ChoiceValidator) Validate(q *MCQQuestion) *ValidationError {
	for i, o := range q.Options {
		if o == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options contain an empty entry",
			}
		}
		if containsFold(q.Options[:i], o) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", o),
			}
		}
	}
	if q.CorrectAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer is empty",
		}
	}
	if !containsFold(q.Options, q.CorrectAnswer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct_answer %q is not one of the options", q.CorrectAnswer),
		}
	}
	return nil
}

// containsFold reports whether s matches an item under Unicode case
// folding, the same rule parseMCQ uses to normalize the answer.
func containsFold(items []string, s string) bool {
	for _, item := range items {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// BlankMarkerValidator checks that the question contains BlankMarker and
// that an answer was given.
type BlankMarkerValidator struct{}

func (v *BlankMarkerValidator) Name() string { return "blank-marker" }

func (v *BlankMarkerValidator) Validate(q *FillBlankQuestion) *ValidationError {
	if !strings.Contains(q.Question, BlankMarker) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question must contain " + BlankMarker,
		}
	}
	if q.Answer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
		}
	}
	return nil
}
