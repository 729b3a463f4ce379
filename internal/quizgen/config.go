package quizgen

import "github.com/abhisek/quizgen/internal/llm"

// Config controls the behavior of the QuestionGenerator.
type Config struct {
	// MCQValidators run in order on every parsed multiple-choice question;
	// the first failure rejects the attempt.
	MCQValidators []Validator[MCQQuestion]

	// FillBlankValidators run in order on every parsed fill-in-the-blank
	// question.
	FillBlankValidators []Validator[FillBlankQuestion]

	// MaxAttempts bounds the attempts per generate call, each a single
	// LLM request.
	MaxAttempts int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness.
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chains and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		MCQValidators: []Validator[MCQQuestion]{
			&MCQStructuralValidator{},
			&ChoiceValidator{},
		},
		FillBlankValidators: []Validator[FillBlankQuestion]{
			&BlankMarkerValidator{},
		},
		MaxAttempts: llm.DefaultMaxAttempts,
		MaxTokens:   512,
		Temperature: 0.9,
	}
}

// LenientMCQValidators is the validator chain that only checks what the
// question shape strictly requires: a question and exactly 4 options.
func LenientMCQValidators() []Validator[MCQQuestion] {
	return []Validator[MCQQuestion]{&MCQStructuralValidator{}}
}
