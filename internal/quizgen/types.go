package quizgen

// BlankMarker is the placeholder a fill-in-the-blank question must contain.
const BlankMarker = "_____"

// OptionCount is the number of options in a multiple-choice question.
const OptionCount = 4

// Difficulty is passed verbatim into the prompt. Any non-empty text is
// accepted; the constants cover the usual levels.
type Difficulty = string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MCQQuestion is a generated multiple-choice question.
type MCQQuestion struct {
	// Question is the question text.
	Question string `json:"question"`

	// Options holds exactly 4 possible answers in display order.
	Options []string `json:"options"`

	// CorrectAnswer is the text of the correct option.
	CorrectAnswer string `json:"correct_answer"`
}

// FillBlankQuestion is a generated fill-in-the-blank question.
type FillBlankQuestion struct {
	// Question is a sentence containing BlankMarker where the answer goes.
	Question string `json:"question"`

	// Answer is the word or phrase that belongs in the blank.
	Answer string `json:"answer"`
}
