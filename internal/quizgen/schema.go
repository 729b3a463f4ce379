package quizgen

import "github.com/abhisek/quizgen/internal/llm"

// questionSchema accepts the question as text or as an object. Some models
// echo the field descriptions back as {"description": "..."}; any other
// object is accepted too and parsed as its JSON text.
//
// Strict vendor modes require closed objects, so the vendor-facing form
// only admits the "description" shape.
func questionSchema(strict bool) map[string]any {
	obj := map[string]any{"type": "object"}
	if strict {
		obj = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"description": map[string]any{"type": "string"},
			},
			"required":             []any{"description"},
			"additionalProperties": false,
		}
	}
	return map[string]any{
		"anyOf": []any{
			map[string]any{
				"type":        "string",
				"description": "The question text",
			},
			obj,
		},
	}
}

func mcqDefinition(strict bool) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": questionSchema(strict),
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of 4 possible answers",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct answer from the options",
			},
		},
		"required":             []any{"question", "options", "correct_answer"},
		"additionalProperties": false,
	}
}

func fillBlankDefinition(strict bool) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": questionSchema(strict),
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct word or phrase for the blank",
			},
		},
		"required":             []any{"question", "answer"},
		"additionalProperties": false,
	}
}

// MCQSchema defines the JSON schema for multiple-choice responses.
var MCQSchema = &llm.Schema{
	Name:        "mcq-question",
	Description: "A multiple-choice question with 4 options and the correct answer",
	Definition:  mcqDefinition(false),
	Strict:      mcqDefinition(true),
}

// FillBlankSchema defines the JSON schema for fill-in-the-blank responses.
var FillBlankSchema = &llm.Schema{
	Name:        "fill-blank-question",
	Description: "A sentence with a '_____' blank and the word or phrase that fills it",
	Definition:  fillBlankDefinition(false),
	Strict:      fillBlankDefinition(true),
}
