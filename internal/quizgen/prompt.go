package quizgen

import (
	"fmt"
	"strings"
)

const mcqPromptFormat = `Generate a %s multiple-choice question about %s.

Return ONLY a JSON object with these exact fields:
- 'question': A clear, specific question
- 'options': An array of exactly 4 possible answers
- 'correct_answer': One of the options that is the correct answer

Example format:
{
    "question": "What is the capital of France?",
    "options": ["London", "Berlin", "Paris", "Madrid"],
    "correct_answer": "Paris"
}

Your response:`

const fillBlankPromptFormat = `Generate a %s fill-in-the-blank question about %s.

Return ONLY a JSON object with these exact fields:
- 'question': A sentence with '_____' marking where the blank should be
- 'answer': The correct word or phrase that belongs in the blank

Example format:
{
    "question": "The capital of France is _____.",
    "answer": "Paris"
}

Your response:`

// buildMCQPrompt renders the multiple-choice prompt.
func buildMCQPrompt(topic, difficulty string) string {
	return fmt.Sprintf(mcqPromptFormat, normalizeDifficulty(difficulty), strings.TrimSpace(topic))
}

// buildFillBlankPrompt renders the fill-in-the-blank prompt.
func buildFillBlankPrompt(topic, difficulty string) string {
	return fmt.Sprintf(fillBlankPromptFormat, normalizeDifficulty(difficulty), strings.TrimSpace(topic))
}

// normalizeDifficulty defaults an empty difficulty to "medium".
func normalizeDifficulty(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return DifficultyMedium
	}
	return d
}
