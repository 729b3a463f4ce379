package quizgen

import "testing"

func TestParseMCQ_QuestionField(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{"string", `"What is 2 + 2?"`, "What is 2 + 2?"},
		{"object with description", `{"description": " What is 2 + 2? "}`, "What is 2 + 2?"},
		{"object without description", `{"text": "What is 2 + 2?"}`, `{"text": "What is 2 + 2?"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `{"question": ` + tt.question + `, "options": ["3", "4", "5", "6"], "correct_answer": "4"}`
			q, err := parseMCQ([]byte(content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Question != tt.want {
				t.Errorf("got %q, want %q", q.Question, tt.want)
			}
		})
	}
}

func TestParseMCQ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no object", "I cannot answer that."},
		{"truncated", `{"question": "Q?", "options": ["a",`},
		{"question is a number", `{"question": 42, "options": [], "correct_answer": ""}`},
		{"options not a list", `{"question": "Q?", "options": "a, b, c, d", "correct_answer": "a"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseMCQ([]byte(tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseMCQ_KeepsUnmatchedAnswer(t *testing.T) {
	q, err := parseMCQ([]byte(`{"question": "Q?", "options": ["a", "b", "c", "d"], "correct_answer": " z "}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectAnswer != "z" {
		t.Errorf("expected trimmed answer, got %q", q.CorrectAnswer)
	}
}

func TestParseFillBlank(t *testing.T) {
	q, err := parseFillBlank([]byte("```\n" + `{"question": "Water boils at _____ degrees Celsius. ", "answer": " 100"}` + "\n```"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Question != "Water boils at _____ degrees Celsius." {
		t.Errorf("unexpected question %q", q.Question)
	}
	if q.Answer != "100" {
		t.Errorf("unexpected answer %q", q.Answer)
	}
}
