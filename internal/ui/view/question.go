// Package view renders quiz questions and request-log records for the
// terminal.
package view

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/quizgen"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// MCQ renders a multiple-choice question with lettered options. The correct
// option is highlighted when reveal is true.
func MCQ(q *quizgen.MCQQuestion, reveal bool) string {
	var b strings.Builder
	b.WriteString(theme.Question.Render(q.Question))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		line := fmt.Sprintf("  %s)  %s", label, opt)

		if reveal && opt == q.CorrectAnswer {
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		} else {
			b.WriteString(theme.Option.Render(line))
		}
		b.WriteString("\n")
	}

	if reveal {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("Answer: "))
		b.WriteString(theme.Correct.Render(q.CorrectAnswer))
	}

	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

// FillBlank renders a fill-in-the-blank question with the blank marker
// highlighted.
func FillBlank(q *quizgen.FillBlankQuestion, reveal bool) string {
	parts := strings.Split(q.Question, quizgen.BlankMarker)
	for i := range parts {
		parts[i] = theme.Question.Render(parts[i])
	}
	text := strings.Join(parts, theme.Blank.Render(quizgen.BlankMarker))

	if reveal {
		text += "\n\n" + theme.Label.Render("Answer: ") + theme.Correct.Render(q.Answer)
	}
	return theme.Card.Render(text)
}

// Heading renders a section title followed by a rule of the given width.
func Heading(title string, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(title),
		theme.Rule.Render(strings.Repeat("─", width)),
	)
}
