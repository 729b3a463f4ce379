package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/ui/view"
)

var mcqCmd = &cobra.Command{
	Use:   "mcq <topic>",
	Short: "Generate a multiple-choice question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer sess.Close()

		difficulty, _ := cmd.Flags().GetString("difficulty")
		ctx, cancel := sess.generateContext(cmd.Context())
		defer cancel()

		q, err := sess.generator.GenerateMCQ(ctx, strings.Join(args, " "), difficulty)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(out, q)
		}
		hide, _ := cmd.Flags().GetBool("hide-answer")
		lipgloss.Fprintln(out, view.MCQ(q, !hide))
		return nil
	},
}

var blankCmd = &cobra.Command{
	Use:   "blank <topic>",
	Short: "Generate a fill-in-the-blank question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer sess.Close()

		difficulty, _ := cmd.Flags().GetString("difficulty")
		ctx, cancel := sess.generateContext(cmd.Context())
		defer cancel()

		q, err := sess.generator.GenerateFillBlank(ctx, strings.Join(args, " "), difficulty)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(out, q)
		}
		hide, _ := cmd.Flags().GetBool("hide-answer")
		lipgloss.Fprintln(out, view.FillBlank(q, !hide))
		return nil
	},
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{mcqCmd, blankCmd} {
		c.Flags().StringP("difficulty", "d", "medium", "Difficulty passed to the prompt (easy, medium, hard)")
		c.Flags().Bool("json", false, "Print the question as JSON")
		c.Flags().Bool("hide-answer", false, "Do not reveal the answer")
	}

	mcqCmd.Example = "  quizgen mcq \"the water cycle\" -d easy\n  quizgen mcq photosynthesis --json"
	blankCmd.Example = "  quizgen blank \"French revolution\" -d hard"
}
