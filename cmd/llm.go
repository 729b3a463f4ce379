package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/store"
	"github.com/abhisek/quizgen/internal/ui/theme"
	"github.com/abhisek/quizgen/internal/ui/view"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM request log",
}

// withStore opens the request log for the duration of fn.
func withStore(cmd *cobra.Command, fn func(repo store.EventRepo) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s.EventRepo())
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		generation, _ := cmd.Flags().GetString("generation")

		return withStore(cmd, func(repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(cmd.Context(), store.QueryOpts{
				Limit:        limit,
				Purpose:      purpose,
				GenerationID: generation,
			})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No LLM events found.")
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, e := range events {
				ok := theme.Correct.Render("✓")
				if !e.Success {
					ok = theme.Incorrect.Render("✗")
				}
				rows = append(rows, []string{
					strconv.Itoa(e.ID),
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Purpose,
					shortID(e.GenerationID),
					strconv.Itoa(e.Attempt),
					truncate(e.Model, 28),
					strconv.Itoa(e.InputTokens),
					strconv.Itoa(e.OutputTokens),
					strconv.FormatInt(e.LatencyMs, 10),
					ok,
				})
			}
			lipgloss.Fprintln(out, view.Table(
				[]string{"ID", "Timestamp", "Purpose", "Generation", "Try", "Model", "In", "Out", "Ms", "OK"},
				rows, 0, 4, 6, 7, 8,
			))
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withStore(cmd, func(repo store.EventRepo) error {
			e, err := repo.GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			out := cmd.OutOrStdout()
			field := func(name, value string) {
				lipgloss.Fprintln(out, theme.Label.Render(fmt.Sprintf("%-11s", name+":"))+value)
			}

			field("ID", strconv.Itoa(e.ID))
			field("Time", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
			field("Provider", e.Provider)
			field("Model", e.Model)
			field("Purpose", e.Purpose)
			field("Generation", e.GenerationID)
			field("Attempt", strconv.Itoa(e.Attempt))
			field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
			field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
			if e.Success {
				field("Success", theme.Correct.Render("true"))
			} else {
				field("Success", theme.Incorrect.Render("false"))
			}
			if e.ErrorMessage != "" {
				field("Error", e.ErrorMessage)
			}

			for _, section := range []struct{ title, body string }{
				{"REQUEST", e.RequestBody},
				{"RESPONSE", e.ResponseBody},
			} {
				fmt.Fprintln(out)
				lipgloss.Fprintln(out, view.Heading(section.title, 60))
				if section.body != "" {
					fmt.Fprintln(out, section.body)
				} else {
					lipgloss.Fprintln(out, theme.Hint.Render("(not captured)"))
				}
			}
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(repo store.EventRepo) error {
			ctx := cmd.Context()
			stats, err := repo.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded yet.")
				return nil
			}

			// Usage by purpose.
			var totalCalls, totalFailures, totalIn, totalOut int
			rows := make([][]string, 0, len(stats)+1)
			for _, st := range stats {
				rows = append(rows, []string{
					st.Purpose,
					strconv.Itoa(st.Calls),
					strconv.Itoa(st.Failures),
					strconv.Itoa(st.InputTokens),
					strconv.Itoa(st.OutputTokens),
					strconv.Itoa(st.InputTokens + st.OutputTokens),
					strconv.FormatInt(st.AvgLatencyMs, 10),
				})
				totalCalls += st.Calls
				totalFailures += st.Failures
				totalIn += st.InputTokens
				totalOut += st.OutputTokens
			}
			rows = append(rows, []string{
				"TOTAL",
				strconv.Itoa(totalCalls),
				strconv.Itoa(totalFailures),
				strconv.Itoa(totalIn),
				strconv.Itoa(totalOut),
				strconv.Itoa(totalIn + totalOut),
				"",
			})
			lipgloss.Fprintln(out, theme.Title.Render("Usage by Purpose"))
			lipgloss.Fprintln(out, view.Table(
				[]string{"Purpose", "Calls", "Failed", "Input", "Output", "Total", "Avg Ms"},
				rows, 1, 2, 3, 4, 5, 6,
			))

			// Cost by model.
			modelUsage, err := repo.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(modelUsage) == 0 {
				return nil
			}

			var totalCost float64
			var unknownModels []string
			rows = rows[:0]
			for _, mu := range modelUsage {
				costCell := "?"
				if cost := llm.LookupCost(mu.Model); cost != nil {
					c := cost.Cost(mu.InputTokens, mu.OutputTokens)
					totalCost += c
					costCell = formatCost(c)
				} else {
					unknownModels = append(unknownModels, mu.Model)
				}
				rows = append(rows, []string{
					truncate(mu.Model, 32),
					strconv.Itoa(mu.Calls),
					strconv.Itoa(mu.InputTokens),
					strconv.Itoa(mu.OutputTokens),
					costCell,
				})
			}
			label := "TOTAL"
			if len(unknownModels) > 0 {
				label = "TOTAL (partial)"
			}
			rows = append(rows, []string{label, "", "", "", formatCost(totalCost)})

			fmt.Fprintln(out)
			lipgloss.Fprintln(out, theme.Title.Render("Estimated Cost (USD)"))
			lipgloss.Fprintln(out, view.Table(
				[]string{"Model", "Calls", "Input", "Output", "Cost"},
				rows, 1, 2, 3, 4,
			))

			if len(unknownModels) > 0 {
				lipgloss.Fprintln(out, theme.Hint.Render("Pricing unavailable for: "+strings.Join(unknownModels, ", ")))
			}
			return nil
		})
	},
}

// truncate shortens s to at most max terminal cells, never splitting a rune.
func truncate(s string, max int) string {
	return ansi.Truncate(s, max, "…")
}

// shortID abbreviates a UUID to its first group.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (mcq-gen, fill-blank-gen)")
	llmListCmd.Flags().StringP("generation", "g", "", "Filter by generation ID")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
