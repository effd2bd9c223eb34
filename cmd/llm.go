package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/llm"
	"github.com/skillmatch/skillmatch/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded evaluation calls",
	Long: `Every request to the evaluation model is recorded in the local database
with its prompt, response, token counts and latency. These commands read
that log.`,
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failed, _ := cmd.Flags().GetBool("failed")

		return withStore(cmd, func(s *store.Store) error {
			events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose, Failed: failed})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}

			var rows [][]string
			for _, e := range events {
				rows = append(rows, []string{
					strconv.Itoa(e.ID),
					e.Timestamp.Local().Format(timeLayout),
					e.Purpose,
					truncate(e.Model, 28),
					strconv.Itoa(e.InputTokens),
					strconv.Itoa(e.OutputTokens),
					strconv.FormatInt(e.LatencyMs, 10),
					status(e.Success),
				})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No LLM events found.")
				return nil
			}
			printTable(out, []string{"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK"}, rows)
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and response of one call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		return withStore(cmd, func(s *store.Store) error {
			e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}
			writeEvent(cmd.OutOrStdout(), e)
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.Store) error {
			ctx := cmd.Context()
			byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(byPurpose) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded yet.")
				return nil
			}

			var calls, in, outTok int
			rows := make([][]string, 0, len(byPurpose)+1)
			for _, u := range byPurpose {
				rows = append(rows, []string{
					u.Purpose,
					strconv.Itoa(u.Calls),
					strconv.Itoa(u.InputTokens),
					strconv.Itoa(u.OutputTokens),
					strconv.FormatInt(u.AvgLatencyMs, 10),
				})
				calls += u.Calls
				in += u.InputTokens
				outTok += u.OutputTokens
			}
			rows = append(rows, []string{"TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(outTok), ""})
			fmt.Fprintln(out, "Usage by purpose")
			printTable(out, []string{"Purpose", "Calls", "Input", "Output", "Avg Ms"}, rows)

			byModel, err := s.EventRepo().LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			writeCosts(out, byModel)
			return nil
		})
	},
}

func writeEvent(w io.Writer, e *store.LLMEvent) {
	fmt.Fprintf(w, "ID:        %d\n", e.ID)
	fmt.Fprintf(w, "Time:      %s\n", e.Timestamp.Local().Format(timeLayout))
	fmt.Fprintf(w, "Provider:  %s\n", e.Provider)
	fmt.Fprintf(w, "Model:     %s\n", e.Model)
	fmt.Fprintf(w, "Purpose:   %s\n", e.Purpose)
	fmt.Fprintf(w, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
	fmt.Fprintf(w, "Latency:   %dms\n", e.LatencyMs)
	fmt.Fprintf(w, "Status:    %s\n", status(e.Success))
	if e.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:     %s\n", e.ErrorMessage)
	}

	for _, sec := range []struct{ title, body string }{
		{"REQUEST", e.RequestBody},
		{"RESPONSE", e.ResponseBody},
	} {
		body := sec.body
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintf(w, "\n── %s %s\n%s\n", sec.title, strings.Repeat("─", 50-len(sec.title)), strings.TrimRight(body, "\n"))
	}
}

func writeCosts(w io.Writer, usage []store.LLMModelUsage) {
	if len(usage) == 0 {
		return
	}

	var (
		total   float64
		unknown []string
		rows    [][]string
	)
	for _, u := range usage {
		cost := "?"
		if c := llm.LookupCost(u.Model); c != nil {
			usd := c.Cost(u.InputTokens, u.OutputTokens)
			total += usd
			cost = formatCost(usd)
		} else {
			unknown = append(unknown, u.Model)
		}
		rows = append(rows, []string{truncate(u.Model, 32), strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), cost})
	}

	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	rows = append(rows, []string{label, "", "", "", formatCost(total)})

	fmt.Fprintln(w, "\nEstimated cost (USD)")
	printTable(w, []string{"Model", "Calls", "Input", "Output", "Cost"}, rows)
	if len(unknown) > 0 {
		fmt.Fprintf(w, "Pricing unavailable for: %s\n", strings.Join(unknown, ", "))
	}
}

// withStore opens the database without the account layer and closes it
// after fn returns.
func withStore(cmd *cobra.Command, fn func(*store.Store) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	return fn(s)
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. evaluation)")
	llmListCmd.Flags().Bool("failed", false, "Only show failed calls")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
