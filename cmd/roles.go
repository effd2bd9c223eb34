package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/quiz"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List assessable job roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")

		roles := quiz.FilterRoles(search, quiz.Category(category))
		out := cmd.OutOrStdout()
		if len(roles) == 0 {
			fmt.Fprintln(out, "No roles found.")
			return nil
		}

		sel := quiz.Default()
		rows := make([][]string, len(roles))
		for i, r := range roles {
			rows[i] = []string{r.Title, string(r.Category), strconv.Itoa(sel.Count(r.Title))}
		}
		printTable(out, []string{"Role", "Category", "Questions"}, rows)
		return nil
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Inspect the question bank",
}

var quizSelectCmd = &cobra.Command{
	Use:   "select <role>",
	Short: "Print a random quiz for a role",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := strings.Join(args, " ")
		qs, err := quiz.Default().Select(role)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, q := range qs {
			fmt.Fprintf(out, "%2d. %s\n", i+1, q.Text)
		}
		return nil
	},
}

var quizValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the built-in question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := quiz.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Question bank OK.")
		return nil
	},
}

func init() {
	rolesCmd.Flags().StringP("search", "s", "", "Filter by title")
	rolesCmd.Flags().StringP("category", "c", "", "Filter by category (Engineering, Design, Product, Data Science)")

	quizCmd.AddCommand(quizSelectCmd)
	quizCmd.AddCommand(quizValidateCmd)
}
