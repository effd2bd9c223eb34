package cmd

import (
	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "skillmatch",
	Short: "Skill assessments for job seekers, shortlists for employers",
	Long:  "SkillMatch: take an AI-evaluated skill quiz for a job role, or find top candidates as an employer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLMATCH_DB env var)")
	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from this file (default .env when present)")
	rootCmd.Flags().Bool("skip-splash", false, "Start without the welcome animation")

	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig resolves configuration with the --db flag taking priority over
// SKILLMATCH_DB and the default XDG path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	envFile, _ := cmd.Flags().GetString("env-file")
	return config.Load(config.Overrides{DBPath: dbPath, EnvFile: envFile})
}
