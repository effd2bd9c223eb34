package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update [version]",
	Short: "Replace this binary with the latest (or given) release",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		current := currentVersion()
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))

		if only, _ := cmd.Flags().GetBool("check"); only {
			res, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: current})
			if err != nil {
				return err
			}
			if res.UpdateAvailable {
				fmt.Fprintf(out, "Update available: %s (running %s)\n%s\n", res.LatestVersion, current, res.ReleaseURL)
			} else {
				fmt.Fprintf(out, "Running %s, latest release is %s.\n", current, res.LatestVersion)
			}
			return nil
		}

		input := &selfupdate.UpdateInput{CurrentVersion: current}
		if len(args) == 1 {
			input.TargetVersion = args[0]
		}
		err := checker.Update(cmd.Context(), input, func(p selfupdate.UpdateProgress) {
			fmt.Fprintln(out, p.Message)
		})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Fprintln(out, "Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintf(out, "Already running the latest version (%s).\n", current)
			return nil
		case errors.Is(err, os.ErrPermission):
			return fmt.Errorf("%w\n\nTry running: sudo skillmatch update", err)
		}
		return err
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only report whether a newer release exists")
}
