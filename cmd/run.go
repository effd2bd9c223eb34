package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/app"
	"github.com/skillmatch/skillmatch/internal/assessment"
	"github.com/skillmatch/skillmatch/internal/evaluation"
	"github.com/skillmatch/skillmatch/internal/llm"
	"github.com/skillmatch/skillmatch/internal/quiz"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	session, err := account.Restore(ctx, svc.accounts)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	opts := app.Options{
		Accounts: svc.accounts,
		Session:  session,
		Selector: quiz.Default(),
		Board:    assessment.NewBoard(),
		Log:      svc.log,
	}
	opts.SkipSplash, _ = cmd.Flags().GetBool("skip-splash")

	provider, err := llm.NewProvider(ctx, svc.cfg.LLM, svc.store.EventRepo(), svc.log.With("llm"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quizzes can be taken but not evaluated.")
		svc.log.Warn().Err(err).Msg("llm provider unavailable")
		opts.Evaluator = evaluation.Unavailable(err)
	} else {
		evalCfg := evaluation.DefaultConfig()
		evalCfg.Timeout = svc.cfg.EvaluationTimeout
		opts.Evaluator = evaluation.New(provider, evalCfg)
	}

	return app.Run(opts)
}
