package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bijbelquiz-cli/internal/config"
	"bijbelquiz-cli/internal/domain"
	"bijbelquiz-cli/internal/game"
	"bijbelquiz-cli/internal/gateway"
	"bijbelquiz-cli/internal/term"
)

func newGameCmd() *cobra.Command {
	var query gateway.QuestionQuery
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Start an interactive quiz game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, query)
		},
	}
	cmd.Flags().StringVar(&query.Category, "category", "", "filter by category")
	cmd.Flags().IntVar(&query.Difficulty, "difficulty", 0, "difficulty level (1-5)")
	cmd.Flags().IntVar(&query.Limit, "questions", 10, "number of questions to play")
	return cmd
}

func runGame(cmd *cobra.Command, query gateway.QuestionQuery) error {
	gw, err := newGatewayClient()
	if err != nil {
		return err
	}

	// An interrupt cancels the context instead of killing the process, so the
	// session can still settle earned stars with the ledger.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Loading questions...")
	questions, err := gw.FetchQuestions(ctx, query)
	if errors.Is(err, domain.ErrNoQuestions) {
		fmt.Fprintln(out, "No questions available. Check the API connection and try again.")
		return nil
	}
	if err != nil {
		return err
	}

	pause := config.PauseDuration(loadedCfg.Game.Pause, 2*time.Second)
	presenter := term.New(cmd.InOrStdin(), out)
	controller := game.New(presenter, gw, game.WithPause(pause))

	_, err = controller.Run(ctx, questions)
	return err
}
