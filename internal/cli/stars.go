package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bijbelquiz-cli/internal/domain"
	"bijbelquiz-cli/internal/gateway"
)

func newStarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stars",
		Short: "Star management commands",
	}
	cmd.AddCommand(
		newStarsBalanceCmd(),
		newStarsAddCmd(),
		newStarsSpendCmd(),
		newStarsTransactionsCmd(),
		newStarsStatsCmd(),
	)
	return cmd
}

func newStarsBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Get star balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassthrough(cmd, (*gateway.Client).StarBalance)
		},
	}
}

func newStarsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Get star statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassthrough(cmd, (*gateway.Client).StarStats)
		},
	}
}

func newStarsAddCmd() *cobra.Command {
	var lessonID string
	cmd := &cobra.Command{
		Use:   "add <amount> <reason>",
		Short: "Add stars",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStarMutation(cmd, args, lessonID, (*gateway.Client).AddStars)
		},
	}
	cmd.Flags().StringVar(&lessonID, "lesson-id", "", "lesson ID")
	return cmd
}

func newStarsSpendCmd() *cobra.Command {
	var lessonID string
	cmd := &cobra.Command{
		Use:   "spend <amount> <reason>",
		Short: "Spend stars",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStarMutation(cmd, args, lessonID, (*gateway.Client).SpendStars)
		},
	}
	cmd.Flags().StringVar(&lessonID, "lesson-id", "", "lesson ID")
	return cmd
}

func runStarMutation(cmd *cobra.Command, args []string, lessonID string,
	call func(*gateway.Client, context.Context, domain.RewardSubmission) (domain.StarUpdate, error)) error {

	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("amount must be a number: %q", args[0])
	}
	gw, err := newGatewayClient()
	if err != nil {
		return err
	}
	update, err := call(gw, cmd.Context(), domain.RewardSubmission{
		Amount:   amount,
		Reason:   args[1],
		LessonID: lessonID,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, update)
}

func newStarsTransactionsCmd() *cobra.Command {
	var query gateway.TransactionQuery
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Get star transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassthrough(cmd, func(gw *gateway.Client, ctx context.Context) (json.RawMessage, error) {
				return gw.StarTransactions(ctx, query)
			})
		},
	}
	cmd.Flags().IntVar(&query.Limit, "limit", 50, "number of transactions")
	cmd.Flags().StringVar(&query.Type, "type", "", "filter by type (earned|spent|lesson_reward|refund)")
	cmd.Flags().StringVar(&query.LessonID, "lesson-id", "", "filter by lesson ID")
	return cmd
}
