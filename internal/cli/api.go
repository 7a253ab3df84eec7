package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bijbelquiz-cli/internal/gateway"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassthrough(cmd, (*gateway.Client).Health)
		},
	}
}

func newQuestionsCmd() *cobra.Command {
	var query gateway.QuestionQuery
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Get quiz questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassthrough(cmd, func(gw *gateway.Client, ctx context.Context) (json.RawMessage, error) {
				return gw.QuestionsJSON(ctx, query)
			})
		},
	}
	cmd.Flags().StringVar(&query.Category, "category", "", "filter by category")
	cmd.Flags().IntVar(&query.Limit, "limit", 10, "number of questions")
	cmd.Flags().IntVar(&query.Difficulty, "difficulty", 0, "difficulty level (1-5)")
	return cmd
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Get user progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassthrough(cmd, (*gateway.Client).Progress)
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Get game statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassthrough(cmd, (*gateway.Client).Stats)
		},
	}
}

func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Get app settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassthrough(cmd, (*gateway.Client).Settings)
		},
	}
}

// runPassthrough calls one gateway endpoint and pretty-prints the raw response.
func runPassthrough(cmd *cobra.Command, call func(*gateway.Client, context.Context) (json.RawMessage, error)) error {
	gw, err := newGatewayClient()
	if err != nil {
		return err
	}
	raw, err := call(gw, cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd, raw)
}

func printJSON(cmd *cobra.Command, v any) error {
	var out bytes.Buffer
	switch data := v.(type) {
	case json.RawMessage:
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return fmt.Errorf("format response: %w", err)
		}
	default:
		encoded, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		out.Write(encoded)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return nil
}
