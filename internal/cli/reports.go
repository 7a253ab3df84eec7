package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bijbelquiz-cli/internal/config"
	"bijbelquiz-cli/internal/reports"
)

func newReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Inspect error reports from the hosted database",
	}
	cmd.AddCommand(newReportsListCmd(), newReportsShowCmd())
	return cmd
}

// openReportStore resolves the database DSN (env wins over the config file)
// and opens a store against it. The caller owns the returned cleanup.
func openReportStore() (*reports.Store, func(), error) {
	dsn := loadedCfg.Reports.DatabaseURL
	env, err := config.LoadReportsEnv()
	if err == nil && env.DatabaseURL != "" {
		dsn = env.DatabaseURL
	}
	if dsn == "" {
		return nil, nil, errors.New("no report database configured (set SUPABASE_DB_URL or reports.database_url)")
	}
	db := reports.OpenDB(dsn)
	return reports.NewStore(db), func() { _ = db.Close() }, nil
}

func newReportsListCmd() *cobra.Command {
	var filter reports.Filter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reported errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openReportStore()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			if err := store.Ping(ctx); err != nil {
				return err
			}

			listing, err := reports.NewService(store, logger).List(ctx, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIMESTAMP\tTYPE\tUSER\tQUESTION\tMESSAGE")
			for _, report := range listing.Reports {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					report.Timestamp.Format("2006-01-02 15:04:05"),
					report.ErrorType,
					report.UserID,
					report.QuestionID,
					report.Summary(50),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nShowing %d of %d errors\n", len(listing.Reports), listing.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.ErrorType, "type", "",
		"filter by error type (e.g. "+reports.KnownErrorTypes[0]+")")
	cmd.Flags().StringVar(&filter.UserID, "user", "", "filter by user ID")
	cmd.Flags().StringVar(&filter.QuestionID, "question", "", "filter by question ID")
	cmd.Flags().IntVar(&filter.Limit, "limit", 50, "maximum rows to show")
	return cmd
}

func newReportsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one error report in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openReportStore()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			if err := store.Ping(ctx); err != nil {
				return err
			}

			report, err := reports.NewService(store, logger).Get(ctx, args[0])
			if err != nil {
				return err
			}
			printReportDetail(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func printReportDetail(out io.Writer, r reports.ErrorReport) {
	section := func(title string) {
		fmt.Fprintf(out, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	}
	field := func(name, value string) {
		if value == "" {
			value = "N/A"
		}
		fmt.Fprintf(out, "%-20s %s\n", name+":", value)
	}

	section("ERROR DETAILS")
	field("ID", r.ID)
	field("Timestamp", r.Timestamp.Format("2006-01-02 15:04:05"))
	field("Error Type", r.ErrorType)
	field("User ID", r.UserID)
	field("Question ID", r.QuestionID)

	section("ERROR INFORMATION")
	field("Technical Message", r.ErrorMessage)
	field("User Message", r.UserMessage)
	field("Error Code", r.ErrorCode)

	section("CONTEXT INFORMATION")
	field("Context", r.Context)
	field("Additional Info", r.AdditionalInfo)
	field("Stack Trace", r.StackTrace)

	section("APP INFORMATION")
	field("Device Info", r.DeviceInfo)
	field("App Version", r.AppVersion)
	field("Build Number", r.BuildNumber)
}
