package commands

import (
	"github.com/spf13/cobra"

	"github.com/penwyp/tasktally/internal/presentation/formatter"
	"github.com/penwyp/tasktally/internal/report"
	"github.com/penwyp/tasktally/internal/store"
)

var (
	chartDays   string
	chartOutput string

	chartCmd = &cobra.Command{
		Use:   "chart",
		Short: "Show per-day hours for charting",
		Long: `chart reports one row per calendar date with the summed duration as
fractional hours, optionally limited to the last 7 or 30 days.

Examples:
  tasktally chart              # every logged date
  tasktally chart --days 7     # last week only
  tasktally chart --days 30 -o json`,
		RunE: runChart,
	}
)

func init() {
	chartCmd.Flags().StringVar(&chartDays, "days", "all",
		"Recency window (7, 30, or all)")
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "table",
		"Output format (table, csv, json)")

	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	return withEngine(func(e *report.Engine, _ store.Store) error {
		rows, err := e.WindowedSummary(report.ParseWindow(chartDays))
		if err != nil {
			return err
		}

		doc := formatter.WindowDocument(rows)
		return formatter.New(chartOutput, cmd.OutOrStdout()).Format(doc)
	})
}
