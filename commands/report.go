package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/tasktally/internal/core/model"
	"github.com/penwyp/tasktally/internal/presentation/formatter"
	"github.com/penwyp/tasktally/internal/report"
	"github.com/penwyp/tasktally/internal/store"
)

var (
	reportGrain  string
	reportOutput string
	reportSortBy string
	reportDesc   bool
	reportLimit  int

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Show aggregated duration totals",
		Long: `report sums logged intervals into daily, weekly, or monthly buckets
and prints the totals as unrestricted HH:MM:SS durations.

Examples:
  tasktally report                        # daily totals, ascending by date
  tasktally report --grain weekly         # totals per week starting Monday
  tasktally report --grain monthly -o csv
  tasktally report --sort-by duration --desc --limit 10`,
		RunE: runReport,
	}
)

func init() {
	reportCmd.Flags().StringVarP(&reportGrain, "grain", "g", "daily",
		"Aggregation grain (daily, weekly, monthly)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "table",
		"Output format (table, csv, json)")
	reportCmd.Flags().StringVar(&reportSortBy, "sort-by", "",
		"Sort column (date, day, duration); default ascending by bucket")
	reportCmd.Flags().BoolVar(&reportDesc, "desc", false,
		"Sort descending")
	reportCmd.Flags().IntVar(&reportLimit, "limit", 0,
		"Limit result count (0 = unlimited)")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	return withEngine(func(e *report.Engine, _ store.Store) error {
		var (
			rows         []model.SummaryRow
			bucketHeader string
			err          error
		)

		switch reportGrain {
		case "daily":
			rows, err = e.DailySummary()
			bucketHeader = "Date"
		case "weekly":
			rows, err = e.WeeklySummary()
			bucketHeader = "Week Start"
		case "monthly":
			rows, err = e.MonthlySummary()
			bucketHeader = "Month"
		default:
			return fmt.Errorf("unknown grain: %s (expected daily, weekly, or monthly)", reportGrain)
		}
		if err != nil {
			return err
		}

		if reportSortBy != "" {
			field, err := report.ParseSortField(reportSortBy)
			if err != nil {
				return err
			}
			report.SortRows(rows, field, reportDesc)
		} else if reportDesc {
			report.SortRows(rows, report.SortByBucket, true)
		}

		if reportLimit > 0 && len(rows) > reportLimit {
			rows = rows[:reportLimit]
		}

		doc := formatter.SummaryDocument(bucketHeader, rows)
		return formatter.New(reportOutput, cmd.OutOrStdout()).Format(doc)
	})
}
