package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/penwyp/tasktally/internal/core/model"
	"github.com/penwyp/tasktally/internal/presentation/formatter"
	"github.com/penwyp/tasktally/internal/report"
	"github.com/penwyp/tasktally/internal/store"
	"github.com/penwyp/tasktally/internal/util"
	"github.com/penwyp/tasktally/internal/watch"
)

var (
	watchGrain string

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Live-refreshing report",
		Long: `watch re-renders a report whenever the database file changes. The
database is opened read-only per refresh, so another tasktally process can
keep logging intervals while this one displays them.`,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().StringVarP(&watchGrain, "grain", "g", "daily",
		"Aggregation grain (daily, weekly, monthly)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if watchGrain != "daily" && watchGrain != "weekly" && watchGrain != "monthly" {
		return fmt.Errorf("unknown grain: %s (expected daily, weekly, or monthly)", watchGrain)
	}

	if _, err := os.Stat(cfg.Storage.DBPath); err != nil {
		return fmt.Errorf("database %s does not exist yet; run tasktally first to create it", cfg.Storage.DBPath)
	}

	refresh := func() {
		if err := renderOnce(cmd, cfg.Storage.DBPath); err != nil {
			util.LogWarnf("Refresh failed: %v", err)
		}
	}

	w, err := watch.New(watch.Config{Path: cfg.Storage.DBPath}, refresh)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func renderOnce(cmd *cobra.Command, dbPath string) error {
	st, err := store.OpenReadOnly(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	e := report.New(st, util.GetTimeProvider())

	var (
		rows         []model.SummaryRow
		bucketHeader string
	)
	switch watchGrain {
	case "weekly":
		rows, err = e.WeeklySummary()
		bucketHeader = "Week Start"
	case "monthly":
		rows, err = e.MonthlySummary()
		bucketHeader = "Month"
	default:
		rows, err = e.DailySummary()
		bucketHeader = "Date"
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, "\033[H\033[2J") // clear screen and home cursor

	table := formatter.NewTableFormatter(out)
	if width, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && width > 0 {
		table.SetMaxWidth(width)
	}
	return table.Format(formatter.SummaryDocument(bucketHeader, rows))
}
