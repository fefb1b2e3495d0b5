package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/penwyp/tasktally/internal/core/model"
	"github.com/penwyp/tasktally/internal/presentation/formatter"
	"github.com/penwyp/tasktally/internal/report"
	"github.com/penwyp/tasktally/internal/store"
	"github.com/penwyp/tasktally/internal/util"
)

var (
	logOutput   string
	logActivity string
	logGrouping string
	logStart    string
	logStop     string
	logMinutes  int
	logComment  string

	logCmd = &cobra.Command{
		Use:   "log",
		Short: "Inspect and append interval log entries",
	}

	logListCmd = &cobra.Command{
		Use:   "list",
		Short: "Show the enriched interval log",
		Long: `list joins each logged interval with its activity and prints the
derived duration, date, and weekday. Intervals whose activity was deleted
are omitted.`,
		RunE: runLogList,
	}

	logAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Append an interval to the log",
		Long: `add records one start/stop pair against an activity.

Examples:
  tasktally log add --activity writing --minutes 45
  tasktally log add --activity writing --start "2024-01-01 09:00" --stop "2024-01-01 10:30"`,
		RunE: runLogAdd,
	}
)

// timestampLayouts are accepted by --start and --stop, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func init() {
	logListCmd.Flags().StringVarP(&logOutput, "output", "o", "table",
		"Output format (table, csv, json)")

	logAddCmd.Flags().StringVarP(&logActivity, "activity", "a", "",
		"Activity name to log against (required)")
	logAddCmd.Flags().StringVar(&logGrouping, "grouping", "",
		"Category of the activity, to disambiguate duplicate names")
	logAddCmd.Flags().StringVar(&logStart, "start", "",
		"Start timestamp (RFC3339 or \"2006-01-02 15:04\")")
	logAddCmd.Flags().StringVar(&logStop, "stop", "",
		"Stop timestamp; defaults to now when --start is given")
	logAddCmd.Flags().IntVarP(&logMinutes, "minutes", "m", 0,
		"Log the last N minutes ending now, instead of --start/--stop")
	logAddCmd.Flags().StringVarP(&logComment, "comment", "c", "",
		"Free-text comment for the entry")
	logAddCmd.MarkFlagRequired("activity")

	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logAddCmd)
	rootCmd.AddCommand(logCmd)
}

func runLogList(cmd *cobra.Command, args []string) error {
	return withEngine(func(e *report.Engine, _ store.Store) error {
		rows, err := e.EnrichedLog()
		if err != nil {
			return err
		}

		doc := formatter.LogDocument(rows)
		return formatter.New(logOutput, cmd.OutOrStdout()).Format(doc)
	})
}

func runLogAdd(cmd *cobra.Command, args []string) error {
	return withStore(func(st store.Store) error {
		act, err := resolveActivity(st, logActivity, logGrouping)
		if err != nil {
			return err
		}

		tp := util.GetTimeProvider()
		var start, stop time.Time
		switch {
		case logMinutes > 0:
			stop = tp.Now()
			start = stop.Add(-time.Duration(logMinutes) * time.Minute)
		case logStart != "":
			start, err = parseTimestamp(logStart, tp.Location())
			if err != nil {
				return err
			}
			if logStop == "" {
				stop = tp.Now()
			} else if stop, err = parseTimestamp(logStop, tp.Location()); err != nil {
				return err
			}
		default:
			return fmt.Errorf("either --minutes or --start is required")
		}

		if stop.Before(start) {
			return fmt.Errorf("stop %s is before start %s", stop.Format(time.RFC3339), start.Format(time.RFC3339))
		}

		iv, err := st.AppendInterval(act.ID, start, stop, logComment)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged %s against %s\n",
			util.FormatHMS(iv.DurationSeconds()), act.Name)
		return nil
	})
}

// resolveActivity finds an activity by name, using grouping to disambiguate
// when given.
func resolveActivity(st store.Store, name, grouping string) (model.Activity, error) {
	activities, err := st.ListActivities()
	if err != nil {
		return model.Activity{}, err
	}

	var matches []model.Activity
	for _, act := range activities {
		if act.Name != name {
			continue
		}
		if grouping != "" && act.Grouping != grouping {
			continue
		}
		matches = append(matches, act)
	}

	switch len(matches) {
	case 0:
		return model.Activity{}, fmt.Errorf("no activity named %q: %w", name, store.ErrActivityNotFound)
	case 1:
		return matches[0], nil
	default:
		return model.Activity{}, fmt.Errorf("activity name %q is ambiguous; pass --grouping", name)
	}
}

func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q (try \"2006-01-02 15:04\")", value)
}
