package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/tasktally/internal/presentation/formatter"
	"github.com/penwyp/tasktally/internal/store"
)

var (
	activityOutput string

	activityCmd = &cobra.Command{
		Use:   "activity",
		Short: "Manage the activity catalog",
	}

	activityListCmd = &cobra.Command{
		Use:   "list",
		Short: "List activities in insertion order",
		RunE:  runActivityList,
	}

	activityAddCmd = &cobra.Command{
		Use:   "add NAME [GROUPING]",
		Short: "Add an activity under a category",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runActivityAdd,
	}

	activityEditCmd = &cobra.Command{
		Use:   "edit NAME GROUPING NEW_NAME NEW_GROUPING",
		Short: "Rename the activity matching a (name, grouping) pair",
		Args:  cobra.ExactArgs(4),
		RunE:  runActivityEdit,
	}

	activityRmCmd = &cobra.Command{
		Use:   "rm NAME [GROUPING]",
		Short: "Delete an activity",
		Long: `rm deletes the activity matching the (name, grouping) pair. Logged
intervals referencing it stay in the database but disappear from reports.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runActivityRm,
	}
)

func init() {
	activityListCmd.Flags().StringVarP(&activityOutput, "output", "o", "table",
		"Output format (table, csv, json)")

	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityEditCmd)
	activityCmd.AddCommand(activityRmCmd)
	rootCmd.AddCommand(activityCmd)
}

func runActivityList(cmd *cobra.Command, args []string) error {
	return withStore(func(st store.Store) error {
		activities, err := st.ListActivities()
		if err != nil {
			return err
		}

		doc := formatter.ActivityDocument(activities)
		return formatter.New(activityOutput, cmd.OutOrStdout()).Format(doc)
	})
}

func runActivityAdd(cmd *cobra.Command, args []string) error {
	return withStore(func(st store.Store) error {
		grouping := ""
		if len(args) > 1 {
			grouping = args[1]
		}

		act, err := st.AddActivity(args[0], grouping)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added activity %d: %s (%s)\n", act.ID, act.Name, act.Grouping)
		return nil
	})
}

func runActivityEdit(cmd *cobra.Command, args []string) error {
	return withStore(func(st store.Store) error {
		if err := st.UpdateActivity(args[0], args[1], args[2], args[3]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s) -> %s (%s)\n", args[0], args[1], args[2], args[3])
		return nil
	})
}

func runActivityRm(cmd *cobra.Command, args []string) error {
	return withStore(func(st store.Store) error {
		grouping := ""
		if len(args) > 1 {
			grouping = args[1]
		}

		if err := st.DeleteActivity(args[0], grouping); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity %s (%s)\n", args[0], grouping)
		return nil
	})
}
