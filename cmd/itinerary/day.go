package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itinerary/internal/dnd"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

func newDayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Add, update, delete and reorder the days of a trip",
	}
	cmd.AddCommand(
		newDayAddCmd(a),
		newDayUpdateCmd(a),
		newDayDeleteCmd(a),
		newDayMoveCmd(a),
	)
	return cmd
}

func newDayAddCmd(a *app) *cobra.Command {
	var title, date string
	cmd := &cobra.Command{
		Use:   "add <trip-id>",
		Short: "Append a day to a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			if title == "" {
				title = fmt.Sprintf("Day %d", len(trip.Days)+1)
			}
			day := types.NewDay(title, date)
			if err := day.Validate(); err != nil {
				return userErr(err)
			}
			return a.saveAndPrint(cmd, st, trip.WithDay(day))
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "day title (default: Day N)")
	cmd.Flags().StringVar(&date, "date", "", "date (yyyy-mm-dd)")
	return cmd
}

func newDayUpdateCmd(a *app) *cobra.Command {
	var title, date string
	cmd := &cobra.Command{
		Use:   "update <trip-id> <day-id>",
		Short: "Change a day's title or date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			p := types.DayPatch{
				Title: optString(cmd.Flags().Changed("title"), title),
				Date:  optString(cmd.Flags().Changed("date"), date),
			}
			next, err := trip.UpdateDay(args[1], p)
			if err != nil {
				return classify(err)
			}
			return a.saveAndPrint(cmd, st, next)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "day title")
	cmd.Flags().StringVar(&date, "date", "", "date (yyyy-mm-dd)")
	return cmd
}

func newDayDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trip-id> <day-id>",
		Short: "Remove a day and its activities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			if trip.DayIndex(args[1]) < 0 {
				return userErr(fmt.Errorf("day %s: %w", args[1], types.ErrNotFound))
			}
			return a.saveAndPrint(cmd, st, trip.RemoveDay(args[1]))
		},
	}
}

func newDayMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <trip-id> <day-id> <to-index>",
		Short: "Move a day to another position (0-based)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return userErr(fmt.Errorf("to-index %q: %w", args[2], types.ErrValidation))
			}
			st, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			from := trip.DayIndex(args[1])
			if from < 0 {
				return userErr(fmt.Errorf("day %s: %w", args[1], types.ErrNotFound))
			}
			if to < 0 || to >= len(trip.Days) {
				return userErr(fmt.Errorf("to-index %d of %d days: %w", to, len(trip.Days), types.ErrIndexOutOfRange))
			}

			if err := dropOnto(st, dnd.DayMove{DayID: args[1], Index: from}, dnd.WithIndex(to)); err != nil {
				return classify(err)
			}
			cur, _ := st.CurrentTrip()
			return printTrip(cmd.OutOrStdout(), cur, a.flags.jsonMode)
		},
	}
}
