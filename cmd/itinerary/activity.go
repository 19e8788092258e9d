package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itinerary/internal/dnd"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// activityFields are the editable activity flags shared by add and update.
type activityFields struct {
	title       string
	typ         string
	time        string
	description string
	location    string
}

func (f *activityFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "activity title")
	cmd.Flags().StringVar(&f.typ, "type", "", "food, museum, landmark, shopping, transport, hotel or other")
	cmd.Flags().StringVar(&f.time, "time", "", "time of day, e.g. 14:30")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.location, "location", "", "location")
}

func newActivityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act"},
		Short:   "Add, update, delete and move activities",
	}
	cmd.AddCommand(
		newActivityAddCmd(a),
		newActivityUpdateCmd(a),
		newActivityDeleteCmd(a),
		newActivityMoveCmd(a),
	)
	return cmd
}

func newActivityAddCmd(a *app) *cobra.Command {
	var f activityFields
	cmd := &cobra.Command{
		Use:   "add <trip-id> <day-id>",
		Short: "Append an activity to a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := types.ParseActivityType(f.typ)
			if err != nil {
				return userErr(err)
			}
			act := types.NewActivity(f.title, typ, f.time)
			act.Description = f.description
			act.Location = f.location

			st, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			next, err := trip.WithActivity(args[1], act)
			if err != nil {
				return classify(err)
			}
			return a.saveAndPrint(cmd, st, next)
		},
	}
	f.register(cmd)
	return cmd
}

func newActivityUpdateCmd(a *app) *cobra.Command {
	var f activityFields
	cmd := &cobra.Command{
		Use:   "update <trip-id> <activity-id>",
		Short: "Change an activity's fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := cmd.Flags().Changed
			p := types.ActivityPatch{
				Title:       optString(changed("title"), f.title),
				Time:        optString(changed("time"), f.time),
				Description: optString(changed("description"), f.description),
				Location:    optString(changed("location"), f.location),
			}
			if changed("type") {
				typ, err := types.ParseActivityType(f.typ)
				if err != nil {
					return userErr(err)
				}
				p.Type = &typ
			}

			st, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			dayID, _, ok := trip.FindActivity(args[1])
			if !ok {
				return userErr(fmt.Errorf("activity %s: %w", args[1], types.ErrNotFound))
			}
			next, err := trip.UpdateActivity(dayID, args[1], p)
			if err != nil {
				return classify(err)
			}
			return a.saveAndPrint(cmd, st, next)
		},
	}
	f.register(cmd)
	return cmd
}

func newActivityDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trip-id> <activity-id>",
		Short: "Remove an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			dayID, _, ok := trip.FindActivity(args[1])
			if !ok {
				return userErr(fmt.Errorf("activity %s: %w", args[1], types.ErrNotFound))
			}
			next, err := trip.RemoveActivity(dayID, args[1])
			if err != nil {
				return classify(err)
			}
			return a.saveAndPrint(cmd, st, next)
		},
	}
}

func newActivityMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <trip-id> <activity-id> <to-day-id>",
		Short: "Move an activity to the end of another day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			fromDay, _, ok := trip.FindActivity(args[1])
			if !ok {
				return userErr(fmt.Errorf("activity %s: %w", args[1], types.ErrNotFound))
			}
			if trip.DayIndex(args[2]) < 0 {
				return userErr(fmt.Errorf("day %s: %w", args[2], types.ErrNotFound))
			}
			day, _ := trip.FindDay(fromDay)

			p := dnd.ActivityMove{ActivityID: args[1], Index: day.ActivityIndex(args[1]), DayID: fromDay}
			if err := dropOnto(st, p, dnd.WithDayID(args[2])); err != nil {
				return classify(err)
			}
			cur, _ := st.CurrentTrip()
			return printTrip(cmd.OutOrStdout(), cur, a.flags.jsonMode)
		},
	}
}
