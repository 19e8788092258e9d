package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itinerary/internal/state"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// tripFields are the editable trip flags shared by create and update.
type tripFields struct {
	title       string
	startDate   string
	endDate     string
	destination string
	description string
	coverImage  string
}

func (f *tripFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "trip title")
	cmd.Flags().StringVar(&f.startDate, "start", "", "start date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&f.endDate, "end", "", "end date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&f.destination, "destination", "", "destination")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.coverImage, "cover", "", "cover image URL")
}

// patch builds a TripPatch from the flags the user actually set.
func (f *tripFields) patch(cmd *cobra.Command) types.TripPatch {
	changed := cmd.Flags().Changed
	return types.TripPatch{
		Title:       optString(changed("title"), f.title),
		StartDate:   optString(changed("start"), f.startDate),
		EndDate:     optString(changed("end"), f.endDate),
		Destination: optString(changed("destination"), f.destination),
		Description: optString(changed("description"), f.description),
		CoverImage:  optString(changed("cover"), f.coverImage),
	}
}

// loadCurrent opens the state store and makes the trip with id current.
func (a *app) loadCurrent(id string) (*state.Store, types.Trip, error) {
	st, err := a.openState()
	if err != nil {
		return nil, types.Trip{}, err
	}
	trip, err := st.LoadTripByID(id)
	if err != nil {
		return nil, types.Trip{}, classify(err)
	}
	return st, trip, nil
}

// saveAndPrint persists trip through st and prints it.
func (a *app) saveAndPrint(cmd *cobra.Command, st *state.Store, trip types.Trip) error {
	if err := st.UpdateTrip(trip); err != nil {
		return classify(err)
	}
	return printTrip(cmd.OutOrStdout(), trip, a.flags.jsonMode)
}

func newTripCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Create, list, show, update and delete trips",
	}
	cmd.AddCommand(
		newTripCreateCmd(a),
		newTripListCmd(a),
		newTripShowCmd(a),
		newTripUpdateCmd(a),
		newTripDeleteCmd(a),
	)
	return cmd
}

func newTripCreateCmd(a *app) *cobra.Command {
	var f tripFields
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := f.patch(cmd)
			p.Title = nil
			// Nothing is stored unless the whole trip would be valid.
			if err := p.Apply(types.NewTrip(f.title)).Validate(); err != nil {
				return userErr(err)
			}

			st, err := a.openState()
			if err != nil {
				return err
			}
			trip, err := st.CreateTrip(f.title)
			if err != nil {
				return classify(err)
			}
			if p == (types.TripPatch{}) {
				return printTrip(cmd.OutOrStdout(), trip, a.flags.jsonMode)
			}
			if err := st.UpdateTrip(p.Apply(trip)); err != nil {
				if derr := st.DeleteTrip(trip.ID); derr != nil {
					a.log.Logger.Error().Err(derr).Str("trip", trip.ID).Msg("removing half-created trip")
				}
				return classify(err)
			}
			cur, _ := st.CurrentTrip()
			return printTrip(cmd.OutOrStdout(), cur, a.flags.jsonMode)
		},
	}
	f.register(cmd)
	return cmd
}

func newTripListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openState()
			if err != nil {
				return err
			}
			trips := st.AllTrips()
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), trips)
			}
			w := cmd.OutOrStdout()
			if len(trips) == 0 {
				fmt.Fprintln(w, "No trips yet. Create one with: itinerary trip create --title <title>")
				return nil
			}
			for _, t := range trips {
				fmt.Fprintf(w, "%s  %s  (%d days, %d activities)", t.ID, t.Title, len(t.Days), t.ActivityCount())
				if t.StartDate != "" {
					fmt.Fprintf(w, "  %s", t.StartDate)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func newTripShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trip-id>",
		Short: "Show a trip with its days and activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			return printTrip(cmd.OutOrStdout(), trip, a.flags.jsonMode)
		},
	}
}

func newTripUpdateCmd(a *app) *cobra.Command {
	var f tripFields
	cmd := &cobra.Command{
		Use:   "update <trip-id>",
		Short: "Change a trip's own fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := f.patch(cmd)
			if err := p.Validate(); err != nil {
				return userErr(err)
			}
			st, trip, err := a.loadCurrent(args[0])
			if err != nil {
				return err
			}
			return a.saveAndPrint(cmd, st, p.Apply(trip))
		},
	}
	f.register(cmd)
	return cmd
}

func newTripDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trip-id>",
		Short: "Delete a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openState()
			if err != nil {
				return err
			}
			if err := st.DeleteTrip(args[0]); err != nil {
				return classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted trip %s\n", args[0])
			return nil
		},
	}
}
