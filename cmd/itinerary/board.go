package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itinerary/internal/dnd"
	"github.com/mesh-intelligence/itinerary/internal/state"
	"github.com/mesh-intelligence/itinerary/internal/tui"
)

func newBoardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "board <trip-id>",
		Short: "Open the interactive drag-and-drop board for a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.openRepo()
			if err != nil {
				return err
			}

			// Notifications go to the status line; errors are also logged.
			notes := &state.Recorder{}
			st := state.New(r, notes, a.log.Logger)
			if err := st.Load(); err != nil {
				return classify(err)
			}
			if _, err := st.LoadTripByID(args[0]); err != nil {
				return classify(err)
			}

			bus := dnd.NewBus()
			stop := st.Listen(bus)
			defer stop()

			if err := tui.Run(tui.New(st, bus, notes, a.log.Logger)); err != nil {
				return sysErr(err)
			}
			return nil
		},
	}
}
