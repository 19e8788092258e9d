package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itinerary/internal/filestore"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.jsonl>",
		Short: "Write every trip to a JSONL file, one trip per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.openRepo()
			if err != nil {
				return err
			}
			trips, err := r.ListAllTrips()
			if err != nil {
				return classify(err)
			}

			records := make([]json.RawMessage, 0, len(trips))
			for _, t := range trips {
				data, err := json.Marshal(t)
				if err != nil {
					return sysErr(fmt.Errorf("encode trip %s: %w", t.ID, err))
				}
				records = append(records, data)
			}
			if err := filestore.WriteJSONL(args[0], records); err != nil {
				return sysErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d trips to %s\n", len(records), args[0])
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.jsonl>",
		Short: "Save every valid trip from a JSONL file",
		Long:  "Save every valid trip from a JSONL file. Trips whose id already exists are\noverwritten; lines that are not valid trips are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, skipped, err := filestore.ReadJSONL(args[0])
			if err != nil {
				return userErr(err)
			}
			r, err := a.openRepo()
			if err != nil {
				return err
			}

			imported := 0
			for _, rec := range records {
				var t types.Trip
				if err := json.Unmarshal(rec, &t); err != nil || !types.ValidTripID(t.ID) || t.Validate() != nil {
					skipped++
					continue
				}
				if err := r.SaveTrip(t); err != nil {
					if exitCode(classify(err)) == exitUserError {
						skipped++
						continue
					}
					return sysErr(err)
				}
				imported++
			}
			a.log.Logger.Debug().Int("imported", imported).Int("skipped", skipped).Msg("import finished")
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d trips (%d skipped)\n", imported, skipped)
			return nil
		},
	}
}
