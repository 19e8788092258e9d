package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/itinerary/internal/dnd"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func userErr(err error) error { return &exitError{code: exitUserError, err: err} }

func sysErr(err error) error { return &exitError{code: exitSysError, err: err} }

// classify marks domain errors (missing trips, bad input) as user errors and
// everything else as system errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return err
	}
	for _, target := range []error{
		types.ErrNotFound,
		types.ErrValidation,
		types.ErrIndexOutOfRange,
		dnd.ErrMalformedPayload,
	} {
		if errors.Is(err, target) {
			return userErr(err)
		}
	}
	return sysErr(err)
}

// exitCode maps err to a process exit code. Errors that were not classified,
// such as cobra's argument errors, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysErr(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printTrip writes trip in full, as JSON or as an indented outline.
func printTrip(w io.Writer, trip types.Trip, jsonMode bool) error {
	if jsonMode {
		return printJSON(w, trip)
	}
	fmt.Fprintf(w, "%s  %s\n", trip.ID, trip.Title)
	if trip.Destination != "" {
		fmt.Fprintf(w, "  destination: %s\n", trip.Destination)
	}
	if trip.StartDate != "" || trip.EndDate != "" {
		fmt.Fprintf(w, "  dates: %s to %s\n", trip.StartDate, trip.EndDate)
	}
	if trip.Description != "" {
		fmt.Fprintf(w, "  %s\n", trip.Description)
	}
	for i, d := range trip.Days {
		fmt.Fprintf(w, "  [%d] %s  %s", i, d.ID, d.Title)
		if d.Date != "" {
			fmt.Fprintf(w, " (%s)", d.Date)
		}
		fmt.Fprintln(w)
		for j, act := range d.Activities {
			fmt.Fprintf(w, "      %d. %s  %s [%s]", j, act.ID, act.Title, act.Type)
			if act.Time != "" {
				fmt.Fprintf(w, " at %s", act.Time)
			}
			if act.Location != "" {
				fmt.Fprintf(w, ", %s", act.Location)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

// optString returns a pointer to the flag value when the flag was set.
func optString(changed bool, v string) *string {
	if !changed {
		return nil
	}
	return &v
}
