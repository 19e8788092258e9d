// Command itinerary plans trips: days, activities and their order.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "itinerary:", err)
		os.Exit(exitCode(err))
	}
}
