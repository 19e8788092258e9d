// Package types defines the itinerary data model (Trip, Day, Activity), the
// copy-on-write update functions over it, the Store interface that storage
// backends implement, and the standard error values shared by every package.
//
// Entities are values. Update functions never modify their receiver or any
// slice reachable from it; they return a new value whose nested slices are
// freshly allocated.
package types
