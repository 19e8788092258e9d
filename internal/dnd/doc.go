// Package dnd turns low-level drag gestures into typed "item dropped" events.
//
// A Draggable writes its Payload onto a DataTransfer when a gesture starts.
// A Droppable reads it back on drop, checks the accepted Kind and emits an
// ItemDropped event on a Bus. Apply resolves an event against a trip.
// Deferred work (the dragging-state flip after drag start) goes through a
// Loop, which stands in for the UI event loop's task queue.
package dnd
