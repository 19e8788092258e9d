package main

import (
	"github.com/mesh-intelligence/itinerary/internal/dnd"
	"github.com/mesh-intelligence/itinerary/internal/state"
)

// dropOnto runs one drag gesture carrying p onto a target configured by opts,
// through the same bridge the board uses, and returns the state store's
// result for the drop.
func dropOnto(st *state.Store, p dnd.Payload, opts ...dnd.DropOption) error {
	bus := dnd.NewBus()
	var dropErr error
	unsubscribe := bus.Subscribe(func(ev dnd.ItemDropped) {
		dropErr = st.HandleDrop(ev)
	})
	defer unsubscribe()

	loop := dnd.NewLoop()
	src := dnd.NewDraggable(p, loop, nil)
	dt := dnd.NewDataTransfer()
	if err := src.DragStart(dt); err != nil {
		return err
	}
	loop.Drain()

	target := dnd.NewDroppable(p.Kind(), bus, opts...)
	target.DragOver(dt)
	target.Drop(dt)
	src.DragEnd()
	return dropErr
}
