package touchhop

import (
	"fmt"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
)

// PointerID identifies one continuous contact from press to release.
// It is unique among active pointers of a Service and may be reused after
// the contact ends.
type PointerID int64

// ViewID is the opaque identifier a Service issues when a view is attached.
type ViewID uint64

// TouchEvent is the unified event delivered to a Handler.
type TouchEvent struct {
	ID        PointerID
	Type      ActionType
	Location  geom.Point // view-local, logical units
	InContact bool
}

func (e TouchEvent) String() string {
	return fmt.Sprintf("%s id=%d at %v contact=%t", e.Type, e.ID, e.Location, e.InContact)
}

// Handler receives events for the view it was attached with. It is called
// synchronously, once per emitted transition, on the goroutine driving the
// Service.
type Handler func(view ViewID, ev TouchEvent)
