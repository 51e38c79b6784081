package world

// Observer receives synchronous notifications of grid mutations as the
// scheduler performs them. Cleared fires when an entity
// vacates a cell (eviction or a successful move's departure); Placed
// fires when an entity occupies a cell as the result of a successful
// move.
type Observer interface {
	Cleared(e *Entity)
	Placed(e *Entity)
}

// NopObserver ignores every notification; callers that don't need
// rendering or logging hooks can pass this instead of nil.
type NopObserver struct{}

func (NopObserver) Cleared(*Entity) {}
func (NopObserver) Placed(*Entity)  {}
