package world

// Callback is a host-provided function invoked by a Call action. The
// core only defines how callbacks are registered, indexed, and
// invoked — what a given callback actually does (feeding, reproduction,
// splitting, or anything else a host wants to model) is entirely up to
// the caller that builds the callback table.
type Callback func(entityID uint32, w *World)
