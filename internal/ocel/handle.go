package ocel

// EventIndex is the canonical handle to an event: its position in the
// dense events array. Handles are only valid against the IndexedOCEL
// that produced them; crossing stores is undefined behavior.
type EventIndex int

// ObjectIndex is the canonical handle to an object, analogous to
// EventIndex.
type ObjectIndex int

// typeIndex is an interned (event- or object-) type slot.
type typeIndex int

const invalidType typeIndex = -1

// EventOrObject tags a handle as referring to either side of the store.
type EventOrObject struct {
	IsEvent bool
	Event   EventIndex
	Object  ObjectIndex
}
