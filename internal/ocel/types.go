// Package ocel implements the Indexed Linked OCEL: the normalized
// in-memory representation of an Object-Centric Event Log with forward
// and reverse E2O/O2O indices enabling constant- or log-time relational
// lookup.
package ocel

import "time"

// AttrKind tags the six value types an attribute declaration can carry.
type AttrKind int

const (
	AttrString AttrKind = iota
	AttrInt
	AttrFloat
	AttrBool
	AttrTime
	AttrNull
)

// AttrValue is a typed attribute value slot. Exactly one of the fields
// is meaningful, selected by Kind.
type AttrValue struct {
	Kind AttrKind
	Str  string
	Int  int64
	Flt  float64
	Bool bool
	Time time.Time
}

// AttrDecl declares one attribute of a type: its name and value kind.
type AttrDecl struct {
	Name string
	Kind AttrKind
}

// TypeRecord is a name plus ordered attribute declarations, shared by
// event types and object types.
type TypeRecord struct {
	Name       string
	Attributes []AttrDecl
}

// AttrIndex returns the position of the named attribute in the type's
// declaration list, or -1 if it is not declared. The declaration list
// is small, so a linear scan is used rather than a map.
func (t TypeRecord) AttrIndex(name string) int {
	for i, a := range t.Attributes {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// Relationship is a (qualifier, target-id) pair as carried by the plain,
// unindexed log representation.
type Relationship struct {
	Qualifier string
	TargetID  string
}

// RawEvent is the unindexed representation of a single event, as handed
// in by an external collaborator (OCEL JSON/XML/CSV/SQLite parser).
type RawEvent struct {
	ID            string
	Type          string
	Timestamp     time.Time
	Attributes    []AttrValue
	Relationships []Relationship
}

// AttrSample is one (timestamp, value) observation in an object
// attribute's history. A sample at the zero/epoch timestamp denotes the
// object's initial value.
type AttrSample struct {
	Timestamp time.Time
	Value     AttrValue
}

// RawObject is the unindexed representation of a single object.
type RawObject struct {
	ID            string
	Type          string
	Attributes    [][]AttrSample // one history per declared attribute, same positions as the type's AttrDecl list
	Relationships []Relationship // O2O relationships
}

// RawLog is the plain, unindexed OCEL value that external collaborators
// produce and that Build consumes. It carries no indices and performs
// no validation beyond what Build itself does.
type RawLog struct {
	EventTypes []TypeRecord
	ObjectTypes []TypeRecord
	Events     []RawEvent
	Objects    []RawObject
}
