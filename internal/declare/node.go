package declare

import (
	"time"

	"github.com/ocpm/declareminer/internal/ocel"
)

// Lifecycle marker prefixes: for every object type, "INIT " and
// "EXIT " name synthetic event types denoting an object's first and
// last appearance in time, offset by one millisecond so they never
// collide with a real event's timestamp.
const (
	InitPrefix      = "INIT "
	ExitPrefix      = "EXIT "
	syntheticOffset = time.Millisecond
)

// NodeKind tags an EventOrSynthetic variant.
type NodeKind int

const (
	RealEvent NodeKind = iota
	SynInit
	SynExit
)

// EventOrSynthetic is either a real event or a synthetic Init/Exit
// lifecycle marker for an object.
type EventOrSynthetic struct {
	Kind   NodeKind
	Event  ocel.EventIndex
	Object ocel.ObjectIndex
}

func Real(e ocel.EventIndex) EventOrSynthetic { return EventOrSynthetic{Kind: RealEvent, Event: e} }
func Init(o ocel.ObjectIndex) EventOrSynthetic { return EventOrSynthetic{Kind: SynInit, Object: o} }
func Exit(o ocel.ObjectIndex) EventOrSynthetic { return EventOrSynthetic{Kind: SynExit, Object: o} }

// EventType returns the node's event-type name, synthesizing
// "INIT <object type>" / "EXIT <object type>" for lifecycle markers.
func (n EventOrSynthetic) EventType(s *ocel.IndexedOCEL) string {
	switch n.Kind {
	case SynInit:
		return InitPrefix + s.ObjectType(n.Object)
	case SynExit:
		return ExitPrefix + s.ObjectType(n.Object)
	default:
		return s.EventType(n.Event)
	}
}

// Timestamp returns the node's effective time: the real event's
// timestamp, or one millisecond before/after the object's earliest/
// latest related-event timestamp for Init/Exit.
func (n EventOrSynthetic) Timestamp(s *ocel.IndexedOCEL) time.Time {
	switch n.Kind {
	case SynInit:
		return objectBound(s, n.Object, true).Add(-syntheticOffset)
	case SynExit:
		return objectBound(s, n.Object, false).Add(syntheticOffset)
	default:
		return s.EventTime(n.Event)
	}
}

func objectBound(s *ocel.IndexedOCEL, o ocel.ObjectIndex, earliest bool) time.Time {
	evs := s.ReverseE2O(o, "")
	if len(evs) == 0 {
		return time.Time{}
	}
	best := evs[0]
	for _, e := range evs[1:] {
		if earliest && s.EventTime(e).Before(s.EventTime(best)) {
			best = e
		}
		if !earliest && s.EventTime(e).After(s.EventTime(best)) {
			best = e
		}
	}
	return s.EventTime(best)
}

// Objects returns the set of objects this node is linked to: a real
// event's forward E2O objects, or the singleton object for a
// synthetic marker.
func (n EventOrSynthetic) Objects(s *ocel.IndexedOCEL) []ocel.ObjectIndex {
	if n.Kind == RealEvent {
		return s.E2OObjects(n.Event)
	}
	return []ocel.ObjectIndex{n.Object}
}

// GetForEvent resolves an ObjectTypeAssociation's candidate objects
// for a source node: the directly-related objects of the given type
// for Simple, or one O2O hop further for O2O.
func (a ObjectTypeAssociation) GetForEvent(s *ocel.IndexedOCEL, n EventOrSynthetic) []ocel.ObjectIndex {
	if a.Kind == Simple {
		var out []ocel.ObjectIndex
		for _, o := range n.Objects(s) {
			if s.ObjectType(o) == a.Object {
				out = append(out, o)
			}
		}
		return out
	}
	var out []ocel.ObjectIndex
	for _, o := range n.Objects(s) {
		if s.ObjectType(o) != a.First {
			continue
		}
		var hop []ocel.ObjectIndex
		if a.Reversed {
			hop = s.ReverseO2O(o, a.Second)
		} else {
			for _, fwd := range s.ForwardO2O(o) {
				if s.ObjectType(fwd.Object) == a.Second {
					hop = append(hop, fwd.Object)
				}
			}
		}
		out = append(out, hop...)
	}
	return out
}

// allOfTypeForObject returns every node of the given event type
// related to object o, including the synthetic marker itself when
// etype names o's own type's lifecycle prefix.
func allOfTypeForObject(s *ocel.IndexedOCEL, etype string, o ocel.ObjectIndex) []EventOrSynthetic {
	if ot, ok := stripPrefix(etype, InitPrefix); ok {
		if s.ObjectType(o) == ot {
			return []EventOrSynthetic{Init(o)}
		}
		return nil
	}
	if ot, ok := stripPrefix(etype, ExitPrefix); ok {
		if s.ObjectType(o) == ot {
			return []EventOrSynthetic{Exit(o)}
		}
		return nil
	}
	evs := s.ReverseE2O(o, etype)
	out := make([]EventOrSynthetic, len(evs))
	for i, e := range evs {
		out[i] = Real(e)
	}
	return out
}

// allForObject returns every node (real or synthetic, of any event
// type) related to object o, used by the DF/DP nearest-neighbor search.
func allForObject(s *ocel.IndexedOCEL, o ocel.ObjectIndex) []EventOrSynthetic {
	evs := s.ReverseE2O(o, "")
	out := make([]EventOrSynthetic, 0, len(evs)+2)
	for _, e := range evs {
		out = append(out, Real(e))
	}
	out = append(out, Init(o), Exit(o))
	return out
}

// allSynEvs returns every node of the given event type across the
// whole store: real events if etype is a real event type, or one
// synthetic marker per object of the named type otherwise.
func allSynEvs(s *ocel.IndexedOCEL, etype string) []EventOrSynthetic {
	if ot, ok := stripPrefix(etype, InitPrefix); ok {
		objs := s.ObjectsOfType(ot)
		out := make([]EventOrSynthetic, len(objs))
		for i, o := range objs {
			out[i] = Init(o)
		}
		return out
	}
	if ot, ok := stripPrefix(etype, ExitPrefix); ok {
		objs := s.ObjectsOfType(ot)
		out := make([]EventOrSynthetic, len(objs))
		for i, o := range objs {
			out[i] = Exit(o)
		}
		return out
	}
	evs := s.EventsOfType(etype)
	out := make([]EventOrSynthetic, len(evs))
	for i, e := range evs {
		out[i] = Real(e)
	}
	return out
}

func stripPrefix(s, prefix string) (string, bool) {
	if len(s) > len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):], true
	}
	return "", false
}

