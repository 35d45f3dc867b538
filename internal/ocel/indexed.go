package ocel

import "time"

// rel is one resolved, forward relationship: a qualifier plus the
// target's handle. Per-event and per-object forward relationship lists
// are kept sorted by target handle so membership tests can binary
// search instead of scanning.
type rel struct {
	qualifier string
	target    int // EventIndex or ObjectIndex, depending on context
}

type indexedEvent struct {
	id      string
	etype   typeIndex
	time    time.Time
	attrs   []AttrValue
	e2o     []rel // sorted by target ObjectIndex
}

type indexedObject struct {
	id     string
	otype  typeIndex
	attrs  [][]AttrSample
	o2o    []rel // sorted by target ObjectIndex
}

// IndexedOCEL is the immutable-after-build store of events, objects and
// types, plus the forward and reverse relational indices. The zero
// value is not usable; construct with Build.
type IndexedOCEL struct {
	eventTypes []TypeRecord
	objectTypes []TypeRecord

	eventTypeIdx map[string]typeIndex
	objectTypeIdx map[string]typeIndex

	events  []indexedEvent
	objects []indexedObject

	eventIDToIndex  map[string]EventIndex
	objectIDToIndex map[string]ObjectIndex

	// eventsPerType[t] is sorted by timestamp ascending.
	eventsPerType [][]EventIndex
	// objectsPerType[t] preserves construction order (objects carry no
	// single canonical timestamp).
	objectsPerType [][]ObjectIndex

	// e2oRelRev[o][t] is the sorted sequence of events of event-type
	// slot t that reference object o.
	e2oRelRev [][][]EventIndex
	// o2oRelRev[o][t] is the sorted sequence of objects of object-type
	// slot t that reference object o.
	o2oRelRev [][][]ObjectIndex
}

// NumEvents returns the number of events in the store.
func (s *IndexedOCEL) NumEvents() int { return len(s.events) }

// NumObjects returns the number of objects in the store.
func (s *IndexedOCEL) NumObjects() int { return len(s.objects) }

// EventTypeRecord returns the declared type record for an event's type.
func (s *IndexedOCEL) EventTypeRecord(e EventIndex) TypeRecord {
	return s.eventTypes[s.events[e].etype]
}

// ObjectTypeRecord returns the declared type record for an object's type.
func (s *IndexedOCEL) ObjectTypeRecord(o ObjectIndex) TypeRecord {
	return s.objectTypes[s.objects[o].otype]
}

// EventType returns the event-type name of e.
func (s *IndexedOCEL) EventType(e EventIndex) string {
	return s.eventTypes[s.events[e].etype].Name
}

// ObjectType returns the object-type name of o.
func (s *IndexedOCEL) ObjectType(o ObjectIndex) string {
	return s.objectTypes[s.objects[o].otype].Name
}

// EventTime returns the (immutable) timestamp of e.
func (s *IndexedOCEL) EventTime(e EventIndex) time.Time {
	return s.events[e].time
}

// EventTypes lists every declared event-type name.
func (s *IndexedOCEL) EventTypes() []string {
	names := make([]string, len(s.eventTypes))
	for i, t := range s.eventTypes {
		names[i] = t.Name
	}
	return names
}

// ObjectTypes lists every declared object-type name.
func (s *IndexedOCEL) ObjectTypes() []string {
	names := make([]string, len(s.objectTypes))
	for i, t := range s.objectTypes {
		names[i] = t.Name
	}
	return names
}

// LookupEvent resolves an external event ID to its handle.
func (s *IndexedOCEL) LookupEvent(id string) (EventIndex, bool) {
	e, ok := s.eventIDToIndex[id]
	return e, ok
}

// LookupObject resolves an external object ID to its handle.
func (s *IndexedOCEL) LookupObject(id string) (ObjectIndex, bool) {
	o, ok := s.objectIDToIndex[id]
	return o, ok
}

// EventID returns the external ID of an event.
func (s *IndexedOCEL) EventID(e EventIndex) string { return s.events[e].id }

// ObjectID returns the external ID of an object.
func (s *IndexedOCEL) ObjectID(o ObjectIndex) string { return s.objects[o].id }

// EventsOfType iterates the handles of every event of the named type,
// in timestamp order. Returns nil if the type is unknown.
func (s *IndexedOCEL) EventsOfType(etype string) []EventIndex {
	t, ok := s.eventTypeIdx[etype]
	if !ok {
		return nil
	}
	return s.eventsPerType[t]
}

// ObjectsOfType iterates the handles of every object of the named type.
func (s *IndexedOCEL) ObjectsOfType(otype string) []ObjectIndex {
	t, ok := s.objectTypeIdx[otype]
	if !ok {
		return nil
	}
	return s.objectsPerType[t]
}

// ForwardE2O returns the (qualifier, object) pairs an event relates to,
// sorted by object handle.
func (s *IndexedOCEL) ForwardE2O(e EventIndex) []struct {
	Qualifier string
	Object    ObjectIndex
} {
	rels := s.events[e].e2o
	out := make([]struct {
		Qualifier string
		Object    ObjectIndex
	}, len(rels))
	for i, r := range rels {
		out[i].Qualifier = r.qualifier
		out[i].Object = ObjectIndex(r.target)
	}
	return out
}

// ForwardO2O returns the (qualifier, object) pairs an object relates to.
func (s *IndexedOCEL) ForwardO2O(o ObjectIndex) []struct {
	Qualifier string
	Object    ObjectIndex
} {
	rels := s.objects[o].o2o
	out := make([]struct {
		Qualifier string
		Object    ObjectIndex
	}, len(rels))
	for i, r := range rels {
		out[i].Qualifier = r.qualifier
		out[i].Object = ObjectIndex(r.target)
	}
	return out
}

// E2OObjects returns just the objects an event references, sorted by
// handle (drops qualifiers); convenient for membership/filter checks.
func (s *IndexedOCEL) E2OObjects(e EventIndex) []ObjectIndex {
	rels := s.events[e].e2o
	out := make([]ObjectIndex, len(rels))
	for i, r := range rels {
		out[i] = ObjectIndex(r.target)
	}
	return out
}

// O2OObjects returns just the objects an object references.
func (s *IndexedOCEL) O2OObjects(o ObjectIndex) []ObjectIndex {
	rels := s.objects[o].o2o
	out := make([]ObjectIndex, len(rels))
	for i, r := range rels {
		out[i] = ObjectIndex(r.target)
	}
	return out
}

// ReverseE2O returns the events referencing object o, optionally
// filtered to a single event type. With the filter this runs in time
// proportional to the result size (a direct slice lookup); without it,
// every type bucket is concatenated.
func (s *IndexedOCEL) ReverseE2O(o ObjectIndex, etype string) []EventIndex {
	byType := s.e2oRelRev[o]
	if etype != "" {
		t, ok := s.eventTypeIdx[etype]
		if !ok || int(t) >= len(byType) {
			return nil
		}
		return byType[t]
	}
	var out []EventIndex
	for _, bucket := range byType {
		out = append(out, bucket...)
	}
	return out
}

// ReverseO2O returns the objects referencing object o, optionally
// filtered to a single object type.
func (s *IndexedOCEL) ReverseO2O(o ObjectIndex, otype string) []ObjectIndex {
	byType := s.o2oRelRev[o]
	if otype != "" {
		t, ok := s.objectTypeIdx[otype]
		if !ok || int(t) >= len(byType) {
			return nil
		}
		return byType[t]
	}
	var out []ObjectIndex
	for _, bucket := range byType {
		out = append(out, bucket...)
	}
	return out
}

// HasE2O reports whether event e references object o, via binary
// search over e's sorted forward relationship list.
func (s *IndexedOCEL) HasE2O(e EventIndex, o ObjectIndex) bool {
	return sortedContains(s.events[e].e2o, int(o))
}

// HasO2O reports whether object a references object b.
func (s *IndexedOCEL) HasO2O(a, b ObjectIndex) bool {
	return sortedContains(s.objects[a].o2o, int(b))
}

func sortedContains(rels []rel, target int) bool {
	lo, hi := 0, len(rels)
	for lo < hi {
		mid := (lo + hi) / 2
		if rels[mid].target < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(rels) && rels[lo].target == target
}

// EventAttr returns the typed value of a named attribute on an event,
// via a linear scan of the (small) type attribute declaration list.
func (s *IndexedOCEL) EventAttr(e EventIndex, name string) (AttrValue, bool) {
	ev := &s.events[e]
	idx := s.eventTypes[ev.etype].AttrIndex(name)
	if idx < 0 || idx >= len(ev.attrs) {
		return AttrValue{}, false
	}
	return ev.attrs[idx], true
}

// ObjectAttrHistory returns the (timestamp, value) history of a named
// attribute on an object.
func (s *IndexedOCEL) ObjectAttrHistory(o ObjectIndex, name string) ([]AttrSample, bool) {
	ob := &s.objects[o]
	idx := s.objectTypes[ob.otype].AttrIndex(name)
	if idx < 0 || idx >= len(ob.attrs) {
		return nil, false
	}
	return ob.attrs[idx], true
}

// ObjectAttrAt returns the most recent sample of a named attribute at
// or before t (the initial value is sampled at the epoch timestamp).
func (s *IndexedOCEL) ObjectAttrAt(o ObjectIndex, name string, t time.Time) (AttrValue, bool) {
	hist, ok := s.ObjectAttrHistory(o, name)
	if !ok || len(hist) == 0 {
		return AttrValue{}, false
	}
	best := -1
	for i, sample := range hist {
		if !sample.Timestamp.After(t) {
			best = i
		} else {
			break
		}
	}
	if best < 0 {
		return AttrValue{}, false
	}
	return hist[best].Value, true
}
