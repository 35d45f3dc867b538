package ocel

import (
	"sort"
	"time"
)

// AddEvent adds a new event of a known event-type to the store. If id
// is non-empty it must be unique; a duplicate ID is rejected (ok=false,
// no state change). The new event is inserted into its type's
// per-type event list at its timestamp position (not just appended),
// since a later add can land before existing later-timestamped events
// once arbitrary mutation is allowed.
func (s *IndexedOCEL) AddEvent(id, etype string, t time.Time, attrs []AttrValue) (EventIndex, bool) {
	ti, ok := s.eventTypeIdx[etype]
	if !ok {
		return 0, false
	}
	if id != "" {
		if _, dup := s.eventIDToIndex[id]; dup {
			return 0, false
		}
	} else {
		id = syntheticID("ev", len(s.events))
	}
	idx := EventIndex(len(s.events))
	s.events = append(s.events, indexedEvent{id: id, etype: ti, time: t, attrs: append([]AttrValue(nil), attrs...)})
	s.eventIDToIndex[id] = idx
	insertSortedEventByTime(&s.eventsPerType[ti], idx, s)
	return idx, true
}

// AddObject adds a new object of a known object-type. Analogous
// contract to AddEvent.
func (s *IndexedOCEL) AddObject(id, otype string, attrs [][]AttrSample) (ObjectIndex, bool) {
	ti, ok := s.objectTypeIdx[otype]
	if !ok {
		return 0, false
	}
	if id != "" {
		if _, dup := s.objectIDToIndex[id]; dup {
			return 0, false
		}
	} else {
		id = syntheticID("ob", len(s.objects))
	}
	idx := ObjectIndex(len(s.objects))
	s.objects = append(s.objects, indexedObject{id: id, otype: ti, attrs: cloneHistories(attrs)})
	s.objectIDToIndex[id] = idx
	s.objectsPerType[ti] = append(s.objectsPerType[ti], idx)
	s.e2oRelRev = append(s.e2oRelRev, make([][]EventIndex, len(s.eventTypes)))
	s.o2oRelRev = append(s.o2oRelRev, make([][]ObjectIndex, len(s.objectTypes)))
	return idx, true
}

// AddE2O inserts an event-to-object relation into both the forward and
// reverse indices, keeping each sorted. Idempotent with respect to the
// (event, object) key: a repeated insertion is a no-op.
func (s *IndexedOCEL) AddE2O(e EventIndex, o ObjectIndex, qualifier string) {
	if sortedContains(s.events[e].e2o, int(o)) {
		return
	}
	sortedInsertRel(&s.events[e].e2o, rel{qualifier: qualifier, target: int(o)})
	ot := s.events[e].etype
	sortedInsertEvent(&s.e2oRelRev[o][ot], e)
}

// AddO2O inserts an object-to-object relation, analogous to AddE2O.
func (s *IndexedOCEL) AddO2O(from, to ObjectIndex, qualifier string) {
	if sortedContains(s.objects[from].o2o, int(to)) {
		return
	}
	sortedInsertRel(&s.objects[from].o2o, rel{qualifier: qualifier, target: int(to)})
	ot := s.objects[from].otype
	sortedInsertObject(&s.o2oRelRev[to][ot], from)
}

// DeleteE2O removes an event-to-object relation from both sides.
func (s *IndexedOCEL) DeleteE2O(e EventIndex, o ObjectIndex) {
	removeRel(&s.events[e].e2o, int(o))
	ot := s.events[e].etype
	removeEvent(&s.e2oRelRev[o][ot], e)
}

// DeleteO2O removes an object-to-object relation from both sides.
func (s *IndexedOCEL) DeleteO2O(from, to ObjectIndex) {
	removeRel(&s.objects[from].o2o, int(to))
	ot := s.objects[from].otype
	removeObject(&s.o2oRelRev[to][ot], from)
}

func sortedInsertRel(rels *[]rel, r rel) {
	i := sort.Search(len(*rels), func(i int) bool { return (*rels)[i].target >= r.target })
	*rels = append(*rels, rel{})
	copy((*rels)[i+1:], (*rels)[i:])
	(*rels)[i] = r
}

func sortedInsertEvent(evs *[]EventIndex, e EventIndex) {
	i := sort.Search(len(*evs), func(i int) bool { return (*evs)[i] >= e })
	*evs = append(*evs, 0)
	copy((*evs)[i+1:], (*evs)[i:])
	(*evs)[i] = e
}

func sortedInsertObject(obs *[]ObjectIndex, o ObjectIndex) {
	i := sort.Search(len(*obs), func(i int) bool { return (*obs)[i] >= o })
	*obs = append(*obs, 0)
	copy((*obs)[i+1:], (*obs)[i:])
	(*obs)[i] = o
}

func insertSortedEventByTime(evs *[]EventIndex, e EventIndex, s *IndexedOCEL) {
	i := sort.Search(len(*evs), func(i int) bool { return !s.events[(*evs)[i]].time.Before(s.events[e].time) })
	*evs = append(*evs, 0)
	copy((*evs)[i+1:], (*evs)[i:])
	(*evs)[i] = e
}

func removeRel(rels *[]rel, target int) {
	for i, r := range *rels {
		if r.target == target {
			*rels = append((*rels)[:i], (*rels)[i+1:]...)
			return
		}
	}
}

func removeEvent(evs *[]EventIndex, e EventIndex) {
	for i, x := range *evs {
		if x == e {
			*evs = append((*evs)[:i], (*evs)[i+1:]...)
			return
		}
	}
}

func removeObject(obs *[]ObjectIndex, o ObjectIndex) {
	for i, x := range *obs {
		if x == o {
			*obs = append((*obs)[:i], (*obs)[i+1:]...)
			return
		}
	}
}

func syntheticID(prefix string, n int) string {
	const digits = "0123456789abcdef"
	buf := []byte(prefix + "-")
	if n == 0 {
		return string(append(buf, '0'))
	}
	var rev []byte
	for n > 0 {
		rev = append(rev, digits[n%16])
		n /= 16
	}
	for i := len(rev) - 1; i >= 0; i-- {
		buf = append(buf, rev[i])
	}
	return string(buf)
}
