package abstraction

import (
	"sort"

	"github.com/ocpm/declareminer/internal/ocel"
)

// FromLog computes the log abstraction directly from an IndexedOCEL,
// for every declared object type. Start/end/directly-
// follows come from each object's individual event trace (its related
// events in timestamp order); Related/Deficient/Optional come from
// comparing event and object population counts; Convergent and
// Divergent are existence checks over an object's related events.
func FromLog(s *ocel.IndexedOCEL) Abstraction {
	out := Abstraction{}
	for _, ot := range s.ObjectTypes() {
		out[ot] = fromLogForType(s, ot)
	}
	return out
}

func fromLogForType(s *ocel.IndexedOCEL, ot string) Sets {
	sets := newSets()

	for _, et := range s.EventTypes() {
		sets.Related[et] = true
	}

	objects := s.ObjectsOfType(ot)
	for _, o := range objects {
		trace := eventTrace(s, o)
		if len(trace) == 0 {
			continue
		}
		sets.Start[s.EventType(trace[0])] = true
		sets.End[s.EventType(trace[len(trace)-1])] = true
		for i := 1; i < len(trace); i++ {
			sets.DF[[2]string{s.EventType(trace[i-1]), s.EventType(trace[i])}] = true
		}
	}

	for _, et := range s.EventTypes() {
		all := s.EventsOfType(et)
		var related []ocel.EventIndex
		for _, e := range all {
			if hasObjectOfType(s, e, ot) {
				related = append(related, e)
			}
		}
		if len(related) == 0 {
			delete(sets.Related, et)
			continue
		}
		if len(related) < len(all) {
			sets.Deficient[et] = true
		}

		referenced := map[ocel.ObjectIndex]bool{}
		for _, e := range related {
			for _, fwd := range s.ForwardE2O(e) {
				if s.ObjectType(fwd.Object) == ot {
					referenced[fwd.Object] = true
				}
			}
		}
		if len(objects) > len(referenced) {
			sets.Optional[et] = true
		}

		if eventWithMultiple(s, related, ot) {
			sets.Convergent[et] = true
		}
		if divergentForType(s, related, ot) {
			sets.Divergent[et] = true
		}
	}

	return sets
}

// eventTrace returns the events referencing o, sorted by EventIndex —
// which is timestamp order, the construction invariant in internal/ocel.
func eventTrace(s *ocel.IndexedOCEL, o ocel.ObjectIndex) []ocel.EventIndex {
	evs := append([]ocel.EventIndex(nil), s.ReverseE2O(o, "")...)
	sort.Slice(evs, func(i, j int) bool { return evs[i] < evs[j] })
	return evs
}

func hasObjectOfType(s *ocel.IndexedOCEL, e ocel.EventIndex, ot string) bool {
	for _, fwd := range s.ForwardE2O(e) {
		if s.ObjectType(fwd.Object) == ot {
			return true
		}
	}
	return false
}

// eventWithMultiple reports whether some event references two or more
// objects of ot (the Convergent condition).
func eventWithMultiple(s *ocel.IndexedOCEL, events []ocel.EventIndex, ot string) bool {
	for _, e := range events {
		count := 0
		for _, fwd := range s.ForwardE2O(e) {
			if s.ObjectType(fwd.Object) == ot {
				count++
				if count >= 2 {
					return true
				}
			}
		}
	}
	return false
}

// divergentForType reports whether some object of type ot is
// referenced by >= 2 events in the given set such that their
// non-ot co-referenced object sets differ for at least one pair.
func divergentForType(s *ocel.IndexedOCEL, events []ocel.EventIndex, ot string) bool {
	byObject := map[ocel.ObjectIndex][]ocel.EventIndex{}
	for _, e := range events {
		for _, fwd := range s.ForwardE2O(e) {
			if s.ObjectType(fwd.Object) == ot {
				byObject[fwd.Object] = append(byObject[fwd.Object], e)
			}
		}
	}
	for _, evs := range byObject {
		if len(evs) < 2 {
			continue
		}
		contexts := make([]map[ocel.ObjectIndex]bool, len(evs))
		for i, e := range evs {
			ctx := map[ocel.ObjectIndex]bool{}
			for _, fwd := range s.ForwardE2O(e) {
				if s.ObjectType(fwd.Object) != ot {
					ctx[fwd.Object] = true
				}
			}
			contexts[i] = ctx
		}
		for i := 0; i < len(contexts); i++ {
			for j := i + 1; j < len(contexts); j++ {
				if !sameSet(contexts[i], contexts[j]) {
					return true
				}
			}
		}
	}
	return false
}

func sameSet(a, b map[ocel.ObjectIndex]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
