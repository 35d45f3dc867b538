package ocel

// ObjectInvolvementCounts is the (min, max) number of objects of a
// given type observed together in a single instance, over every
// instance where that type appears at all.
type ObjectInvolvementCounts struct {
	Min int
	Max int
}

func (c ObjectInvolvementCounts) observe(n int) ObjectInvolvementCounts {
	if n < c.Min {
		c.Min = n
	}
	if n > c.Max {
		c.Max = n
	}
	return c
}

// ActivityObjectInvolvements scans every event once and returns, per
// event type, the (min, max) count of objects of each object type its
// events carry. A type never observed alongside a given event type is
// absent from its inner map rather than carrying a zero-value entry.
func (s *IndexedOCEL) ActivityObjectInvolvements() map[string]map[string]ObjectInvolvementCounts {
	out := map[string]map[string]ObjectInvolvementCounts{}
	for _, et := range s.EventTypes() {
		counts := map[string]ObjectInvolvementCounts{}
		for _, e := range s.EventsOfType(et) {
			perEvent := map[string]int{}
			for _, o := range s.E2OObjects(e) {
				perEvent[s.ObjectType(o)]++
			}
			observeInto(counts, perEvent)
		}
		out[et] = counts
	}
	return out
}

// ObjectToObjectInvolvements scans every object's forward O2O edges
// once and returns, per object type, the (min, max) count of objects
// of each other type its objects reference directly.
func (s *IndexedOCEL) ObjectToObjectInvolvements() map[string]map[string]ObjectInvolvementCounts {
	return s.objectToObjectInvolvements(false)
}

// ReverseObjectToObjectInvolvements is the same query in the opposite
// direction: per object type, the (min, max) count of objects of each
// other type that reference it.
func (s *IndexedOCEL) ReverseObjectToObjectInvolvements() map[string]map[string]ObjectInvolvementCounts {
	return s.objectToObjectInvolvements(true)
}

func (s *IndexedOCEL) objectToObjectInvolvements(reversed bool) map[string]map[string]ObjectInvolvementCounts {
	out := map[string]map[string]ObjectInvolvementCounts{}
	for _, ot := range s.ObjectTypes() {
		counts := map[string]ObjectInvolvementCounts{}
		for _, o := range s.ObjectsOfType(ot) {
			var targets []ObjectIndex
			if reversed {
				targets = s.ReverseO2O(o, "")
			} else {
				targets = s.O2OObjects(o)
			}
			perObject := map[string]int{}
			for _, t := range targets {
				perObject[s.ObjectType(t)]++
			}
			observeInto(counts, perObject)
		}
		out[ot] = counts
	}
	return out
}

func observeInto(counts map[string]ObjectInvolvementCounts, perInstance map[string]int) {
	for ot, n := range perInstance {
		c, ok := counts[ot]
		if !ok {
			c = ObjectInvolvementCounts{Min: n, Max: n}
		} else {
			c = c.observe(n)
		}
		counts[ot] = c
	}
}
