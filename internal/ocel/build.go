package ocel

import "sort"

// Build constructs an IndexedOCEL from a plain, unindexed RawLog.
// Steps: intern type names; sort events by
// timestamp; assign each event/object its positional index; resolve
// each event's E2O targets and each object's O2O targets by ID lookup,
// sorting forward relations by target index (invalid IDs are silently
// dropped); build the reverse E2O/O2O indices during that same pass —
// since events (resp. objects) are processed in index order, the
// reverse buckets come out sorted without an extra sort.
func Build(raw RawLog) *IndexedOCEL {
	s := &IndexedOCEL{
		eventTypes:      append([]TypeRecord(nil), raw.EventTypes...),
		objectTypes:     append([]TypeRecord(nil), raw.ObjectTypes...),
		eventTypeIdx:    make(map[string]typeIndex, len(raw.EventTypes)),
		objectTypeIdx:   make(map[string]typeIndex, len(raw.ObjectTypes)),
		eventIDToIndex:  make(map[string]EventIndex, len(raw.Events)),
		objectIDToIndex: make(map[string]ObjectIndex, len(raw.Objects)),
	}
	for i, t := range s.eventTypes {
		s.eventTypeIdx[t.Name] = typeIndex(i)
	}
	for i, t := range s.objectTypes {
		s.objectTypeIdx[t.Name] = typeIndex(i)
	}
	s.eventsPerType = make([][]EventIndex, len(s.eventTypes))
	s.objectsPerType = make([][]ObjectIndex, len(s.objectTypes))

	// Sort events by timestamp ascending before assigning indices, so
	// EventIndex order is always timestamp order.
	sortedEvents := append([]RawEvent(nil), raw.Events...)
	sort.SliceStable(sortedEvents, func(i, j int) bool {
		return sortedEvents[i].Timestamp.Before(sortedEvents[j].Timestamp)
	})

	s.objects = make([]indexedObject, 0, len(raw.Objects))
	for _, ro := range raw.Objects {
		idx := ObjectIndex(len(s.objects))
		s.objectIDToIndex[ro.ID] = idx
		s.objects = append(s.objects, indexedObject{
			id:    ro.ID,
			otype: s.objectTypeIdx[ro.Type],
			attrs: cloneHistories(ro.Attributes),
		})
	}
	s.o2oRelRev = make([][][]ObjectIndex, len(s.objects))
	for i := range s.o2oRelRev {
		s.o2oRelRev[i] = make([][]ObjectIndex, len(s.objectTypes))
	}
	// Process objects in index order: O2O reverse buckets come out
	// sorted by ObjectIndex without a further sort.
	for i := range s.objects {
		from := ObjectIndex(i)
		ro := raw.Objects[i]
		var resolved []rel
		for _, r := range ro.Relationships {
			to, ok := s.objectIDToIndex[r.TargetID]
			if !ok {
				continue // invalid IDs are silently dropped
			}
			resolved = append(resolved, rel{qualifier: r.Qualifier, target: int(to)})
			s.o2oRelRev[to][s.objects[from].otype] = append(s.o2oRelRev[to][s.objects[from].otype], from)
		}
		sort.Slice(resolved, func(a, b int) bool { return resolved[a].target < resolved[b].target })
		s.objects[i].o2o = resolved
	}
	for ot := range s.objectTypes {
		for o := range s.objects {
			if s.objects[o].otype == typeIndex(ot) {
				s.objectsPerType[ot] = append(s.objectsPerType[ot], ObjectIndex(o))
			}
		}
	}

	s.events = make([]indexedEvent, 0, len(sortedEvents))
	for _, re := range sortedEvents {
		idx := EventIndex(len(s.events))
		s.eventIDToIndex[re.ID] = idx
		s.events = append(s.events, indexedEvent{
			id:    re.ID,
			etype: s.eventTypeIdx[re.Type],
			time:  re.Timestamp,
			attrs: append([]AttrValue(nil), re.Attributes...),
		})
	}
	s.e2oRelRev = make([][][]EventIndex, len(s.objects))
	for i := range s.e2oRelRev {
		s.e2oRelRev[i] = make([][]EventIndex, len(s.eventTypes))
	}
	for i := range s.events {
		from := EventIndex(i)
		re := sortedEvents[i]
		var resolved []rel
		for _, r := range re.Relationships {
			to, ok := s.objectIDToIndex[r.TargetID]
			if !ok {
				continue
			}
			resolved = append(resolved, rel{qualifier: r.Qualifier, target: int(to)})
			s.e2oRelRev[to][s.events[from].etype] = append(s.e2oRelRev[to][s.events[from].etype], from)
		}
		sort.Slice(resolved, func(a, b int) bool { return resolved[a].target < resolved[b].target })
		s.events[i].e2o = resolved
		s.eventsPerType[s.events[i].etype] = append(s.eventsPerType[s.events[i].etype], from)
	}

	return s
}

func cloneHistories(in [][]AttrSample) [][]AttrSample {
	out := make([][]AttrSample, len(in))
	for i, h := range in {
		out[i] = append([]AttrSample(nil), h...)
	}
	return out
}
