package ocel

// FullEvent reconstitutes the canonical unindexed RawEvent for an
// indexed event, for export by collaborators. Relationship target IDs
// are recovered from the object handles; qualifiers are copied as is,
// since forward relations already carry them.
func (s *IndexedOCEL) FullEvent(e EventIndex) RawEvent {
	ev := &s.events[e]
	rels := make([]Relationship, len(ev.e2o))
	for i, r := range ev.e2o {
		rels[i] = Relationship{Qualifier: r.qualifier, TargetID: s.objects[r.target].id}
	}
	return RawEvent{
		ID:            ev.id,
		Type:          s.eventTypes[ev.etype].Name,
		Timestamp:     ev.time,
		Attributes:    append([]AttrValue(nil), ev.attrs...),
		Relationships: rels,
	}
}

// FullObject reconstitutes the canonical unindexed RawObject for an
// indexed object.
func (s *IndexedOCEL) FullObject(o ObjectIndex) RawObject {
	ob := &s.objects[o]
	rels := make([]Relationship, len(ob.o2o))
	for i, r := range ob.o2o {
		rels[i] = Relationship{Qualifier: r.qualifier, TargetID: s.objects[r.target].id}
	}
	return RawObject{
		ID:            ob.id,
		Type:          s.objectTypes[ob.otype].Name,
		Attributes:    cloneHistories(ob.attrs),
		Relationships: rels,
	}
}
