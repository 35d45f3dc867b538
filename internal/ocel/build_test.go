package ocel

import (
	"testing"
	"time"
)

func sampleLog() RawLog {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return RawLog{
		EventTypes: []TypeRecord{
			{Name: "place", Attributes: []AttrDecl{{Name: "amount", Kind: AttrFloat}}},
			{Name: "pack"},
		},
		ObjectTypes: []TypeRecord{
			{Name: "order"},
			{Name: "item"},
		},
		Objects: []RawObject{
			{ID: "o1", Type: "order", Attributes: [][]AttrSample{}},
			{ID: "i1", Type: "item", Relationships: []Relationship{{Qualifier: "part of", TargetID: "o1"}}},
		},
		Events: []RawEvent{
			{ID: "e2", Type: "pack", Timestamp: base.Add(time.Hour),
				Attributes:    []AttrValue{},
				Relationships: []Relationship{{Qualifier: "order", TargetID: "o1"}, {Qualifier: "item", TargetID: "i1"}}},
			{ID: "e1", Type: "place", Timestamp: base,
				Attributes:    []AttrValue{{Kind: AttrFloat, Flt: 42}},
				Relationships: []Relationship{{Qualifier: "order", TargetID: "o1"}}},
		},
	}
}

func TestBuildSortsEventsByTimestamp(t *testing.T) {
	s := Build(sampleLog())
	if s.NumEvents() != 2 {
		t.Fatalf("want 2 events, got %d", s.NumEvents())
	}
	if s.EventID(0) != "e1" || s.EventID(1) != "e2" {
		t.Fatalf("events not sorted by timestamp: %s, %s", s.EventID(0), s.EventID(1))
	}
}

func TestReverseE2OIsSortedAndSynchronized(t *testing.T) {
	s := Build(sampleLog())
	o1, ok := s.LookupObject("o1")
	if !ok {
		t.Fatal("o1 not found")
	}
	evs := s.ReverseE2O(o1, "place")
	if len(evs) != 1 || s.EventID(evs[0]) != "e1" {
		t.Fatalf("unexpected reverse E2O for place: %v", evs)
	}
	evs = s.ReverseE2O(o1, "pack")
	if len(evs) != 1 || s.EventID(evs[0]) != "e2" {
		t.Fatalf("unexpected reverse E2O for pack: %v", evs)
	}
	// Every forward relation must have a matching, sorted reverse entry.
	for e := EventIndex(0); int(e) < s.NumEvents(); e++ {
		for _, fwd := range s.ForwardE2O(e) {
			rev := s.ReverseE2O(fwd.Object, s.EventType(e))
			found := false
			for _, r := range rev {
				if r == e {
					found = true
				}
			}
			if !found {
				t.Fatalf("event %d missing from reverse index of object %d", e, fwd.Object)
			}
			for i := 1; i < len(rev); i++ {
				if rev[i-1] > rev[i] {
					t.Fatalf("reverse E2O bucket not sorted: %v", rev)
				}
			}
		}
	}
}

func TestO2OResolution(t *testing.T) {
	s := Build(sampleLog())
	i1, _ := s.LookupObject("i1")
	o1, _ := s.LookupObject("o1")
	if !s.HasO2O(i1, o1) {
		t.Fatal("expected i1 -> o1 O2O relation")
	}
	rev := s.ReverseO2O(o1, "item")
	if len(rev) != 1 || rev[0] != i1 {
		t.Fatalf("unexpected reverse O2O: %v", rev)
	}
}

func TestInvalidIDsSilentlyDropped(t *testing.T) {
	log := sampleLog()
	log.Events[1].Relationships = append(log.Events[1].Relationships, Relationship{Qualifier: "ghost", TargetID: "does-not-exist"})
	s := Build(log)
	e1, _ := s.LookupEvent("e1")
	if len(s.ForwardE2O(e1)) != 1 {
		t.Fatalf("expected invalid relationship to be dropped, got %v", s.ForwardE2O(e1))
	}
}

func TestFullEventRoundTrip(t *testing.T) {
	log := sampleLog()
	s := Build(log)
	e1, _ := s.LookupEvent("e1")
	full := s.FullEvent(e1)
	if full.ID != "e1" || full.Type != "place" {
		t.Fatalf("unexpected round trip: %+v", full)
	}
	if len(full.Attributes) != 1 || full.Attributes[0].Flt != 42 {
		t.Fatalf("attribute not preserved: %+v", full.Attributes)
	}
	if len(full.Relationships) != 1 || full.Relationships[0].TargetID != "o1" {
		t.Fatalf("relationship not preserved: %+v", full.Relationships)
	}
}

func TestAddEventRejectsDuplicateID(t *testing.T) {
	s := Build(sampleLog())
	if _, ok := s.AddEvent("e1", "place", time.Now(), nil); ok {
		t.Fatal("expected duplicate ID to be rejected")
	}
}

func TestAddE2OIdempotentAndSortsBothSides(t *testing.T) {
	s := Build(sampleLog())
	e1, _ := s.LookupEvent("e1")
	i1, _ := s.LookupObject("i1")
	before := len(s.ForwardE2O(e1))
	s.AddE2O(e1, i1, "item")
	s.AddE2O(e1, i1, "item")
	if len(s.ForwardE2O(e1)) != before+1 {
		t.Fatalf("expected idempotent insert, got %d relations", len(s.ForwardE2O(e1)))
	}
	if !s.HasE2O(e1, i1) {
		t.Fatal("expected e1 -> i1 after AddE2O")
	}
	rev := s.ReverseE2O(i1, "place")
	if len(rev) != 1 || rev[0] != e1 {
		t.Fatalf("reverse index not updated: %v", rev)
	}
}

func TestDeleteE2ORemovesBothSides(t *testing.T) {
	s := Build(sampleLog())
	e2, _ := s.LookupEvent("e2")
	o1, _ := s.LookupObject("o1")
	s.DeleteE2O(e2, o1)
	if s.HasE2O(e2, o1) {
		t.Fatal("expected relation to be removed")
	}
	rev := s.ReverseE2O(o1, "pack")
	if len(rev) != 0 {
		t.Fatalf("expected reverse index cleared, got %v", rev)
	}
}
