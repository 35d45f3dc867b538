package declare

import (
	"testing"
	"time"

	"github.com/ocpm/declareminer/internal/ocel"
)

// orderLog builds five orders placed in sequence; four are shipped,
// one (o5) is never shipped, so an EF(place, ship) arc restricted to
// "order" each is violated for exactly one source event.
func orderLog() *ocel.IndexedOCEL {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := ocel.RawLog{
		EventTypes:  []ocel.TypeRecord{{Name: "place"}, {Name: "ship"}},
		ObjectTypes: []ocel.TypeRecord{{Name: "order"}},
	}
	for i := 1; i <= 5; i++ {
		raw.Objects = append(raw.Objects, ocel.RawObject{ID: id("o", i), Type: "order"})
	}
	for i := 1; i <= 5; i++ {
		raw.Events = append(raw.Events, ocel.RawEvent{
			ID: id("place", i), Type: "place", Timestamp: base.Add(time.Duration(i) * time.Hour),
			Relationships: []ocel.Relationship{{Qualifier: "order", TargetID: id("o", i)}},
		})
	}
	for i := 1; i <= 4; i++ {
		raw.Events = append(raw.Events, ocel.RawEvent{
			ID: id("ship", i), Type: "ship", Timestamp: base.Add(time.Duration(10+i) * time.Hour),
			Relationships: []ocel.Relationship{{Qualifier: "order", TargetID: id("o", i)}},
		})
	}
	return ocel.Build(raw)
}

func id(prefix string, i int) string {
	return prefix + string(rune('0'+i))
}

func placeShipEF(min int) Arc {
	return Arc{
		From: "place",
		To:   "ship",
		Type: EF,
		Label: ArcLabel{
			Each: []ObjectTypeAssociation{NewSimple("order")},
		},
		Counts: ExactlyMin(min),
	}
}

func TestGetBindingsSingleEachProducesSingletonAllFilter(t *testing.T) {
	s := orderLog()
	e, ok := s.LookupEvent("place1")
	if !ok {
		t.Fatal("expected place1 to exist")
	}
	label := ArcLabel{Each: []ObjectTypeAssociation{NewSimple("order")}}
	bindings := GetBindings(s, label, Real(e))
	if len(bindings) != 1 {
		t.Fatalf("expected exactly one binding (one order per place event), got %d", len(bindings))
	}
	b := bindings[0]
	if len(b) != 1 || b[0].Kind != FilterAll || len(b[0].Items) != 1 {
		t.Fatalf("expected a singleton All filter, got %+v", b)
	}
}

func TestFractionViolatedCountsUnshippedOrder(t *testing.T) {
	s := orderLog()
	frac := FractionViolated(s, placeShipEF(1))
	if frac != 0.2 {
		t.Fatalf("expected 1/5 violated, got %v", frac)
	}
}

func TestSatisfiedAtThresholdAcceptsWithinNoise(t *testing.T) {
	s := orderLog()
	arc := placeShipEF(1)
	if !SatisfiedAtThreshold(s, arc, 0.3) {
		t.Fatalf("expected arc to be satisfied at 30%% noise threshold")
	}
	if SatisfiedAtThreshold(s, arc, 0.1) {
		t.Fatalf("expected arc to be violated at 10%% noise threshold")
	}
}

func TestEventOrSyntheticInitExitBoundTimestamps(t *testing.T) {
	s := orderLog()
	o, ok := s.LookupObject("o1")
	if !ok {
		t.Fatal("expected o1 to exist")
	}
	e, _ := s.LookupEvent("place1")
	init := Init(o)
	if !init.Timestamp(s).Before(s.EventTime(e)) {
		t.Fatalf("expected INIT timestamp to precede the object's first event")
	}
	if init.EventType(s) != InitPrefix+"order" {
		t.Fatalf("unexpected synthetic event type: %s", init.EventType(s))
	}
	exit := Exit(o)
	shipE, _ := s.LookupEvent("ship1")
	if !exit.Timestamp(s).After(s.EventTime(shipE)) {
		t.Fatalf("expected EXIT timestamp to follow the object's last event")
	}
}
