package ocpm

import (
	"testing"
	"time"
)

func sampleLog() *Log {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := RawLog{
		EventTypes:  []TypeRecord{{Name: "place"}, {Name: "ship"}},
		ObjectTypes: []TypeRecord{{Name: "order"}},
	}
	for i := 1; i <= 3; i++ {
		raw.Objects = append(raw.Objects, RawObject{ID: id("o", i), Type: "order"})
		raw.Events = append(raw.Events, RawEvent{
			ID: id("place", i), Type: "place", Timestamp: base.Add(time.Duration(i) * time.Hour),
			Relationships: []Relationship{{Qualifier: "order", TargetID: id("o", i)}},
		})
		raw.Events = append(raw.Events, RawEvent{
			ID: id("ship", i), Type: "ship", Timestamp: base.Add(time.Duration(10+i) * time.Hour),
			Relationships: []Relationship{{Qualifier: "order", TargetID: id("o", i)}},
		})
	}
	return BuildLog(raw)
}

func id(prefix string, i int) string { return prefix + string(rune('0'+i)) }

func TestBuildLogAndDiscoverFindsDF(t *testing.T) {
	log := sampleLog()
	opts := DefaultDiscoveryOptions()
	opts.NoiseThreshold = 0
	opts.ActivitiesToUse = []string{"place", "ship"}

	arcs := Discover(log, opts)
	found := false
	for _, a := range arcs {
		if a.From == "place" && a.To == "ship" && a.Type == DF {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a DF(place, ship) arc, got %+v", arcs)
	}
}

func TestFractionViolatedAndSatisfiedAtThresholdAgree(t *testing.T) {
	log := sampleLog()
	arc := Arc{From: "place", To: "ship", Type: EF, Label: ArcLabel{Each: []ObjectTypeAssociation{NewSimple("order")}}, Counts: ExactlyMin(1)}
	if frac := FractionViolated(log, arc); frac != 0 {
		t.Fatalf("expected zero violation, got %v", frac)
	}
	if !SatisfiedAtThreshold(log, arc, 0) {
		t.Fatalf("expected arc to be satisfied at zero noise threshold")
	}
}

func TestLogMutationMethodsAreAccessibleThroughTheAlias(t *testing.T) {
	log := sampleLog()
	e, ok := log.AddEvent("place99", "place", time.Now(), nil)
	if !ok {
		t.Fatalf("expected AddEvent to succeed for a fresh ID")
	}
	o, ok := log.AddObject("o99", "order", nil)
	if !ok {
		t.Fatalf("expected AddObject to succeed for a fresh ID")
	}
	log.AddE2O(e, o, "order")
	if !log.HasE2O(e, o) {
		t.Fatalf("expected AddE2O to link the new event and object")
	}
}

func TestAbstractLogAndTreeCompare(t *testing.T) {
	log := sampleLog()
	logAbs := AbstractLog(log)

	root := NewOperator(Sequence)
	root.AddChild(NewActivityLeaf("place"))
	root.AddChild(NewActivityLeaf("ship"))
	root.MarkRelated("order")
	tree := NewTree(root)

	treeAbs := AbstractTree(tree)
	score := CompareAbstractions(logAbs, treeAbs)
	if score.Fitness < 0 || score.Fitness > 1 || score.Precision < 0 || score.Precision > 1 {
		t.Fatalf("expected fitness/precision in [0,1], got %+v", score)
	}
}
