package abstraction

import (
	"testing"
	"time"

	"github.com/ocpm/declareminer/internal/ocel"
	"github.com/ocpm/declareminer/internal/ocpt"
)

func sampleLog() *ocel.IndexedOCEL {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := ocel.RawLog{
		EventTypes: []ocel.TypeRecord{{Name: "place"}, {Name: "pack"}},
		ObjectTypes: []ocel.TypeRecord{{Name: "order"}, {Name: "item"}},
		Objects: []ocel.RawObject{
			{ID: "o1", Type: "order"},
			{ID: "i1", Type: "item"},
		},
		Events: []ocel.RawEvent{
			{ID: "e1", Type: "place", Timestamp: base,
				Relationships: []ocel.Relationship{{Qualifier: "order", TargetID: "o1"}}},
			{ID: "e2", Type: "pack", Timestamp: base.Add(time.Hour),
				Relationships: []ocel.Relationship{{Qualifier: "order", TargetID: "o1"}, {Qualifier: "item", TargetID: "i1"}}},
		},
	}
	return ocel.Build(raw)
}

func TestFromLogStartForOrder(t *testing.T) {
	s := sampleLog()
	a := FromLog(s)
	if !a["order"].Start["place"] {
		t.Fatalf("expected place to start the order trace: %+v", a["order"])
	}
	if !a["order"].DF[[2]string{"place", "pack"}] {
		t.Fatalf("expected place->pack df for order: %v", a["order"].DF)
	}
}

func TestFromLogItemDeficient(t *testing.T) {
	s := sampleLog()
	// A second place event that does touch an item, so place events
	// reference items only some of the time.
	i1, _ := s.LookupObject("i1")
	e3, _ := s.AddEvent("e3", "place", time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC), nil)
	s.AddE2O(e3, i1, "item")
	a := FromLog(s)
	if !a["item"].Deficient["place"] {
		t.Fatalf("expected place to be deficient for item (not every place event touches an item): %+v", a["item"])
	}
}

func seedTree() ocpt.Tree {
	place := ocpt.NewActivityLeaf("place")
	place.MarkRelated("order")
	pack := ocpt.NewActivityLeaf("pack")
	pack.MarkRelated("order")
	pack.MarkRelated("item")
	seq := ocpt.NewOperator(ocpt.Sequence)
	seq.AddChild(place)
	seq.AddChild(pack)
	return ocpt.New(seq)
}

func TestCompareFitnessAndPrecisionInRange(t *testing.T) {
	log := FromLog(sampleLog())
	tree := FromTree(seedTree())
	score := Compare(log, tree)
	if score.Fitness < 0 || score.Fitness > 1 {
		t.Fatalf("fitness out of range: %v", score.Fitness)
	}
	if score.Precision < 0 || score.Precision > 1 {
		t.Fatalf("precision out of range: %v", score.Precision)
	}
	if score.Fitness <= 0.5 {
		t.Fatalf("expected a reasonably high fitness for a matching shape, got %v", score.Fitness)
	}
}

func TestCompareHandlesInvalidTree(t *testing.T) {
	invalid := ocpt.New(ocpt.NewLoop(nil))
	a := FromTree(invalid)
	if len(a) != 0 {
		t.Fatalf("expected empty abstraction for invalid tree, got %+v", a)
	}
	score := Compare(FromLog(sampleLog()), a)
	if score.Fitness != 0 || score.Precision != 0 {
		t.Fatalf("expected zero score against an empty abstraction, got %+v", score)
	}
}
