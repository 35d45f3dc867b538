package ocel

import "testing"

func TestActivityObjectInvolvementsCountsPerEvent(t *testing.T) {
	s := Build(sampleLog())
	counts := s.ActivityObjectInvolvements()
	pack, ok := counts["pack"]["item"]
	if !ok || pack.Min != 1 || pack.Max != 1 {
		t.Fatalf("expected pack to carry exactly one item, got %+v (ok=%v)", pack, ok)
	}
	if _, ok := counts["place"]["item"]; ok {
		t.Fatalf("place never references item; should be absent, not zero-valued")
	}
}

func TestObjectToObjectInvolvementsAreDirectional(t *testing.T) {
	s := Build(sampleLog())
	fwd := s.ObjectToObjectInvolvements()
	if c, ok := fwd["item"]["order"]; !ok || c.Min != 1 || c.Max != 1 {
		t.Fatalf("expected item->order forward O2O count of 1, got %+v (ok=%v)", c, ok)
	}
	if _, ok := fwd["order"]["item"]; ok {
		t.Fatalf("order has no forward O2O edges in this fixture")
	}

	rev := s.ReverseObjectToObjectInvolvements()
	if c, ok := rev["order"]["item"]; !ok || c.Min != 1 || c.Max != 1 {
		t.Fatalf("expected order<-item reverse O2O count of 1, got %+v (ok=%v)", c, ok)
	}
}
