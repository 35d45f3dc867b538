package main

import "testing"

func TestLoadFixtureLogIndexesShipmentFixture(t *testing.T) {
	l, err := loadFixtureLog("testdata/shipment.yaml")
	if err != nil {
		t.Fatalf("loadFixtureLog: %v", err)
	}
	if l.NumEvents() != 6 {
		t.Fatalf("want 6 events, got %d", l.NumEvents())
	}
	if l.NumObjects() != 3 {
		t.Fatalf("want 3 objects, got %d", l.NumObjects())
	}
	if _, ok := l.LookupEvent("place1"); !ok {
		t.Fatalf("expected place1 to be indexed")
	}
}
