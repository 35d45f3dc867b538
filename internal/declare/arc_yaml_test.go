package declare

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadArcsYAMLParsesGoldenSet(t *testing.T) {
	arcs, err := LoadArcsYAML("testdata/golden_arcs.yaml")
	if err != nil {
		t.Fatalf("LoadArcsYAML: %v", err)
	}
	if len(arcs) != 2 {
		t.Fatalf("want 2 arcs, got %d", len(arcs))
	}
	first := arcs[0]
	if first.From != "place" || first.To != "ship" || first.Type != DF {
		t.Fatalf("unexpected first arc: %+v", first)
	}
	if len(first.Label.Each) != 1 || first.Label.Each[0] != NewSimple("order") {
		t.Fatalf("unexpected first arc label: %+v", first.Label)
	}
	if !first.Counts.HasMin || *first.Counts.Min != 1 || first.Counts.HasMax {
		t.Fatalf("unexpected first arc counts: %+v", first.Counts)
	}

	second := arcs[1]
	if second.Type != EF || len(second.Label.Any) != 2 {
		t.Fatalf("unexpected second arc: %+v", second)
	}
	if second.Label.Any[1] != NewO2O("order", "item") {
		t.Fatalf("unexpected second arc's O2O association: %+v", second.Label.Any[1])
	}
	if !second.Counts.HasMax || *second.Counts.Max != 3 {
		t.Fatalf("unexpected second arc counts: %+v", second.Counts)
	}
}

func TestArcYAMLRoundTrips(t *testing.T) {
	want := Arc{
		From: "a", To: "b", Type: DP,
		Label:  ArcLabel{All: []ObjectTypeAssociation{NewO2OReversed("x", "y")}},
		Counts: ExactlyMin(2),
	}
	data, err := yaml.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Arc
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
