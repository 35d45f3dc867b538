package discover

import (
	"testing"

	"github.com/ocpm/declareminer/internal/declare"
	"gopkg.in/yaml.v3"
)

func yamlMarshalUnmarshalRoundTrip(o Options) (Options, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return Options{}, err
	}
	var out Options
	err = yaml.Unmarshal(data, &out)
	return out, err
}

func TestLoadOptionsYAMLParsesFixture(t *testing.T) {
	o, err := LoadOptionsYAML("testdata/strict_options.yaml")
	if err != nil {
		t.Fatalf("LoadOptionsYAML: %v", err)
	}
	if o.NoiseThreshold != 0 || o.O2OMode != O2ODirect || o.Reduction != ReductionLossless || !o.Refinement {
		t.Fatalf("unexpected scalar fields: %+v", o)
	}
	if len(o.ActivitiesToUse) != 2 || o.ActivitiesToUse[0] != "place" || o.ActivitiesToUse[1] != "ship" {
		t.Fatalf("unexpected activities: %+v", o.ActivitiesToUse)
	}
	if !o.CountsForFilter.HasMin || *o.CountsForFilter.Min != 1 || !o.CountsForFilter.HasMax || *o.CountsForFilter.Max != 1 {
		t.Fatalf("unexpected filter counts: %+v", o.CountsForFilter)
	}
	if o.considers(declare.AS) || o.considers(declare.EF) || !o.considers(declare.DF) || !o.considers(declare.DP) {
		t.Fatalf("unexpected considered arc types: %+v", o.ConsideredArcTypes)
	}
}

func TestOptionsRoundTripsThroughYAML(t *testing.T) {
	want := DefaultOptions()
	want.ActivitiesToUse = []string{"a", "b"}

	out, err := yamlMarshalUnmarshalRoundTrip(want)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if out.NoiseThreshold != want.NoiseThreshold || out.O2OMode != want.O2OMode || out.Reduction != want.Reduction {
		t.Fatalf("got %+v, want %+v", out, want)
	}
	for _, at := range []declare.ArcType{declare.AS, declare.EF, declare.EP, declare.DF, declare.DP} {
		if out.considers(at) != want.considers(at) {
			t.Fatalf("arc type %v considered-ness mismatch after round trip", at)
		}
	}
}
