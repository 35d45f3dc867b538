package declare

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlAssociation is the named form of ObjectTypeAssociation: either
// a "simple" object type, or an "o2oFirst"/"o2oSecond" pair with an
// optional "o2oReversed" flag.
type yamlAssociation struct {
	Simple      string `yaml:"simple,omitempty"`
	O2OFirst    string `yaml:"o2oFirst,omitempty"`
	O2OSecond   string `yaml:"o2oSecond,omitempty"`
	O2OReversed bool   `yaml:"o2oReversed,omitempty"`
}

func (a ObjectTypeAssociation) toYAML() yamlAssociation {
	if a.Kind == Simple {
		return yamlAssociation{Simple: a.Object}
	}
	return yamlAssociation{O2OFirst: a.First, O2OSecond: a.Second, O2OReversed: a.Reversed}
}

func (y yamlAssociation) toAssociation() ObjectTypeAssociation {
	if y.Simple != "" {
		return NewSimple(y.Simple)
	}
	if y.O2OReversed {
		return NewO2OReversed(y.O2OFirst, y.O2OSecond)
	}
	return NewO2O(y.O2OFirst, y.O2OSecond)
}

type yamlArcLabel struct {
	Each []yamlAssociation `yaml:"each,omitempty"`
	All  []yamlAssociation `yaml:"all,omitempty"`
	Any  []yamlAssociation `yaml:"any,omitempty"`
}

func (l ArcLabel) toYAML() yamlArcLabel {
	return yamlArcLabel{Each: assocsToYAML(l.Each), All: assocsToYAML(l.All), Any: assocsToYAML(l.Any)}
}

func (y yamlArcLabel) toArcLabel() ArcLabel {
	return ArcLabel{Each: assocsFromYAML(y.Each), All: assocsFromYAML(y.All), Any: assocsFromYAML(y.Any)}
}

func assocsToYAML(assocs []ObjectTypeAssociation) []yamlAssociation {
	if assocs == nil {
		return nil
	}
	out := make([]yamlAssociation, len(assocs))
	for i, a := range assocs {
		out[i] = a.toYAML()
	}
	return out
}

func assocsFromYAML(ys []yamlAssociation) []ObjectTypeAssociation {
	if ys == nil {
		return nil
	}
	out := make([]ObjectTypeAssociation, len(ys))
	for i, y := range ys {
		out[i] = y.toAssociation()
	}
	return out
}

// yamlArc is the named, fixture-friendly mirror of Arc, rendered via
// its own template string for the arc type rather than a bare int.
type yamlArc struct {
	From   string       `yaml:"from"`
	To     string       `yaml:"to"`
	Type   string       `yaml:"type"`
	Label  yamlArcLabel `yaml:"label"`
	Min    *int         `yaml:"min,omitempty"`
	Max    *int         `yaml:"max,omitempty"`
}

var arcTypeValues = map[string]ArcType{"AS": AS, "EF": EF, "EP": EP, "DF": DF, "DP": DP}

func (a Arc) MarshalYAML() (interface{}, error) {
	y := yamlArc{From: a.From, To: a.To, Type: a.Type.String(), Label: a.Label.toYAML()}
	if a.Counts.HasMin {
		y.Min = a.Counts.Min
	}
	if a.Counts.HasMax {
		y.Max = a.Counts.Max
	}
	return y, nil
}

func (a *Arc) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var y yamlArc
	if err := unmarshal(&y); err != nil {
		return err
	}
	t, ok := arcTypeValues[y.Type]
	if !ok {
		return fmt.Errorf("declare: unknown arc type %q", y.Type)
	}
	counts := Counts{}
	if y.Min != nil {
		counts.Min, counts.HasMin = y.Min, true
	}
	if y.Max != nil {
		counts.Max, counts.HasMax = y.Max, true
	}
	*a = Arc{From: y.From, To: y.To, Type: t, Label: y.Label.toArcLabel(), Counts: counts}
	return nil
}

// LoadArcsYAML reads a golden constraint set (a YAML list of arcs)
// from path, for use as a discovery-result or checker test fixture.
func LoadArcsYAML(path string) ([]Arc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var arcs []Arc
	if err := yaml.Unmarshal(data, &arcs); err != nil {
		return nil, err
	}
	return arcs, nil
}
