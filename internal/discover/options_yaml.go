package discover

import (
	"os"

	"github.com/ocpm/declareminer/internal/declare"
	"gopkg.in/yaml.v3"
)

// yamlCounts mirrors declare.Counts for YAML round-tripping; a nil
// field means unbounded on that side, matching Counts.HasMin/HasMax.
type yamlCounts struct {
	Min *int `yaml:"min,omitempty"`
	Max *int `yaml:"max,omitempty"`
}

func (c yamlCounts) toCounts() declare.Counts {
	out := declare.Counts{}
	if c.Min != nil {
		out.Min, out.HasMin = c.Min, true
	}
	if c.Max != nil {
		out.Max, out.HasMax = c.Max, true
	}
	return out
}

func fromCounts(c declare.Counts) yamlCounts {
	var out yamlCounts
	if c.HasMin {
		out.Min = c.Min
	}
	if c.HasMax {
		out.Max = c.Max
	}
	return out
}

// yamlOptions is the YAML-friendly mirror of Options: enums become
// names, and arc-type eligibility becomes an explicit name list rather
// than a map, so a fixture file reads as a short, named document
// instead of a dump of Go's internal representation.
type yamlOptions struct {
	NoiseThreshold      float64    `yaml:"noiseThreshold"`
	O2OMode             string     `yaml:"o2oMode"`
	ActivitiesToUse     []string   `yaml:"activitiesToUse,omitempty"`
	CountsForGeneration yamlCounts `yaml:"countsForGeneration"`
	CountsForFilter     yamlCounts `yaml:"countsForFilter"`
	Reduction           string     `yaml:"reduction"`
	Refinement          bool       `yaml:"refinement"`
	ConsideredArcTypes  []string   `yaml:"consideredArcTypes,omitempty"`
}

var o2oModeNames = map[O2OMode]string{
	O2ONone: "none", O2ODirect: "direct", O2OReversed: "reversed", O2OBidirectional: "bidirectional",
}
var o2oModeValues = map[string]O2OMode{
	"none": O2ONone, "direct": O2ODirect, "reversed": O2OReversed, "bidirectional": O2OBidirectional,
}

var reductionNames = map[ReductionMode]string{
	ReductionNone: "none", ReductionLossless: "lossless", ReductionLossy: "lossy",
}
var reductionValues = map[string]ReductionMode{
	"none": ReductionNone, "lossless": ReductionLossless, "lossy": ReductionLossy,
}

var allArcTypes = []declare.ArcType{declare.AS, declare.EF, declare.EP, declare.DF, declare.DP}

// MarshalYAML renders Options in the named, fixture-friendly form.
func (o Options) MarshalYAML() (interface{}, error) {
	y := yamlOptions{
		NoiseThreshold:      o.NoiseThreshold,
		O2OMode:             o2oModeNames[o.O2OMode],
		ActivitiesToUse:     o.ActivitiesToUse,
		CountsForGeneration: fromCounts(o.CountsForGeneration),
		CountsForFilter:     fromCounts(o.CountsForFilter),
		Reduction:           reductionNames[o.Reduction],
		Refinement:          o.Refinement,
	}
	for _, t := range allArcTypes {
		if o.considers(t) {
			y.ConsideredArcTypes = append(y.ConsideredArcTypes, t.String())
		}
	}
	return y, nil
}

// UnmarshalYAML fills Options from the named, fixture-friendly form,
// defaulting an absent arc-type list to every type (matching
// DefaultOptions, not an empty, nothing-considered set).
func (o *Options) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var y yamlOptions
	if err := unmarshal(&y); err != nil {
		return err
	}
	*o = Options{
		NoiseThreshold:      y.NoiseThreshold,
		O2OMode:             o2oModeValues[y.O2OMode],
		ActivitiesToUse:     y.ActivitiesToUse,
		CountsForGeneration: y.CountsForGeneration.toCounts(),
		CountsForFilter:     y.CountsForFilter.toCounts(),
		Reduction:           reductionValues[y.Reduction],
		Refinement:          y.Refinement,
	}
	if len(y.ConsideredArcTypes) == 0 {
		return nil
	}
	o.ConsideredArcTypes = map[declare.ArcType]bool{}
	for _, name := range y.ConsideredArcTypes {
		for _, t := range allArcTypes {
			if t.String() == name {
				o.ConsideredArcTypes[t] = true
			}
		}
	}
	return nil
}

// LoadOptionsYAML reads a discovery options fixture from path.
func LoadOptionsYAML(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, err
	}
	return o, nil
}
