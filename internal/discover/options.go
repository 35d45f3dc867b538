// Package discover implements OC-DECLARE discovery: mining a set of
// behavioral arcs directly from an event log, by generating candidate
// object-involvement labels per activity pair, testing and combining
// them under a noise threshold, then optionally reducing and refining
// the result.
package discover

import "github.com/ocpm/declareminer/internal/declare"

// O2OMode controls whether candidate generation follows O2O hops in
// addition to direct (Simple) object involvement.
type O2OMode int

const (
	O2ONone O2OMode = iota
	O2ODirect
	O2OReversed
	O2OBidirectional
)

// ReductionMode controls the path-based dominance sweep applied to a
// discovered arc set.
type ReductionMode int

const (
	ReductionNone ReductionMode = iota
	ReductionLossless
	ReductionLossy
)

// Options configures a discovery run.
type Options struct {
	NoiseThreshold float64
	O2OMode        O2OMode

	// ActivitiesToUse restricts discovery to this set of activities;
	// nil means every real (non-lifecycle) event type in the log.
	ActivitiesToUse []string

	// CountsForGeneration bounds the counts used while testing
	// candidate labels and combinations; CountsForFilter bounds the
	// counts used for the final per-pair satisfaction check before
	// temporal strengthening.
	CountsForGeneration declare.Counts
	CountsForFilter     declare.Counts

	Reduction  ReductionMode
	Refinement bool

	// ConsideredArcTypes restricts which temporal arc types
	// strengthening may produce; a nil map considers all five.
	ConsideredArcTypes map[declare.ArcType]bool
}

// DefaultOptions mirrors the discovery defaults: 20% noise, no O2O
// hopping, generation counts of (min 1, unbounded), filter counts of
// (min 1, max 20), no reduction, no refinement, every arc type
// eligible for temporal strengthening.
func DefaultOptions() Options {
	return Options{
		NoiseThreshold:      0.2,
		O2OMode:             O2ONone,
		CountsForGeneration: declare.ExactlyMin(1),
		CountsForFilter:     countsMinMax(1, 20),
		Reduction:           ReductionNone,
		Refinement:          false,
		ConsideredArcTypes: map[declare.ArcType]bool{
			declare.AS: true,
			declare.EF: true,
			declare.EP: true,
			declare.DF: true,
			declare.DP: true,
		},
	}
}

func countsMinMax(min, max int) declare.Counts {
	return declare.Counts{Min: &min, HasMin: true, Max: &max, HasMax: true}
}

func (o Options) considers(t declare.ArcType) bool {
	if o.ConsideredArcTypes == nil {
		return true
	}
	return o.ConsideredArcTypes[t]
}
