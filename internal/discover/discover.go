package discover

import (
	"runtime"
	"strings"
	"sync"

	"github.com/ocpm/declareminer/internal/declare"
	"github.com/ocpm/declareminer/internal/ocel"
	"golang.org/x/sync/errgroup"
)

// Discover mines a behavior-constraint arc set from a log: the
// object-involvement catalog is built once, then every activity pair
// is processed concurrently (one errgroup task per pair, bounded to
// GOMAXPROCS), and the arcs from every pair are pooled before the
// optional reduction and refinement passes run over the whole set.
func Discover(s *ocel.IndexedOCEL, opts Options) []declare.Arc {
	cat := BuildCatalog(s)

	acts := opts.ActivitiesToUse
	if len(acts) == 0 {
		for _, et := range s.EventTypes() {
			if strings.HasPrefix(et, declare.InitPrefix) || strings.HasPrefix(et, declare.ExitPrefix) {
				continue
			}
			acts = append(acts, et)
		}
	}

	var mu sync.Mutex
	var all []declare.Arc
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, act1 := range acts {
		for _, act2 := range acts {
			act1, act2 := act1, act2
			g.Go(func() error {
				arcs := discoverPair(s, cat, act1, act2, opts)
				mu.Lock()
				all = append(all, arcs...)
				mu.Unlock()
				return nil
			})
		}
	}
	g.Wait()

	reduced := all
	switch opts.Reduction {
	case ReductionLossless:
		reduced = reduceArcs(all, true)
	case ReductionLossy:
		reduced = reduceArcs(all, false)
	}

	if opts.Refinement {
		return refineArcs(s, cat, reduced, opts)
	}
	return reduced
}

// discoverPair runs the full single-pair pipeline: candidate
// generation, single-association label testing, the combination
// lattice, dominance pruning, the per-pair AS satisfaction check, and
// temporal strengthening.
func discoverPair(s *ocel.IndexedOCEL, cat Catalog, act1, act2 string, opts Options) []declare.Arc {
	cands := candidatesForPair(cat, act1, act2, opts.O2OMode)
	labels := getOiLabels(s, act1, act2, declare.AS, cands, opts.CountsForGeneration, opts.NoiseThreshold)
	combined := combineLabels(s, labels, act1, act2, declare.AS, opts.CountsForGeneration, opts.NoiseThreshold, true)
	surviving := dropDominated(combined)

	var out []declare.Arc
	for _, label := range surviving {
		arc := declare.Arc{From: act1, To: act2, Type: declare.AS, Label: label, Counts: opts.CountsForFilter}
		if !declare.SatisfiedAtThreshold(s, arc, opts.NoiseThreshold) {
			continue
		}
		arc.Counts.HasMax = false
		arc.Counts.Max = nil
		out = append(out, strengthenAS(s, arc, opts.NoiseThreshold, opts.ConsideredArcTypes)...)
	}
	return out
}
