package declare

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/ocpm/declareminer/internal/ocel"
	"golang.org/x/sync/errgroup"
)

// getEventsWithObjects returns the nodes of the given event type whose
// referenced-object set satisfies every filter in binding. Iteration
// starts from the binding's first filter (its Any or All items) rather
// than scanning every node of the type, then the remaining filters prune.
func getEventsWithObjects(s *ocel.IndexedOCEL, binding Binding, etype string) []EventOrSynthetic {
	var candidates []EventOrSynthetic
	if len(binding) == 0 {
		candidates = allSynEvs(s, etype)
	} else {
		first := binding[0]
		switch first.Kind {
		case FilterAny:
			seen := map[EventOrSynthetic]bool{}
			for _, o := range first.Items {
				for _, n := range allOfTypeForObject(s, etype, o) {
					if !seen[n] {
						seen[n] = true
						candidates = append(candidates, n)
					}
				}
			}
		default:
			if len(first.Items) == 0 {
				candidates = allSynEvs(s, etype)
				break
			}
			rest := first.Items[1:]
			for _, n := range allOfTypeForObject(s, etype, first.Items[0]) {
				if coversAll(sortedObjects(n.Objects(s)), rest) {
					candidates = append(candidates, n)
				}
			}
		}
	}
	var out []EventOrSynthetic
	for _, n := range candidates {
		obs := sortedObjects(n.Objects(s))
		if matchesBinding(binding, obs) {
			out = append(out, n)
		}
	}
	return out
}

func coversAll(set, items []ocel.ObjectIndex) bool {
	for _, o := range items {
		if !containsSorted(set, o) {
			return false
		}
	}
	return true
}

func matchesBinding(binding Binding, obs []ocel.ObjectIndex) bool {
	for _, f := range binding {
		if !f.Check(obs) {
			return false
		}
	}
	return true
}

// getNearestDFOrDPEvent returns the nearest node (by timestamp) among
// those matching binding that lies strictly after (following=true) or
// strictly before referenceTime, or false if none matches.
func getNearestDFOrDPEvent(s *ocel.IndexedOCEL, binding Binding, referenceTime func(EventOrSynthetic) bool, following bool) (EventOrSynthetic, bool) {
	var candidates []EventOrSynthetic
	if len(binding) == 0 || (binding[0].Kind == FilterAll && len(binding[0].Items) == 0) {
		for i := 0; i < s.NumEvents(); i++ {
			if n := Real(ocel.EventIndex(i)); referenceTime(n) {
				candidates = append(candidates, n)
			}
		}
	} else {
		first := binding[0]
		switch first.Kind {
		case FilterAny:
			for _, o := range first.Items {
				for _, n := range allForObject(s, o) {
					if referenceTime(n) {
						candidates = append(candidates, n)
					}
				}
			}
		default:
			for _, n := range allForObject(s, first.Items[0]) {
				if referenceTime(n) {
					candidates = append(candidates, n)
				}
			}
		}
	}

	var best EventOrSynthetic
	found := false
	for _, n := range candidates {
		obs := sortedObjects(n.Objects(s))
		if !matchesBinding(binding, obs) {
			continue
		}
		if !found {
			best, found = n, true
			continue
		}
		nt, bt := n.Timestamp(s), best.Timestamp(s)
		if following && nt.Before(bt) {
			best = n
		}
		if !following && nt.After(bt) {
			best = n
		}
	}
	return best, found
}

// violatedForEvent reports whether the arc is violated starting from
// source node n: a single violated binding violates the arc.
func violatedForEvent(s *ocel.IndexedOCEL, n EventOrSynthetic, toET string, arcType ArcType, counts Counts, label ArcLabel) bool {
	srcTime := n.Timestamp(s)
	for _, binding := range GetBindings(s, label, n) {
		switch arcType {
		case AS, EF, EP:
			targets := getEventsWithObjects(s, binding, toET)
			var filtered []EventOrSynthetic
			for _, t := range targets {
				tt := t.Timestamp(s)
				switch arcType {
				case EF:
					if !srcTime.Before(tt) {
						continue
					}
				case EP:
					if !srcTime.After(tt) {
						continue
					}
				}
				filtered = append(filtered, t)
			}
			if !counts.HasMax {
				min := 0
				if counts.HasMin {
					min = *counts.Min
				}
				taken := filtered
				if len(taken) > min {
					taken = taken[:min]
				}
				if min > len(taken) {
					return true
				}
			} else {
				max := *counts.Max
				taken := filtered
				if len(taken) > max+1 {
					taken = taken[:max+1]
				}
				count := len(taken)
				min := 0
				if counts.HasMin {
					min = *counts.Min
				}
				if max < count || count < min {
					return true
				}
			}
		default: // DF, DP
			following := arcType == DF
			var refCheck func(EventOrSynthetic) bool
			if following {
				refCheck = func(e EventOrSynthetic) bool { return e.Timestamp(s).After(srcTime) }
			} else {
				refCheck = func(e EventOrSynthetic) bool { return e.Timestamp(s).Before(srcTime) }
			}
			target, ok := getNearestDFOrDPEvent(s, binding, refCheck, following)
			count := 0
			if ok && target.EventType(s) == toET {
				count = 1
			}
			if counts.HasMin && count < *counts.Min {
				return true
			}
			if counts.HasMax && count > *counts.Max {
				return true
			}
		}
	}
	return false
}

// FractionViolated returns the fraction (in [0,1]) of fromET source
// nodes for which the arc is violated.
func FractionViolated(s *ocel.IndexedOCEL, arc Arc) float64 {
	evs := allSynEvs(s, arc.From)
	if len(evs) == 0 {
		return 0
	}
	violated := 0
	for _, ev := range evs {
		if violatedForEvent(s, ev, arc.To, arc.Type, arc.Counts, arc.Label) {
			violated++
		}
	}
	return float64(violated) / float64(len(evs))
}

// SatisfiedAtThreshold reports whether the arc's violation rate stays
// at or below threshold, evaluated concurrently with early
// termination: minSat = ceil(n*(1-threshold)) nodes
// satisfying, or minViol = floor(n*threshold)+1 nodes violating,
// whichever is reached first, decides the answer without scanning the
// rest of the nodes.
func SatisfiedAtThreshold(s *ocel.IndexedOCEL, arc Arc, threshold float64) bool {
	evs := allSynEvs(s, arc.From)
	n := len(evs)
	if n == 0 {
		return true
	}
	minSat := int64(math.Ceil(float64(n) * (1 - threshold)))
	minViol := int64(math.Floor(float64(n)*threshold)) + 1

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, ev := range evs {
		ev := ev
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if violatedForEvent(s, ev, arc.To, arc.Type, arc.Counts, arc.Label) {
				if atomic.AddInt64(&minViol, -1) <= 0 {
					cancel()
				}
			} else {
				if atomic.AddInt64(&minSat, -1) <= 0 {
					cancel()
				}
			}
			return nil
		})
	}
	g.Wait()

	if atomic.LoadInt64(&minSat) <= 0 {
		return true
	}
	return false
}
