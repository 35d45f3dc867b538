package ocpt

import "testing"

func df(start, end []string, pairs [][2]string, skippable bool) DirectlyFollows {
	out := emptyDF()
	for _, a := range start {
		out.Start[a] = true
	}
	for _, a := range end {
		out.End[a] = true
	}
	for _, p := range pairs {
		out.Pairs[p] = true
	}
	out.Skippable = skippable
	return out
}

func hasPair(d DirectlyFollows, from, to string) bool { return d.Pairs[[2]string{from, to}] }

// do-body skippable (e.g. it is itself divergent) absorbs every redo
// child's start/end into the loop's own, and the combined start/end
// set is cross-multiplied in both directions.
func TestLoopDFBodySkippableAbsorbsRedoAndCrossMultiplies(t *testing.T) {
	body := df([]string{"review"}, []string{"review"}, [][2]string{{"review", "review"}}, true)
	redo := df([]string{"escalate"}, []string{"escalate"}, nil, false)

	out := loopDF([]DirectlyFollows{body, redo})

	if !out.Skippable {
		t.Fatal("expected loop to be skippable when its do-body is")
	}
	if !out.Start["escalate"] || !out.End["escalate"] {
		t.Fatalf("expected redo's start/end folded into the loop's, got %+v / %+v", out.Start, out.End)
	}
	if !hasPair(out, "escalate", "escalate") {
		t.Fatal("expected the skippable do-body to let redo directly follow itself")
	}
	if !hasPair(out, "review", "escalate") || !hasPair(out, "escalate", "review") {
		t.Fatal("expected end(D)xstart(Ri) and end(Ri)xstart(D) pairs")
	}
}

// A non-skippable do-body must not leak a non-skippable redo's
// start/end into the loop's own, and must not gain a spurious
// self-pair.
func TestLoopDFNonSkippableBodyDoesNotAbsorbRedoStartEnd(t *testing.T) {
	body := df([]string{"pay"}, []string{"pay"}, nil, false)
	redo := df([]string{"escalate"}, []string{"escalate"}, nil, false)

	out := loopDF([]DirectlyFollows{body, redo})

	if out.Skippable {
		t.Fatal("expected loop to be non-skippable when its do-body is")
	}
	if len(out.Start) != 1 || !out.Start["pay"] {
		t.Fatalf("expected only the do-body's own start when non-skippable, got %+v", out.Start)
	}
	if len(out.End) != 1 || !out.End["pay"] {
		t.Fatalf("expected only the do-body's own end when non-skippable, got %+v", out.End)
	}
	if hasPair(out, "pay", "pay") {
		t.Fatal("non-skippable do-body with no skippable redo should not self-pair")
	}
	if !hasPair(out, "pay", "escalate") || !hasPair(out, "escalate", "pay") {
		t.Fatal("expected the always-present end(D)xstart(Ri)/end(Ri)xstart(D) pairs")
	}
}

// A skippable redo alternative lets the do-body directly follow
// itself, even when the do-body itself is not individually skippable.
func TestLoopDFAnyRedoSkippableAddsBodySelfPair(t *testing.T) {
	body := df([]string{"pay"}, []string{"pay"}, nil, false)
	redo := df([]string{"cancel"}, []string{"cancel"}, [][2]string{{"cancel", "cancel"}}, true)

	out := loopDF([]DirectlyFollows{body, redo})

	if out.Skippable {
		t.Fatal("loop skippability follows only the do-body")
	}
	if !hasPair(out, "pay", "pay") {
		t.Fatal("expected start(D)xend(D) once any redo alternative is skippable")
	}
	if out.Start["cancel"] || out.End["cancel"] {
		t.Fatal("a skippable redo alone must not fold its start/end into the loop's own")
	}
}

// Two divergent Sequence children both contribute their related
// activities as "floating": pairs are added in both directions across
// floating sets from earlier positions, not just forward.
func TestSequenceDFFloatingPairsAreBidirectional(t *testing.T) {
	x := NewActivityLeaf("X")
	y := NewActivityLeaf("Y")
	sem := Semantics{
		"X": {Related: map[string]bool{"order": true}, Divergent: map[string]bool{"order": true}, Optional: map[string]bool{}, Convergent: map[string]bool{}, Deficient: map[string]bool{}},
		"Y": {Related: map[string]bool{"order": true}, Divergent: map[string]bool{"order": true}, Optional: map[string]bool{}, Convergent: map[string]bool{}, Deficient: map[string]bool{}},
	}
	cx := df([]string{"X"}, []string{"X"}, [][2]string{{"X", "X"}}, true)
	cy := df([]string{"Y"}, []string{"Y"}, [][2]string{{"Y", "Y"}}, true)

	out := sequenceDF([]*Node{x, y}, []DirectlyFollows{cx, cy}, "order", sem)

	if !hasPair(out, "X", "Y") || !hasPair(out, "Y", "X") {
		t.Fatalf("expected floating cross-pairs in both directions, got %+v", out.Pairs)
	}
}

// When a middle Sequence child is unrelated to the object type (not
// merely divergent), it still floats: its (empty) related set breaks
// nothing, and activities on either side of it are not force-linked by
// the floating mechanism itself.
func TestSequenceDFFloatingSkipsTrulyUnrelatedChild(t *testing.T) {
	a := NewActivityLeaf("A")
	mid := NewActivityLeaf("Mid")
	b := NewActivityLeaf("B")
	sem := Semantics{
		"A":   {Related: map[string]bool{"order": true}, Divergent: map[string]bool{}, Optional: map[string]bool{}, Convergent: map[string]bool{}, Deficient: map[string]bool{}},
		"Mid": {Related: map[string]bool{}, Divergent: map[string]bool{}, Optional: map[string]bool{}, Convergent: map[string]bool{}, Deficient: map[string]bool{}},
		"B":   {Related: map[string]bool{"order": true}, Divergent: map[string]bool{}, Optional: map[string]bool{}, Convergent: map[string]bool{}, Deficient: map[string]bool{}},
	}
	ca := df([]string{"A"}, []string{"A"}, nil, false)
	cmid := df(nil, nil, nil, true)
	cb := df([]string{"B"}, []string{"B"}, nil, false)

	out := sequenceDF([]*Node{a, mid, b}, []DirectlyFollows{ca, cmid, cb}, "order", sem)

	if !hasPair(out, "A", "B") {
		t.Fatal("expected the normal carried-end pair across the unrelated middle child")
	}
	if hasPair(out, "B", "A") {
		t.Fatal("an unrelated middle child contributes no activities, so no reverse pair should appear")
	}
}
