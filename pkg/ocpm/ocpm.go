// Package ocpm is a small facade re-exporting the object-centric
// process mining engine's internal packages for external callers:
// type aliases plus one-line forwarding functions.
package ocpm

import (
	"github.com/ocpm/declareminer/internal/abstraction"
	"github.com/ocpm/declareminer/internal/declare"
	"github.com/ocpm/declareminer/internal/discover"
	"github.com/ocpm/declareminer/internal/ocel"
	"github.com/ocpm/declareminer/internal/ocpt"
)

// Log is the indexed, query-ready event log.
type Log = ocel.IndexedOCEL

// RawLog, RawEvent, RawObject, Relationship and TypeRecord are the
// plain unindexed log shapes an external collaborator builds before
// calling BuildLog.
type (
	RawLog       = ocel.RawLog
	RawEvent     = ocel.RawEvent
	RawObject    = ocel.RawObject
	Relationship = ocel.Relationship
	TypeRecord   = ocel.TypeRecord
	AttrValue    = ocel.AttrValue
	AttrDecl     = ocel.AttrDecl
)

// BuildLog indexes a plain log into a queryable Log.
func BuildLog(raw RawLog) *Log { return ocel.Build(raw) }

// EventIndex and ObjectIndex are a log's internal handles, returned by
// its mutation and lookup methods.
type (
	EventIndex  = ocel.EventIndex
	ObjectIndex = ocel.ObjectIndex
)

// ObjectInvolvementCounts is the (min, max) per-instance object count
// a log exposes directly for activity/object-type and object/object
// co-occurrence.
type ObjectInvolvementCounts = ocel.ObjectInvolvementCounts

// Arc, ArcType, ArcLabel, Counts and ObjectTypeAssociation are the
// OC-DECLARE constraint vocabulary.
type (
	Arc                    = declare.Arc
	ArcType                = declare.ArcType
	ArcLabel               = declare.ArcLabel
	Counts                 = declare.Counts
	ObjectTypeAssociation  = declare.ObjectTypeAssociation
	EventOrSynthetic       = declare.EventOrSynthetic
)

const (
	AS = declare.AS
	EF = declare.EF
	EP = declare.EP
	DF = declare.DF
	DP = declare.DP
)

// NewSimple, NewO2O and NewO2OReversed build object-type associations.
func NewSimple(objectType string) ObjectTypeAssociation { return declare.NewSimple(objectType) }
func NewO2O(first, second string) ObjectTypeAssociation { return declare.NewO2O(first, second) }
func NewO2OReversed(first, second string) ObjectTypeAssociation {
	return declare.NewO2OReversed(first, second)
}

// ExactlyMin builds a Counts bound with only a minimum.
func ExactlyMin(n int) Counts { return declare.ExactlyMin(n) }

// FractionViolated returns the exact (non-thresholded) violation
// fraction for arc over log.
func FractionViolated(log *Log, arc Arc) float64 { return declare.FractionViolated(log, arc) }

// SatisfiedAtThreshold reports whether arc's violation rate over log
// stays at or below threshold.
func SatisfiedAtThreshold(log *Log, arc Arc, threshold float64) bool {
	return declare.SatisfiedAtThreshold(log, arc, threshold)
}

// LoadArcsYAML reads a golden constraint set from a YAML fixture.
func LoadArcsYAML(path string) ([]Arc, error) { return declare.LoadArcsYAML(path) }

// DiscoveryOptions configures a discovery run; DefaultDiscoveryOptions
// mirrors the engine's own default (20% noise, no O2O hopping, no
// reduction or refinement).
type DiscoveryOptions = discover.Options

func DefaultDiscoveryOptions() DiscoveryOptions { return discover.DefaultOptions() }

// LoadDiscoveryOptionsYAML reads discovery options from a YAML fixture.
func LoadDiscoveryOptionsYAML(path string) (DiscoveryOptions, error) {
	return discover.LoadOptionsYAML(path)
}

const (
	O2ONone           = discover.O2ONone
	O2ODirect         = discover.O2ODirect
	O2OReversed       = discover.O2OReversed
	O2OBidirectional  = discover.O2OBidirectional
	ReductionNone     = discover.ReductionNone
	ReductionLossless = discover.ReductionLossless
	ReductionLossy    = discover.ReductionLossy
)

// Discover mines a behavior-constraint arc set from log under opts.
func Discover(log *Log, opts DiscoveryOptions) []Arc { return discover.Discover(log, opts) }

// Tree, Node, Semantics and OperatorKind are the object-centric
// process tree vocabulary.
type (
	Tree         = ocpt.Tree
	Node         = ocpt.Node
	Semantics    = ocpt.Semantics
	OperatorKind = ocpt.OperatorKind
)

const (
	Sequence        = ocpt.Sequence
	ExclusiveChoice = ocpt.ExclusiveChoice
	Concurrency     = ocpt.Concurrency
	Loop            = ocpt.Loop
)

// NewTree, NewOperator, NewLoop, NewActivityLeaf and NewTauLeaf build
// process tree nodes.
func NewTree(root *Node) Tree { return ocpt.New(root) }
func NewOperator(kind OperatorKind) *Node { return ocpt.NewOperator(kind) }
func NewLoop(repetitions *int) *Node { return ocpt.NewLoop(repetitions) }
func NewActivityLeaf(activity string) *Node { return ocpt.NewActivityLeaf(activity) }
func NewTauLeaf() *Node { return ocpt.NewTauLeaf() }

// PropagateSemantics computes a tree's per-activity Related/Divergent/
// Optional/Convergent/Deficient sets.
func PropagateSemantics(t Tree) Semantics { return ocpt.PropagateSemantics(t) }

// ComputeDirectlyFollows derives an object type's directly-follows
// relation from a (semantics-annotated) subtree.
func ComputeDirectlyFollows(n *Node, objectType string, sem Semantics) ocpt.DirectlyFollows {
	return ocpt.ComputeDirectlyFollows(n, objectType, sem)
}

// Abstraction and Score are the language-abstraction vocabulary used
// to compare a log against a process tree.
type (
	Abstraction = abstraction.Abstraction
	Score       = abstraction.Score
)

// AbstractLog derives the seven-family abstraction directly from a log.
func AbstractLog(log *Log) Abstraction { return abstraction.FromLog(log) }

// AbstractTree derives the seven-family abstraction from a process tree.
func AbstractTree(t Tree) Abstraction { return abstraction.FromTree(t) }

// CompareAbstractions scores a log-side and tree-side abstraction into
// a (fitness, precision) pair.
func CompareAbstractions(log, tree Abstraction) Score { return abstraction.Compare(log, tree) }
