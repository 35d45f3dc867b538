// Package ocpt implements the Object-Centric Process Tree model: a
// tagged tree of operator/leaf nodes with per-leaf object-involvement
// annotations, its validity predicate, and the bottom-up semantic
// propagation over it.
package ocpt

import "github.com/google/uuid"

// OperatorKind tags the four process-tree operators.
type OperatorKind int

const (
	Sequence OperatorKind = iota
	ExclusiveChoice
	Concurrency
	Loop
)

func (k OperatorKind) String() string {
	switch k {
	case Sequence:
		return "Sequence"
	case ExclusiveChoice:
		return "ExclusiveChoice"
	case Concurrency:
		return "Concurrency"
	case Loop:
		return "Loop"
	default:
		return "Unknown"
	}
}

// Node is either an Operator or a Leaf. Exactly one of Op/Leaf is
// non-nil.
type Node struct {
	Op   *OperatorNode
	Leaf *LeafNode
}

// UUID returns the node's unique identifier, regardless of kind.
func (n *Node) UUID() uuid.UUID {
	if n.Op != nil {
		return n.Op.UUID
	}
	return n.Leaf.UUID
}

// IsLeaf reports whether n wraps a leaf.
func (n *Node) IsLeaf() bool { return n.Leaf != nil }

// OperatorNode is an internal tree node: a UUID, its operator kind, and
// an ordered list of children. Loop requires >= 2 children (first is
// the do-body, the remainder are redo alternatives); the other three
// operators require >= 1 child (enforced by IsValid, not by the type).
type OperatorNode struct {
	UUID        uuid.UUID
	Kind        OperatorKind
	Repetitions *int // optional bound, only meaningful for Loop
	Children    []*Node
}

// LeafLabel is either a named activity or the silent (tau) label.
type LeafLabel struct {
	Activity string
	IsTau    bool
}

// LeafNode is a leaf: a UUID, a label, and four object-type sets
// capturing how this activity's object involvement behaves. Every
// divergent/convergent/deficient entry must also be present in
// Related; IsValid checks this, the Mark* helpers below do not enforce
// it at insertion time.
type LeafNode struct {
	UUID       uuid.UUID
	Label      LeafLabel
	Related    map[string]bool
	Divergent  map[string]bool
	Convergent map[string]bool
	Deficient  map[string]bool
}

// NewOperator creates an operator node with a fresh UUID and no children.
func NewOperator(kind OperatorKind) *Node {
	return &Node{Op: &OperatorNode{UUID: uuid.New(), Kind: kind}}
}

// NewLoop creates a Loop operator with an optional repetition bound.
func NewLoop(repetitions *int) *Node {
	n := NewOperator(Loop)
	n.Op.Repetitions = repetitions
	return n
}

// NewActivityLeaf creates a leaf labeled with a real activity name.
func NewActivityLeaf(activity string) *Node {
	return &Node{Leaf: &LeafNode{
		UUID:       uuid.New(),
		Label:      LeafLabel{Activity: activity},
		Related:    map[string]bool{},
		Divergent:  map[string]bool{},
		Convergent: map[string]bool{},
		Deficient:  map[string]bool{},
	}}
}

// NewTauLeaf creates a silent leaf.
func NewTauLeaf() *Node {
	return &Node{Leaf: &LeafNode{
		UUID:       uuid.New(),
		Label:      LeafLabel{IsTau: true},
		Related:    map[string]bool{},
		Divergent:  map[string]bool{},
		Convergent: map[string]bool{},
		Deficient:  map[string]bool{},
	}}
}

// AddChild appends a child to an operator node. Panics if called on a
// leaf wrapper: that is a programmer error, not a recoverable input.
func (n *Node) AddChild(child *Node) {
	if n.Op == nil {
		panic("ocpt: cannot add child to a leaf")
	}
	n.Op.Children = append(n.Op.Children, child)
}

// MarkRelated, MarkDivergent, MarkConvergent, MarkDeficient recursively
// add an object type to every descendant leaf's corresponding set,
// for building test fixtures.
func (n *Node) MarkRelated(ot string)    { n.walkLeaves(func(l *LeafNode) { l.Related[ot] = true }) }
func (n *Node) MarkDivergent(ot string)  { n.walkLeaves(func(l *LeafNode) { l.Divergent[ot] = true }) }
func (n *Node) MarkConvergent(ot string) { n.walkLeaves(func(l *LeafNode) { l.Convergent[ot] = true }) }
func (n *Node) MarkDeficient(ot string)  { n.walkLeaves(func(l *LeafNode) { l.Deficient[ot] = true }) }

func (n *Node) walkLeaves(f func(*LeafNode)) {
	if n.Leaf != nil {
		f(n.Leaf)
		return
	}
	for _, c := range n.Op.Children {
		c.walkLeaves(f)
	}
}

// Tree is a rooted OCPT.
type Tree struct {
	Root *Node
}

// New wraps a root node into a Tree.
func New(root *Node) Tree { return Tree{Root: root} }
