package dtree

// Kind tags the variant a Node represents.
type Kind int

const (
	// KindSource is a node in the original graph.
	KindSource Kind = iota
	// KindEpsilon is a zero-length sentinel carrying a collapsed edge
	// where no intermediate sequence remains (rule 1 of the
	// decomposition).
	KindEpsilon
	// KindChain is a derived node produced by collapsing a trivial
	// bundle/chain; its children are ordered via a sibling linked list.
	KindChain
	// KindSplit is a derived node produced by collapsing a non-trivial
	// balanced bundle; its children are unordered.
	KindSplit
)

// String renders the Kind for diagnostics and Dump.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "Source"
	case KindEpsilon:
		return "Epsilon"
	case KindChain:
		return "Chain"
	case KindSplit:
		return "Split"
	default:
		return "Unknown"
	}
}

// Node is one record in a Tree's arena. Nodes reference each other by
// index into the owning Tree's slice rather than by pointer, per the
// arena-of-tagged-records shape: ParentIdx, SiblingIdx, ChildHeadIdx,
// ChildTailIdx are -1 when absent; ChildrenIdx holds the node's full
// unordered child list regardless of Kind (Chain additionally orders its
// children via ChildHeadIdx/ChildTailIdx/SiblingIdx).
type Node struct {
	NID       uint64
	Kind      Kind
	IsReverse bool

	// SCycle marks a self-cycle; SInvLeft/SInvRight mark a self-inversion
	// on the node's relative left/right side.
	SCycle    bool
	SInvLeft  bool
	SInvRight bool

	ParentIdx    int
	SiblingIdx   int
	ChildHeadIdx int
	ChildTailIdx int
	ChildrenIdx  []int

	freed bool
}

// Tree is an append-only arena of decomposition-tree Nodes. The zero value
// is an empty Tree ready for use; NewTree returns a pointer to one.
type Tree struct {
	nodes []Node
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len reports the number of node slots ever allocated, including freed
// ones (freed slots are not compacted or reused).
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns a copy of the node at idx, for read-only inspection
// (tests, Dump). Returns ErrInvalidNode if idx is out of range or the
// slot has been freed.
func (t *Tree) Node(idx int) (Node, error) {
	n, err := t.at(idx)
	if err != nil {
		return Node{}, err
	}

	return *n, nil
}

func (t *Tree) at(idx int) (*Node, error) {
	if idx < 0 || idx >= len(t.nodes) || t.nodes[idx].freed {
		return nil, ErrInvalidNode
	}

	return &t.nodes[idx], nil
}

// alloc appends a fresh node of the given kind/nid and returns its index.
func (t *Tree) alloc(nid uint64, kind Kind) int {
	t.nodes = append(t.nodes, Node{
		NID:          nid,
		Kind:         kind,
		ParentIdx:    -1,
		SiblingIdx:   -1,
		ChildHeadIdx: -1,
		ChildTailIdx: -1,
	})

	return len(t.nodes) - 1
}
