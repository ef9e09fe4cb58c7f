// Package Trees implements the level-ancestor family of indices over a
// rooted, immutable tree: a shared leaf-sort/path-decomposition phase, and
// four LA variants of increasing sophistication layered on top of it
// (Naive, LongPath, StairDecomp, StairIndex).
package Trees

// Provider is the read-only tree an implementer supplies: a node list, a
// parent map (Util.None for the root), and per-node depth/height. All four
// LA variants are built from a Provider and never mutate it.
type Provider interface {
	// NodeCount returns the number of nodes n. Node ids are assumed dense
	// in [0, n) by Naive/LongPath/StairDecomp/StairIndex; Decompose itself
	// tolerates sparser id spaces (see newMarker).
	NodeCount() int
	// Nodes returns every node id, in no particular order.
	Nodes() []int
	// Root returns the id of the unique node whose Parent is Util.None.
	Root() int
	// Parent returns v's parent, or Util.None if v is the root.
	Parent(v int) int
	// Depth returns v's depth; the root has depth 0.
	Depth(v int) int
	// Height returns v's height; a leaf has height 0.
	Height(v int) int
	// TreeHeight returns the height of the root, i.e. the tree's height.
	TreeHeight() int
}

// LevelAncestor is satisfied by all four index variants: Naive, LongPath,
// StairDecomp and StairIndex answer LA(v,k) identically for any valid
// query, differing only in build/query cost.
type LevelAncestor interface {
	// LA returns the ancestor of v that is k edges above it. LA(v,0)==v.
	// Returns Util.None if k exceeds v's depth.
	LA(v, k int) int
}

// ArrayTree is the dense, array-backed Provider built by Load and
// LoadReader. Node ids must be in [0, NodeCount()).
type ArrayTree struct {
	parent, depth, height []int
	root                  int
}

func (t *ArrayTree) NodeCount() int { return len(t.parent) }

func (t *ArrayTree) Nodes() []int {
	nodes := make([]int, len(t.parent))
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

func (t *ArrayTree) Root() int        { return t.root }
func (t *ArrayTree) Parent(v int) int { return t.parent[v] }
func (t *ArrayTree) Depth(v int) int  { return t.depth[v] }
func (t *ArrayTree) Height(v int) int { return t.height[v] }
func (t *ArrayTree) TreeHeight() int  { return t.height[t.root] }

// LCA returns the lowest common ancestor of u and v under any LevelAncestor
// index built over the same tree, deriving LCA from LA and Depth alone
// rather than a dedicated structure.
func LCA(t Provider, idx LevelAncestor, u, v int) int {
	du, dv := t.Depth(u), t.Depth(v)
	if du > dv {
		u, du = idx.LA(u, du-dv), dv
	} else if dv > du {
		v, dv = idx.LA(v, dv-du), du
	}
	if u == v {
		return u
	}
	lo, hi := 0, du
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if idx.LA(u, mid) != idx.LA(v, mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return idx.LA(u, lo+1)
}

// Distance returns the number of edges on the path between u and v.
func Distance(t Provider, idx LevelAncestor, u, v int) int {
	l := LCA(t, idx, u, v)
	return (t.Depth(u) - t.Depth(l)) + (t.Depth(v) - t.Depth(l))
}
