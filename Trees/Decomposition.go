package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	Util "github.com/gmtwostay/levelancestor"
	"github.com/gmtwostay/levelancestor/Sets/HashSet"
)

// Decomposition is the shared leaf-sort + path-decomposition phase every
// LA variant is layered on. Every node belongs to exactly one path:
// Paths[PathIndex[v]][NodeIndex[v]] == v, with NodeIndex counted
// root-to-leaf (0 at the path's topmost node).
type Decomposition struct {
	Paths     [][]int
	PathIndex []int
	NodeIndex []int
}

// marker is the "marked" bitmap of the decomposition walk, abstracted over
// node-id density: dense ids get a flat BitArray, ids sparse enough to make
// an n-sized array wasteful fall back to the hopscotch HashSet.
type marker interface {
	Get(id int) bool
	Set(id int)
}

type bitMarker struct{ b Util.BitArray }

func (m bitMarker) Get(id int) bool { return m.b.Get(id) }
func (m bitMarker) Set(id int)      { m.b.Set(id) }

type sparseMarker struct{ s *HashSet.HashSet[int] }

func (m sparseMarker) Get(id int) bool { return m.s.Has(id) }
func (m sparseMarker) Set(id int)      { m.s.Put(id) }

// denseEnoughFactor bounds how much wasted array space (relative to n)
// Decompose will tolerate before switching to the keyed fallback.
const denseEnoughFactor = 4

func newMarker(nodes []int, n int) (marker, int) {
	maxID := 0
	for _, v := range nodes {
		if v > maxID {
			maxID = v
		}
	}
	if n == 0 || maxID < denseEnoughFactor*n {
		return bitMarker{Util.NewBitArray(uint(maxID + 1))}, maxID
	}
	return sparseMarker{HashSet.New[int](16, uint(n), 0)}, maxID
}

// Decompose runs the shared bucket-sort-by-depth and path-extension phase
// over t. Leaves are bucketed by depth and visited from deepest to
// shallowest; each leaf opens a new path by walking up to its first
// already-claimed ancestor. The walk's local buffer is an arraystack.Stack
// (gods): nodes accumulate leaf-to-root and get reversed into root-to-leaf
// order once the walk hits a claimed ancestor or the tree root.
func Decompose(t Provider) *Decomposition {
	n := t.NodeCount()
	nodes := t.Nodes()
	treeHeight := t.TreeHeight()

	buckets := make([][]int, treeHeight+1)
	for _, v := range nodes {
		if t.Height(v) == 0 {
			buckets[t.Depth(v)] = append(buckets[t.Depth(v)], v)
		}
	}
	sortedLeaves := make([]int, 0, n)
	for d := treeHeight; d >= 0; d-- {
		sortedLeaves = append(sortedLeaves, buckets[d]...)
	}

	marked, maxID := newMarker(nodes, n)
	pathIndex := make([]int, maxID+1)
	nodeIndex := make([]int, maxID+1)
	var paths [][]int

	for _, leaf := range sortedLeaves {
		buf := arraystack.New()
		cur := leaf
		for cur != Util.None && !marked.Get(cur) {
			buf.Push(cur)
			marked.Set(cur)
			cur = t.Parent(cur)
		}
		path := make([]int, buf.Size())
		for i := 0; i < len(path); i++ {
			v, _ := buf.Pop()
			path[i] = v.(int)
		}
		idx := len(paths)
		paths = append(paths, path)
		for j, v := range path {
			pathIndex[v] = idx
			nodeIndex[v] = j
		}
	}

	return &Decomposition{Paths: paths, PathIndex: pathIndex, NodeIndex: nodeIndex}
}
