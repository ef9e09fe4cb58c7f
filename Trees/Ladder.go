package Trees

import Util "github.com/gmtwostay/levelancestor"

// Ladders is the doubled-path extension shared by the StairDecomp and
// StairIndex variants: each path is prepended with up to its own length
// of borrowed ancestors.
type Ladders struct {
	decomp    *Decomposition
	Stairs    [][]int
	nodeIndex []int // overrides decomp.NodeIndex for path-owned nodes
	parent    []int
}

// buildLadders runs the shared decomposition and doubles each path
// upward. Borrowed prefix nodes are left owned by their original path
// (their pathIndex/nodeIndex in decomp are untouched); only path-owned
// nodes get their nodeIndex offset into stairs[i].
func buildLadders(t Provider) *Ladders {
	decomp := Decompose(t)
	n := t.NodeCount()
	parent := make([]int, n)
	for _, v := range t.Nodes() {
		parent[v] = t.Parent(v)
	}

	stairs := make([][]int, len(decomp.Paths))
	nodeIndex := make([]int, n)
	copy(nodeIndex, decomp.NodeIndex)

	for i, path := range decomp.Paths {
		L := len(path)
		borrowed := make([]int, 0, L)
		cur := parent[path[0]]
		for len(borrowed) < L && cur != Util.None {
			borrowed = append(borrowed, cur)
			cur = parent[cur]
		}
		offset := len(borrowed)
		stair := make([]int, 0, offset+L)
		for j := len(borrowed) - 1; j >= 0; j-- {
			stair = append(stair, borrowed[j])
		}
		stair = append(stair, path...)
		stairs[i] = stair
		for j, v := range path {
			nodeIndex[v] = offset + j
		}
	}

	return &Ladders{decomp: decomp, Stairs: stairs, nodeIndex: nodeIndex, parent: parent}
}
