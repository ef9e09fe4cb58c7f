package Trees

import Util "github.com/gmtwostay/levelancestor"

// LongPath answers LA queries by walking whole paths at a time: O(n)
// build from the shared decomposition, O(√n) worst-case query.
type LongPath struct {
	decomp *Decomposition
	parent []int
	stats  Util.QueryStats
}

// BuildLongPath retains the shared decomposition and the parent map; it
// needs nothing else.
func BuildLongPath(t Provider) *LongPath {
	n := t.NodeCount()
	parent := make([]int, n)
	for _, v := range t.Nodes() {
		parent[v] = t.Parent(v)
	}
	return &LongPath{decomp: Decompose(t), parent: parent}
}

// LA walks the tail-recursive path jump as an iterative loop, guarding
// against k exceeding the tree depth so it returns the sentinel instead
// of stepping off the root.
func (idx *LongPath) LA(v, k int) int {
	idx.stats.Hit()
	for v != Util.None {
		i := idx.decomp.PathIndex[v]
		j := idx.decomp.NodeIndex[v]
		if k <= j {
			return idx.decomp.Paths[i][j-k]
		}
		top := idx.decomp.Paths[i][0]
		k -= j + 1
		v = idx.parent[top]
	}
	return Util.None
}

// Served reports how many queries this index has answered.
func (idx *LongPath) Served() uint { return idx.stats.Served() }
