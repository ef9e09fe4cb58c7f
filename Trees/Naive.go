package Trees

import Util "github.com/gmtwostay/levelancestor"

// Naive is the simplest LA index: every node stores its full ancestor
// chain. O(n·h) build time and space, O(1) query.
type Naive struct {
	table  [][]int
	depths []int
	stats  Util.QueryStats
}

// BuildNaive walks parents from each node to the root, caching the chain.
func BuildNaive(t Provider) *Naive {
	n := t.NodeCount()
	table := make([][]int, n)
	depths := make([]int, n)
	for _, v := range t.Nodes() {
		depths[v] = t.Depth(v)
		chain := make([]int, 0, depths[v]+1)
		for cur := v; cur != Util.None; cur = t.Parent(cur) {
			chain = append(chain, cur)
		}
		table[v] = chain
	}
	return &Naive{table: table, depths: depths}
}

// LA returns the k-th ancestor of v, or Util.None if k exceeds v's depth.
func (idx *Naive) LA(v, k int) int {
	idx.stats.Hit()
	if k > idx.depths[v] {
		return Util.None
	}
	return idx.table[v][k]
}

// Served reports how many queries this index has answered, safe to read
// concurrently with further queries.
func (idx *Naive) Served() uint { return idx.stats.Served() }
