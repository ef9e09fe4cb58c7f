package Trees

import Util "github.com/gmtwostay/levelancestor"

// StairIndex answers LA queries in O(1) via exponential jump pointers
// seeded from every leaf, at the cost of O(n log n) build and memory.
type StairIndex struct {
	ladders *Ladders
	depth   []int
	tables  Util.LogTables
	jump    [][]int // indexed by node id; only populated for leaves
	stats   Util.QueryStats
}

// BuildStairIndex builds the shared ladders, then for every leaf grows a
// jump-pointer chain of 2^k-th ancestors until the current ancestor's
// ladder is too short to guarantee the next doubling.
func BuildStairIndex(t Provider) *StairIndex {
	ladders := buildLadders(t)
	n := t.NodeCount()
	depth := make([]int, n)
	for _, v := range t.Nodes() {
		depth[v] = t.Depth(v)
	}
	tables := Util.NewLogTables(n)

	jump := make([][]int, n)
	for _, leaf := range t.Nodes() {
		if t.Height(leaf) != 0 {
			continue
		}
		ancestor := ladders.parent[leaf]
		if ancestor == Util.None {
			jump[leaf] = []int{}
			continue
		}
		chain := []int{ancestor}
		for k := 0; ; k++ {
			i := ladders.decomp.PathIndex[ancestor]
			j := ladders.nodeIndex[ancestor]
			if j < tables.Power[k] {
				break
			}
			ancestor = ladders.Stairs[i][j-tables.Power[k]]
			chain = append(chain, ancestor)
		}
		jump[leaf] = chain
	}

	return &StairIndex{ladders: ladders, depth: depth, tables: tables, jump: jump}
}

// LA finds v's path leaf and adjusts the query down to it, then delegates
// to StairSearchLeaf.
func (idx *StairIndex) LA(v, k int) int {
	idx.stats.Hit()
	i := idx.ladders.decomp.PathIndex[v]
	stair := idx.ladders.Stairs[i]
	leaf := stair[len(stair)-1]
	kPrime := k + (idx.depth[leaf] - idx.depth[v])
	return idx.StairSearchLeaf(leaf, kPrime)
}

// StairSearchLeaf answers "the d-th ancestor of leaf" in O(1) using the
// leaf's jump pointers.
func (idx *StairIndex) StairSearchLeaf(leaf, d int) int {
	if d == 0 {
		return leaf
	}
	if d < 0 || d >= len(idx.tables.Deg) {
		return Util.None
	}
	m := idx.tables.Deg[d]
	dPrime := d - idx.tables.Power[m]
	chain := idx.jump[leaf]
	if len(chain) < m+1 {
		return Util.None
	}
	anc := chain[m]
	i := idx.ladders.decomp.PathIndex[anc]
	j := idx.ladders.nodeIndex[anc]
	if j < dPrime {
		return Util.None
	}
	return idx.ladders.Stairs[i][j-dPrime]
}

// Served reports how many queries this index has answered.
func (idx *StairIndex) Served() uint { return idx.stats.Served() }
