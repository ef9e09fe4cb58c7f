package Trees

import Util "github.com/gmtwostay/levelancestor"

// StairDecomp walks doubled ladders instead of bare paths: O(n) build,
// O(log n) worst-case query, since each recursion step at least doubles
// the length of the path containing the current node.
type StairDecomp struct {
	ladders *Ladders
	stats   Util.QueryStats
}

func BuildStairDecomp(t Provider) *StairDecomp {
	return &StairDecomp{ladders: buildLadders(t)}
}

// LA mirrors LongPath.LA but walks stairs instead of bare paths.
func (idx *StairDecomp) LA(v, k int) int {
	idx.stats.Hit()
	l := idx.ladders
	for v != Util.None {
		i := l.decomp.PathIndex[v]
		j := l.nodeIndex[v]
		if k <= j {
			return l.Stairs[i][j-k]
		}
		top := l.Stairs[i][0]
		k -= j + 1
		v = l.parent[top]
	}
	return Util.None
}

// Served reports how many queries this index has answered.
func (idx *StairDecomp) Served() uint { return idx.stats.Served() }
