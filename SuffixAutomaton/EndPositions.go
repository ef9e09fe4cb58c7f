package SuffixAutomaton

import "github.com/petar/GoLLRB/llrb"

// indexItem orders states by their Index end-position witness, breaking
// ties by state handle so EndPositions has a total order even when two
// states happen to share an Index. Index's semantics are caller-defined
// and carry no weight in construction.
type indexItem struct {
	state int
	index int
}

func (a indexItem) Less(than llrb.Item) bool {
	b := than.(indexItem)
	if a.index != b.index {
		return a.index < b.index
	}
	return a.state < b.state
}

// EndPositions returns every state's (state handle, Index) pair ordered
// by Index ascending. This is a read-only diagnostic view over a field
// that is stored but not required for construction correctness; it is
// never consulted while building.
func (a *Automaton) EndPositions() []indexItem {
	tree := llrb.New()
	for s, st := range a.states {
		tree.ReplaceOrInsert(indexItem{state: s, index: st.Index})
	}
	out := make([]indexItem, 0, tree.Len())
	tree.AscendGreaterOrEqual(tree.Min(), func(it llrb.Item) bool {
		out = append(out, it.(indexItem))
		return true
	})
	return out
}
