package Trees

import (
	"strconv"
	"strings"
	"testing"

	Util "github.com/gmtwostay/levelancestor"
)

func mustLoad(t *testing.T, data string) *ArrayTree {
	t.Helper()
	tree, err := LoadReader(strings.NewReader(data))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return tree
}

func allVariants(t *testing.T, tree *ArrayTree) map[string]LevelAncestor {
	return map[string]LevelAncestor{
		"Naive":       BuildNaive(tree),
		"LongPath":    BuildLongPath(tree),
		"StairDecomp": BuildStairDecomp(tree),
		"StairIndex":  BuildStairIndex(tree),
	}
}

func TestLA_T1_SinglePath(t *testing.T) {
	tree := mustLoad(t, "0 -1\n1 0\n2 1\n3 2\n4 3\n5 4\n")
	for name, idx := range allVariants(t, tree) {
		if got := idx.LA(5, 0); got != 5 {
			t.Errorf("%s: LA(5,0)=%d want 5", name, got)
		}
		if got := idx.LA(5, 1); got != 4 {
			t.Errorf("%s: LA(5,1)=%d want 4", name, got)
		}
		if got := idx.LA(5, 5); got != 0 {
			t.Errorf("%s: LA(5,5)=%d want 0", name, got)
		}
		if got := idx.LA(5, 6); got != Util.None {
			t.Errorf("%s: LA(5,6)=%d want sentinel", name, got)
		}
	}
}

func TestLA_T2_BalancedBinary(t *testing.T) {
	tree := mustLoad(t, "0 -1\n1 0\n2 0\n3 1\n4 1\n5 2\n6 2\n")
	for name, idx := range allVariants(t, tree) {
		if got := idx.LA(4, 1); got != 1 {
			t.Errorf("%s: LA(4,1)=%d want 1", name, got)
		}
		if got := idx.LA(4, 2); got != 0 {
			t.Errorf("%s: LA(4,2)=%d want 0", name, got)
		}
		if got := idx.LA(6, 2); got != 0 {
			t.Errorf("%s: LA(6,2)=%d want 0", name, got)
		}
		if got := idx.LA(3, 0); got != 3 {
			t.Errorf("%s: LA(3,0)=%d want 3", name, got)
		}
	}
}

// chainTree builds a tree of 39 nodes attached in a caterpillar shape: a
// long spine with a few short branches hanging off it, enough irregular
// structure to exercise every path boundary in Decompose.
func chainTree(t *testing.T) *ArrayTree {
	t.Helper()
	var b strings.Builder
	b.WriteString("0 -1\n")
	// spine 1..20
	for i := 1; i <= 20; i++ {
		b.WriteString(intPair(i, i-1))
	}
	// branches off every third spine node
	next := 21
	for i := 3; i <= 18; i += 3 {
		for j := 0; j < 3; j++ {
			b.WriteString(intPair(next, i))
			next++
		}
	}
	return mustLoad(t, b.String())
}

func intPair(a, b int) string {
	return strconv.Itoa(a) + " " + strconv.Itoa(b) + "\n"
}

// TestLA_UniversalProperties checks the LA invariants that must hold
// for every variant on an irregularly shaped tree: LA(v,0)==v,
// LA(v,1)==parent(v), depth(LA(v,k))==depth(v)-k, LA(v,depth(v))==root,
// and LA(LA(v,a),b)==LA(v,a+b). Cross-variant agreement and out-of-range
// k are covered by TestLA_CrossVariantEquivalence.
func TestLA_UniversalProperties(t *testing.T) {
	tree := chainTree(t)
	variants := allVariants(t, tree)

	for _, v := range tree.Nodes() {
		d := tree.Depth(v)
		for name, idx := range variants {
			if got := idx.LA(v, 0); got != v {
				t.Errorf("%s: LA(%d,0)=%d want %d", name, v, got, v)
			}
			if d >= 1 {
				if got := idx.LA(v, 1); got != tree.Parent(v) {
					t.Errorf("%s: LA(%d,1)=%d want parent %d", name, v, got, tree.Parent(v))
				}
			}
			for k := 0; k <= d; k++ {
				anc := idx.LA(v, k)
				if tree.Depth(anc) != d-k {
					t.Errorf("%s: depth(LA(%d,%d))=%d want %d", name, v, k, tree.Depth(anc), d-k)
				}
			}
			if got := idx.LA(v, d); got != tree.Root() {
				t.Errorf("%s: LA(%d,depth)=%d want root %d", name, v, got, tree.Root())
			}
		}
	}

	// property 4: composing two jumps equals one combined jump.
	for _, v := range tree.Nodes() {
		d := tree.Depth(v)
		for name, idx := range variants {
			for a := 0; a <= d; a++ {
				for b := 0; a+b <= d; b++ {
					got := idx.LA(idx.LA(v, a), b)
					want := idx.LA(v, a+b)
					if got != want {
						t.Errorf("%s: LA(LA(%d,%d),%d)=%d want %d", name, v, a, b, got, want)
					}
				}
			}
		}
	}
}

// TestLA_CrossVariantEquivalence is property 6: every variant agrees on
// every valid query.
func TestLA_CrossVariantEquivalence(t *testing.T) {
	tree := chainTree(t)
	naive := BuildNaive(tree)
	longPath := BuildLongPath(tree)
	stairDecomp := BuildStairDecomp(tree)
	stairIndex := BuildStairIndex(tree)

	for _, v := range tree.Nodes() {
		for k := 0; k <= tree.Depth(v)+1; k++ {
			want := naive.LA(v, k)
			if got := longPath.LA(v, k); got != want {
				t.Errorf("LongPath disagrees at (%d,%d): %d vs %d", v, k, got, want)
			}
			if got := stairDecomp.LA(v, k); got != want {
				t.Errorf("StairDecomp disagrees at (%d,%d): %d vs %d", v, k, got, want)
			}
			if got := stairIndex.LA(v, k); got != want {
				t.Errorf("StairIndex disagrees at (%d,%d): %d vs %d", v, k, got, want)
			}
		}
	}
}

func TestLCAAndDistance(t *testing.T) {
	tree := mustLoad(t, "0 -1\n1 0\n2 0\n3 1\n4 1\n5 2\n6 2\n")
	idx := BuildStairIndex(tree)

	if got := LCA(tree, idx, 3, 4); got != 1 {
		t.Errorf("LCA(3,4)=%d want 1", got)
	}
	if got := LCA(tree, idx, 4, 5); got != 0 {
		t.Errorf("LCA(4,5)=%d want 0", got)
	}
	if got := Distance(tree, idx, 3, 5); got != 4 {
		t.Errorf("Distance(3,5)=%d want 4", got)
	}
}
