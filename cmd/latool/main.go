// Command latool builds every level-ancestor index and a suffix automaton
// over a workload and reports build/query timings (see the Trees and
// SuffixAutomaton packages for the indices themselves).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/btree"
	"github.com/gmtwostay/levelancestor/SuffixAutomaton"
	"github.com/gmtwostay/levelancestor/Trees"
)

func main() {
	treeFile := flag.String("tree", "Root_Tree_rev002.txt", "tree file (whitespace-separated 'node parent' pairs)")
	queryNode := flag.Int("node", 23, "node id for the timed LA query")
	queryK := flag.Int("k", 5, "k for the timed LA(node, k) query")
	samWord := flag.String("word", "abcbcabc", "string for the suffix automaton demo")
	reps := flag.Int("reps", 2000, "number of repetitions for the query timing sample")
	flag.Parse()

	tree, err := Trees.Load(*treeFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "latool: loading tree:", err)
		os.Exit(1)
	}
	fmt.Printf("loaded tree: %d nodes, height %d\n", tree.NodeCount(), tree.TreeHeight())

	runVariant("Naive", func() Trees.LevelAncestor { return Trees.BuildNaive(tree) }, *queryNode, *queryK, *reps)
	runVariant("LongPath", func() Trees.LevelAncestor { return Trees.BuildLongPath(tree) }, *queryNode, *queryK, *reps)
	runVariant("StairDecomp", func() Trees.LevelAncestor { return Trees.BuildStairDecomp(tree) }, *queryNode, *queryK, *reps)
	runVariant("StairIndex", func() Trees.LevelAncestor { return Trees.BuildStairIndex(tree) }, *queryNode, *queryK, *reps)

	runSAM(*samWord)
}

// sample pairs a query's elapsed time with the order it was taken in, so
// repeated identical durations (common at nanosecond clock resolution)
// stay distinct entries in the ordered tree instead of collapsing.
type sample struct {
	d   time.Duration
	seq int
}

func sampleLess(a, b sample) bool {
	if a.d != b.d {
		return a.d < b.d
	}
	return a.seq < b.seq
}

func runVariant(name string, build func() Trees.LevelAncestor, node, k, reps int) {
	buildStart := time.Now()
	idx := build()
	buildElapsed := time.Since(buildStart)

	samples := btree.NewG(32, sampleLess)
	var result int
	for i := 0; i < reps; i++ {
		start := time.Now()
		result = idx.LA(node, k)
		samples.ReplaceOrInsert(sample{d: time.Since(start), seq: i})
	}

	minSample, _ := samples.Min()
	maxSample, _ := samples.Max()
	fmt.Printf("%-11s build=%-12s LA(%d,%d)=%-6d query[min=%s median=%s max=%s]\n",
		name, buildElapsed, node, k, result,
		minSample.d, medianOf(samples), maxSample.d)
}

// medianOf walks the ordered sample tree to its middle element; btree
// gives us the ordering, so this is a plain in-order walk rather than a
// sort of a slice.
func medianOf(samples *btree.BTreeG[sample]) time.Duration {
	target := samples.Len() / 2
	i := 0
	var mid time.Duration
	samples.Ascend(func(s sample) bool {
		if i == target {
			mid = s.d
			return false
		}
		i++
		return true
	})
	return mid
}

func runSAM(word string) {
	start := time.Now()
	a := SuffixAutomaton.Build(word)
	elapsed := time.Since(start)
	defer a.Destroy()

	fmt.Printf("SAM(%q) build=%s states=%d distinctFactors=%d\n",
		word, elapsed, a.StateCount(), a.CountDistinctFactors())
}
