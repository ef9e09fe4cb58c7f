package Trees

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	Util "github.com/gmtwostay/levelancestor"
	"github.com/cornelk/hashmap"
	"github.com/gmtwostay/levelancestor/Queues"
)

// Load reads a tree file in the format described by the external
// interface: whitespace-separated "node parent" pairs, one per entry, no
// header, terminated by EOF; the root's parent is -1. This is the loader
// the driver depends on (out of scope for the core indices, but supplied
// here so cmd/latool has something real to build against), modeled on
// xiles84/dnatools's flag-and-bufio file handling.
func Load(path string) (*ArrayTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses the same format as Load from an arbitrary reader.
func LoadReader(r io.Reader) (*ArrayTree, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	// Raw node ids in the input aren't guaranteed dense in [0,n): remap
	// them to dense array indices as they're first seen. cornelk/hashmap
	// is used rather than a plain map so a loader run concurrently
	// against several files could share one remap safely.
	ids := hashmap.New[int, int]()
	var rawParent []int // rawParent[denseID] = raw parent id, or -1
	next := 0
	denseOf := func(raw int) int {
		if raw < 0 {
			return Util.None
		}
		if d, ok := ids.Get(raw); ok {
			return d
		}
		d := next
		next++
		ids.Set(raw, d)
		rawParent = append(rawParent, -2) // filled in once we see this id as a "node" column
		return d
	}

	for sc.Scan() {
		nodeTok := sc.Text()
		if !sc.Scan() {
			return nil, fmt.Errorf("Trees: dangling node id %q with no parent", nodeTok)
		}
		parentTok := sc.Text()

		rawNode, err := strconv.Atoi(nodeTok)
		if err != nil {
			return nil, fmt.Errorf("Trees: bad node id %q: %w", nodeTok, err)
		}
		rawPar, err := strconv.Atoi(parentTok)
		if err != nil {
			return nil, fmt.Errorf("Trees: bad parent id %q: %w", parentTok, err)
		}

		node := denseOf(rawNode)
		parent := denseOf(rawPar)
		rawParent[node] = parent
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	n := next
	parent := make([]int, n)
	root := Util.None
	for i, p := range rawParent {
		if p == -2 {
			return nil, fmt.Errorf("Trees: node %d is referenced as a parent but has no entry of its own", i)
		}
		parent[i] = p
		if p == Util.None {
			root = i
		}
	}
	if root == Util.None {
		return nil, fmt.Errorf("Trees: no root found (no entry with parent -1)")
	}

	return buildDepthHeight(parent, root)
}

// buildDepthHeight computes depth (BFS from root) and height (processed in
// reverse BFS order, so every child's height is final before its parent's)
// from a dense parent array. Queues.ArrayQueue drives the BFS the way the
// teacher's Queues package is meant to be used for FIFO traversal.
func buildDepthHeight(parent []int, root int) (*ArrayTree, error) {
	n := len(parent)
	children := make([][]int, n)
	for v, p := range parent {
		if p != Util.None {
			children[p] = append(children[p], v)
		}
	}

	depth := make([]int, n)
	order := make([]int, 0, n)
	q := Queues.MakeArrayQueue[int](uint(n) + 1)
	q.Push(root)
	visited := Util.NewBitArray(uint(n))
	visited.Set(root)
	for !q.Empty() {
		v, err := q.Pop()
		if err != nil {
			return nil, err
		}
		order = append(order, v)
		for _, c := range children[v] {
			if visited.Get(c) {
				return nil, fmt.Errorf("Trees: cycle or shared parent detected at node %d", c)
			}
			visited.Set(c)
			depth[c] = depth[v] + 1
			q.Push(c)
		}
	}
	if len(order) != n {
		return nil, fmt.Errorf("Trees: input isn't a single tree rooted at %d (%d of %d nodes reachable)", root, len(order), n)
	}

	height := make([]int, n)
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		h := 0
		for _, c := range children[v] {
			if height[c]+1 > h {
				h = height[c] + 1
			}
		}
		height[v] = h
	}

	return &ArrayTree{parent: parent, depth: depth, height: height, root: root}, nil
}
