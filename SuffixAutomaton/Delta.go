package SuffixAutomaton

import "github.com/alphadose/haxmap"

// transitions is a state's outgoing transition table, keyed on a rune.
// arrayDelta and hashDelta are the two concrete shapes — a flat array
// when the alphabet is small, a hash map otherwise — and Build picks
// between them from a single max-rune scan of w.
type transitions interface {
	get(a rune) (int, bool)
	set(a rune, state int)
	each(f func(a rune, state int))
	clone() transitions
}

// byteAlphabetLimit is the cutoff below which a dense array outperforms a
// hash map for a single state's transition table.
const byteAlphabetLimit = 256

// arrayDelta backs states over a small, dense alphabet (e.g. ASCII/byte
// text) with a flat array indexed directly by rune.
type arrayDelta struct {
	t []int // -1 (Util.None) marks an absent transition
}

func newArrayDelta(alphabetSize int) *arrayDelta {
	t := make([]int, alphabetSize)
	for i := range t {
		t[i] = none
	}
	return &arrayDelta{t: t}
}

func (d *arrayDelta) get(a rune) (int, bool) {
	if int(a) >= len(d.t) {
		return none, false
	}
	s := d.t[int(a)]
	return s, s != none
}

func (d *arrayDelta) set(a rune, state int) { d.t[int(a)] = state }

func (d *arrayDelta) each(f func(a rune, state int)) {
	for a, s := range d.t {
		if s != none {
			f(rune(a), s)
		}
	}
}

func (d *arrayDelta) clone() transitions {
	cp := make([]int, len(d.t))
	copy(cp, d.t)
	return &arrayDelta{t: cp}
}

// hashDelta backs states over a large or sparse alphabet (arbitrary
// Unicode text) with a haxmap, avoiding a multi-megabyte array per state.
type hashDelta struct {
	m *haxmap.Map[rune, int]
}

func newHashDelta() *hashDelta {
	return &hashDelta{m: haxmap.New[rune, int]()}
}

func (d *hashDelta) get(a rune) (int, bool) { return d.m.Get(a) }
func (d *hashDelta) set(a rune, state int)  { d.m.Set(a, state) }

func (d *hashDelta) each(f func(a rune, state int)) {
	d.m.ForEach(func(a rune, s int) bool {
		f(a, s)
		return true
	})
}

func (d *hashDelta) clone() transitions {
	cp := newHashDelta()
	d.each(func(a rune, s int) { cp.m.Set(a, s) })
	return cp
}
