// Package SuffixAutomaton builds the minimal deterministic automaton
// recognising every factor of a string, online, in a single left-to-right
// pass (Blumer et al. construction): state allocation, suffix-link
// maintenance, clone/redirect on the rare non-canonical transition.
package SuffixAutomaton

import Util "github.com/gmtwostay/levelancestor"

// none is the sentinel state handle meaning "no suffix link" / "no
// transition target". States are held in a flat arena and referenced by
// index rather than pointer so the whole graph can be torn down in one
// pass (Destroy).
const none = -1

// State is one equivalence class of the automaton: len is the length of
// the longest word recognised along any path ending here; slink points to
// the state representing the longest proper suffix of that word lying
// outside this class; index is an end-position witness, stored for
// callers but never consulted by construction itself; delta is this
// state's outgoing transition table; final marks whether the longest word
// here is a suffix of the whole string.
type State struct {
	Len   int
	Index int
	Slink int
	delta transitions
	Final bool
}

// Automaton is the arena of states built by Build. State 0 is always the
// initial state q_ε.
type Automaton struct {
	states []State
	last   int
	big    bool // alphabet large enough to use hashDelta instead of arrayDelta
	stats  Util.QueryStats
}

// Served reports how many Transition lookups have been served since the
// automaton was built; safe to call concurrently with further reads
// as long as no build is active.
func (a *Automaton) Served() uint { return a.stats.Served() }

func newDelta(big bool) transitions {
	if big {
		return newHashDelta()
	}
	return newArrayDelta(byteAlphabetLimit)
}

// newState appends a fresh state to the arena and returns its handle.
func (a *Automaton) newState(length int) int {
	h := len(a.states)
	a.states = append(a.states, State{Len: length, Index: 0, Slink: none, delta: newDelta(a.big), Final: false})
	return h
}

// StateCount returns |Q|.
func (a *Automaton) StateCount() int { return len(a.states) }

// Initial returns the handle of q_ε.
func (a *Automaton) Initial() int { return 0 }

// State returns a copy of the state record at h.
func (a *Automaton) State(h int) State { return a.states[h] }

// Transition returns the state reached from h on symbol a, or
// (none, false) if no such transition exists.
func (a *Automaton) Transition(h int, sym rune) (int, bool) {
	a.stats.Hit()
	return a.states[h].delta.get(sym)
}

// Destroy releases the arena in one step by dropping the state slice;
// StateCount is 0 afterwards.
func (a *Automaton) Destroy() {
	a.states = nil
}
