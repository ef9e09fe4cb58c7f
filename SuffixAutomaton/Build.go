package SuffixAutomaton

// Build constructs the suffix automaton for w online, one symbol at a
// time. The alphabet is scanned once up front purely to decide the
// transitions backing store (array vs. haxmap); it has no bearing on
// correctness.
func Build(w string) *Automaton {
	runes := []rune(w)
	maxRune := rune(0)
	for _, r := range runes {
		if r > maxRune {
			maxRune = r
		}
	}

	a := &Automaton{big: maxRune >= byteAlphabetLimit}
	qEps := a.newState(0)
	a.states[qEps].Slink = none
	a.last = qEps

	for i, sym := range runes {
		a.extend(sym, i)
	}
	a.markFinals()
	return a
}

// extend is one step of the online construction: allocate q_wa, find the
// stem, clone if needed, redirect transitions, then advance "last".
func (a *Automaton) extend(sym rune, i int) {
	qw := a.last
	qwa := a.newState(i + 1)

	p := a.findStem(qw, qwa, sym)
	suf, clone := a.modifyTree(p, qwa, sym)
	if clone != none {
		a.redirectTransitions(p, suf, clone, sym)
		a.states[clone].Index = i - a.states[clone].Len + 1
	}
	a.states[qwa].Index = 0

	a.last = qwa
}

// findStem walks p := q_w upward via slink, setting p.delta[a] := q_wa at
// every state that lacks a transition on a, stopping at the first state
// that already has one (or at none).
func (a *Automaton) findStem(qw, qwa int, sym rune) int {
	p := qw
	for p != none {
		if _, ok := a.states[p].delta.get(sym); ok {
			break
		}
		a.states[p].delta.set(sym, qwa)
		p = a.states[p].Slink
	}
	return p
}

// modifyTree decides q_wa's suffix link, cloning a state when the
// transition found by findStem isn't already canonical. Returns the
// pre-split target suf (none if p was none) and the clone's handle (none
// if no clone was made).
func (a *Automaton) modifyTree(p, qwa int, sym rune) (int, int) {
	if p == none {
		a.states[qwa].Slink = 0 // q_ε
		return none, none
	}
	suf, _ := a.states[p].delta.get(sym)
	if a.states[suf].Len == a.states[p].Len+1 {
		a.states[qwa].Slink = suf
		return suf, none
	}

	clone := a.newState(a.states[p].Len + 1)
	a.states[clone].delta = a.states[suf].delta.clone()
	a.states[clone].Slink = a.states[suf].Slink

	a.states[suf].Slink = clone
	a.states[qwa].Slink = clone
	return suf, clone
}

// redirectTransitions walks p upward via slink, reassigning every
// transition on sym that still points to suf over to clone, stopping as
// soon as a state's transition on sym diverges from suf or the walk
// reaches none.
func (a *Automaton) redirectTransitions(p, suf, clone int, sym rune) {
	for cur := p; cur != none; cur = a.states[cur].Slink {
		target, ok := a.states[cur].delta.get(sym)
		if !ok || target != suf {
			break
		}
		a.states[cur].delta.set(sym, clone)
	}
}

// markFinals walks the slink chain from the last inserted state to q_ε,
// marking every state on it final, once the last symbol has been added.
func (a *Automaton) markFinals() {
	for s := a.last; s != none; s = a.states[s].Slink {
		a.states[s].Final = true
	}
}
