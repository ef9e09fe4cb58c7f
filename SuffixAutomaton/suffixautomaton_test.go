package SuffixAutomaton

import "testing"

func factors(w string) map[string]bool {
	set := make(map[string]bool)
	for i := 0; i <= len(w); i++ {
		for j := i; j <= len(w); j++ {
			set[w[i:j]] = true
		}
	}
	return set
}

func TestSAM_S1_abb(t *testing.T) {
	a := Build("abb")
	want := factors("abb")
	if got := a.CountDistinctFactors(); got != len(want)-1 { // exclude empty string
		t.Errorf("CountDistinctFactors=%d want %d", got, len(want)-1)
	}
	for x := range want {
		if x == "" {
			continue
		}
		if !a.ContainsFactor(x) {
			t.Errorf("%q should be a factor of abb", x)
		}
	}
	if a.ContainsFactor("ba") {
		t.Error(`"ba" should not be a factor of abb`)
	}
	if a.ContainsFactor("bab") {
		t.Error(`"bab" should not be a factor of abb`)
	}
}

func TestSAM_S2_abcbc(t *testing.T) {
	a := Build("abcbc")
	// "abcbc" has 13 distinct factors counting the empty string;
	// CountDistinctFactors counts nonempty factors only.
	if got := a.CountDistinctFactors(); got != 12 {
		t.Errorf("CountDistinctFactors=%d want 12", got)
	}
	for x := range factors("abcbc") {
		if x == "" {
			continue
		}
		if !a.ContainsFactor(x) {
			t.Errorf("%q should be a factor of abcbc", x)
		}
	}
}

func TestSAM_S3_aaaa(t *testing.T) {
	a := Build("aaaa")
	if got := a.StateCount(); got != 5 {
		t.Errorf("StateCount=%d want 5 (linear chain, no clones)", got)
	}
	for s := 0; s < a.StateCount(); s++ {
		if !a.State(s).Final {
			t.Errorf("state %d should be final in aaaa (every state lies on the suffix chain)", s)
		}
	}
}

func TestSAM_Properties(t *testing.T) {
	w := "abcbcabc"
	a := Build(w)
	m := len(w)

	if a.StateCount() > 2*m-1 {
		t.Errorf("|Q|=%d exceeds 2m-1=%d", a.StateCount(), 2*m-1)
	}

	for s := 0; s < a.StateCount(); s++ {
		if s == a.Initial() {
			continue
		}
		st := a.State(s)
		if st.Slink == none {
			t.Errorf("non-initial state %d has no slink", s)
		} else if a.State(st.Slink).Len >= st.Len {
			t.Errorf("state %d: slink.Len=%d not < Len=%d", s, a.State(st.Slink).Len, st.Len)
		}
		steps := 0
		for cur := st.Slink; cur != none; cur = a.State(cur).Slink {
			steps++
			if steps > a.StateCount() {
				t.Fatalf("slink chain from state %d does not terminate", s)
			}
		}
	}

	for x := range factors(w) {
		if x == "" {
			continue
		}
		if !a.ContainsFactor(x) {
			t.Errorf("%q should be a factor of %q", x, w)
		}
	}
	if a.ContainsFactor("xyz") {
		t.Error(`"xyz" should not be a factor`)
	}
}

func TestSAM_EndPositions(t *testing.T) {
	a := Build("abcbc")
	pairs := a.EndPositions()
	if len(pairs) != a.StateCount() {
		t.Fatalf("EndPositions returned %d entries, want %d", len(pairs), a.StateCount())
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i-1].index > pairs[i].index {
			t.Errorf("EndPositions not sorted at %d: %d > %d", i, pairs[i-1].index, pairs[i].index)
		}
	}
}

func TestSAM_Destroy(t *testing.T) {
	a := Build("banana")
	a.Destroy()
	if a.StateCount() != 0 {
		t.Errorf("StateCount after Destroy=%d want 0", a.StateCount())
	}
}
