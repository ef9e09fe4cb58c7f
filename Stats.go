package Util

// QueryStats counts queries served by an immutable index. Embedding it
// lets every LA variant and the suffix automaton track load without extra
// synchronization: builds are single-threaded (nothing else touches the
// counter yet), and after build multiple readers may query concurrently,
// which is exactly what AtomicUint is for.
type QueryStats struct {
	served AtomicUint
}

// Hit records one query.
func (s *QueryStats) Hit() {
	s.served.Add(1)
}

// Served returns the number of queries recorded so far.
func (s *QueryStats) Served() uint {
	return s.served.Load()
}
