package solver

// comboGen steps through every combination-with-repetition of size k
// drawn from domain, in lexicographic order over domain indices. It
// holds only its index odometer, so a full size's combinations are
// never materialized ahead of consumption.
type comboGen struct {
	domain []Level
	idx    []int
	buf    Combination
	done   bool
}

func newComboGen(domain []Level, k int) *comboGen {
	g := &comboGen{
		domain: domain,
		idx:    make([]int, k),
		buf:    make(Combination, k),
	}
	// Size zero has exactly one combination (the empty one); a
	// positive size over an empty domain has none.
	if k > 0 && len(domain) == 0 {
		g.done = true
	}
	return g
}

// next returns the following combination and true, or nil and false
// once the sequence is exhausted. The returned slice is an
// independent copy.
func (g *comboGen) next() (Combination, bool) {
	if g.done {
		return nil, false
	}

	for i, di := range g.idx {
		g.buf[i] = g.domain[di]
	}
	out := g.buf.clone()

	// Advance the odometer: bump the rightmost index that still has
	// headroom, reset everything after it to the same index so the
	// sequence stays non-decreasing.
	pos := len(g.idx) - 1
	for pos >= 0 && g.idx[pos] == len(g.domain)-1 {
		pos--
	}
	if pos < 0 {
		g.done = true
		return out, true
	}
	g.idx[pos]++
	for i := pos + 1; i < len(g.idx); i++ {
		g.idx[i] = g.idx[pos]
	}
	return out, true
}

// combinationsOfSize collects all combinations of one size into a
// slice. The enumerator calls this once per (side, size) so the cross
// product never regenerates a side's list.
func combinationsOfSize(domain []Level, k int) []Combination {
	var out []Combination
	gen := newComboGen(domain, k)
	for c, ok := gen.next(); ok; c, ok = gen.next() {
		out = append(out, c)
	}
	return out
}
