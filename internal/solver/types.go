// Package solver enumerates valid tribute combinations for
// Simultaneous Equation Cannon: sets of Xyz ranks and Fusion levels
// whose values jointly satisfy the card's equation constraint.
package solver

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a single card's level or rank value.
type Level int

// Combination is an unordered multiset of levels, stored in
// non-decreasing order. The canonical ordering is what makes
// de-duplication and output stable.
type Combination []Level

// Sum returns the total of all levels in the combination.
// An empty combination sums to zero.
func (c Combination) Sum() Level {
	var total Level
	for _, lv := range c {
		total += lv
	}
	return total
}

// String renders the combination as "2+3+5". An empty combination
// renders as "-" so report cells are never blank.
func (c Combination) String() string {
	if len(c) == 0 {
		return "-"
	}
	parts := make([]string, len(c))
	for i, lv := range c {
		parts[i] = strconv.Itoa(int(lv))
	}
	return strings.Join(parts, "+")
}

// clone returns an independent copy; the generator reuses its
// working buffer between steps.
func (c Combination) clone() Combination {
	out := make(Combination, len(c))
	copy(out, c)
	return out
}

// GroupSpec bounds how many cards may be offered from one side
// (Xyz or Fusion) of the tribute.
type GroupSpec struct {
	Min int
	Max int
}

// Validate checks the count invariants: both bounds non-negative,
// minimum not above maximum.
func (g GroupSpec) Validate(side string) error {
	if g.Min < 0 || g.Max < 0 {
		return fmt.Errorf("%s bounds %d..%d: %w", side, g.Min, g.Max, ErrInvalidCount)
	}
	if g.Min > g.Max {
		return fmt.Errorf("%s bounds %d..%d: %w", side, g.Min, g.Max, ErrInvalidRange)
	}
	return nil
}

// Predicate decides whether an Xyz combination and a Fusion
// combination may be tributed together.
type Predicate func(xyz, fusion Combination) bool

// SumEquality is the default constraint: the Xyz ranks and the
// Fusion levels must add up to the same total.
func SumEquality(xyz, fusion Combination) bool {
	return xyz.Sum() == fusion.Sum()
}

// Pair is one valid tribute: an Xyz-side combination paired with a
// Fusion-side combination.
type Pair struct {
	Xyz    Combination
	Fusion Combination
}

// Bucket holds every valid pair for one (Xyz size, Fusion size)
// grouping. Buckets with no surviving pairs are still present so
// reports can show "no plays" explicitly.
type Bucket struct {
	XyzSize    int
	FusionSize int
	Pairs      []Pair
}

// Label names the bucket for report sections, e.g. "2 Xyz + 1 Fusion".
func (b Bucket) Label() string {
	return fmt.Sprintf("%d Xyz + %d Fusion", b.XyzSize, b.FusionSize)
}

// ResultSet is the full outcome of one enumeration run. Buckets are
// ordered by Xyz size then Fusion size; pairs within a bucket follow
// the generators' lexicographic order. The same inputs always yield
// the same result set in the same order.
type ResultSet struct {
	XyzRange    GroupSpec
	FusionRange GroupSpec
	Buckets     []Bucket
	TotalPairs  int
}
