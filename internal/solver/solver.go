package solver

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxLevel is the highest level/rank printed on current cards.
const MaxLevel = 12

// DefaultDomain returns the standard level/rank domain, 1 through 12.
func DefaultDomain() []Level {
	domain := make([]Level, MaxLevel)
	for i := range domain {
		domain[i] = Level(i + 1)
	}
	return domain
}

// Enumerator produces valid tribute pairings over a fixed level
// domain and equation predicate. It is safe for concurrent use; all
// state is set at construction.
type Enumerator struct {
	domain   []Level
	pred     Predicate
	parallel bool
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithDomain replaces the default 1..12 level domain.
func WithDomain(domain []Level) Option {
	return func(e *Enumerator) { e.domain = domain }
}

// WithPredicate replaces the default sum-equality constraint.
func WithPredicate(pred Predicate) Option {
	return func(e *Enumerator) { e.pred = pred }
}

// WithParallel filters buckets concurrently. Output is identical to
// the sequential path; only wall-clock time differs.
func WithParallel() Option {
	return func(e *Enumerator) { e.parallel = true }
}

// NewEnumerator builds an Enumerator with the 1..12 domain and the
// sum-equality predicate unless options say otherwise.
func NewEnumerator(opts ...Option) *Enumerator {
	e := &Enumerator{
		domain: DefaultDomain(),
		pred:   SumEquality,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enumerate returns every (Xyz combination, Fusion combination) pair
// within the given group-size bounds that satisfies the predicate,
// grouped by (Xyz size, Fusion size). Bounds are validated before any
// enumeration work; a validation failure never yields partial output.
func (e *Enumerator) Enumerate(ctx context.Context, xyz, fusion GroupSpec) (*ResultSet, error) {
	if err := xyz.Validate("xyz"); err != nil {
		return nil, err
	}
	if err := fusion.Validate("fusion"); err != nil {
		return nil, err
	}

	// Each side's per-size combination lists are generated exactly
	// once and shared across the bucket cross product.
	xyzBySize := make(map[int][]Combination, xyz.Max-xyz.Min+1)
	for k := xyz.Min; k <= xyz.Max; k++ {
		xyzBySize[k] = combinationsOfSize(e.domain, k)
	}
	fusionBySize := make(map[int][]Combination, fusion.Max-fusion.Min+1)
	for k := fusion.Min; k <= fusion.Max; k++ {
		fusionBySize[k] = combinationsOfSize(e.domain, k)
	}

	rs := &ResultSet{
		XyzRange:    xyz,
		FusionRange: fusion,
		Buckets:     make([]Bucket, 0, (xyz.Max-xyz.Min+1)*(fusion.Max-fusion.Min+1)),
	}
	for xk := xyz.Min; xk <= xyz.Max; xk++ {
		for fk := fusion.Min; fk <= fusion.Max; fk++ {
			rs.Buckets = append(rs.Buckets, Bucket{XyzSize: xk, FusionSize: fk})
		}
	}

	var err error
	if e.parallel {
		err = e.fillParallel(ctx, rs, xyzBySize, fusionBySize)
	} else {
		err = e.fillSequential(ctx, rs, xyzBySize, fusionBySize)
	}
	if err != nil {
		return nil, err
	}

	for _, b := range rs.Buckets {
		rs.TotalPairs += len(b.Pairs)
	}
	return rs, nil
}

func (e *Enumerator) fillSequential(ctx context.Context, rs *ResultSet, xyzBySize, fusionBySize map[int][]Combination) error {
	for i := range rs.Buckets {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("enumeration cancelled: %w", err)
		}
		b := &rs.Buckets[i]
		b.Pairs = e.filterBucket(xyzBySize[b.XyzSize], fusionBySize[b.FusionSize])
	}
	return nil
}

// fillParallel runs one goroutine per bucket. Buckets are
// independent and each goroutine writes only its own slot, so the
// assembled result matches the sequential order exactly.
func (e *Enumerator) fillParallel(ctx context.Context, rs *ResultSet, xyzBySize, fusionBySize map[int][]Combination) error {
	eg, egCtx := errgroup.WithContext(ctx)
	for i := range rs.Buckets {
		b := &rs.Buckets[i]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return fmt.Errorf("enumeration cancelled: %w", err)
			}
			b.Pairs = e.filterBucket(xyzBySize[b.XyzSize], fusionBySize[b.FusionSize])
			return nil
		})
	}
	return eg.Wait()
}

func (e *Enumerator) filterBucket(xyzCombos, fusionCombos []Combination) []Pair {
	var pairs []Pair
	for _, xc := range xyzCombos {
		for _, fc := range fusionCombos {
			if e.pred(xc, fc) {
				pairs = append(pairs, Pair{Xyz: xc, Fusion: fc})
			}
		}
	}
	return pairs
}
