package solver

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateValidation(t *testing.T) {
	e := NewEnumerator()
	ctx := context.Background()

	t.Run("xyz min above max", func(t *testing.T) {
		_, err := e.Enumerate(ctx, GroupSpec{Min: 3, Max: 2}, GroupSpec{Min: 1, Max: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("negative fusion bound", func(t *testing.T) {
		_, err := e.Enumerate(ctx, GroupSpec{Min: 1, Max: 1}, GroupSpec{Min: -1, Max: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCount)
	})

	t.Run("no partial output on failure", func(t *testing.T) {
		rs, err := e.Enumerate(ctx, GroupSpec{Min: 2, Max: 1}, GroupSpec{Min: 0, Max: 0})
		require.Error(t, err)
		assert.Nil(t, rs)
	})
}

func TestEnumerateBoundaries(t *testing.T) {
	e := NewEnumerator()
	ctx := context.Background()

	t.Run("zero-size groups yield the empty pairing", func(t *testing.T) {
		rs, err := e.Enumerate(ctx, GroupSpec{Min: 0, Max: 0}, GroupSpec{Min: 0, Max: 0})
		require.NoError(t, err)
		require.Len(t, rs.Buckets, 1)
		require.Len(t, rs.Buckets[0].Pairs, 1)
		pair := rs.Buckets[0].Pairs[0]
		assert.Empty(t, pair.Xyz)
		assert.Empty(t, pair.Fusion)
		assert.Equal(t, 1, rs.TotalPairs)
	})

	t.Run("single card each side pairs equal values", func(t *testing.T) {
		rs, err := e.Enumerate(ctx, GroupSpec{Min: 1, Max: 1}, GroupSpec{Min: 1, Max: 1})
		require.NoError(t, err)
		require.Len(t, rs.Buckets, 1)
		pairs := rs.Buckets[0].Pairs
		require.Len(t, pairs, 12)
		for i, p := range pairs {
			assert.Equal(t, Combination{Level(i + 1)}, p.Xyz)
			assert.Equal(t, Combination{Level(i + 1)}, p.Fusion)
		}
	})
}

func TestEnumerateProperties(t *testing.T) {
	e := NewEnumerator()
	ctx := context.Background()
	xyz := GroupSpec{Min: 1, Max: 2}
	fusion := GroupSpec{Min: 1, Max: 2}

	rs, err := e.Enumerate(ctx, xyz, fusion)
	require.NoError(t, err)

	t.Run("sizes stay within bounds", func(t *testing.T) {
		for _, b := range rs.Buckets {
			assert.GreaterOrEqual(t, b.XyzSize, xyz.Min)
			assert.LessOrEqual(t, b.XyzSize, xyz.Max)
			assert.GreaterOrEqual(t, b.FusionSize, fusion.Min)
			assert.LessOrEqual(t, b.FusionSize, fusion.Max)
			for _, p := range b.Pairs {
				assert.Len(t, p.Xyz, b.XyzSize)
				assert.Len(t, p.Fusion, b.FusionSize)
			}
		}
	})

	t.Run("predicate holds for every pair", func(t *testing.T) {
		for _, b := range rs.Buckets {
			for _, p := range b.Pairs {
				assert.Equal(t, p.Xyz.Sum(), p.Fusion.Sum(), "pair %v / %v", p.Xyz, p.Fusion)
			}
		}
	})

	t.Run("buckets ordered by xyz size then fusion size", func(t *testing.T) {
		var want []struct{ x, f int }
		for xk := xyz.Min; xk <= xyz.Max; xk++ {
			for fk := fusion.Min; fk <= fusion.Max; fk++ {
				want = append(want, struct{ x, f int }{xk, fk})
			}
		}
		require.Len(t, rs.Buckets, len(want))
		for i, b := range rs.Buckets {
			assert.Equal(t, want[i].x, b.XyzSize)
			assert.Equal(t, want[i].f, b.FusionSize)
		}
	})

	t.Run("known pair present, known non-pair absent", func(t *testing.T) {
		// 2+3 = 5 is a valid play; 2+3 against 6 is not.
		assert.True(t, containsPair(rs, Combination{2, 3}, Combination{5}))
		assert.False(t, containsPair(rs, Combination{2, 3}, Combination{6}))
	})
}

func TestEnumerateCrossCheck(t *testing.T) {
	// Independent brute force over a small domain: build each side's
	// multisets recursively, filter by sum equality, compare.
	domain := []Level{1, 2, 3, 4, 5}
	e := NewEnumerator(WithDomain(domain))
	xyz := GroupSpec{Min: 0, Max: 2}
	fusion := GroupSpec{Min: 1, Max: 3}

	rs, err := e.Enumerate(context.Background(), xyz, fusion)
	require.NoError(t, err)

	want := bruteForce(domain, xyz, fusion)
	if diff := cmp.Diff(want, rs.Buckets); diff != "" {
		t.Errorf("enumerator disagrees with brute force (-want +got):\n%s", diff)
	}
}

func TestEnumerateDeterminism(t *testing.T) {
	xyz := GroupSpec{Min: 1, Max: 3}
	fusion := GroupSpec{Min: 1, Max: 2}

	first, err := NewEnumerator().Enumerate(context.Background(), xyz, fusion)
	require.NoError(t, err)
	second, err := NewEnumerator().Enumerate(context.Background(), xyz, fusion)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two runs with identical inputs differ (-first +second):\n%s", diff)
	}
}

func TestEnumerateParallelMatchesSequential(t *testing.T) {
	xyz := GroupSpec{Min: 0, Max: 3}
	fusion := GroupSpec{Min: 0, Max: 2}

	seq, err := NewEnumerator().Enumerate(context.Background(), xyz, fusion)
	require.NoError(t, err)
	par, err := NewEnumerator(WithParallel()).Enumerate(context.Background(), xyz, fusion)
	require.NoError(t, err)

	if diff := cmp.Diff(seq, par); diff != "" {
		t.Errorf("parallel result differs from sequential (-seq +par):\n%s", diff)
	}
}

func TestEnumerateCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEnumerator().Enumerate(ctx, GroupSpec{Min: 1, Max: 4}, GroupSpec{Min: 1, Max: 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnumerateCustomPredicate(t *testing.T) {
	// Xyz total must be exactly double the Fusion total.
	double := func(xyz, fusion Combination) bool {
		return xyz.Sum() == 2*fusion.Sum()
	}
	e := NewEnumerator(WithPredicate(double))

	rs, err := e.Enumerate(context.Background(), GroupSpec{Min: 1, Max: 1}, GroupSpec{Min: 1, Max: 1})
	require.NoError(t, err)

	// [2]/[1], [4]/[2] ... [12]/[6]: six pairs.
	require.Len(t, rs.Buckets, 1)
	assert.Len(t, rs.Buckets[0].Pairs, 6)
	for _, p := range rs.Buckets[0].Pairs {
		assert.Equal(t, p.Xyz.Sum(), 2*p.Fusion.Sum())
	}
}

func containsPair(rs *ResultSet, xyz, fusion Combination) bool {
	for _, b := range rs.Buckets {
		for _, p := range b.Pairs {
			if cmp.Equal(p.Xyz, xyz) && cmp.Equal(p.Fusion, fusion) {
				return true
			}
		}
	}
	return false
}

// bruteForce is the reference implementation the enumerator is
// checked against: straightforward recursion, no shared generator.
func bruteForce(domain []Level, xyz, fusion GroupSpec) []Bucket {
	var buckets []Bucket
	for xk := xyz.Min; xk <= xyz.Max; xk++ {
		for fk := fusion.Min; fk <= fusion.Max; fk++ {
			b := Bucket{XyzSize: xk, FusionSize: fk}
			for _, xc := range recurseCombos(domain, xk, 0) {
				for _, fc := range recurseCombos(domain, fk, 0) {
					if xc.Sum() == fc.Sum() {
						b.Pairs = append(b.Pairs, Pair{Xyz: xc, Fusion: fc})
					}
				}
			}
			buckets = append(buckets, b)
		}
	}
	return buckets
}

func recurseCombos(domain []Level, k, start int) []Combination {
	if k == 0 {
		return []Combination{{}}
	}
	var out []Combination
	for i := start; i < len(domain); i++ {
		for _, rest := range recurseCombos(domain, k-1, i) {
			c := make(Combination, 0, k)
			c = append(c, domain[i])
			c = append(c, rest...)
			out = append(out, c)
		}
	}
	return out
}
