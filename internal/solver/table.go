package solver

import (
	"fmt"
	"sort"
)

// TableRow is one line of the quick-reference equation table: for a
// single Fusion level and Xyz rank, the total levels to name (stars)
// and the number of cards to return to the deck.
//
//	fusion + xyz   = stars
//	fusion + 2*xyz = nb_cards
type TableRow struct {
	Stars   int
	NBCards int
	Xyz     int
	Fusion  int
}

func validateValueRange(side string, g GroupSpec) error {
	if g.Min < 1 || g.Max < 1 {
		return fmt.Errorf("%s values %d..%d must be at least 1: %w", side, g.Min, g.Max, ErrInvalidCount)
	}
	if g.Min > g.Max {
		return fmt.Errorf("%s values %d..%d: %w", side, g.Min, g.Max, ErrInvalidRange)
	}
	return nil
}

// EquationTable solves the card's equation system for every scalar
// (fusion level, xyz rank) pair within the given value ranges. Rows
// come back sorted by stars descending, then xyz descending, which is
// the order players scan the sheet in at the table.
//
// Unlike tribute counts, level and rank values start at 1.
func EquationTable(xyz, fusion GroupSpec) ([]TableRow, error) {
	if err := validateValueRange("xyz", xyz); err != nil {
		return nil, err
	}
	if err := validateValueRange("fusion", fusion); err != nil {
		return nil, err
	}

	rows := make([]TableRow, 0, (xyz.Max-xyz.Min+1)*(fusion.Max-fusion.Min+1))
	for f := fusion.Min; f <= fusion.Max; f++ {
		for x := xyz.Min; x <= xyz.Max; x++ {
			rows = append(rows, TableRow{
				Stars:   f + x,
				NBCards: f + 2*x,
				Xyz:     x,
				Fusion:  f,
			})
		}
	}

	// (stars, xyz) determines fusion, so this key is total and the
	// sort is deterministic without a stable variant.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Stars != rows[j].Stars {
			return rows[i].Stars > rows[j].Stars
		}
		return rows[i].Xyz > rows[j].Xyz
	})
	return rows, nil
}
