// Package report renders solver output to .xlsx workbooks.
package report

import (
	"fmt"
	"path/filepath"

	"seqcannon/internal/solver"
)

// TableFilename names an equation-table workbook after its input
// ranges, e.g. "sec xyz2-6 fusion1-5.xlsx".
func TableFilename(outDir string, xyz, fusion solver.GroupSpec) string {
	name := fmt.Sprintf("sec xyz%d-%d fusion%d-%d.xlsx", xyz.Min, xyz.Max, fusion.Min, fusion.Max)
	return filepath.Join(outDir, name)
}

// EnumerationFilename names a tribute-enumeration workbook, with a
// "tributes" marker so the two report kinds never collide.
func EnumerationFilename(outDir string, xyz, fusion solver.GroupSpec) string {
	name := fmt.Sprintf("sec tributes xyz%d-%d fusion%d-%d.xlsx", xyz.Min, xyz.Max, fusion.Min, fusion.Max)
	return filepath.Join(outDir, name)
}
