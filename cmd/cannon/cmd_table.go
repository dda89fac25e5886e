// Package main implements the table command: the quick-reference
// equation sheet for single-card pairings.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqcannon/internal/report"
	"seqcannon/internal/solver"
	"seqcannon/internal/ux"
)

// tableCmd solves the equation system for scalar value ranges
var tableCmd = &cobra.Command{
	Use:   "table <xyz_min> <xyz_max> <fusion_min> <fusion_max>",
	Short: "Generate the stars / cards-to-return reference table",
	Long: `Solves the card's equation system for every (fusion level, xyz rank)
pair within the given value ranges:

  fusion + xyz     = stars
  fusion + 2*xyz   = nb_cards

Here the four arguments bound level and rank values, not card counts,
so they must be at least 1. Rows are sorted by stars descending, the
way the sheet is read mid-duel.

Example:
  cannon table 2 6 1 5   -> results/sec xyz2-6 fusion1-5.xlsx`,
	Args: cobra.ExactArgs(4),
	RunE: runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
	xyz, fusion, err := parseBounds(args)
	if err != nil {
		return err
	}

	rows, err := solver.EquationTable(xyz, fusion)
	if err != nil {
		return fmt.Errorf("table generation failed: %w", err)
	}
	logger.Info("equation table built", zap.Int("rows", len(rows)))

	if printOnly {
		return ux.RenderTable(os.Stdout, rows)
	}

	path := report.TableFilename(outputDir(), xyz, fusion)
	if err := report.WriteTable(path, rows); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	logger.Info("workbook written", zap.String("path", path))
	fmt.Printf("Saved: %s\n", path)
	return nil
}
