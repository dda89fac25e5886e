// Package main implements the solve command: full tribute
// enumeration across group-size ranges.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqcannon/internal/report"
	"seqcannon/internal/solver"
	"seqcannon/internal/ux"
)

var solveParallel bool

// solveCmd enumerates valid tribute pairings
var solveCmd = &cobra.Command{
	Use:   "solve <xyz_min> <xyz_max> <fusion_min> <fusion_max>",
	Short: "Enumerate every valid tribute of Xyz ranks against Fusion levels",
	Long: `Enumerates every multiset of Xyz ranks and every multiset of Fusion
levels within the given group-size bounds, keeping the pairs whose
totals balance (sum of ranks == sum of levels).

The four arguments bound how many cards each side offers. Zero is a
legal bound: a zero-card side contributes an empty set with total 0.

Example:
  cannon solve 1 2 1 1          # 1-2 Xyz against exactly 1 Fusion
  cannon solve 0 3 0 2 --print  # render to the terminal`,
	Args: cobra.ExactArgs(4),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveParallel, "parallel", false, "Filter size groupings concurrently")
}

func runSolve(cmd *cobra.Command, args []string) error {
	xyz, fusion, err := parseBounds(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []solver.Option{solver.WithDomain(cfg.Domain())}
	if solveParallel {
		opts = append(opts, solver.WithParallel())
	}
	enum := solver.NewEnumerator(opts...)

	logger.Debug("enumerating tributes",
		zap.Int("xyz_min", xyz.Min), zap.Int("xyz_max", xyz.Max),
		zap.Int("fusion_min", fusion.Min), zap.Int("fusion_max", fusion.Max),
		zap.Bool("parallel", solveParallel))

	rs, err := enum.Enumerate(ctx, xyz, fusion)
	if err != nil {
		return fmt.Errorf("enumeration failed: %w", err)
	}
	logger.Info("enumeration complete",
		zap.Int("pairs", rs.TotalPairs), zap.Int("buckets", len(rs.Buckets)))

	if printOnly {
		return ux.RenderEnumeration(os.Stdout, rs)
	}

	path := report.EnumerationFilename(outputDir(), xyz, fusion)
	if err := report.WriteEnumeration(path, rs); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	logger.Info("workbook written", zap.String("path", path))
	fmt.Printf("Saved: %s\n", path)
	return nil
}
