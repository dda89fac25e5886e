// Package main implements the seqcannon CLI: tribute enumeration and
// equation tables for Simultaneous Equation Cannon.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seqcannon/internal/config"
	"seqcannon/internal/solver"
)

// Version is the CLI version reported by the version command.
const Version = "1.1.0"

var (
	// Global flags
	verbose    bool
	configPath string
	outDir     string
	printOnly  bool

	// Effective configuration, loaded in PersistentPreRunE
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cannon",
	Short: "seqcannon - Simultaneous Equation Cannon tribute calculator",
	Long: `seqcannon works out every legal way to resolve Simultaneous Equation Cannon.

Two modes:
  solve - enumerate every set of Xyz ranks and Fusion levels that can be
          tributed together (sum of ranks must equal sum of levels)
  table - the quick-reference sheet: stars and cards-to-return for every
          single (fusion level, xyz rank) pairing

Results go to a styled terminal table (--print) or an .xlsx workbook
named after the input ranges.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose || cfg.Logging.Debug {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// versionCmd prints the CLI version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the seqcannon version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("seqcannon %s\n", Version)
	},
}

// parseBounds turns the four positional arguments into validated-ish
// group specs. Range and sign invariants are checked by the solver;
// this only guarantees the values parse as integers.
func parseBounds(args []string) (xyz, fusion solver.GroupSpec, err error) {
	names := []string{"xyz_min", "xyz_max", "fusion_min", "fusion_max"}
	vals := make([]int, len(names))
	for i, raw := range args {
		vals[i], err = strconv.Atoi(raw)
		if err != nil {
			return xyz, fusion, fmt.Errorf("%s: %q is not an integer", names[i], raw)
		}
	}
	xyz = solver.GroupSpec{Min: vals[0], Max: vals[1]}
	fusion = solver.GroupSpec{Min: vals[2], Max: vals[3]}
	return xyz, fusion, nil
}

// outputDir resolves the workbook directory: the --out flag wins over
// the configured default.
func outputDir() string {
	if outDir != "" {
		return outDir
	}
	return cfg.Output.Dir
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default .seqcannon.yaml)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "Output directory for workbooks (default from config)")
	rootCmd.PersistentFlags().BoolVar(&printOnly, "print", false, "Render to the terminal instead of writing a workbook")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
