package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thealper2/weissman-score-benchmark/pkg/bench"
	"github.com/thealper2/weissman-score-benchmark/pkg/codec"
	"github.com/thealper2/weissman-score-benchmark/pkg/config"
	"github.com/thealper2/weissman-score-benchmark/pkg/export"
	"github.com/thealper2/weissman-score-benchmark/pkg/filesystem"
	"github.com/thealper2/weissman-score-benchmark/pkg/logger"
	"github.com/thealper2/weissman-score-benchmark/pkg/present"
	"github.com/thealper2/weissman-score-benchmark/pkg/storage"
	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

var (
	runAlgorithms []string
	runAlpha      float64
	runReference  string
	runExport     string
	runOutput     string
	runVerbose    bool
)

func newRunCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "run <path>",
		Short: "Benchmark compression algorithms against a file or directory",
		Long:  "Run every requested compression algorithm over the target, score each against the reference algorithm, and render the results",
		Args:  cobra.ExactArgs(1),
		RunE:  runBenchmark,

		SilenceUsage: true,
	}

	cmd.Flags().StringSliceVarP(&runAlgorithms, "algorithm", "a", []string{bench.AlgorithmAll},
		fmt.Sprintf("Algorithms to benchmark (%s or %q)", strings.Join(codec.Names(), ", "), bench.AlgorithmAll))
	cmd.Flags().Float64Var(&runAlpha, "alpha", 1.0, "Alpha scaling constant for the Weissman score")
	cmd.Flags().StringVar(&runReference, "reference", "", "Reference algorithm supplying the score baseline (default from config)")
	cmd.Flags().StringVarP(&runExport, "export", "e", "", "Export results in the given format (json, xml, csv, html)")
	cmd.Flags().StringVarP(&runOutput, "output", "o", "", "Output file path for exported results")
	cmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	config.SetEnvConfigPath(configFile)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override the config file, never the other way around.
	if cmd.Flags().Changed("alpha") {
		cfg.Alpha = runAlpha
	}
	if runReference != "" {
		cfg.Reference = runReference
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger.Init(cfg.Environment, runVerbose)

	// The export format is validated before anything runs so an unsupported
	// format never costs a measurement and never writes a file.
	var format export.Format
	if runExport != "" {
		format, err = export.ParseFormat(runExport)
		if err != nil {
			return err
		}
	}

	registry := codec.NewRegistry(cfg.Level)
	runner := bench.NewRunner(cfg, registry)

	rs, err := runner.Run(args[0], runAlgorithms)
	if err != nil {
		return err
	}

	present.RenderTable(os.Stdout, rs)
	archiveRun(cfg, rs)

	if rs.Succeeded() == 0 {
		return fmt.Errorf("no algorithm could be measured for %s", rs.Target)
	}

	if runExport != "" {
		outputPath := runOutput
		if outputPath == "" {
			outputPath = export.DefaultFilename(rs.Target, format)
		}
		if err := filesystem.ValidateFilePath(outputPath); err != nil {
			return fmt.Errorf("%w: %s: %s", types.ErrExportIO, outputPath, err)
		}

		// The table above is already on the console; an export failure
		// loses the file, not the measurements.
		if err := export.WriteFile(rs, format, outputPath); err != nil {
			return err
		}
		fmt.Printf("Results exported to: %s\n", outputPath)
	}

	return nil
}

// archiveRun stores the run in the history database. History is best-effort:
// a storage problem is logged, never fatal to a completed benchmark.
func archiveRun(cfg *config.Config, rs *types.ResultSet) {
	if !cfg.HistoryEnabled {
		return
	}

	if err := filesystem.EnsureDir(cfg.HistoryDir); err != nil {
		logger.Warn("Cannot create history directory", "dir", cfg.HistoryDir, "error", err.Error())
		return
	}

	store, err := storage.NewHistoryStore(cfg.HistoryDir)
	if err != nil {
		logger.Warn("Cannot open history store", "dir", cfg.HistoryDir, "error", err.Error())
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close history store", err)
		}
	}()

	if err := store.Save(rs); err != nil {
		logger.Warn("Failed to archive run", "run", rs.RunID, "error", err.Error())
		return
	}
	logger.Debug("Run archived", "run", rs.RunID, "dir", cfg.HistoryDir)
}
