package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/thealper2/weissman-score-benchmark/pkg/config"
	"github.com/thealper2/weissman-score-benchmark/pkg/logger"
	"github.com/thealper2/weissman-score-benchmark/pkg/present"
	"github.com/thealper2/weissman-score-benchmark/pkg/storage"
)

func newHistoryCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "history [run-id]",
		Short: "List archived benchmark runs or re-render one",
		Long:  "Without arguments, list all archived runs. With a run ID, re-render that run's result table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHistory,

		SilenceUsage: true,
	}

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	config.SetEnvConfigPath(configFile)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.Environment, false)

	store, err := storage.NewHistoryStore(cfg.HistoryDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close history store", err)
		}
	}()

	if len(args) == 1 {
		rs, err := store.Get(args[0])
		if err != nil {
			return err
		}
		present.RenderTable(os.Stdout, rs)
		return nil
	}

	summaries, err := store.List()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tTARGET\tWHEN\tALGORITHMS\tSUCCEEDED")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n",
			s.RunID, s.Target, s.CreatedAt.Local().Format(time.RFC3339), s.Algorithms, s.Succeeded)
	}
	return tw.Flush()
}
