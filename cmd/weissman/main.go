package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	// Version information
	VERSION = "1.0.0"
)

var (
	configFile string
)

func main() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weissman",
	Short: "Compression benchmark CLI",
	Long:  "Benchmark compression algorithms against a file or directory and compare them by Weissman score",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("weissman version %s\n", VERSION)
	},
}
