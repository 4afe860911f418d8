package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "breakpoint",
	Short: "Breakpoint instruments long-running stepwise computations",
	Long:  `Breakpoint wraps resumable step sequences into plain callables, reporting elapsed time, progress and remaining-time estimates at every suspension point.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "breakpoint.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().String("interval", "", "Target interval between suspensions (e.g. 2s); overrides the config file")
	rootCmd.PersistentFlags().Bool("progress", false, "Enable progress tracking and remaining-time estimates")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
