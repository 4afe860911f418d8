package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/breakpoint/internal/cli"
	"github.com/spf13/cobra"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in self-pacing demo computation",
	Long:  `Runs a counting computation that reports progress at every suspension point and adapts its suspension frequency to the configured target interval.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := gatherOptions(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// When demo runs as the default command, cmd is the root command
		// and does not carry the demo flags.
		ticks, err := cmd.Flags().GetInt("ticks")
		if err != nil {
			ticks = defaultTicks
		}
		tick, err := cmd.Flags().GetDuration("tick")
		if err != nil {
			tick = defaultTick
		}

		err = cli.RunDemo(cmd.Context(), cli.DemoOptions{
			Ticks:    ticks,
			TickTime: tick,
			Interval: opts.interval,
			Progress: opts.progress,
			Verbose:  opts.verbose,
			Out:      os.Stdout,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// cmdOptions is the merged view of config file and flags. Flags win.
type cmdOptions struct {
	interval time.Duration
	progress bool
	verbose  bool
}

func gatherOptions(cmd *cobra.Command) (cmdOptions, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cli.LoadConfig(path)
	if err != nil {
		return cmdOptions{}, err
	}

	opts := cmdOptions{
		progress: cfg.Progress,
		verbose:  cfg.Verbose,
	}
	if opts.interval, err = cfg.TargetInterval(); err != nil {
		return cmdOptions{}, err
	}

	if cmd.Flags().Changed("interval") {
		raw, _ := cmd.Flags().GetString("interval")
		if opts.interval, err = time.ParseDuration(raw); err != nil {
			return cmdOptions{}, fmt.Errorf("invalid --interval: %w", err)
		}
	}
	if cmd.Flags().Changed("progress") {
		opts.progress, _ = cmd.Flags().GetBool("progress")
	}
	if cmd.Flags().Changed("verbose") {
		opts.verbose, _ = cmd.Flags().GetBool("verbose")
	}
	return opts, nil
}

const (
	defaultTicks = 100
	defaultTick  = 20 * time.Millisecond
)

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Int("ticks", defaultTicks, "Number of work iterations")
	demoCmd.Flags().Duration("tick", defaultTick, "Work time per iteration")

	// Make 'demo' the default if no command is provided.
	rootCmd.Run = demoCmd.Run
}
