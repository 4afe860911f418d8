package main

import (
	"fmt"
	"os"

	"github.com/aretw0/breakpoint/internal/cli"
	"github.com/spf13/cobra"
)

// execCmd represents the exec command
var execCmd = &cobra.Command{
	Use:   "exec -- <command> [args...]",
	Short: "Instrument an external NDJSON program",
	Long: `Wraps an external program as a step sequence. The program prints one JSON
value per suspension on stdout (an object with "progress" and "result"
fields when --progress is set) and reads the pacing multiplier, or "null",
as one line on stdin before continuing.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := gatherOptions(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		err = cli.RunExec(cmd.Context(), cli.ExecOptions{
			Command:  args[0],
			Args:     args[1:],
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

func init() {
	rootCmd.AddCommand(execCmd)
}
