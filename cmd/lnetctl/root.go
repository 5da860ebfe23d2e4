package main

import (
	"fortio.org/log"
	"github.com/spf13/cobra"
)

// exitCode is set by whichever subcommand's Run function executes, then
// read back by main after rootCmd.Execute() returns. Subcommand Run
// functions never call os.Exit directly so that cobra's own usage/error
// handling (and any future test harness invoking Execute in-process) still
// gets a chance to run first.
var exitCode int

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lnetctl",
	Short: "Validate, build, and recommend learning-net study paths",
	Long: `lnetctl is the command-line front end for the learning-net engine:
it decodes a single JSON request (on the command line or stdin) describing
a check, create, or recommend action, runs it through the graph-compression
and recommendation core, and mirrors the result to stdout with the
protocol's exit-code convention (0 success, non-zero any module error).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLogLevel(log.Verbose)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose tracing of request dispatch")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(recommendCmd)
}
