// physsim runs paperchase physics scenarios without opening a window.
//
// Usage:
//
//	physsim run <scenario.yaml>    - Simulate and print events and final positions
//	physsim check <scenario.yaml>  - Validate a scenario file
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var flagLogLevel string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "physsim",
	Short:         "Run physics scenarios headless",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `physsim loads a YAML scenario, steps a physics world for a fixed number
of ticks and reports every collision begin/end along with the final body
positions.

Examples:
  physsim check scenarios/landing.yaml
  physsim run scenarios/landing.yaml
  physsim run scenarios/landing.yaml --ticks 120 --dt 0.0166 --log-level debug`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "physsim",
		Level:           level,
	}), nil
}
