package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/milk9111/paperchase/scenario"
)

var (
	flagTicks int
	flagDt    float64
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Simulate a scenario",
	Long: `Simulate the scenario and print one line per collision event followed by
the final position and velocity of every body.

--ticks and --dt override the values in the file when set.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to simulate (0 = use file)")
	runCmd.Flags().Float64Var(&flagDt, "dt", 0, "Seconds per tick (0 = use file)")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	if flagTicks > 0 {
		s.Ticks = flagTicks
	}
	if flagDt > 0 {
		s.Dt = flagDt
	}

	logger.Info("running scenario", "file", args[0], "bodies", len(s.Bodies), "ticks", s.Ticks, "dt", s.Dt)
	report, err := scenario.Run(s, logger)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), report)
	return nil
}

func printReport(w io.Writer, r *scenario.Report) {
	fmt.Fprintln(w, "Events:")
	if len(r.Events) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, e := range r.Events {
		fmt.Fprintf(w, "  tick %-5d %-5s %s <-> %s (%s)\n", e.Tick, e.Kind, e.A, e.B, e.Result)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bodies:")
	width := 4
	for _, b := range r.Bodies {
		width = max(width, len(b.Name))
	}
	for _, b := range r.Bodies {
		fmt.Fprintf(w, "  %-*s  pos (%.3f, %.3f)  vel (%.3f, %.3f)\n",
			width, b.Name, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y)
	}
}
