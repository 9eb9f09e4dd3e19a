package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/paperchase/scenario"
)

var checkCmd = &cobra.Command{
	Use:   "check <scenario>",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d bodies, %d ticks, dt %g)\n", args[0], len(s.Bodies), s.Ticks, s.Dt)
		return nil
	},
}
