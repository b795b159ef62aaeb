package main

import (
	"fmt"
	"io"

	"github.com/2beens/gymsplit/internal/schedule"

	"github.com/spf13/cobra"
)

func newTodayCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's scheduled workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := schedule.Today(opts.now(), opts.cycleConfig())
			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
}

func printPlan(w io.Writer, plan schedule.Plan) {
	_, _ = fmt.Fprintf(w, "%s (%s): %s / %s\n", plan.Date, plan.Weekday, plan.Label, plan.DisplayName)
	if plan.Rest {
		_, _ = fmt.Fprintln(w, "rest day, nothing to log")
		return
	}
	for i, e := range plan.Exercises {
		_, _ = fmt.Fprintf(w, "%d. %s  %s x %s\n", i+1, e.Name, e.Sets, e.Reps)
	}
}
