package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *cliOptions) *cobra.Command {
	var exercise string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List logged sets, optionally for one exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := opts.service().History(commandContext(cmd), opts.credential(), exercise)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "DATE\tDAY\tEXERCISE\tKG\tREPS\tNOTES")
			for _, e := range view.Entries {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Date, e.DayType, e.ExerciseName,
					strconv.FormatFloat(e.Weight, 'f', -1, 64), e.Reps, e.Notes)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if view.Dropped > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d malformed rows\n", view.Dropped)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&exercise, "exercise", "", "only this exercise")
	return cmd
}
