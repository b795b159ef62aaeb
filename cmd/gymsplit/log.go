package main

import (
	"fmt"

	"github.com/2beens/gymsplit/internal/logstore"

	"github.com/spf13/cobra"
)

func newLogCmd(opts *cliOptions) *cobra.Command {
	var entry logstore.LogEntry
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Append one set to today's workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := opts.service().Log(commandContext(cmd), opts.credential(), entry)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s %s kg x %s on %s (%s)\n",
				entry.ExerciseName, entry.Weight, entry.Reps, plan.Date, plan.Label)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&entry.ExerciseName, "exercise", "", "exercise name")
	f.StringVar(&entry.Weight, "weight", "", "weight in kg")
	f.StringVar(&entry.Reps, "reps", "", "reps done")
	f.StringVar(&entry.Notes, "notes", "", "free text notes")
	_ = cmd.MarkFlagRequired("exercise")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("reps")
	return cmd
}
