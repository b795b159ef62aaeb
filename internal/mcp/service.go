package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/gymsplit/internal/logstore"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/tracker"
)

// trackerService is the part of tracker.Service the tools read from.
type trackerService interface {
	Today(ctx context.Context) schedule.Plan
	History(ctx context.Context, cred logstore.Credential, exerciseName string) (tracker.HistoryView, error)
	Progress(ctx context.Context, cred logstore.Credential, exerciseName string) (logstore.ProgressSeries, error)
}

// formatPlan renders a plan as a short markdown block.
func formatPlan(plan schedule.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", plan.Date, plan.Weekday)
	if plan.Rest {
		fmt.Fprintf(&b, "%s / %s: no training scheduled.\n", plan.Label, plan.DisplayName)
		return b.String()
	}

	fmt.Fprintf(&b, "Workout: %s / %s\n\n", plan.Label, plan.DisplayName)
	b.WriteString("| exercise | sets | reps |\n|---|---|---|\n")
	for _, e := range plan.Exercises {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Name, e.Sets, e.Reps)
	}
	return b.String()
}
