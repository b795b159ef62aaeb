package mcp

import (
	"github.com/2beens/gymsplit/internal/logstore"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the workout tracker tools: today's
// plan, logged history and per-exercise progress.
func NewServer(service trackerService, cred logstore.Credential) *mcp.Server {
	h := NewHandler(service, cred)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymsplit",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_today_plan",
		Description: "Returns today's scheduled workout in the 4-day upper/lower split: day type (Upper A, Lower A, Upper B, Lower B or Rest) and the exercises with sets and reps.",
	}, h.GetTodayPlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_history",
		Description: "Returns logged sets (date, day type, exercise, weight, reps, notes) in log order, the list of exercises ever logged and how many malformed rows were skipped. Optional: exercise to filter by.",
	}, h.GetHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns the weight progression of one exercise as parallel lists of dates (labels) and weights in kg (points). Arg: exercise name as logged.",
	}, h.GetExerciseProgressTool())

	return s
}
