package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/2beens/gymsplit/internal/logstore"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/tracker"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTrackerService implements trackerService for tests.
type mockTrackerService struct {
	plan        schedule.Plan
	view        tracker.HistoryView
	series      logstore.ProgressSeries
	err         error
	gotCred     logstore.Credential
	gotExercise string
}

func (m *mockTrackerService) Today(context.Context) schedule.Plan {
	return m.plan
}

func (m *mockTrackerService) History(_ context.Context, cred logstore.Credential, exerciseName string) (tracker.HistoryView, error) {
	m.gotCred, m.gotExercise = cred, exerciseName
	return m.view, m.err
}

func (m *mockTrackerService) Progress(_ context.Context, cred logstore.Credential, exerciseName string) (logstore.ProgressSeries, error) {
	m.gotCred, m.gotExercise = cred, exerciseName
	return m.series, m.err
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestHandler_GetTodayPlanTool(t *testing.T) {
	monday := time.Date(2026, time.October, 12, 9, 0, 0, 0, time.UTC)
	svc := &mockTrackerService{plan: schedule.Today(monday, schedule.CycleConfig{StartDay: 1})}
	h := NewHandler(svc, "tok")

	res, _, err := h.GetTodayPlanTool()(context.Background(), &mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.True(t, strings.HasPrefix(text, "# 2026/10/12 (Monday)"))
	assert.Contains(t, text, "Workout: Upper A / 上肢训练 A")
	assert.Contains(t, text, "| Dumbbell Bench Press | 4 | 8-12 |")

	svc.plan = schedule.Today(monday.AddDate(0, 0, 2), schedule.CycleConfig{StartDay: 1})
	res, _, err = h.GetTodayPlanTool()(context.Background(), &mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "Rest / 休息日: no training scheduled.")
}

func TestHandler_GetHistoryTool(t *testing.T) {
	t.Run("returns_history", func(t *testing.T) {
		svc := &mockTrackerService{view: tracker.HistoryView{
			Entries:   []logstore.HistoryEntry{{Date: "2026/10/12", DayType: "Upper A", ExerciseName: "Lat Pulldown", Weight: 55, Reps: "12"}},
			Exercises: []string{"Lat Pulldown"},
			Dropped:   1,
		}}
		h := NewHandler(svc, "tok")

		res, _, err := h.GetHistoryTool()(context.Background(), &mcp.CallToolRequest{}, HistoryInput{Exercise: " Lat Pulldown "})
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Equal(t, logstore.Credential("tok"), svc.gotCred)
		assert.Equal(t, "Lat Pulldown", svc.gotExercise)

		var view tracker.HistoryView
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &view))
		assert.Equal(t, svc.view, view)
	})

	t.Run("returns_error_when_read_fails", func(t *testing.T) {
		svc := &mockTrackerService{err: fmt.Errorf("read: %w", logstore.ErrAuthExpired)}
		h := NewHandler(svc, "stale")

		res, _, err := h.GetHistoryTool()(context.Background(), &mcp.CallToolRequest{}, HistoryInput{})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.True(t, strings.HasPrefix(resultText(t, res), "Error reading workout log (auth_expired)"))
	})
}

func TestHandler_GetExerciseProgressTool(t *testing.T) {
	t.Run("returns_series", func(t *testing.T) {
		svc := &mockTrackerService{series: logstore.ProgressSeries{
			Exercise: "Leg Curl",
			Labels:   []string{"2026/10/6", "2026/10/13"},
			Points:   []float64{35, 37.5},
		}}
		h := NewHandler(svc, "tok")

		res, _, err := h.GetExerciseProgressTool()(context.Background(), &mcp.CallToolRequest{}, ProgressInput{Exercise: "Leg Curl"})
		require.NoError(t, err)
		require.False(t, res.IsError)

		var series logstore.ProgressSeries
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &series))
		assert.Equal(t, svc.series, series)
	})

	t.Run("exercise_required", func(t *testing.T) {
		h := NewHandler(&mockTrackerService{}, "tok")
		res, _, err := h.GetExerciseProgressTool()(context.Background(), &mcp.CallToolRequest{}, ProgressInput{Exercise: "  "})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, "exercise is required", resultText(t, res))
	})

	t.Run("returns_error_when_read_fails", func(t *testing.T) {
		svc := &mockTrackerService{err: &logstore.RemoteRejectedError{Status: 404}}
		h := NewHandler(svc, "tok")
		res, _, err := h.GetExerciseProgressTool()(context.Background(), &mcp.CallToolRequest{}, ProgressInput{Exercise: "Leg Curl"})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "remote_rejected")
	})
}

func TestNewServer(t *testing.T) {
	s := NewServer(&mockTrackerService{}, "tok")
	require.NotNil(t, s)
}
