package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/2beens/gymsplit/internal/logstore"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests: parses input, calls the tracker
// service with the configured credential, formats the result.
type Handler struct {
	service trackerService
	cred    logstore.Credential
}

func NewHandler(service trackerService, cred logstore.Credential) *Handler {
	return &Handler{
		service: service,
		cred:    cred,
	}
}

// GetTodayPlanTool returns the MCP tool handler for get_today_plan.
func (h *Handler) GetTodayPlanTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return textResult(formatPlan(h.service.Today(ctx))), nil, nil
	}
}

// HistoryInput is the input for get_history.
type HistoryInput struct {
	Exercise string `json:"exercise,omitempty" jsonschema:"Only return sets of this exercise (e.g. Lat Pulldown)"`
}

// GetHistoryTool returns the MCP tool handler for get_history.
func (h *Handler) GetHistoryTool() func(context.Context, *mcp.CallToolRequest, HistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in HistoryInput) (*mcp.CallToolResult, any, error) {
		view, err := h.service.History(ctx, h.cred, strings.TrimSpace(in.Exercise))
		if err != nil {
			return errorResult("Error reading workout log (" + string(logstore.Classify(err)) + "): " + err.Error()), nil, nil
		}
		return jsonResult(view), nil, nil
	}
}

// ProgressInput is the input for get_exercise_progress.
type ProgressInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name as logged (e.g. Dumbbell Bench Press)"`
}

// GetExerciseProgressTool returns the MCP tool handler for get_exercise_progress.
func (h *Handler) GetExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, ProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressInput) (*mcp.CallToolResult, any, error) {
		exercise := strings.TrimSpace(in.Exercise)
		if exercise == "" {
			return errorResult("exercise is required"), nil, nil
		}
		series, err := h.service.Progress(ctx, h.cred, exercise)
		if err != nil {
			return errorResult("Error reading workout log (" + string(logstore.Classify(err)) + "): " + err.Error()), nil, nil
		}
		return jsonResult(series), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
