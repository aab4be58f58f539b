package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/liftlog/internal/query"
)

// --- Tool definitions ---

var toolListSessions = mcp.NewTool("list_sessions",
	mcp.WithDescription("List workout sessions, newest first. Optionally filter by a case-insensitive substring matched against session titles and exercise names."),
	mcp.WithString("search", mcp.Description("Filter text (e.g. 'bench', 'leg day'). Blank returns everything.")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of sessions to return. Defaults to 20.")),
)

var toolGetSession = mcp.NewTool("get_session",
	mcp.WithDescription("Get a single workout session by id, including all exercises and sets."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Session id")),
)

var toolGetExerciseSummary = mcp.NewTool("get_exercise_summary",
	mcp.WithDescription("Per-exercise aggregates across all sessions: total sets, total reps, total volume (weight x reps), and the date last performed. Ordered most recently performed first."),
)

var toolGetTotals = mcp.NewTool("get_totals",
	mcp.WithDescription("Overall training totals: session, set, and rep counts plus total volume across the whole log."),
)

// --- Tool handlers ---

func (h *handlers) listSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	search := req.GetString("search", "")
	limit := req.GetInt("limit", 20)

	sessions := query.View(h.ds.All(), search)
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	sess, ok := h.ds.Get(id)
	if !ok {
		return mcp.NewToolResultError("session not found: " + id), nil
	}

	result, err := mcp.NewToolResultJSON(sess)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(query.Summarize(h.ds.All()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTotals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions := h.ds.All()
	totals := map[string]any{
		"total_sessions": query.TotalSessions(sessions),
		"total_sets":     query.TotalSets(sessions),
		"total_reps":     query.TotalReps(sessions),
		"total_volume":   query.TotalVolume(sessions),
	}

	result, err := mcp.NewToolResultJSON(totals)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
