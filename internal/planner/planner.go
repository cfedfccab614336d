package planner

import (
	"context"
	"fmt"
	"log/slog"

	"trainpilot/backend/internal/config"
	app_errors "trainpilot/backend/internal/errors"
	"trainpilot/backend/internal/model"
)

// PlanningRequest is the input to a planning backend. It carries the full
// conversation because the server is stateless: every call recomputes the
// profile from scratch.
type PlanningRequest struct {
	UserInput           string                   `json:"user_input"`
	ConversationHistory []model.ConversationTurn `json:"conversation_history,omitempty"`
	PlanParameters      model.PlanParameters     `json:"plan_parameters"`
}

// Planner produces the next chat response for a conversation. There are
// two implementations: the local mock responder and the upstream planning
// API client. The handler never knows which one it is talking to.
//
// Implementations do not know the caller's identity; the service layer
// overwrites plan ownership after the call.
type Planner interface {
	GeneratePlan(ctx context.Context, req *PlanningRequest) (*model.ChatResponse, error)
}

// FromConfig selects the planning backend. A fully configured planning API
// wins; no configuration at all selects the local mock; a half-configured
// API is a deployment mistake and every call fails fast with ErrConfig
// before any network attempt.
func FromConfig(cfg *config.Config) Planner {
	switch {
	case cfg.PlanningAPIURL != "" && cfg.PlanningAPIKey != "":
		slog.Info("Using upstream planning API", "url", cfg.PlanningAPIURL, "version", cfg.PlanningAPIVersion)
		return NewAgentClient(cfg.PlanningAPIURL, cfg.PlanningAPIKey, cfg.PlanningAPIVersion, cfg.PlanningTimeout)
	case cfg.PlanningAPIURL == "" && cfg.PlanningAPIKey == "":
		slog.Info("Planning API not configured, using local mock planner")
		return NewMockPlanner()
	default:
		slog.Error("Planning API partially configured, all planning calls will fail",
			"url_set", cfg.PlanningAPIURL != "", "key_set", cfg.PlanningAPIKey != "")
		return misconfiguredPlanner{}
	}
}

// misconfiguredPlanner rejects every call. It exists so that a partial
// planning API configuration surfaces as a clean 500 on request paths
// instead of a crash at startup or a silent fallback to mock data.
type misconfiguredPlanner struct{}

func (misconfiguredPlanner) GeneratePlan(_ context.Context, _ *PlanningRequest) (*model.ChatResponse, error) {
	return nil, fmt.Errorf("%w: planning API URL and key must both be set", app_errors.ErrConfig)
}
