package service

import (
	"context"
	"fmt"
	"log/slog"

	"trainpilot/backend/internal/model"
	"trainpilot/backend/internal/planner"
)

// ChatRequest is the body of a chat message from the client. The
// conversation history is echoed back in full on every call; the server
// keeps nothing between requests.
type ChatRequest struct {
	Message             string                   `json:"message" validate:"required"`
	ConversationHistory []model.ConversationTurn `json:"conversation_history,omitempty"`
	PlanParameters      *model.PlanParameters    `json:"plan_parameters,omitempty"`
}

// ChatService progresses the profile-completion conversation and shapes
// the response the client renders. It is backend-agnostic: the planner may
// be the local mock or the upstream planning API.
type ChatService struct {
	planner planner.Planner
}

func NewChatService(p planner.Planner) *ChatService {
	return &ChatService{planner: p}
}

// HandleMessage runs one conversation turn. Whatever the planning backend
// returns, the plan is stamped with the authenticated caller's id; a
// client-supplied userId is never trusted.
func (s *ChatService) HandleMessage(ctx context.Context, user *model.User, req *ChatRequest) (*model.ChatResponse, error) {
	params := model.DefaultPlanParameters()
	if req.PlanParameters != nil && req.PlanParameters.DurationWeeks >= 1 {
		params = *req.PlanParameters
	}
	if params.Emphasis == "" {
		params.Emphasis = model.EmphasisBalanced
	}

	resp, err := s.planner.GeneratePlan(ctx, &planner.PlanningRequest{
		UserInput:           req.Message,
		ConversationHistory: req.ConversationHistory,
		PlanParameters:      params,
	})
	if err != nil {
		return nil, fmt.Errorf("planning backend failed: %w", err)
	}

	if resp.Plan != nil {
		resp.Plan.UserID = user.ID
	}
	if resp.MissingFields == nil {
		resp.MissingFields = []string{}
	}

	slog.Debug("Handled chat turn",
		"user_id", user.ID,
		"history_len", len(req.ConversationHistory),
		"status", resp.Status,
		"has_plan", resp.Plan != nil)
	return resp, nil
}
