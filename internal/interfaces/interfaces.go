package interfaces

import (
	"context"

	"trainpilot/backend/internal/model"
	"trainpilot/backend/internal/service"
)

// This file defines the contracts the API layer depends on. Handlers take
// these interfaces instead of concrete services so tests can substitute
// mocks without touching any real backend.

// ChatService progresses the onboarding conversation.
type ChatService interface {
	HandleMessage(ctx context.Context, user *model.User, req *service.ChatRequest) (*model.ChatResponse, error)
}

// PlanService serves training plans scoped to the authenticated user.
type PlanService interface {
	CurrentPlan(ctx context.Context, user *model.User, requestedUserID string) (*model.TrainingPlan, error)
}
