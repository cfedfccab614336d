package service

import (
	"context"
	"fmt"

	app_errors "trainpilot/backend/internal/errors"
	"trainpilot/backend/internal/model"
	"trainpilot/backend/internal/planner"
)

// PlanService serves the caller's current training plan.
type PlanService struct{}

func NewPlanService() *PlanService {
	return &PlanService{}
}

// CurrentPlan returns the plan for the authenticated user. A userId query
// parameter naming anyone else is refused outright, whether or not that
// user exists.
func (s *PlanService) CurrentPlan(_ context.Context, user *model.User, requestedUserID string) (*model.TrainingPlan, error) {
	if requestedUserID != "" && requestedUserID != user.ID {
		return nil, fmt.Errorf("%w: user %s requested plan of %s", app_errors.ErrPermission, user.ID, requestedUserID)
	}
	return planner.NewCanonicalPlan(user.ID), nil
}
