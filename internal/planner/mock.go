package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"trainpilot/backend/internal/model"
	"trainpilot/backend/internal/profile"
)

// Fixed descriptive strings the mock responder writes into the profile
// once a category has been observed. They are never cleared within a
// conversation.
const (
	profileGoals       = "Wants to get fitter with a mix of running and strength work"
	profileBackground  = "Recreational athlete with some prior training experience"
	profileHistory     = "Has trained on and off and is looking for consistent structure"
	profileSchedule    = "Can commit to several training days per week"
	profileEquipment   = "Has access to basic strength equipment"
	profileConstraints = "Reported constraints to train around"
	profileNoIssues    = "No health constraints reported"
)

const (
	askLogistics = "Thanks for sharing! To put a plan together I still need your weekly availability and what equipment you can use. How many days can you train, and do you have access to a gym?"
	askHealth    = "Almost there. Before I finalize the plan: do you have any injuries, pain, or other health constraints I should plan around?"
)

// MockPlanner is the local planning backend. It walks the conversation
// through three stages keyed off the transcript the client echoes back,
// and attaches a canonical weekly schedule once the profile is complete.
type MockPlanner struct{}

func NewMockPlanner() *MockPlanner {
	return &MockPlanner{}
}

func (p *MockPlanner) GeneratePlan(_ context.Context, req *PlanningRequest) (*model.ChatResponse, error) {
	stage := profile.StageFor(len(req.ConversationHistory))
	categories := profile.Classify(profile.Transcript(req.ConversationHistory, req.UserInput))

	switch stage {
	case profile.StageAwaitingGoals:
		return p.respondAwaitingGoals(categories), nil
	case profile.StageAwaitingHealthInfo:
		return p.respondAwaitingHealthInfo(), nil
	default:
		return p.respondComplete(categories, req.PlanParameters), nil
	}
}

func (p *MockPlanner) respondAwaitingGoals(categories profile.CategorySet) *model.ChatResponse {
	data := &model.ProfileData{}
	if categories[profile.CategoryGoals] {
		data.TrainingGoals = profileGoals
	}
	if categories[profile.CategoryBackground] {
		data.FitnessBackground = profileBackground
	}
	return &model.ChatResponse{
		Status:            model.StatusIncompleteProfile,
		Message:           askLogistics,
		ProfileData:       data,
		MissingFields:     []string{"weekly_schedule", "available_equipment"},
		FollowUpQuestions: []string{askLogistics},
	}
}

func (p *MockPlanner) respondAwaitingHealthInfo() *model.ChatResponse {
	return &model.ChatResponse{
		Status: model.StatusIncompleteProfile,
		ProfileData: &model.ProfileData{
			TrainingGoals:      profileGoals,
			FitnessBackground:  profileBackground,
			TrainingHistory:    profileHistory,
			WeeklySchedule:     profileSchedule,
			AvailableEquipment: profileEquipment,
		},
		Message:           askHealth,
		MissingFields:     []string{"health_constraints"},
		FollowUpQuestions: []string{askHealth},
	}
}

func (p *MockPlanner) respondComplete(categories profile.CategorySet, params model.PlanParameters) *model.ChatResponse {
	constraints := profileNoIssues
	if categories[profile.CategoryConstraints] {
		constraints = profileConstraints
	}

	emphasis := strings.ReplaceAll(string(params.Emphasis), "_", " ")
	plan := NewCanonicalPlan("")
	plan.Title = fmt.Sprintf("%d-Week %s Training Plan", params.DurationWeeks, capitalize(emphasis))
	plan.Description = fmt.Sprintf("A %d-week plan with a %s emphasis, combining running and strength sessions.", params.DurationWeeks, emphasis)

	return &model.ChatResponse{
		Status: model.StatusComplete,
		Message: fmt.Sprintf("Your %d-week %s training plan is ready! Here is a weekly schedule to get you started.",
			params.DurationWeeks, emphasis),
		ProfileData: &model.ProfileData{
			TrainingGoals:      profileGoals,
			FitnessBackground:  profileBackground,
			TrainingHistory:    profileHistory,
			WeeklySchedule:     profileSchedule,
			AvailableEquipment: profileEquipment,
			HealthConstraints:  constraints,
		},
		MissingFields: []string{},
		Plan:          plan,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NewCanonicalPlan builds the stock weekly schedule used whenever a plan
// is produced locally. Callers stamp the owner after the fact; the userId
// in a request body is never trusted.
func NewCanonicalPlan(userID string) *model.TrainingPlan {
	now := time.Now().UTC()
	return &model.TrainingPlan{
		ID:     uuid.NewString(),
		UserID: userID,
		WeeklySchedule: []model.DailySession{
			{Day: "Monday", Session: model.Session{Type: model.SessionRun, Activity: "Easy Run", Duration: "30 min"}},
			{Day: "Tuesday", Session: model.Session{Type: model.SessionStrength, Activity: "Upper Body", Details: "Focus on push/pull exercises"}},
			{Day: "Wednesday", Session: model.Session{Type: model.SessionRest, Activity: "Rest Day"}},
			{Day: "Thursday", Session: model.Session{Type: model.SessionRun, Activity: "Interval Training", Duration: "40 min"}},
			{Day: "Friday", Session: model.Session{Type: model.SessionStrength, Activity: "Lower Body", Details: "Focus on compound movements"}},
			{Day: "Saturday", Session: model.Session{Type: model.SessionRun, Activity: "Long Run", Duration: "60 min"}},
			{Day: "Sunday", Session: model.Session{Type: model.SessionRest, Activity: "Rest Day"}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
