package model

import "time"

// ConversationTurn is a single message exchange in the chat transcript.
// The client resends the full transcript with every request; the server
// keeps no session state between calls.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatStatus marks whether enough profile information has been collected
// to attach a training plan to the response.
type ChatStatus string

const (
	StatusIncompleteProfile ChatStatus = "incomplete_profile"
	StatusComplete          ChatStatus = "complete"
)

// ProfileData is a sparse record of what the conversation has revealed so
// far. Fields are set to a fixed descriptive string when their category is
// first observed and are never cleared within a conversation.
type ProfileData struct {
	TrainingGoals      string `json:"training_goals,omitempty"`
	FitnessBackground  string `json:"fitness_background,omitempty"`
	TrainingHistory    string `json:"training_history,omitempty"`
	WeeklySchedule     string `json:"weekly_schedule,omitempty"`
	AvailableEquipment string `json:"available_equipment,omitempty"`
	HealthConstraints  string `json:"health_constraints,omitempty"`
}

// PlanEmphasis selects the overall focus of a generated plan.
type PlanEmphasis string

const (
	EmphasisBalanced    PlanEmphasis = "balanced"
	EmphasisRunning     PlanEmphasis = "running"
	EmphasisStrength    PlanEmphasis = "strength"
	EmphasisEndurance   PlanEmphasis = "endurance"
	EmphasisFlexibility PlanEmphasis = "flexibility"
	EmphasisWeightLoss  PlanEmphasis = "weight_loss"
	EmphasisMuscleGain  PlanEmphasis = "muscle_gain"
)

// PlanParameters are caller-supplied knobs for plan generation.
type PlanParameters struct {
	DurationWeeks int          `json:"duration_weeks"`
	Emphasis      PlanEmphasis `json:"emphasis"`
}

// DefaultPlanParameters returns the parameters used when the caller
// supplies none.
func DefaultPlanParameters() PlanParameters {
	return PlanParameters{DurationWeeks: 4, Emphasis: EmphasisBalanced}
}

// SessionType categorizes a single day's training session.
type SessionType string

const (
	SessionRun           SessionType = "run"
	SessionStrength      SessionType = "strength"
	SessionRest          SessionType = "rest"
	SessionCrossTraining SessionType = "cross_training"
	SessionFlexibility   SessionType = "flexibility"
)

// Session describes the activity planned for one day.
type Session struct {
	Type     SessionType `json:"type"`
	Activity string      `json:"activity"`
	Duration string      `json:"duration,omitempty"`
	Details  string      `json:"details,omitempty"`
}

// DailySession pairs a calendar day name with its session.
type DailySession struct {
	Day     string  `json:"day"`
	Session Session `json:"session"`
}

// TrainingPlan is a weekly training schedule. WeeklySchedule always holds
// exactly seven entries, one per calendar day. The JSON field names follow
// the plan wire format consumed by the front end.
type TrainingPlan struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	Title          string         `json:"title,omitempty"`
	Description    string         `json:"description,omitempty"`
	WeeklySchedule []DailySession `json:"weeklySchedule"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// ChatResponse is the payload returned by the chat endpoint. Plan is set
// if and only if Status is StatusComplete, and MissingFields is empty
// exactly in that case.
type ChatResponse struct {
	Status            ChatStatus    `json:"status"`
	Message           string        `json:"message"`
	ProfileData       *ProfileData  `json:"profile_data,omitempty"`
	MissingFields     []string      `json:"missing_fields"`
	FollowUpQuestions []string      `json:"follow_up_questions,omitempty"`
	Plan              *TrainingPlan `json:"plan,omitempty"`
	Recommendations   []string      `json:"recommendations,omitempty"`
	Guidelines        string        `json:"guidelines,omitempty"`
}

// User is the identity resolved from a verified bearer token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
