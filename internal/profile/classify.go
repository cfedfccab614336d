package profile

import (
	"strings"

	"trainpilot/backend/internal/model"
)

// Category is one of the profile areas the onboarding conversation tries
// to fill in before a plan can be generated.
type Category string

const (
	CategoryGoals       Category = "training_goals"
	CategoryBackground  Category = "fitness_background"
	CategoryHistory     Category = "training_history"
	CategorySchedule    Category = "weekly_schedule"
	CategoryEquipment   Category = "available_equipment"
	CategoryConstraints Category = "health_constraints"
)

// triggers maps each category to the substrings that mark it as mentioned.
// Matching is a plain substring scan over the lowercased transcript, so
// "stronger" also matches inside longer words. That mirrors the original
// front-end behavior and keeps the check order-insensitive.
var triggers = map[Category][]string{
	CategoryGoals:       {"goal", "improve", "better", "faster", "stronger"},
	CategoryBackground:  {"experience", "background", "beginner", "advanced", "level"},
	CategoryHistory:     {"history", "trained", "workout", "marathon", "race", "lifting"},
	CategorySchedule:    {"schedule", "time", "availability", "days", "week", "morning", "evening"},
	CategoryEquipment:   {"equipment", "gym", "dumbbell", "barbell", "weights", "home"},
	CategoryConstraints: {"injury", "pain", "condition", "recovering", "doctor"},
}

// CategorySet records which categories the conversation has touched.
type CategorySet map[Category]bool

// Classify scans text for category triggers. It is a pure function; callers
// pass the full transcript and recompute on every request, since the server
// holds no conversation state between calls.
func Classify(text string) CategorySet {
	lowered := strings.ToLower(text)
	hits := make(CategorySet, len(triggers))
	for category, words := range triggers {
		for _, word := range words {
			if strings.Contains(lowered, word) {
				hits[category] = true
				break
			}
		}
	}
	return hits
}

// Transcript flattens the prior turns and the current message into the
// single text blob Classify operates on.
func Transcript(history []model.ConversationTurn, message string) string {
	var b strings.Builder
	for _, turn := range history {
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}
	b.WriteString(message)
	return b.String()
}
