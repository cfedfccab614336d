package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trainpilot/backend/internal/model"
	"trainpilot/backend/internal/profile"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []profile.Category
	}{
		{
			name: "goal keyword",
			text: "My goal is to run a 10k",
			want: []profile.Category{profile.CategoryGoals},
		},
		{
			name: "improve triggers goals without the literal word goal",
			text: "I want to improve my running and lift weights",
			want: []profile.Category{profile.CategoryGoals, profile.CategoryEquipment},
		},
		{
			name: "substring match has no word boundary",
			text: "strongeractivity",
			want: []profile.Category{profile.CategoryGoals},
		},
		{
			name: "case insensitive",
			text: "SCHEDULE is tight, I have a GYM membership",
			want: []profile.Category{profile.CategorySchedule, profile.CategoryEquipment},
		},
		{
			name: "health constraints",
			text: "recovering from a knee injury",
			want: []profile.Category{profile.CategoryConstraints},
		},
		{
			name: "plural form misses the singular trigger",
			text: "no injuries to speak of",
			want: nil,
		},
		{
			name: "no hits",
			text: "hello there",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profile.Classify(tt.text)
			assert.Len(t, got, len(tt.want))
			for _, category := range tt.want {
				assert.True(t, got[category], "expected category %s", category)
			}
		})
	}
}

func TestTranscript(t *testing.T) {
	history := []model.ConversationTurn{
		{Role: "user", Content: "I run three times a week"},
		{Role: "assistant", Content: "Great, tell me more"},
	}
	text := profile.Transcript(history, "recovering from an injury")

	// Categories mentioned in earlier turns stay visible to the classifier.
	hits := profile.Classify(text)
	assert.True(t, hits[profile.CategorySchedule])
	assert.True(t, hits[profile.CategoryConstraints])
}

func TestStageFor(t *testing.T) {
	tests := []struct {
		historyLen int
		want       profile.Stage
	}{
		{0, profile.StageAwaitingGoals},
		{1, profile.StageAwaitingGoals}, // retry resending a partial exchange
		{2, profile.StageAwaitingHealthInfo},
		{3, profile.StageAwaitingHealthInfo},
		{4, profile.StageComplete},
		{5, profile.StageComplete},
		{10, profile.StageComplete},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, profile.StageFor(tt.historyLen), "history length %d", tt.historyLen)
	}
}
