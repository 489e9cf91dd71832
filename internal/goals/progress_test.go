package goals

import (
	"testing"

	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalByID(t *testing.T, id model.GoalID) model.Goal {
	t.Helper()
	for _, goal := range model.GoalCatalog {
		if goal.ID == id {
			return goal
		}
	}
	t.Fatalf("goal %s not in catalog", id)
	return model.Goal{}
}

func TestProgressFor(t *testing.T) {
	counts := Counts{Total: 7, UniqueCrops: 3, UniqueSeasons: 2}

	tests := []struct {
		id   model.GoalID
		want int
	}{
		{id: model.GoalFirstAssessment, want: 1},
		{id: model.GoalFiveAssessments, want: 5},
		{id: model.GoalTenAssessments, want: 7},
		{id: model.GoalAllCrops, want: 3},
		{id: model.GoalAllSeasons, want: 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressFor(counts, goalByID(t, tt.id)))
		})
	}
}

func TestProgress_Fraction(t *testing.T) {
	goal := model.Goal{ID: model.GoalAllCrops, Requirement: 4}

	assert.InDelta(t, 0.0, Progress{Goal: goal, Current: 0}.Fraction(), 1e-9)
	assert.InDelta(t, 0.5, Progress{Goal: goal, Current: 2}.Fraction(), 1e-9)
	assert.InDelta(t, 1.0, Progress{Goal: goal, Current: 9}.Fraction(), 1e-9)
	assert.InDelta(t, 0.0, Progress{Goal: goal, Current: -1}.Fraction(), 1e-9)
	assert.Equal(t, 4, Progress{Goal: goal, Current: 9}.Shown())
	assert.InDelta(t, 0.0, Progress{Goal: model.Goal{}, Current: 3}.Fraction(), 1e-9)
}

func TestSummarize(t *testing.T) {
	log := repeat(5, assessment(model.CropWheat, model.SeasonSpring))

	summary := Summarize(log, model.GoalCatalog, model.GoalSet{})

	require.Len(t, summary.Goals, len(model.GoalCatalog))
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 40, summary.Percent)
	assert.True(t, summary.Goals[0].Completed)
	assert.True(t, summary.Goals[1].Completed)
	assert.False(t, summary.Goals[2].Completed)
	assert.Equal(t, 5, summary.Goals[2].Current)
	assert.Equal(t, 1, summary.Goals[3].Current)
}

func TestSummarize_KeepsAchievedGoals(t *testing.T) {
	achieved := model.GoalSet{}
	achieved.Add(model.GoalAllSeasons)

	summary := Summarize(nil, model.GoalCatalog, achieved)

	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 20, summary.Percent)
	assert.True(t, summary.Goals[4].Completed)
}
