package goals

import (
	"math/rand"
	"testing"

	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/stretchr/testify/assert"
)

func assessment(crop model.Crop, season model.Season) model.Assessment {
	return model.Assessment{
		Profile: model.FarmerProfile{
			Name:         "Ada",
			Province:     model.ProvinceAlberta,
			Season:       season,
			CropStage:    model.CropStageGrowing,
			SelectedCrop: crop,
		},
		Recommendations: &model.RecommendationSet{},
	}
}

func repeat(n int, a model.Assessment) []model.Assessment {
	log := make([]model.Assessment, n)
	for i := range log {
		log[i] = a
	}
	return log
}

func ids(set model.GoalSet) []model.GoalID {
	out := make([]model.GoalID, 0, len(set))
	for _, goal := range model.GoalCatalog {
		if set.Has(goal.ID) {
			out = append(out, goal.ID)
		}
	}
	return out
}

func TestRefresh(t *testing.T) {
	tests := []struct {
		name string
		log  []model.Assessment
		want []model.GoalID
	}{
		{
			name: "empty log",
			log:  nil,
			want: []model.GoalID{},
		},
		{
			name: "one assessment",
			log:  repeat(1, assessment(model.CropWheat, model.SeasonSpring)),
			want: []model.GoalID{model.GoalFirstAssessment},
		},
		{
			name: "five with same crop and season",
			log:  repeat(5, assessment(model.CropWheat, model.SeasonSpring)),
			want: []model.GoalID{model.GoalFirstAssessment, model.GoalFiveAssessments},
		},
		{
			name: "four distinct crops",
			log: []model.Assessment{
				assessment(model.CropWheat, model.SeasonSpring),
				assessment(model.CropCanola, model.SeasonSpring),
				assessment(model.CropBarley, model.SeasonSpring),
				assessment(model.CropOats, model.SeasonSpring),
			},
			want: []model.GoalID{model.GoalFirstAssessment, model.GoalAllCrops},
		},
		{
			name: "four distinct seasons",
			log: []model.Assessment{
				assessment(model.CropWheat, model.SeasonSpring),
				assessment(model.CropWheat, model.SeasonSummer),
				assessment(model.CropWheat, model.SeasonFall),
				assessment(model.CropWheat, model.SeasonWinter),
			},
			want: []model.GoalID{model.GoalFirstAssessment, model.GoalAllSeasons},
		},
		{
			name: "ten assessments",
			log:  repeat(10, assessment(model.CropOats, model.SeasonFall)),
			want: []model.GoalID{model.GoalFirstAssessment, model.GoalFiveAssessments, model.GoalTenAssessments},
		},
		{
			name: "empty crop values do not count",
			log: []model.Assessment{
				assessment("", model.SeasonSpring),
				assessment(model.CropWheat, model.SeasonSpring),
				assessment(model.CropCanola, model.SeasonSpring),
				assessment(model.CropBarley, model.SeasonSpring),
			},
			want: []model.GoalID{model.GoalFirstAssessment},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Refresh(tt.log, model.GoalCatalog)
			assert.Equal(t, tt.want, ids(got))
			assert.Len(t, got, len(tt.want))
		})
	}
}

func TestRefresh_UnknownGoalNeverSatisfied(t *testing.T) {
	catalog := []model.Goal{{ID: "harvest_master", Requirement: 0}}
	got := Refresh(repeat(20, assessment(model.CropWheat, model.SeasonFall)), catalog)
	assert.Empty(t, got)
}

func TestRefresh_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 50; run++ {
		var log []model.Assessment
		previous := Refresh(log, model.GoalCatalog)
		for i := 0; i < 15; i++ {
			crop := model.Crops[rng.Intn(len(model.Crops))]
			season := model.Seasons[rng.Intn(len(model.Seasons))]
			log = append(log, assessment(crop, season))

			next := Refresh(log, model.GoalCatalog)
			for id := range previous {
				assert.True(t, next.Has(id), "%s revoked after %d assessments", id, len(log))
			}
			previous = next
		}
	}
}

func TestCount(t *testing.T) {
	log := []model.Assessment{
		assessment(model.CropWheat, model.SeasonSpring),
		assessment(model.CropWheat, model.SeasonSummer),
		assessment(model.CropOats, ""),
	}

	assert.Equal(t, Counts{Total: 3, UniqueCrops: 2, UniqueSeasons: 2}, Count(log))
}
