// Package goals tracks milestone achievements against the assessment log.
package goals

import "github.com/Veraticus/smart-farming/internal/model"

// Counts are the log statistics goals are measured against.
type Counts struct {
	Total         int
	UniqueCrops   int
	UniqueSeasons int
}

// Count computes the statistics of log. Empty crop and season values are
// not counted as distinct entries.
func Count(log []model.Assessment) Counts {
	crops := make(map[model.Crop]struct{})
	seasons := make(map[model.Season]struct{})

	for _, assessment := range log {
		if crop := assessment.Profile.SelectedCrop; crop != "" {
			crops[crop] = struct{}{}
		}
		if season := assessment.Profile.Season; season != "" {
			seasons[season] = struct{}{}
		}
	}

	return Counts{
		Total:         len(log),
		UniqueCrops:   len(crops),
		UniqueSeasons: len(seasons),
	}
}

// metric returns the count a goal is measured by and whether the goal is
// known.
func (c Counts) metric(id model.GoalID) (int, bool) {
	switch id {
	case model.GoalFirstAssessment, model.GoalFiveAssessments, model.GoalTenAssessments:
		return c.Total, true
	case model.GoalAllCrops:
		return c.UniqueCrops, true
	case model.GoalAllSeasons:
		return c.UniqueSeasons, true
	default:
		return 0, false
	}
}

// Satisfied reports whether goal is met by c.
func (c Counts) Satisfied(goal model.Goal) bool {
	value, ok := c.metric(goal.ID)
	return ok && value >= goal.Requirement
}

// Refresh returns the ids of every goal in catalog satisfied by log.
// Counts only grow as the log grows, so a goal present for a log stays
// present for any extension of it.
func Refresh(log []model.Assessment, catalog []model.Goal) model.GoalSet {
	counts := Count(log)
	achieved := make(model.GoalSet)
	for _, goal := range catalog {
		if counts.Satisfied(goal) {
			achieved.Add(goal.ID)
		}
	}
	return achieved
}
