package goals

import "github.com/Veraticus/smart-farming/internal/model"

// Progress is the display state of one goal.
type Progress struct {
	Goal      model.Goal
	Current   int
	Completed bool
}

// Fraction returns Current/Requirement clamped to [0, 1].
func (p Progress) Fraction() float64 {
	if p.Goal.Requirement <= 0 {
		if p.Completed {
			return 1
		}
		return 0
	}
	f := float64(p.Current) / float64(p.Goal.Requirement)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// Shown returns Current clamped to [0, Requirement] for "x/y" labels.
func (p Progress) Shown() int {
	return max(0, min(p.Current, p.Goal.Requirement))
}

// ProgressFor computes the progress value of goal: the assessment total
// capped at the requirement for count goals, and the raw distinct count for
// the crop and season goals.
func ProgressFor(counts Counts, goal model.Goal) int {
	switch goal.ID {
	case model.GoalAllCrops:
		return counts.UniqueCrops
	case model.GoalAllSeasons:
		return counts.UniqueSeasons
	default:
		if _, ok := counts.metric(goal.ID); !ok {
			return 0
		}
		return min(counts.Total, goal.Requirement)
	}
}

// Summary is the goals page state.
type Summary struct {
	Goals     []Progress
	Completed int
	Percent   int
}

// Summarize builds per-goal progress for log. A goal counts as completed
// when it is satisfied by log or already present in achieved.
func Summarize(log []model.Assessment, catalog []model.Goal, achieved model.GoalSet) Summary {
	counts := Count(log)
	current := Refresh(log, catalog)

	summary := Summary{Goals: make([]Progress, 0, len(catalog))}
	for _, goal := range catalog {
		completed := current.Has(goal.ID) || achieved.Has(goal.ID)
		if completed {
			summary.Completed++
		}
		summary.Goals = append(summary.Goals, Progress{
			Goal:      goal,
			Current:   ProgressFor(counts, goal),
			Completed: completed,
		})
	}

	if len(catalog) > 0 {
		summary.Percent = summary.Completed * 100 / len(catalog)
	}

	return summary
}
