package model

// GoalID identifies a milestone in the goal catalog.
type GoalID string

const (
	GoalFirstAssessment GoalID = "first_assessment"
	GoalFiveAssessments GoalID = "five_assessments"
	GoalTenAssessments  GoalID = "ten_assessments"
	GoalAllCrops        GoalID = "all_crops"
	GoalAllSeasons      GoalID = "all_seasons"
)

// Goal is a fixed milestone tracked against the assessment log.
type Goal struct {
	ID          GoalID
	Icon        string
	Title       string
	Description string
	Requirement int
}

// GoalCatalog is the fixed set of milestones.
var GoalCatalog = []Goal{
	{ID: GoalFirstAssessment, Icon: "🎯", Title: "First Steps", Description: "Complete your first assessment", Requirement: 1},
	{ID: GoalFiveAssessments, Icon: "📊", Title: "Getting Started", Description: "Complete 5 assessments", Requirement: 5},
	{ID: GoalTenAssessments, Icon: "🌟", Title: "Committed Farmer", Description: "Complete 10 assessments", Requirement: 10},
	{ID: GoalAllCrops, Icon: "🌾", Title: "Crop Explorer", Description: "Try all 4 crop types", Requirement: 4},
	{ID: GoalAllSeasons, Icon: "🔄", Title: "Year-Round", Description: "Get advice for all 4 seasons", Requirement: 4},
}

// GoalSet is a set of achieved goal ids.
type GoalSet map[GoalID]struct{}

// Has reports whether id is in the set.
func (s GoalSet) Has(id GoalID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s GoalSet) Add(id GoalID) {
	s[id] = struct{}{}
}

// Union adds every id of other to s.
func (s GoalSet) Union(other GoalSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

