package model

// RecommendationSource records which path produced an assessment's advice.
type RecommendationSource string

const (
	// SourceLive means the text-generation service produced the advice.
	SourceLive RecommendationSource = "live"
	// SourceFallback means the template generator produced the advice.
	SourceFallback RecommendationSource = "fallback"
)

// Assessment is a completed profile together with its advice.
type Assessment struct {
	Recommendations *RecommendationSet   `json:"recommendations"`
	ID              string               `json:"id"`
	Source          RecommendationSource `json:"source"`
	Profile         FarmerProfile        `json:"profile"`
}
