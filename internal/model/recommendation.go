package model

// RecommendationSet is the four-category advice attached to an assessment.
// Lists are usually three or four items long; empty lists are valid.
type RecommendationSet struct {
	WeatherAdvice      []string `json:"weather_advice"`
	PestAdvice         []string `json:"pest_advice"`
	SoilAdvice         []string `json:"soil_advice"`
	SustainabilityTips []string `json:"sustainability_tips"`
}

// AdviceCategory is one titled list of a RecommendationSet.
type AdviceCategory struct {
	Icon  string
	Title string
	Tips  []string
}

// Categories returns the four lists in display order.
func (r RecommendationSet) Categories() []AdviceCategory {
	return []AdviceCategory{
		{Icon: "🌡️", Title: "Weather-Based Advice", Tips: r.WeatherAdvice},
		{Icon: "🐛", Title: "Pest & Disease Management", Tips: r.PestAdvice},
		{Icon: "💧", Title: "Soil & Fertilizer Guidance", Tips: r.SoilAdvice},
		{Icon: "♻️", Title: "Sustainable Farming Tips", Tips: r.SustainabilityTips},
	}
}

// Len returns the total number of tips across all categories.
func (r RecommendationSet) Len() int {
	return len(r.WeatherAdvice) + len(r.PestAdvice) + len(r.SoilAdvice) + len(r.SustainabilityTips)
}
