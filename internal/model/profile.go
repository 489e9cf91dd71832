package model

import "time"

// Province is one of the ten Canadian provinces.
type Province string

const (
	ProvinceAlberta                 Province = "Alberta"
	ProvinceBritishColumbia         Province = "British Columbia"
	ProvinceManitoba                Province = "Manitoba"
	ProvinceNewBrunswick            Province = "New Brunswick"
	ProvinceNewfoundlandAndLabrador Province = "Newfoundland and Labrador"
	ProvinceNovaScotia              Province = "Nova Scotia"
	ProvinceOntario                 Province = "Ontario"
	ProvincePrinceEdwardIsland      Province = "Prince Edward Island"
	ProvinceQuebec                  Province = "Quebec"
	ProvinceSaskatchewan            Province = "Saskatchewan"
)

// Provinces lists every province in display order.
var Provinces = []Province{
	ProvinceAlberta,
	ProvinceBritishColumbia,
	ProvinceManitoba,
	ProvinceNewBrunswick,
	ProvinceNewfoundlandAndLabrador,
	ProvinceNovaScotia,
	ProvinceOntario,
	ProvincePrinceEdwardIsland,
	ProvinceQuebec,
	ProvinceSaskatchewan,
}

// Valid reports whether p is a known province.
func (p Province) Valid() bool {
	return contains(Provinces, p)
}

// Season of the farming year.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
	SeasonWinter Season = "Winter"
)

// Seasons lists every season in display order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Valid reports whether s is a known season.
func (s Season) Valid() bool {
	return contains(Seasons, s)
}

// CropStage describes where the farmer is in the crop cycle.
type CropStage string

const (
	CropStagePrePlanting CropStage = "Pre-Planting"
	CropStagePlanting    CropStage = "Planting"
	CropStageGrowing     CropStage = "Growing"
	CropStageHarvesting  CropStage = "Harvesting"
	CropStagePostHarvest CropStage = "Post-Harvest"
)

// CropStages lists every crop stage in display order.
var CropStages = []CropStage{
	CropStagePrePlanting,
	CropStagePlanting,
	CropStageGrowing,
	CropStageHarvesting,
	CropStagePostHarvest,
}

// Valid reports whether c is a known crop stage.
func (c CropStage) Valid() bool {
	return contains(CropStages, c)
}

// Crop is a crop the assistant can give advice for.
type Crop string

const (
	CropWheat  Crop = "Wheat"
	CropCanola Crop = "Canola"
	CropBarley Crop = "Barley"
	CropOats   Crop = "Oats"
)

// Crops lists every supported crop in display order.
var Crops = []Crop{CropWheat, CropCanola, CropBarley, CropOats}

// Valid reports whether c is a supported crop.
func (c Crop) Valid() bool {
	return contains(Crops, c)
}

// Icon returns the glyph shown next to the crop.
func (c Crop) Icon() string {
	if c == CropCanola {
		return "💛"
	}
	return "🌾"
}

// FarmerProfile is the questionnaire answered before an assessment.
type FarmerProfile struct {
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"farmer_name"`
	Province     Province  `json:"province"`
	Season       Season    `json:"season"`
	CropStage    CropStage `json:"crop_stage"`
	SelectedCrop Crop      `json:"selected_crop"`
}

// Complete reports whether every field needed for an assessment is set.
func (p FarmerProfile) Complete() bool {
	return p.Name != "" && p.Province != "" && p.Season != "" &&
		p.CropStage != "" && p.SelectedCrop != ""
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
