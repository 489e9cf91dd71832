package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Veraticus/smart-farming/internal/llm"
	"github.com/Veraticus/smart-farming/internal/model"
)

// recommendationSchema describes an acceptable model reply. Keys may be
// missing or null; present values must be arrays of strings. Unknown keys
// are ignored.
const recommendationSchema = `{
  "type": "object",
  "properties": {
    "weather_advice":      {"type": ["array", "null"], "items": {"type": "string"}},
    "pest_advice":         {"type": ["array", "null"], "items": {"type": "string"}},
    "soil_advice":         {"type": ["array", "null"], "items": {"type": "string"}},
    "sustainability_tips": {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`

var compiledSchema = mustCompileSchema(recommendationSchema)

func mustCompileSchema(source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("invalid recommendation schema: %v", err))
	}
	return schema
}

// DecodeError reports a model reply that could not be turned into a
// RecommendationSet.
type DecodeError struct {
	Err      error
	Problems []string
}

func (e *DecodeError) Error() string {
	if len(e.Problems) > 0 {
		return "malformed recommendations: " + strings.Join(e.Problems, "; ")
	}
	if e.Err != nil {
		return fmt.Sprintf("malformed recommendations: %v", e.Err)
	}
	return "malformed recommendations"
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode turns raw model output into a RecommendationSet. A surrounding
// markdown code fence is stripped first.
func Decode(content string) (model.RecommendationSet, error) {
	content = llm.StripCodeFence(content)
	if content == "" {
		return model.RecommendationSet{}, &DecodeError{Problems: []string{"empty response"}}
	}

	result, err := compiledSchema.Validate(gojsonschema.NewStringLoader(content))
	if err != nil {
		return model.RecommendationSet{}, &DecodeError{Err: err}
	}

	if !result.Valid() {
		problems := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			problems[i] = desc.String()
		}
		return model.RecommendationSet{}, &DecodeError{Problems: problems}
	}

	var set model.RecommendationSet
	if err := json.Unmarshal([]byte(content), &set); err != nil {
		return model.RecommendationSet{}, &DecodeError{Err: err}
	}

	return normalize(set), nil
}

// normalize replaces nil lists with empty ones so every category is present.
func normalize(set model.RecommendationSet) model.RecommendationSet {
	for _, list := range []*[]string{&set.WeatherAdvice, &set.PestAdvice, &set.SoilAdvice, &set.SustainabilityTips} {
		if *list == nil {
			*list = []string{}
		}
	}
	return set
}
