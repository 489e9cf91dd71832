package advisor

import (
	"errors"
	"testing"

	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{
  "weather_advice": ["Watch for late frost", "Seed after soil warms"],
  "pest_advice": ["Scout for flea beetles"],
  "soil_advice": ["Test nitrogen levels"],
  "sustainability_tips": ["Plant cover crops"]
}`

func TestDecode_Valid(t *testing.T) {
	set, err := Decode(validReply)
	require.NoError(t, err)

	assert.Equal(t, model.RecommendationSet{
		WeatherAdvice:      []string{"Watch for late frost", "Seed after soil warms"},
		PestAdvice:         []string{"Scout for flea beetles"},
		SoilAdvice:         []string{"Test nitrogen levels"},
		SustainabilityTips: []string{"Plant cover crops"},
	}, set)
}

func TestDecode_FencedMatchesUnwrapped(t *testing.T) {
	plain, err := Decode(validReply)
	require.NoError(t, err)

	for _, wrapped := range []string{
		"```json\n" + validReply + "\n```",
		"```\n" + validReply + "\n```",
		"  ```JSON" + validReply + "```  ",
		"```json\n" + validReply + "\n```\nLet me know if you need a ```yaml``` version.",
	} {
		fenced, err := Decode(wrapped)
		require.NoError(t, err)
		assert.Equal(t, plain, fenced)
	}
}

func TestDecode_MissingAndEmptyLists(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    model.RecommendationSet
	}{
		{
			name:    "empty object",
			content: `{}`,
			want: model.RecommendationSet{
				WeatherAdvice:      []string{},
				PestAdvice:         []string{},
				SoilAdvice:         []string{},
				SustainabilityTips: []string{},
			},
		},
		{
			name:    "null and empty arrays",
			content: `{"weather_advice": null, "pest_advice": [], "soil_advice": ["x"]}`,
			want: model.RecommendationSet{
				WeatherAdvice:      []string{},
				PestAdvice:         []string{},
				SoilAdvice:         []string{"x"},
				SustainabilityTips: []string{},
			},
		},
		{
			name:    "unknown keys ignored",
			content: `{"pest_advice": ["y"], "market_outlook": "bullish"}`,
			want: model.RecommendationSet{
				WeatherAdvice:      []string{},
				PestAdvice:         []string{"y"},
				SoilAdvice:         []string{},
				SustainabilityTips: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Decode(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, set)
		})
	}
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: "   "},
		{name: "prose", content: "Sure! Here are some tips for your wheat."},
		{name: "truncated", content: `{"weather_advice": ["a"`},
		{name: "array document", content: `[["a"], ["b"]]`},
		{name: "string instead of list", content: `{"weather_advice": "water often"}`},
		{name: "numbers in list", content: `{"pest_advice": ["scout", 3]}`},
		{name: "objects in list", content: `{"soil_advice": [{"tip": "test"}]}`},
		{name: "trailing garbage", content: `{"soil_advice": []} and more`},
		{name: "empty fence", content: "```json\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.content)
			require.Error(t, err)

			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr))
			assert.Contains(t, err.Error(), "malformed recommendations")
		})
	}
}
