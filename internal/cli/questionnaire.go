package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/Veraticus/smart-farming/internal/session"
)

// Questionnaire asks for a farm profile one line at a time. It is the
// line-mode counterpart of the profile form in the full-screen UI.
type Questionnaire struct {
	reader *LineReader
	out    io.Writer
}

// NewQuestionnaire creates a questionnaire reading from in and writing
// prompts to out.
func NewQuestionnaire(in io.Reader, out io.Writer) *Questionnaire {
	return &Questionnaire{
		reader: NewLineReader(in),
		out:    out,
	}
}

// AskProfile prompts for every profile field. Values already set in prefill
// are kept without asking.
func (q *Questionnaire) AskProfile(ctx context.Context, prefill session.ProfileInput) (session.ProfileInput, error) {
	input := prefill
	var err error

	if input.Name == "" {
		fmt.Fprint(q.out, FormatPrompt("👤 Farmer name"))
		if input.Name, err = q.reader.ReadLine(ctx); err != nil {
			return input, fmt.Errorf("failed to read name: %w", err)
		}
	}
	if input.Province == "" {
		if input.Province, err = q.choose(ctx, "📍 Province", toStrings(model.Provinces)); err != nil {
			return input, err
		}
	}
	if input.Season == "" {
		if input.Season, err = q.choose(ctx, "🌤️ Current season", toStrings(model.Seasons)); err != nil {
			return input, err
		}
	}
	if input.CropStage == "" {
		if input.CropStage, err = q.choose(ctx, "🌱 Crop stage", toStrings(model.CropStages)); err != nil {
			return input, err
		}
	}

	return input, nil
}

// AskCrop prompts for a crop.
func (q *Questionnaire) AskCrop(ctx context.Context) (model.Crop, error) {
	crop, err := q.choose(ctx, "🌾 Crop", toStrings(model.Crops))
	if err != nil {
		return "", err
	}
	return model.Crop(crop), nil
}

// choose lists options and accepts either a number or the option text. It
// asks again until the answer matches.
func (q *Questionnaire) choose(ctx context.Context, label string, options []string) (string, error) {
	fmt.Fprintln(q.out, TitleStyle.Render(label))
	for i, option := range options {
		fmt.Fprintf(q.out, "  %s %s\n", SubtleStyle.Render(fmt.Sprintf("%2d.", i+1)), option)
	}

	for {
		fmt.Fprint(q.out, FormatPrompt("Choose"))
		answer, err := q.reader.ReadLine(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
		}

		if choice, ok := matchOption(answer, options); ok {
			return choice, nil
		}
		fmt.Fprintln(q.out, FormatError(fmt.Sprintf("%q is not one of the options", answer)))
	}
}

func matchOption(answer string, options []string) (string, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, option := range options {
		if strings.EqualFold(option, answer) {
			return option, true
		}
	}
	return "", false
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
