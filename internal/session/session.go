// Package session holds the state of one assistant session: the assessment
// log, achieved goals, the questionnaire draft and the current page.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/smart-farming/internal/advisor"
	"github.com/Veraticus/smart-farming/internal/common"
	"github.com/Veraticus/smart-farming/internal/goals"
	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/Veraticus/smart-farming/internal/validation"
)

// ProfileInput is the raw questionnaire form.
type ProfileInput struct {
	Name      string `validate:"required,max=64"`
	Province  string `validate:"required,province"`
	Season    string `validate:"required,season"`
	CropStage string `validate:"required,crop_stage"`
}

// Stats are the dashboard quick stats.
type Stats struct {
	TotalAssessments int
	GoalsCompleted   int
	CropsExplored    int
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source used for profile timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithIDGenerator sets the function used for assessment ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

// Session is the state of one run of the assistant. It is not safe for
// concurrent use; the UI mutates it only from its update loop.
type Session struct {
	now          func() time.Time
	newID        func() string
	validator    *validation.Validator
	achieved     model.GoalSet
	draft        *model.FarmerProfile
	selectedCrop model.Crop
	log          []model.Assessment
	catalog      []model.Goal
	view         View
}

// New creates an empty session on the dashboard.
func New(opts ...Option) *Session {
	s := &Session{
		now:       time.Now,
		newID:     uuid.NewString,
		validator: validation.Default(),
		achieved:  make(model.GoalSet),
		catalog:   model.GoalCatalog,
		view:      ViewDashboard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View returns the current page.
func (s *Session) View() View {
	return s.view
}

// Navigate applies action to the current page.
func (s *Session) Navigate(action Action) error {
	next, err := Next(s.view, action)
	if err != nil {
		return err
	}
	if s.view == ViewCropSelect && next == ViewProfile {
		s.selectedCrop = ""
	}
	s.view = next
	return nil
}

// SubmitProfile validates the questionnaire and moves to crop selection.
// On failure the session stays on the profile page.
func (s *Session) SubmitProfile(input ProfileInput) error {
	input.Name = strings.TrimSpace(input.Name)

	if err := s.validator.ValidateStruct(input); err != nil {
		message := validation.Summary(validation.FormatValidationError(err))
		return common.NewUserError("Please fill in all fields: "+message,
			fmt.Errorf("%w: %w", common.ErrIncompleteProfile, err))
	}

	if err := s.Navigate(ActionProfileAccepted); err != nil {
		return err
	}

	s.draft = &model.FarmerProfile{
		CreatedAt: s.now(),
		Name:      input.Name,
		Province:  model.Province(input.Province),
		Season:    model.Season(input.Season),
		CropStage: model.CropStage(input.CropStage),
	}
	s.selectedCrop = ""
	return nil
}

// Draft returns the accepted questionnaire, if any.
func (s *Session) Draft() (model.FarmerProfile, bool) {
	if s.draft == nil {
		return model.FarmerProfile{}, false
	}
	return *s.draft, true
}

// SelectCrop records the crop to generate advice for.
func (s *Session) SelectCrop(crop model.Crop) error {
	if err := s.validator.ValidateVar(string(crop), "required,crop"); err != nil {
		return common.NewUserError("Please choose a supported crop",
			fmt.Errorf("%w: %q", common.ErrNoCropSelected, crop))
	}
	s.selectedCrop = crop
	return nil
}

// SelectedCrop returns the current crop choice.
func (s *Session) SelectedCrop() model.Crop {
	return s.selectedCrop
}

// PendingProfile returns the profile ready for generation.
func (s *Session) PendingProfile() (model.FarmerProfile, error) {
	if s.draft == nil {
		return model.FarmerProfile{}, common.ErrIncompleteProfile
	}
	if s.selectedCrop == "" {
		return model.FarmerProfile{}, common.NewUserError("Please select a crop", common.ErrNoCropSelected)
	}

	profile := *s.draft
	profile.SelectedCrop = s.selectedCrop
	return profile, nil
}

// Complete attaches result to profile, appends the assessment to the log,
// refreshes goals and moves to the results page.
func (s *Session) Complete(profile model.FarmerProfile, result advisor.Result) (model.Assessment, error) {
	if !profile.Complete() {
		return model.Assessment{}, common.ErrIncompleteProfile
	}

	recommendations := result.Recommendations
	assessment := model.Assessment{
		ID:              s.newID(),
		Profile:         profile,
		Recommendations: &recommendations,
		Source:          result.Source,
	}

	if err := s.record(assessment); err != nil {
		return model.Assessment{}, err
	}

	s.selectedCrop = ""
	s.view = ViewResults

	return assessment, nil
}

func (s *Session) record(assessment model.Assessment) error {
	if assessment.Recommendations == nil {
		return common.ErrIncompleteAssessment
	}
	s.log = append(s.log, assessment)
	s.achieved.Union(goals.Refresh(s.log, s.catalog))
	return nil
}

// Assessments returns a copy of the log in insertion order.
func (s *Session) Assessments() []model.Assessment {
	out := make([]model.Assessment, len(s.log))
	copy(out, s.log)
	return out
}

// Latest returns the most recent assessment.
func (s *Session) Latest() (model.Assessment, bool) {
	if len(s.log) == 0 {
		return model.Assessment{}, false
	}
	return s.log[len(s.log)-1], true
}

// Goals returns a copy of the achieved goal set.
func (s *Session) Goals() model.GoalSet {
	out := make(model.GoalSet, len(s.achieved))
	out.Union(s.achieved)
	return out
}

// Summary returns per-goal progress for the goals page.
func (s *Session) Summary() goals.Summary {
	return goals.Summarize(s.log, s.catalog, s.achieved)
}

// Stats returns the dashboard quick stats.
func (s *Session) Stats() Stats {
	counts := goals.Count(s.log)
	return Stats{
		TotalAssessments: counts.Total,
		GoalsCompleted:   len(s.achieved),
		CropsExplored:    counts.UniqueCrops,
	}
}

// IsValidationError reports whether err came from questionnaire checks.
func IsValidationError(err error) bool {
	return errors.Is(err, common.ErrIncompleteProfile) || errors.Is(err, common.ErrNoCropSelected)
}
