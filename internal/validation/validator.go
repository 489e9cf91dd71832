// Package validation checks questionnaire input with struct tags.
package validation

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Veraticus/smart-farming/internal/model"
)

// Validator wraps the validator instance with the farm enum tags registered.
type Validator struct {
	validate *validator.Validate
}

var (
	defaultValidator *Validator
	defaultOnce      sync.Once
)

// New creates a validator with the province, season, crop_stage and crop
// tags registered.
func New() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("province", enumValidator(func(s string) bool { return model.Province(s).Valid() }))
	_ = v.RegisterValidation("season", enumValidator(func(s string) bool { return model.Season(s).Valid() }))
	_ = v.RegisterValidation("crop_stage", enumValidator(func(s string) bool { return model.CropStage(s).Valid() }))
	_ = v.RegisterValidation("crop", enumValidator(func(s string) bool { return model.Crop(s).Valid() }))

	return &Validator{validate: v}
}

// Default returns the shared validator instance.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// ValidateStruct validates a struct using tags.
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// ValidateVar validates a single value against tag.
func (v *Validator) ValidateVar(field any, tag string) error {
	return v.validate.Var(field, tag)
}

// Empty values pass; "required" handles presence.
func enumValidator(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return valid(value)
	}
}

// FormatValidationError turns validation errors into a field -> message map
// keyed by lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid input"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "province":
			errs[field] = "Please choose a Canadian province"
		case "season":
			errs[field] = "Please choose a season"
		case "crop_stage":
			errs[field] = "Please choose a crop stage"
		case "crop":
			errs[field] = "Please choose a supported crop"
		case "max":
			errs[field] = "Must be at most " + e.Param() + " characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Summary joins a formatted error map into one line ordered by field name.
func Summary(errs map[string]string) string {
	if len(errs) == 0 {
		return ""
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+errs[field])
	}
	return strings.Join(parts, "; ")
}
