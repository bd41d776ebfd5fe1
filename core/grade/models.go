package grade

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core"
)

var (
	errNoConversionInput    = errors.New("one of percentage, letter or gpa is required")
	errManyConversionInputs = errors.New("only one of percentage, letter or gpa can be converted at once")
)

// NeededGrade contains what is needed to compute the score required on a remaining component.
type NeededGrade struct {
	Current *float64 `json:"current" yaml:"current" validate:"required,percentage"`
	Desired *float64 `json:"desired" yaml:"desired" validate:"required,percentage"`
	Weight  *float64 `json:"weight" yaml:"weight" validate:"required,percentage"`
}

func (ng *NeededGrade) Validate(validate *validator.Validate) error { return validate.Struct(ng) }

// PredictedGrade contains what is needed to project the final grade for a component score.
type PredictedGrade struct {
	Current *float64 `json:"current" yaml:"current" validate:"required,percentage"`
	Score   *float64 `json:"score" yaml:"score" validate:"required,percentage"`
	Weight  *float64 `json:"weight" yaml:"weight" validate:"required,percentage"`
}

func (pg *PredictedGrade) Validate(validate *validator.Validate) error { return validate.Struct(pg) }

// WeightedGrade is a course grading scheme, with an optional target grade.
type WeightedGrade struct {
	Components []Component `json:"components" yaml:"components" validate:"required,min=1,max=100,dive"`
	Target     *float64    `json:"target" yaml:"target" validate:"omitempty,percentage"`
}

func (wg *WeightedGrade) Validate(validate *validator.Validate) error {
	for i := range wg.Components {
		wg.Components[i].Name = core.CleanString(wg.Components[i].Name)
	}
	return validate.Struct(wg)
}

// Conversion holds the one value to convert, as typed in by the user.
type Conversion struct {
	Percentage string `query:"percentage" validate:"omitempty,numeric"`
	Letter     string `query:"letter" validate:"omitempty,letter"`
	GPA        string `query:"gpa" validate:"omitempty,numeric"`
}

func (cv *Conversion) Validate(validate *validator.Validate) error {
	cv.Percentage = core.CleanString(cv.Percentage)
	cv.Letter = core.CleanString(cv.Letter)
	cv.GPA = core.CleanString(cv.GPA)

	var set int
	for _, v := range []string{cv.Percentage, cv.Letter, cv.GPA} {
		if v != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return core.NewValidationError(errNoConversionInput)
	case set > 1:
		return core.NewValidationError(errManyConversionInputs)
	}

	if err := validate.Struct(cv); err != nil {
		return err
	}
	if cv.Percentage != "" {
		if p, err := parseFloat(cv.Percentage); err != nil || !IsValidPercentage(p) {
			return core.NewValidationError(nil, core.FieldError{Field: "percentage", Error: percentageText})
		}
	}
	return nil
}

// SuggestionRequest holds the needed grade to get advice on.
type SuggestionRequest struct {
	Needed string `query:"needed" validate:"required,numeric"`
}

func (sr *SuggestionRequest) Validate(validate *validator.Validate) error {
	sr.Needed = core.CleanString(sr.Needed)
	return validate.Struct(sr)
}

type (
	NeededResult struct {
		Needed     float64           `json:"needed"`
		Suggestion Suggestion        `json:"suggestion"`
		Projection []ProjectionPoint `json:"projection"`
	}

	PredictedResult struct {
		Final  float64 `json:"final"`
		Letter string  `json:"letter"`
		GPA    float64 `json:"gpa"`
	}

	// ComponentResult is a line of the weighted grade breakdown.
	ComponentResult struct {
		Name         string   `json:"name"`
		Score        *float64 `json:"score"`
		Weight       *float64 `json:"weight"`
		Contribution *float64 `json:"contribution"`
	}

	WeightedResult struct {
		TotalWeight     float64           `json:"total_weight"`
		RemainingWeight float64           `json:"remaining_weight"`
		Current         *float64          `json:"current"`
		Letter          string            `json:"letter,omitempty"`
		Needed          *float64          `json:"needed"`
		NeededLetter    string            `json:"needed_letter,omitempty"`
		Suggestion      *Suggestion       `json:"suggestion,omitempty"`
		Breakdown       []ComponentResult `json:"breakdown"`
		Notes           []string          `json:"notes,omitempty"`
		Warnings        []string          `json:"warnings,omitempty"`
	}

	ConversionResult struct {
		Percentage float64 `json:"percentage"`
		Letter     string  `json:"letter"`
		GPA        float64 `json:"gpa"`
	}
)
