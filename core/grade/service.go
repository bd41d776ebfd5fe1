package grade

import (
	"expvar"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core"
)

var calculations = expvar.NewMap("calculations") // count by kind, under /debug/vars

const (
	targetOutOfReachText = "Target grade is not achievable with current scores."
	targetSecuredText    = "You can score 0% and still achieve your target!"
)

type (
	// Service runs the grade calculators on validated inputs.
	Service interface {
		Needed(ng NeededGrade) NeededResult
		Predict(pg PredictedGrade) PredictedResult
		Weighted(wg WeightedGrade) WeightedResult
		Convert(cv Conversion) (ConversionResult, error)
		Suggest(needed float64) Suggestion
		Scale() []Band
	}

	service struct {
		logger         core.Logger
		projectionStep float64
	}
)

var _ Service = (*service)(nil)

func NewService(conf *core.Config, logger core.Logger) Service {
	return &service{
		logger:         logger,
		projectionStep: conf.Grade.ProjectionStep,
	}
}

func (svc *service) Needed(ng NeededGrade) NeededResult {
	calculations.Add("needed", 1)
	current, weight := val(ng.Current), val(ng.Weight)
	needed := CalculateNeededGrade(current, val(ng.Desired), weight)
	return NeededResult{
		Needed:     needed,
		Suggestion: Suggest(needed),
		Projection: Projection(current, weight, svc.projectionStep),
	}
}

func (svc *service) Predict(pg PredictedGrade) PredictedResult {
	calculations.Add("predict", 1)
	final := CalculateFinalGrade(val(pg.Current), val(pg.Score), val(pg.Weight))
	return PredictedResult{
		Final:  final,
		Letter: PercentageToLetter(final),
		GPA:    PercentageToGPA(final),
	}
}

func (svc *service) Weighted(wg WeightedGrade) WeightedResult {
	calculations.Add("weighted", 1)
	agg := Aggregate(wg.Components, wg.Target)

	res := WeightedResult{
		TotalWeight:     Round2(agg.TotalWeight),
		RemainingWeight: Round2(agg.RemainingWeight),
	}
	if agg.HasCurrent {
		current := Round2(agg.Current)
		res.Current = &current
		res.Letter = PercentageToLetter(current)
	}
	if agg.HasNeeded {
		needed := Round2(agg.Needed)
		sugg := Suggest(needed)
		res.Needed = &needed
		res.NeededLetter = PercentageToLetter(needed)
		res.Suggestion = &sugg
		switch {
		case needed > 100:
			res.Warnings = append(res.Warnings, targetOutOfReachText)
		case needed < 0:
			res.Notes = append(res.Notes, targetSecuredText)
		}
	}
	res.Breakdown = breakdown(wg.Components, agg.Contributions)
	if agg.WeightMismatch {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"total weight is %s%%, it should be 100%%", strconv.FormatFloat(res.TotalWeight, 'f', -1, 64),
		))
		svc.logger.Debug("weights do not sum up to 100", map[string]interface{}{"total_weight": agg.TotalWeight})
	}
	return res
}

func (svc *service) Convert(cv Conversion) (ConversionResult, error) {
	calculations.Add("convert", 1)
	switch {
	case cv.Percentage != "":
		p, err := parseFloat(cv.Percentage)
		if err != nil {
			return ConversionResult{}, errors.Wrap(err, "parsing percentage")
		}
		return ConversionResult{Percentage: p, Letter: PercentageToLetter(p), GPA: PercentageToGPA(p)}, nil
	case cv.Letter != "":
		res := ConversionResult{Percentage: LetterToPercentage(cv.Letter)}
		if b, ok := BandByLetter(cv.Letter); ok {
			res.Letter = b.Letter
			res.GPA = b.GPA
		} else {
			res.Letter = PercentageToLetter(res.Percentage)
			res.GPA = PercentageToGPA(res.Percentage)
		}
		return res, nil
	case cv.GPA != "":
		gpa, err := parseFloat(cv.GPA)
		if err != nil {
			return ConversionResult{}, errors.Wrap(err, "parsing gpa")
		}
		p := GPAToPercentage(gpa)
		return ConversionResult{Percentage: p, Letter: PercentageToLetter(p), GPA: gpa}, nil
	}
	return ConversionResult{}, core.NewValidationError(errNoConversionInput)
}

func (svc *service) Suggest(needed float64) Suggestion {
	calculations.Add("suggestion", 1)
	return Suggest(needed)
}

func (svc *service) Scale() []Band {
	bands := make([]Band, len(StandardScale))
	copy(bands, StandardScale)
	return bands
}

func breakdown(components []Component, contributions []*float64) []ComponentResult {
	lines := make([]ComponentResult, len(components))
	for i, c := range components {
		lines[i] = ComponentResult{Name: c.Name, Score: c.Score, Weight: c.Weight}
		if i < len(contributions) && contributions[i] != nil {
			contrib := Round2(*contributions[i])
			lines[i].Contribution = &contrib
		}
	}
	return lines
}

func val(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(core.CleanString(s), 64)
}
