package grade

import (
	"math"

	"github.com/trezcool/gradecalc/core"
)

const (
	defaultProjectionStep = 5.0
	minProjectionStep     = 0.01
)

// Round2 rounds x to 2 decimal places, halves going up (towards +Inf).
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// IsValidPercentage reports whether x is a finite number within [0, 100].
// It is the only input gate: the calculators below trust their inputs.
func IsValidPercentage(x float64) bool {
	return core.IsFinite(x) && x >= 0 && x <= 100
}

// CalculateNeededGrade returns the score needed on a component weighing `weight`% of the course
// for the overall grade to go from `current` to `desired`.
// The result is not clamped: < 0 means the target is already secured, > 100 that it is out of reach.
// A 0 weight cannot move the grade, so `desired` is returned as is.
func CalculateNeededGrade(current, desired, weight float64) float64 {
	if weight == 0 {
		return desired
	}
	needed := (desired*100 - current*(100-weight)) / weight
	return Round2(needed)
}

// CalculateFinalGrade returns the overall grade after scoring `score` on a component weighing `weight`%.
func CalculateFinalGrade(current, score, weight float64) float64 {
	final := (current*(100-weight) + score*weight) / 100
	return Round2(final)
}

// ProjectionPoint is the final grade obtained for a given component score.
type ProjectionPoint struct {
	Score  float64 `json:"score"`
	Final  float64 `json:"final"`
	Letter string  `json:"letter"`
}

// Projection returns the final grades for component scores 0, step, 2*step... up to 100.
// Steps outside [0.01, 100] fall back to 5.
func Projection(current, weight, step float64) []ProjectionPoint {
	if !(step >= minProjectionStep) || step > 100 {
		step = defaultProjectionStep
	}
	n := int(math.Floor(100/step + 1e-9))
	points := make([]ProjectionPoint, 0, n+2)
	for i := 0; i <= n; i++ {
		points = append(points, projectionPoint(current, weight, Round2(float64(i)*step)))
	}
	if last := points[len(points)-1].Score; last < 100 {
		points = append(points, projectionPoint(current, weight, 100))
	}
	return points
}

func projectionPoint(current, weight, score float64) ProjectionPoint {
	final := CalculateFinalGrade(current, score, weight)
	return ProjectionPoint{Score: score, Final: final, Letter: PercentageToLetter(final)}
}
