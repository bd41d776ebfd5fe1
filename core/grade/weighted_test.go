package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(f float64) *float64 { return &f }

func TestAggregate(t *testing.T) {
	t.Run("course with an ungraded final", func(t *testing.T) {
		components := []Component{
			{Name: "Homework", Score: fptr(90), Weight: fptr(20)},
			{Name: "Midterm", Score: fptr(85), Weight: fptr(30)},
			{Name: "Final Exam", Weight: fptr(30)},
			{Name: "Project", Score: fptr(92), Weight: fptr(20)},
		}
		agg := Aggregate(components, fptr(90))

		assert.InDelta(t, 100, agg.TotalWeight, 1e-9)
		assert.InDelta(t, 6190, agg.WeightedSum, 1e-9)
		assert.InDelta(t, 30, agg.RemainingWeight, 1e-9)
		assert.True(t, agg.HasCurrent)
		assert.InDelta(t, 61.90, agg.Current, 1e-9)
		assert.True(t, agg.HasNeeded)
		assert.InDelta(t, 93.67, Round2(agg.Needed), 1e-9)
		assert.False(t, agg.WeightMismatch)
	})

	t.Run("single ungraded component agrees with CalculateNeededGrade", func(t *testing.T) {
		for _, tt := range []struct{ current, target, weight float64 }{
			{85, 90, 30},
			{88, 90, 25},
			{72.25, 60, 40},
			{100, 50, 40},
		} {
			components := []Component{
				{Name: "Coursework", Score: fptr(tt.current), Weight: fptr(100 - tt.weight)},
				{Name: "Final", Weight: fptr(tt.weight)},
			}
			agg := Aggregate(components, fptr(tt.target))
			if assert.True(t, agg.HasNeeded) {
				assert.InDelta(t, CalculateNeededGrade(tt.current, tt.target, tt.weight), Round2(agg.Needed), 1e-9)
			}
		}
	})

	t.Run("weights not summing up to 100 are flagged, not rejected", func(t *testing.T) {
		components := []Component{
			{Name: "Quizzes", Score: fptr(80), Weight: fptr(40)},
			{Name: "Final", Weight: fptr(40)},
		}
		agg := Aggregate(components, fptr(90))

		assert.True(t, agg.WeightMismatch)
		assert.InDelta(t, 80, agg.TotalWeight, 1e-9)
		assert.InDelta(t, 40, agg.Current, 1e-9)
		assert.InDelta(t, 100, agg.Needed, 1e-9)
	})

	t.Run("no target", func(t *testing.T) {
		components := []Component{
			{Name: "Quizzes", Score: fptr(80), Weight: fptr(50)},
			{Name: "Final", Weight: fptr(50)},
		}
		agg := Aggregate(components, nil)

		assert.True(t, agg.HasCurrent)
		assert.InDelta(t, 40, agg.Current, 1e-9)
		assert.False(t, agg.HasNeeded)
	})

	t.Run("everything graded", func(t *testing.T) {
		components := []Component{
			{Name: "Quizzes", Score: fptr(80), Weight: fptr(50)},
			{Name: "Final", Score: fptr(70), Weight: fptr(50)},
		}
		agg := Aggregate(components, fptr(90))

		assert.InDelta(t, 75, agg.Current, 1e-9)
		assert.Zero(t, agg.RemainingWeight)
		assert.False(t, agg.HasNeeded)
	})

	t.Run("components without weight are ignored", func(t *testing.T) {
		components := []Component{
			{Name: "Bonus", Score: fptr(100)},
			{Name: "Empty"},
		}
		agg := Aggregate(components, fptr(90))

		assert.Zero(t, agg.TotalWeight)
		assert.Equal(t, []*float64{nil, nil}, agg.Contributions)
		assert.False(t, agg.HasCurrent)
		assert.False(t, agg.HasNeeded)
		assert.True(t, agg.WeightMismatch)
	})

	t.Run("contributions of graded components", func(t *testing.T) {
		components := []Component{
			{Name: "Homework", Score: fptr(90), Weight: fptr(20)},
			{Name: "Final Exam", Weight: fptr(30)},
			{Name: "Bonus", Score: fptr(100)},
			{Name: "Quizzes", Score: fptr(70), Weight: fptr(50)},
		}
		agg := Aggregate(components, nil)

		if assert.Len(t, agg.Contributions, 4) {
			assert.InDelta(t, 18, *agg.Contributions[0], 1e-9)
			assert.Nil(t, agg.Contributions[1])
			assert.Nil(t, agg.Contributions[2])
			assert.InDelta(t, 35, *agg.Contributions[3], 1e-9)
		}
		// contributions add up to the current grade
		assert.InDelta(t, agg.Current, *agg.Contributions[0]+*agg.Contributions[3], 1e-9)
	})

	t.Run("contributions use the actual total weight", func(t *testing.T) {
		components := []Component{
			{Name: "Quizzes", Score: fptr(50), Weight: fptr(60)},
			{Name: "Final", Weight: fptr(30)},
		}
		agg := Aggregate(components, nil)

		if assert.Len(t, agg.Contributions, 2) {
			assert.InDelta(t, 50*60/90.0, *agg.Contributions[0], 1e-9)
			assert.Nil(t, agg.Contributions[1])
		}
	})

	t.Run("no components", func(t *testing.T) {
		agg := Aggregate(nil, fptr(90))
		assert.Equal(t, Aggregation{WeightMismatch: true}, agg)
	})
}
