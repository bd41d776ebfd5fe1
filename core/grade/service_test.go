package grade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/gradecalc/core/grade"
	"github.com/trezcool/gradecalc/tests"
)

func newService() grade.Service {
	return grade.NewService(testutil.NewConfig(), testutil.NopLogger{})
}

func TestService_Needed(t *testing.T) {
	svc := newService()
	f := testutil.Float

	res := svc.Needed(grade.NeededGrade{Current: f(85), Desired: f(90), Weight: f(30)})
	assert.InDelta(t, 101.67, res.Needed, 1e-9)
	assert.Equal(t, grade.Impossible, res.Suggestion.Difficulty)
	if assert.Len(t, res.Projection, 21) {
		assert.Equal(t, grade.ProjectionPoint{Score: 100, Final: 89.5, Letter: "B+"}, res.Projection[20])
	}

	res = svc.Needed(grade.NeededGrade{Current: f(88), Desired: f(90), Weight: f(25)})
	assert.InDelta(t, 96, res.Needed, 1e-9)
	assert.Equal(t, grade.Hard, res.Suggestion.Difficulty)
}

func TestService_Predict(t *testing.T) {
	svc := newService()
	f := testutil.Float

	res := svc.Predict(grade.PredictedGrade{Current: f(85), Score: f(95), Weight: f(30)})
	assert.Equal(t, grade.PredictedResult{Final: 88, Letter: "B+", GPA: 3.3}, res)
}

func TestService_Weighted(t *testing.T) {
	svc := newService()
	f := testutil.Float

	tests := []struct {
		name string
		wg   grade.WeightedGrade
		want grade.WeightedResult
	}{
		{
			name: "needed on the ungraded final",
			wg: grade.WeightedGrade{
				Components: []grade.Component{
					{Name: "Homework", Score: f(90), Weight: f(20)},
					{Name: "Midterm", Score: f(85), Weight: f(30)},
					{Name: "Final Exam", Weight: f(30)},
					{Name: "Project", Score: f(92), Weight: f(20)},
				},
				Target: f(90),
			},
			want: grade.WeightedResult{
				TotalWeight:     100,
				RemainingWeight: 30,
				Current:         f(61.9),
				Letter:          "D-",
				Needed:          f(93.67),
				NeededLetter:    "A",
				Suggestion:      suggestionPtr(grade.Suggest(93.67)),
				Breakdown: []grade.ComponentResult{
					{Name: "Homework", Score: f(90), Weight: f(20), Contribution: f(18)},
					{Name: "Midterm", Score: f(85), Weight: f(30), Contribution: f(25.5)},
					{Name: "Final Exam", Weight: f(30)},
					{Name: "Project", Score: f(92), Weight: f(20), Contribution: f(18.4)},
				},
			},
		},
		{
			name: "weights mismatch & out of reach",
			wg: grade.WeightedGrade{
				Components: []grade.Component{
					{Name: "Quizzes", Score: f(50), Weight: f(60)},
					{Name: "Final", Weight: f(30)},
				},
				Target: f(90),
			},
			want: grade.WeightedResult{
				TotalWeight:     90,
				RemainingWeight: 30,
				Current:         f(33.33),
				Letter:          "F",
				Needed:          f(170),
				NeededLetter:    "F",
				Suggestion:      suggestionPtr(grade.Suggest(170)),
				Breakdown: []grade.ComponentResult{
					{Name: "Quizzes", Score: f(50), Weight: f(60), Contribution: f(33.33)},
					{Name: "Final", Weight: f(30)},
				},
				Warnings: []string{
					"Target grade is not achievable with current scores.",
					"total weight is 90%, it should be 100%",
				},
			},
		},
		{
			name: "target already secured",
			wg: grade.WeightedGrade{
				Components: []grade.Component{
					{Name: "Coursework", Score: f(100), Weight: f(80)},
					{Name: "Final", Weight: f(20)},
				},
				Target: f(50),
			},
			want: grade.WeightedResult{
				TotalWeight:     100,
				RemainingWeight: 20,
				Current:         f(80),
				Letter:          "B-",
				Needed:          f(-150),
				NeededLetter:    "F",
				Suggestion:      suggestionPtr(grade.Suggest(-150)),
				Breakdown: []grade.ComponentResult{
					{Name: "Coursework", Score: f(100), Weight: f(80), Contribution: f(80)},
					{Name: "Final", Weight: f(20)},
				},
				Notes: []string{"You can score 0% and still achieve your target!"},
			},
		},
		{
			name: "no target",
			wg: grade.WeightedGrade{
				Components: []grade.Component{
					{Name: "Quizzes", Score: f(95), Weight: f(100)},
				},
			},
			want: grade.WeightedResult{
				TotalWeight: 100,
				Current:     f(95),
				Letter:      "A",
				Breakdown: []grade.ComponentResult{
					{Name: "Quizzes", Score: f(95), Weight: f(100), Contribution: f(95)},
				},
			},
		},
		{
			name: "nothing weighted",
			wg: grade.WeightedGrade{
				Components: []grade.Component{{Name: "Quizzes", Score: f(95)}},
				Target:     f(90),
			},
			want: grade.WeightedResult{
				Breakdown: []grade.ComponentResult{{Name: "Quizzes", Score: f(95)}},
				Warnings:  []string{"total weight is 0%, it should be 100%"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Weighted(tt.wg))
		})
	}
}

func TestService_Convert(t *testing.T) {
	svc := newService()

	tests := []struct {
		name    string
		cv      grade.Conversion
		want    grade.ConversionResult
		wantErr bool
	}{
		{name: "percentage", cv: grade.Conversion{Percentage: "85"}, want: grade.ConversionResult{Percentage: 85, Letter: "B", GPA: 3.0}},
		{name: "letter", cv: grade.Conversion{Letter: "a-"}, want: grade.ConversionResult{Percentage: 91.495, Letter: "A-", GPA: 3.7}},
		{name: "unknown letter", cv: grade.Conversion{Letter: "E"}, want: grade.ConversionResult{Percentage: 0, Letter: "F", GPA: 0}},
		{name: "gpa", cv: grade.Conversion{GPA: "4"}, want: grade.ConversionResult{Percentage: 98.5, Letter: "A+", GPA: 4}},
		{name: "gpa out of scale", cv: grade.Conversion{GPA: "5"}, want: grade.ConversionResult{Percentage: 0, Letter: "F", GPA: 5}},
		{name: "unparsable", cv: grade.Conversion{GPA: "lol"}, wantErr: true},
		{name: "empty", cv: grade.Conversion{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Convert(tt.cv)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want.Letter, got.Letter)
				assert.InDelta(t, tt.want.Percentage, got.Percentage, 1e-9)
				assert.InDelta(t, tt.want.GPA, got.GPA, 1e-9)
			}
		})
	}
}

func TestService_Scale(t *testing.T) {
	svc := newService()

	scale := svc.Scale()
	assert.Equal(t, grade.StandardScale, scale)

	scale[0].Letter = "Z"
	assert.Equal(t, "A+", grade.StandardScale[0].Letter, "Scale() must return a copy")
}

func suggestionPtr(s grade.Suggestion) *grade.Suggestion {
	return &s
}
