package grade

import "math"

// fullWeight is what component weights are expected to sum up to.
const fullWeight = 100

// Component is a graded item of a course. A nil Score means it is not graded yet;
// a nil Weight leaves it out of the aggregation.
type Component struct {
	Name   string   `json:"name" yaml:"name"`
	Score  *float64 `json:"score" yaml:"score" validate:"omitempty,percentage"`
	Weight *float64 `json:"weight" yaml:"weight" validate:"omitempty,percentage"`
}

func (c Component) isScored() bool { return c.Score != nil && c.Weight != nil }

func (c Component) isPending() bool { return c.Score == nil && c.Weight != nil }

// Aggregation is the weighted average of a list of Component.
type Aggregation struct {
	TotalWeight     float64
	WeightedSum     float64
	RemainingWeight float64

	// Current is WeightedSum normalized by TotalWeight (ungraded weight counts as 0).
	Current    float64
	HasCurrent bool

	// Needed is the average score required on the ungraded components to reach the target.
	Needed    float64
	HasNeeded bool

	// WeightMismatch flags a TotalWeight other than 100; it does not stop the computation.
	WeightMismatch bool

	// Contributions holds, for each component in order, its share of Current:
	// Score*Weight/TotalWeight. It is nil for components that are not graded & weighted.
	Contributions []*float64
}

// Aggregate computes the current weighted average of the graded components and,
// given a target, the average score needed on the ungraded ones.
// The actual TotalWeight is the normalization base, even when it is not 100.
func Aggregate(components []Component, target *float64) Aggregation {
	var agg Aggregation
	for _, c := range components {
		if c.Weight == nil {
			continue
		}
		agg.TotalWeight += *c.Weight

		switch {
		case c.isScored():
			agg.WeightedSum += *c.Score * *c.Weight
		case c.isPending():
			agg.RemainingWeight += *c.Weight
		}
	}

	if agg.TotalWeight > 0 {
		agg.Current = agg.WeightedSum / agg.TotalWeight
		agg.HasCurrent = true
	}
	if len(components) > 0 {
		agg.Contributions = make([]*float64, len(components))
	}
	for i, c := range components {
		if c.isScored() && agg.TotalWeight > 0 {
			contrib := *c.Score * *c.Weight / agg.TotalWeight
			agg.Contributions[i] = &contrib
		}
	}
	if agg.RemainingWeight > 0 && target != nil {
		agg.Needed = (*target*agg.TotalWeight - agg.WeightedSum) / agg.RemainingWeight
		agg.HasNeeded = true
	}
	agg.WeightMismatch = math.Abs(agg.TotalWeight-fullWeight) > 1e-9
	return agg
}
