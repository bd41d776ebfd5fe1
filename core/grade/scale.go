package grade

import (
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// gpaTolerance is the max distance between a GPA input and a band's GPA for them to match.
	gpaTolerance = 0.1

	// letterMinSimilarity is the min similarity ratio for ClosestLetter to suggest a letter.
	letterMinSimilarity = 0.5
)

// Band maps the closed percentage interval [Min, Max] to a letter grade and a GPA point value.
type Band struct {
	Letter string  `json:"letter"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	GPA    float64 `json:"gpa"`
}

// Contains reports whether p lies within [b.Min, b.Max].
func (b Band) Contains(p float64) bool {
	return p >= b.Min && p <= b.Max
}

// Midpoint returns the percentage halfway through the band.
func (b Band) Midpoint() float64 {
	return (b.Min + b.Max) / 2
}

// StandardScale partitions [0, 100] from A+ down to F, at a 0.01 resolution.
// Order matters: lookups return the first matching band.
var StandardScale = []Band{
	{Letter: "A+", Min: 97, Max: 100, GPA: 4.0},
	{Letter: "A", Min: 93, Max: 96.99, GPA: 4.0},
	{Letter: "A-", Min: 90, Max: 92.99, GPA: 3.7},
	{Letter: "B+", Min: 87, Max: 89.99, GPA: 3.3},
	{Letter: "B", Min: 83, Max: 86.99, GPA: 3.0},
	{Letter: "B-", Min: 80, Max: 82.99, GPA: 2.7},
	{Letter: "C+", Min: 77, Max: 79.99, GPA: 2.3},
	{Letter: "C", Min: 73, Max: 76.99, GPA: 2.0},
	{Letter: "C-", Min: 70, Max: 72.99, GPA: 1.7},
	{Letter: "D+", Min: 67, Max: 69.99, GPA: 1.3},
	{Letter: "D", Min: 63, Max: 66.99, GPA: 1.0},
	{Letter: "D-", Min: 60, Max: 62.99, GPA: 0.7},
	{Letter: "F", Min: 0, Max: 59.99, GPA: 0.0},
}

// lowest is the fallback band for percentages outside [0, 100].
func lowest() Band {
	return StandardScale[len(StandardScale)-1]
}

// bandFor returns the first band containing p.
// Bands are closed intervals with cent bounds: values falling between two of them
// (eg: 96.995) match none.
func bandFor(p float64) (Band, bool) {
	for _, b := range StandardScale {
		if b.Contains(p) {
			return b, true
		}
	}
	return Band{}, false
}

// PercentageToLetter returns the letter grade of p, or "F" when no band contains it.
func PercentageToLetter(p float64) string {
	if b, ok := bandFor(p); ok {
		return b.Letter
	}
	return lowest().Letter
}

// PercentageToGPA returns the GPA point value of p, or 0 when no band contains it.
func PercentageToGPA(p float64) float64 {
	if b, ok := bandFor(p); ok {
		return b.GPA
	}
	return lowest().GPA
}

// LetterToPercentage returns the midpoint of the band of the (case-insensitive) letter.
// Unknown letters return 0, which is NOT the midpoint of F.
func LetterToPercentage(letter string) float64 {
	if b, ok := BandByLetter(letter); ok {
		return b.Midpoint()
	}
	return 0
}

// GPAToPercentage returns the midpoint of the first band whose GPA is within 0.1 of gpa.
// 4.0 resolves to A+ since it comes before A. No match returns 0.
func GPAToPercentage(gpa float64) float64 {
	for _, b := range StandardScale {
		if math.Abs(b.GPA-gpa) < gpaTolerance {
			return b.Midpoint()
		}
	}
	return 0
}

// BandByLetter finds the band of the (case-insensitive) letter.
func BandByLetter(letter string) (Band, bool) {
	for _, b := range StandardScale {
		if strings.EqualFold(b.Letter, letter) {
			return b, true
		}
	}
	return Band{}, false
}

// Letters returns all the letter grades in scale order.
func Letters() []string {
	letters := make([]string, 0, len(StandardScale))
	for _, b := range StandardScale {
		letters = append(letters, b.Letter)
	}
	return letters
}

// ClosestLetter returns the known letter most similar to s, or "" if none is similar enough.
func ClosestLetter(s string) string {
	s = strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if s == "" {
		return ""
	}
	var (
		best      string
		bestRatio float64
	)
	for _, letter := range Letters() {
		ratio := difflib.NewMatcher(strings.Split(s, ""), strings.Split(letter, "")).Ratio()
		if ratio > bestRatio {
			best, bestRatio = letter, ratio
		}
	}
	if bestRatio < letterMinSimilarity {
		return ""
	}
	return best
}
