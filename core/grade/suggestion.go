package grade

type (
	// Difficulty is how hard it is to score a needed grade.
	Difficulty string

	// Severity is a styling hint for presenting a Suggestion.
	Severity string
)

const (
	AlreadyAchieved Difficulty = "already-achieved"
	Easy            Difficulty = "easy"
	Moderate        Difficulty = "moderate"
	Hard            Difficulty = "hard"
	Impossible      Difficulty = "impossible"

	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Suggestion is the advice given for a needed grade.
type Suggestion struct {
	Message    string     `json:"message"`
	Difficulty Difficulty `json:"difficulty"`
	Severity   Severity   `json:"severity"`
}

var (
	alreadyAchievedSuggestion = Suggestion{
		Message:    "Great news! You can score 0% on the final and still achieve your target grade.",
		Difficulty: AlreadyAchieved,
		Severity:   SeveritySuccess,
	}
	easySuggestion = Suggestion{
		Message:    "You need a relatively low score on the final exam. This goal is very achievable!",
		Difficulty: Easy,
		Severity:   SeveritySuccess,
	}
	moderateSuggestion = Suggestion{
		Message:    "You need a moderate score on the final exam. With good preparation, this is achievable.",
		Difficulty: Moderate,
		Severity:   SeverityWarning,
	}
	hardSuggestion = Suggestion{
		Message:    "You need a high score on the final exam. This will require significant effort and preparation.",
		Difficulty: Hard,
		Severity:   SeverityWarning,
	}
	impossibleSuggestion = Suggestion{
		Message:    "Unfortunately, even scoring 100% on the final exam won't achieve your target grade.",
		Difficulty: Impossible,
		Severity:   SeverityError,
	}
)

// Suggest classifies a needed grade. Every number maps to exactly one Difficulty;
// checks are ordered and upper bounds inclusive. NaN is Impossible.
func Suggest(needed float64) Suggestion {
	switch {
	case needed < 0:
		return alreadyAchievedSuggestion
	case needed <= 60:
		return easySuggestion
	case needed <= 80:
		return moderateSuggestion
	case needed <= 100:
		return hardSuggestion
	default:
		return impossibleSuggestion
	}
}
