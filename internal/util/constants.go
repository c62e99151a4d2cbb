package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// Question categories
const (
	CategoryAptitude      = "aptitude"
	CategoryCore          = "core"
	CategoryVerbal        = "verbal"
	CategoryProgramming   = "programming"
	CategoryComprehension = "comprehension"
)

// Per-category draw quotas for one composed test paper.
// One comprehension passage expands into ComprehensionSubQuestions entries,
// so a fully stocked bank yields 10+20+5+5+10 = 50 questions.
const (
	AptitudeQuota             = 10
	CoreQuota                 = 20
	VerbalQuota               = 5
	ProgrammingQuota          = 10
	ComprehensionSubQuestions = 5
	QuestionOptionCount       = 4
)

// DefaultAccessCode is seeded on first boot when no active code exists.
const DefaultAccessCode = "SVCE2024"

var QuestionCategories = []string{
	CategoryAptitude,
	CategoryCore,
	CategoryVerbal,
	CategoryProgramming,
}

func IsValidCategory(category string) bool {
	for _, c := range QuestionCategories {
		if c == category {
			return true
		}
	}
	return false
}
