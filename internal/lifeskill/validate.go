package lifeskill

import (
	"fmt"
	"strings"
)

// Expected section sizes for a complete module.
const (
	TeachingPointCount = 5
	QuoteCount         = 6
	LessonCount        = 5
	ExerciseCount      = 5
	MinKeyConcepts     = 4
	MaxKeyConcepts     = 5
	MinDuration        = 5
	MaxDuration        = 45
)

// ValidationError reports the first structural problem found in a module.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid life skill: %s: %s", e.Field, e.Message)
}

// Validate checks that a module conforms to the content schema. It is run
// wherever content crosses a trust boundary, i.e. on generation gateway
// output, not on the hand-authored static set (which tests cover instead).
func Validate(ls *LifeSkill) error {
	if ls.ID == "" {
		return &ValidationError{Field: "id", Message: "empty"}
	}
	if ls.ID != ls.Slug {
		return &ValidationError{Field: "slug", Message: fmt.Sprintf("must equal id %q", ls.ID)}
	}
	if Slugify(ls.ID) != ls.ID {
		return &ValidationError{Field: "id", Message: "not in slug form"}
	}
	if ls.Title == "" {
		return &ValidationError{Field: "title", Message: "empty"}
	}

	if ls.Parable.Title == "" || ls.Parable.Content == "" {
		return &ValidationError{Field: "parable", Message: "title and content are required"}
	}
	if len(ls.Parable.TeachingPoints) != TeachingPointCount {
		return &ValidationError{
			Field:   "parable.teachingPoints",
			Message: fmt.Sprintf("expected %d, got %d", TeachingPointCount, len(ls.Parable.TeachingPoints)),
		}
	}

	tiers := []struct {
		name string
		expl Explanation
	}{
		{"young", ls.Explanations.Young},
		{"teen", ls.Explanations.Teen},
		{"adult", ls.Explanations.Adult},
	}
	for _, t := range tiers {
		if t.expl.Definition == "" {
			return &ValidationError{Field: "explanations." + t.name, Message: "definition is empty"}
		}
		if n := len(t.expl.KeyConcepts); n < MinKeyConcepts || n > MaxKeyConcepts {
			return &ValidationError{
				Field:   "explanations." + t.name + ".keyConcepts",
				Message: fmt.Sprintf("expected %d-%d, got %d", MinKeyConcepts, MaxKeyConcepts, n),
			}
		}
	}

	if len(ls.Quotes) != QuoteCount {
		return &ValidationError{
			Field:   "quotes",
			Message: fmt.Sprintf("expected %d, got %d", QuoteCount, len(ls.Quotes)),
		}
	}
	for i, q := range ls.Quotes {
		field := fmt.Sprintf("quotes[%d]", i)
		if !strings.HasPrefix(q.ID, ls.ID+"-quote-") {
			return &ValidationError{Field: field + ".id", Message: fmt.Sprintf("%q does not match %s-quote-<n>", q.ID, ls.ID)}
		}
		if q.Text == "" || q.Author == "" {
			return &ValidationError{Field: field, Message: "text and author are required"}
		}
		switch q.Category {
		case CategoryMartialArts, CategoryPhilosophy, CategoryLeadership:
		default:
			return &ValidationError{Field: field + ".category", Message: fmt.Sprintf("unknown category %q", q.Category)}
		}
	}

	if len(ls.Lessons) != LessonCount {
		return &ValidationError{
			Field:   "lessons",
			Message: fmt.Sprintf("expected %d, got %d", LessonCount, len(ls.Lessons)),
		}
	}
	for i, l := range ls.Lessons {
		field := fmt.Sprintf("lessons[%d]", i)
		if !strings.HasPrefix(l.ID, ls.ID+"-lesson-") {
			return &ValidationError{Field: field + ".id", Message: fmt.Sprintf("%q does not match %s-lesson-<n>", l.ID, ls.ID)}
		}
		if l.Title == "" {
			return &ValidationError{Field: field + ".title", Message: "empty"}
		}
		if !validAgeGroup(l.AgeGroup) {
			return &ValidationError{Field: field + ".ageGroup", Message: fmt.Sprintf("unknown age group %q", l.AgeGroup)}
		}
	}

	if len(ls.Exercises) != ExerciseCount {
		return &ValidationError{
			Field:   "exercises",
			Message: fmt.Sprintf("expected %d, got %d", ExerciseCount, len(ls.Exercises)),
		}
	}
	for i, ex := range ls.Exercises {
		field := fmt.Sprintf("exercises[%d]", i)
		if !strings.HasPrefix(ex.ID, ls.ID+"-exercise-") {
			return &ValidationError{Field: field + ".id", Message: fmt.Sprintf("%q does not match %s-exercise-<n>", ex.ID, ls.ID)}
		}
		if ex.Title == "" {
			return &ValidationError{Field: field + ".title", Message: "empty"}
		}
		switch ex.Type {
		case ExerciseFoundational, ExercisePhysical, ExerciseAdvanced:
		default:
			return &ValidationError{Field: field + ".type", Message: fmt.Sprintf("unknown type %q", ex.Type)}
		}
		if ex.Duration < MinDuration || ex.Duration > MaxDuration {
			return &ValidationError{
				Field:   field + ".duration",
				Message: fmt.Sprintf("expected %d-%d minutes, got %d", MinDuration, MaxDuration, ex.Duration),
			}
		}
		if len(ex.Process) == 0 {
			return &ValidationError{Field: field + ".process", Message: "empty"}
		}
		if !validAgeGroup(ex.AgeGroup) {
			return &ValidationError{Field: field + ".ageGroup", Message: fmt.Sprintf("unknown age group %q", ex.AgeGroup)}
		}
	}

	return nil
}

func validAgeGroup(g AgeGroup) bool {
	switch g {
	case AgeGroupAll, AgeGroupYoung, AgeGroupTeen, AgeGroupAdult:
		return true
	}
	return false
}
