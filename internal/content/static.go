// Package content holds the hand-authored life skill modules that ship with
// the application. The set is fixed at process start; every accessor returns
// deep copies so callers can never mutate the canonical data.
package content

import "github.com/pmma/lifeskills/internal/lifeskill"

var staticModules = []lifeskill.LifeSkill{
	gritTraining,
	respectTraining,
	disciplineTraining,
	confidenceTraining,
}

// All returns copies of every static module, in authoring order.
func All() []lifeskill.LifeSkill {
	out := make([]lifeskill.LifeSkill, len(staticModules))
	for i, m := range staticModules {
		out[i] = m.Clone()
	}
	return out
}

// ByID returns a copy of the module with the given id, or nil if absent.
func ByID(id string) *lifeskill.LifeSkill {
	for _, m := range staticModules {
		if m.ID == id {
			c := m.Clone()
			return &c
		}
	}
	return nil
}

// BySlug returns a copy of the module with the given slug, or nil if absent.
func BySlug(slug string) *lifeskill.LifeSkill {
	for _, m := range staticModules {
		if m.Slug == slug {
			c := m.Clone()
			return &c
		}
	}
	return nil
}

// QuotesByCategory collects quotes of one category across all modules.
func QuotesByCategory(cat lifeskill.QuoteCategory) []lifeskill.Quote {
	var out []lifeskill.Quote
	for _, m := range staticModules {
		for _, q := range m.Quotes {
			if q.Category == cat {
				out = append(out, q)
			}
		}
	}
	return out
}

// ExercisesByType collects exercises of one type across all modules.
func ExercisesByType(t lifeskill.ExerciseType) []lifeskill.Exercise {
	var out []lifeskill.Exercise
	for _, m := range staticModules {
		for _, ex := range m.Exercises {
			if ex.Type == t {
				x := ex
				x.Materials = append([]string(nil), ex.Materials...)
				x.Process = append([]string(nil), ex.Process...)
				out = append(out, x)
			}
		}
	}
	return out
}

// LessonsByAgeGroup collects lessons matching the given age group. Lessons
// marked "all" match every group.
func LessonsByAgeGroup(g lifeskill.AgeGroup) []lifeskill.Lesson {
	var out []lifeskill.Lesson
	for _, m := range staticModules {
		for _, l := range m.Lessons {
			if l.AgeGroup == g || l.AgeGroup == lifeskill.AgeGroupAll {
				out = append(out, l)
			}
		}
	}
	return out
}
