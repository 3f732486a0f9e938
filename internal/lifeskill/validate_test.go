package lifeskill

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// completeModule builds a fully-populated module that passes Validate.
func completeModule(id string) *LifeSkill {
	ls := &LifeSkill{
		ID:          id,
		Title:       strings.ToUpper(id[:1]) + id[1:],
		Slug:        id,
		Description: "Develop " + id + " through martial arts principles and practice.",
		Parable: Parable{
			Title:   "The Bamboo and the Oak",
			Content: "Master Chen gathered the students after class...",
			TeachingPoints: []string{
				"Strength without flexibility breaks",
				"Small daily effort compounds",
				"Setbacks are part of training",
				"Watch, then do",
				"What we practice becomes who we are",
			},
		},
		Explanations: AgeTierExplanations{
			Young: Explanation{
				Definition:  "Keeping at something even when it is hard.",
				KeyConcepts: []string{"Try again", "Ask for help", "Celebrate small wins", "Keep practicing"},
			},
			Teen: Explanation{
				Definition:  "Sticking with long-term goals through setbacks.",
				KeyConcepts: []string{"Goals over moods", "Effort beats talent", "Learn from failure", "Routines carry you"},
			},
			Adult: Explanation{
				Definition:  "Sustained passion and perseverance toward long-term aims.",
				KeyConcepts: []string{"Deliberate practice", "Purpose-driven effort", "Resilience under pressure", "Modeling persistence", "Growth mindset"},
			},
		},
	}
	for i := 1; i <= QuoteCount; i++ {
		cat := CategoryMartialArts
		switch {
		case i > 4:
			cat = CategoryLeadership
		case i > 2:
			cat = CategoryPhilosophy
		}
		ls.Quotes = append(ls.Quotes, Quote{
			ID:          fmt.Sprintf("%s-quote-%d", id, i),
			Text:        "Fall seven times, stand up eight.",
			Author:      "Japanese proverb",
			Application: "Get back up after every failed attempt in drills.",
			Category:    cat,
		})
	}
	for i := 1; i <= LessonCount; i++ {
		ls.Lessons = append(ls.Lessons, Lesson{
			ID:          fmt.Sprintf("%s-lesson-%d", id, i),
			Title:       fmt.Sprintf("Lesson %d", i),
			Description: "Practice it daily.",
			AgeGroup:    AgeGroupAll,
		})
	}
	for i := 1; i <= ExerciseCount; i++ {
		ls.Exercises = append(ls.Exercises, Exercise{
			ID:              fmt.Sprintf("%s-exercise-%d", id, i),
			Title:           fmt.Sprintf("Exercise %d", i),
			Type:            ExercisePhysical,
			Duration:        15,
			Materials:       []string{"Open space"},
			Process:         []string{"Form a circle", "Run the drill", "Reflect"},
			AgeGroup:        AgeGroupAll,
			InstructorNotes: "Keep it moving.",
		})
	}
	return ls
}

func TestValidate_CompleteModule(t *testing.T) {
	if err := Validate(completeModule("grit")); err != nil {
		t.Fatalf("expected valid module, got %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*LifeSkill)
		field  string
	}{
		{"slug mismatch", func(ls *LifeSkill) { ls.Slug = "other" }, "slug"},
		{"id not slugified", func(ls *LifeSkill) { ls.ID = "Grit!"; ls.Slug = "Grit!" }, "id"},
		{"missing title", func(ls *LifeSkill) { ls.Title = "" }, "title"},
		{"wrong teaching point count", func(ls *LifeSkill) { ls.Parable.TeachingPoints = ls.Parable.TeachingPoints[:3] }, "parable.teachingPoints"},
		{"missing tier definition", func(ls *LifeSkill) { ls.Explanations.Teen.Definition = "" }, "explanations.teen"},
		{"too few key concepts", func(ls *LifeSkill) { ls.Explanations.Young.KeyConcepts = ls.Explanations.Young.KeyConcepts[:2] }, "explanations.young.keyConcepts"},
		{"wrong quote count", func(ls *LifeSkill) { ls.Quotes = ls.Quotes[:5] }, "quotes"},
		{"foreign quote id", func(ls *LifeSkill) { ls.Quotes[2].ID = "other-quote-3" }, "quotes[2].id"},
		{"bad quote category", func(ls *LifeSkill) { ls.Quotes[0].Category = "sports" }, "quotes[0].category"},
		{"wrong lesson count", func(ls *LifeSkill) { ls.Lessons = append(ls.Lessons, ls.Lessons[0]) }, "lessons"},
		{"bad lesson age group", func(ls *LifeSkill) { ls.Lessons[1].AgeGroup = "toddler" }, "lessons[1].ageGroup"},
		{"wrong exercise count", func(ls *LifeSkill) { ls.Exercises = ls.Exercises[:4] }, "exercises"},
		{"bad exercise type", func(ls *LifeSkill) { ls.Exercises[0].Type = "mental" }, "exercises[0].type"},
		{"duration too short", func(ls *LifeSkill) { ls.Exercises[3].Duration = 2 }, "exercises[3].duration"},
		{"duration too long", func(ls *LifeSkill) { ls.Exercises[3].Duration = 90 }, "exercises[3].duration"},
		{"empty process", func(ls *LifeSkill) { ls.Exercises[4].Process = nil }, "exercises[4].process"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ls := completeModule("grit")
			c.mutate(ls)
			err := Validate(ls)
			if err == nil {
				t.Fatal("expected validation error")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != c.field {
				t.Errorf("expected field %q, got %q (%s)", c.field, verr.Field, verr.Message)
			}
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := completeModule("grit")
	cp := orig.Clone()

	cp.Quotes[0].Text = "mutated"
	cp.Parable.TeachingPoints[0] = "mutated"
	cp.Exercises[0].Process[0] = "mutated"
	cp.Explanations.Adult.KeyConcepts[0] = "mutated"

	if orig.Quotes[0].Text == "mutated" {
		t.Error("quote mutation leaked into original")
	}
	if orig.Parable.TeachingPoints[0] == "mutated" {
		t.Error("teaching point mutation leaked into original")
	}
	if orig.Exercises[0].Process[0] == "mutated" {
		t.Error("exercise process mutation leaked into original")
	}
	if orig.Explanations.Adult.KeyConcepts[0] == "mutated" {
		t.Error("key concept mutation leaked into original")
	}
}

func TestAppearanceFor(t *testing.T) {
	if a := AppearanceFor("grit"); a.Icon != "💪" {
		t.Errorf("unexpected grit icon %q", a.Icon)
	}
	fallback := AppearanceFor("some-generated-skill")
	if fallback != defaultAppearance {
		t.Errorf("expected default appearance, got %+v", fallback)
	}
}

func TestProgress_ZeroValue(t *testing.T) {
	var p Progress
	if !p.LastActivity.Equal(time.Time{}) {
		t.Error("expected zero LastActivity")
	}
}
