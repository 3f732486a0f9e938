package lifeskill

import "time"

// AgeGroup is one of the fixed audience bands content is written for.
type AgeGroup string

const (
	AgeGroupAll   AgeGroup = "all"
	AgeGroupYoung AgeGroup = "young" // 6-10
	AgeGroupTeen  AgeGroup = "teen"  // 11-17
	AgeGroupAdult AgeGroup = "adult" // 18+
)

// QuoteCategory classifies the source of an inspirational quote.
type QuoteCategory string

const (
	CategoryMartialArts QuoteCategory = "martial-arts"
	CategoryPhilosophy  QuoteCategory = "philosophy"
	CategoryLeadership  QuoteCategory = "leadership"
)

// ExerciseType classifies how an exercise is run.
type ExerciseType string

const (
	ExerciseFoundational ExerciseType = "foundational"
	ExercisePhysical     ExerciseType = "physical"
	ExerciseAdvanced     ExerciseType = "advanced"
)

// LifeSkill is one complete training module: a parable, age-tiered
// explanations, quotes, lessons, and exercises. ID and Slug are both the
// slugified topic and are always equal.
type LifeSkill struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Slug         string               `json:"slug"`
	Description  string               `json:"description"`
	Parable      Parable              `json:"parable"`
	Explanations AgeTierExplanations  `json:"explanations"`
	Quotes       []Quote              `json:"quotes"`
	Lessons      []Lesson             `json:"lessons"`
	Exercises    []Exercise           `json:"exercises"`
}

// Parable is the narrative section of a module.
type Parable struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	TeachingPoints []string `json:"teachingPoints"`
}

// AgeTierExplanations holds one explanation per audience band.
type AgeTierExplanations struct {
	Young Explanation `json:"young"`
	Teen  Explanation `json:"teen"`
	Adult Explanation `json:"adult"`
}

// Explanation is a definition plus its key concepts for one age band.
type Explanation struct {
	Definition  string   `json:"definition"`
	KeyConcepts []string `json:"keyConcepts"`
}

// Quote is an inspirational quote with a practical tie-back to training.
// IDs are module-scoped: "<moduleID>-quote-<n>".
type Quote struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Author      string        `json:"author"`
	Application string        `json:"application"`
	Category    QuoteCategory `json:"category"`
}

// Lesson is an actionable teaching unit. IDs follow "<moduleID>-lesson-<n>".
type Lesson struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AgeGroup    AgeGroup `json:"ageGroup"`
}

// Exercise is a hands-on activity. IDs follow "<moduleID>-exercise-<n>".
type Exercise struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Type            ExerciseType `json:"type"`
	Duration        int          `json:"duration"` // minutes
	Materials       []string     `json:"materials"`
	Process         []string     `json:"process"`
	AgeGroup        AgeGroup     `json:"ageGroup"`
	InstructorNotes string       `json:"instructorNotes"`
}

// Progress records a user's activity on one module. One record exists per
// (UserID, LifeSkillID) pair.
type Progress struct {
	UserID             string    `json:"userId"`
	LifeSkillID        string    `json:"lifeSkillId"`
	ExercisesCompleted []string  `json:"exercisesCompleted"`
	LessonsViewed      []string  `json:"lessonsViewed"`
	CurrentLevel       int       `json:"currentLevel"`
	LastActivity       time.Time `json:"lastActivity"`
}

// UserRole is the account type of a user.
type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// User is a member of a studio.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	StudioID string   `json:"studioId"`
}

// StudioType is the kind of training facility.
type StudioType string

const (
	StudioMartialArts StudioType = "martial-arts"
	StudioYoga        StudioType = "yoga"
	StudioSportsTeam  StudioType = "sports-team"
	StudioFitness     StudioType = "fitness"
)

// Studio is a training facility with its branding.
type Studio struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     StudioType `json:"type"`
	Branding Branding   `json:"branding"`
}

// Branding holds studio display customization.
type Branding struct {
	PrimaryColor string `json:"primaryColor"`
	Logo         string `json:"logo,omitempty"`
	Name         string `json:"name"`
}

// Clone returns a deep copy of the module. Mutating the copy never affects
// the original.
func (ls LifeSkill) Clone() LifeSkill {
	out := ls
	out.Parable.TeachingPoints = cloneStrings(ls.Parable.TeachingPoints)
	out.Explanations.Young.KeyConcepts = cloneStrings(ls.Explanations.Young.KeyConcepts)
	out.Explanations.Teen.KeyConcepts = cloneStrings(ls.Explanations.Teen.KeyConcepts)
	out.Explanations.Adult.KeyConcepts = cloneStrings(ls.Explanations.Adult.KeyConcepts)

	out.Quotes = make([]Quote, len(ls.Quotes))
	copy(out.Quotes, ls.Quotes)

	out.Lessons = make([]Lesson, len(ls.Lessons))
	copy(out.Lessons, ls.Lessons)

	out.Exercises = make([]Exercise, len(ls.Exercises))
	for i, ex := range ls.Exercises {
		ex.Materials = cloneStrings(ex.Materials)
		ex.Process = cloneStrings(ex.Process)
		out.Exercises[i] = ex
	}

	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
