// Package generator turns a user-supplied topic into a complete life skill
// module by prompting an LLM for structured content and validating the
// result against the content schema.
package generator

import (
	"fmt"
	"strings"

	"github.com/pmma/lifeskills/internal/lifeskill"
)

// Difficulty is the requested depth of the generated module.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Request describes what to generate.
type Request struct {
	// Topic is the life skill to build a module for. Required; must be
	// non-empty after trimming.
	Topic string `json:"topic"`

	// Description overrides the default module description when set.
	Description string `json:"description,omitempty"`

	// AgeGroup is the primary audience for the module.
	AgeGroup lifeskill.AgeGroup `json:"ageGroup"`

	// Difficulty selects the depth of generated content.
	Difficulty Difficulty `json:"difficulty"`

	// FocusArea steers the emphasis, e.g. "character" or "leadership".
	FocusArea string `json:"focusArea"`
}

// ErrEmptyTopic is returned when the request topic is blank.
var ErrEmptyTopic = fmt.Errorf("topic is required")

// DefaultDescription builds the module description used when the request
// does not supply one.
func DefaultDescription(topic string) string {
	return fmt.Sprintf("Develop %s through martial arts principles and practice.", strings.ToLower(topic))
}

// Config holds generation tuning parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4000,
		Temperature: 0.7,
	}
}
