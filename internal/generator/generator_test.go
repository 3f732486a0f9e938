package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmma/lifeskills/internal/lifeskill"
	"github.com/pmma/lifeskills/internal/llm"
)

// validContent builds a schema-conformant moduleOutput for the given id.
func validContent(id string) moduleOutput {
	out := moduleOutput{
		Parable: lifeskill.Parable{
			Title:   "The Long Road",
			Content: "A student learns the value of steady practice.",
			TeachingPoints: []string{
				"Point one", "Point two", "Point three", "Point four", "Point five",
			},
		},
		Explanations: lifeskill.AgeTierExplanations{
			Young: lifeskill.Explanation{
				Definition:  "A simple idea.",
				KeyConcepts: []string{"a", "b", "c", "d"},
			},
			Teen: lifeskill.Explanation{
				Definition:  "A practical idea.",
				KeyConcepts: []string{"a", "b", "c", "d"},
			},
			Adult: lifeskill.Explanation{
				Definition:  "A deeper idea.",
				KeyConcepts: []string{"a", "b", "c", "d", "e"},
			},
		},
	}

	categories := []lifeskill.QuoteCategory{
		lifeskill.CategoryMartialArts, lifeskill.CategoryMartialArts,
		lifeskill.CategoryPhilosophy, lifeskill.CategoryPhilosophy,
		lifeskill.CategoryLeadership, lifeskill.CategoryLeadership,
	}
	for i, cat := range categories {
		out.Quotes = append(out.Quotes, lifeskill.Quote{
			ID:          fmt.Sprintf("%s-quote-%d", id, i+1),
			Text:        fmt.Sprintf("Quote %d", i+1),
			Author:      "Someone Wise",
			Application: "Apply it in training.",
			Category:    cat,
		})
	}

	for i := 1; i <= 5; i++ {
		out.Lessons = append(out.Lessons, lifeskill.Lesson{
			ID:          fmt.Sprintf("%s-lesson-%d", id, i),
			Title:       fmt.Sprintf("Lesson %d", i),
			Description: "Practice it.",
			AgeGroup:    lifeskill.AgeGroupAll,
		})
		out.Exercises = append(out.Exercises, lifeskill.Exercise{
			ID:              fmt.Sprintf("%s-exercise-%d", id, i),
			Title:           fmt.Sprintf("Exercise %d", i),
			Type:            lifeskill.ExerciseFoundational,
			Duration:        15,
			Materials:       []string{"Open space"},
			Process:         []string{"Step 1", "Step 2"},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Keep it light.",
		})
	}

	return out
}

func mockResponse(t *testing.T, id string) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(validContent(id))
	require.NoError(t, err)
	return llm.MockResponse{Content: raw}
}

func TestGenerate_Success(t *testing.T) {
	provider := llm.NewMockProvider(mockResponse(t, "patience"))
	gen := New(provider, DefaultConfig())

	module, err := gen.Generate(context.Background(), Request{
		Topic:      "Patience",
		AgeGroup:   lifeskill.AgeGroupAll,
		Difficulty: DifficultyBasic,
		FocusArea:  "character",
	})
	require.NoError(t, err)

	assert.Equal(t, "patience", module.ID)
	assert.Equal(t, "patience", module.Slug)
	assert.Equal(t, "Patience", module.Title)
	assert.Equal(t, "Develop patience through martial arts principles and practice.", module.Description)
	assert.Len(t, module.Quotes, 6)
	assert.Len(t, module.Lessons, 5)
	assert.Len(t, module.Exercises, 5)
	assert.NoError(t, lifeskill.Validate(module))
}

func TestGenerate_CustomDescription(t *testing.T) {
	provider := llm.NewMockProvider(mockResponse(t, "patience"))
	gen := New(provider, DefaultConfig())

	module, err := gen.Generate(context.Background(), Request{
		Topic:       "Patience",
		Description: "Waiting well.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Waiting well.", module.Description)
}

func TestGenerate_SlugsMultiWordTopics(t *testing.T) {
	provider := llm.NewMockProvider(mockResponse(t, "self-control"))
	gen := New(provider, DefaultConfig())

	module, err := gen.Generate(context.Background(), Request{Topic: "  Self Control!  "})
	require.NoError(t, err)
	assert.Equal(t, "self-control", module.ID)
	assert.Equal(t, "Self Control!", module.Title)
}

func TestGenerate_EmptyTopic(t *testing.T) {
	provider := llm.NewMockProvider()
	gen := New(provider, DefaultConfig())

	for _, topic := range []string{"", "   ", "\t\n"} {
		_, err := gen.Generate(context.Background(), Request{Topic: topic})
		assert.ErrorIs(t, err, ErrEmptyTopic, "topic %q", topic)
	}

	// The provider is never called for a blank topic.
	assert.Empty(t, provider.Calls)
}

func TestGenerate_ProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	gen := New(provider, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Topic: "Patience"})
	require.Error(t, err)

	var unavailable *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
	assert.Len(t, provider.Calls, 1)
}

func TestGenerate_MalformedResponse(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`this is not json`),
	})
	gen := New(provider, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Topic: "Patience"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestGenerate_InvalidContentRejected(t *testing.T) {
	content := validContent("patience")
	content.Quotes = content.Quotes[:4]
	raw, err := json.Marshal(content)
	require.NoError(t, err)

	provider := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(provider, DefaultConfig())

	_, err = gen.Generate(context.Background(), Request{Topic: "Patience"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestGenerate_PromptCarriesRequestFields(t *testing.T) {
	provider := llm.NewMockProvider(mockResponse(t, "patience"))
	gen := New(provider, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{
		Topic:      "Patience",
		AgeGroup:   lifeskill.AgeGroupTeen,
		Difficulty: DifficultyAdvanced,
		FocusArea:  "leadership",
	})
	require.NoError(t, err)

	require.Len(t, provider.Calls, 1)
	call := provider.Calls[0]
	assert.Equal(t, systemPrompt, call.System)
	require.Len(t, call.Messages, 1)

	msg := call.Messages[0].Content
	assert.True(t, strings.Contains(msg, "TOPIC: Patience"))
	assert.True(t, strings.Contains(msg, "AGE GROUP FOCUS: teen"))
	assert.True(t, strings.Contains(msg, "DIFFICULTY LEVEL: advanced"))
	assert.True(t, strings.Contains(msg, "FOCUS AREA: leadership"))
	assert.True(t, strings.Contains(msg, `"patience-quote-1"`))
	assert.Equal(t, ModuleSchema, call.Schema)
}
