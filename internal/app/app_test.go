package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmma/lifeskills/internal/generator"
	"github.com/pmma/lifeskills/internal/lifeskill"
	"github.com/pmma/lifeskills/internal/llm"
	"github.com/pmma/lifeskills/internal/logger"
	"github.com/pmma/lifeskills/internal/state"
	"github.com/pmma/lifeskills/internal/storage"
)

func newTestApp(t *testing.T, responses ...llm.MockResponse) (*App, *llm.MockProvider) {
	t.Helper()
	provider := llm.NewMockProvider(responses...)
	log := logger.NewNop()
	cs := storage.NewContentStore(storage.NewMemoryStore(), log)
	gen := generator.New(provider, generator.DefaultConfig())
	return New(state.NewStore(), cs, gen, log), provider
}

// generatedModuleJSON is a minimal schema-conformant generation payload
// for the module id "patience".
func generatedModuleJSON(t *testing.T) json.RawMessage {
	t.Helper()
	content := map[string]any{
		"parable": map[string]any{
			"title":   "The Long Road",
			"content": "A student learns to wait.",
			"teachingPoints": []string{
				"One", "Two", "Three", "Four", "Five",
			},
		},
		"explanations": map[string]any{
			"young": map[string]any{"definition": "d", "keyConcepts": []string{"a", "b", "c", "d"}},
			"teen":  map[string]any{"definition": "d", "keyConcepts": []string{"a", "b", "c", "d"}},
			"adult": map[string]any{"definition": "d", "keyConcepts": []string{"a", "b", "c", "d"}},
		},
		"quotes":    quotesJSON("patience"),
		"lessons":   lessonsJSON("patience"),
		"exercises": exercisesJSON("patience"),
	}
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	return raw
}

func quotesJSON(id string) []map[string]any {
	cats := []string{"martial-arts", "martial-arts", "philosophy", "philosophy", "leadership", "leadership"}
	out := make([]map[string]any, 6)
	for i, c := range cats {
		out[i] = map[string]any{
			"id":          id + "-quote-" + string(rune('1'+i)),
			"text":        "q",
			"author":      "a",
			"application": "p",
			"category":    c,
		}
	}
	return out
}

func lessonsJSON(id string) []map[string]any {
	out := make([]map[string]any, 5)
	for i := range out {
		out[i] = map[string]any{
			"id":          id + "-lesson-" + string(rune('1'+i)),
			"title":       "t",
			"description": "d",
			"ageGroup":    "all",
		}
	}
	return out
}

func exercisesJSON(id string) []map[string]any {
	out := make([]map[string]any, 5)
	for i := range out {
		out[i] = map[string]any{
			"id":              id + "-exercise-" + string(rune('1'+i)),
			"title":           "t",
			"type":            "foundational",
			"duration":        15,
			"materials":       []string{"mat"},
			"process":         []string{"step"},
			"ageGroup":        "all",
			"instructorNotes": "n",
		}
	}
	return out
}

func TestSeedDemoData(t *testing.T) {
	a, _ := newTestApp(t)
	a.SeedDemoData()

	got := a.State.State()
	require.NotNil(t, got.User)
	assert.Equal(t, "Demo Student", got.User.Name)
	require.NotNil(t, got.Studio)
	assert.Equal(t, lifeskill.StudioMartialArts, got.Studio.Type)

	rec := a.State.ProgressFor("user-1", "grit")
	require.NotNil(t, rec)
	assert.Equal(t, 2, rec.CurrentLevel)
}

func TestLoadLifeSkills_StaticOnly(t *testing.T) {
	a, _ := newTestApp(t)

	merged := a.LoadLifeSkills(context.Background())
	assert.Len(t, merged, 4)
	assert.Len(t, a.State.State().LifeSkills, 4)
}

func TestLoadLifeSkills_MergesStored(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	a.Content.Save(ctx, lifeskill.LifeSkill{ID: "patience", Title: "Patience", Slug: "patience"})
	merged := a.LoadLifeSkills(ctx)
	require.Len(t, merged, 5)
	assert.Equal(t, "patience", merged[4].ID)

	// A stored module with a static id overrides the static one in place.
	a.Content.Save(ctx, lifeskill.LifeSkill{ID: "grit", Title: "Custom Grit", Slug: "grit"})
	merged = a.LoadLifeSkills(ctx)
	require.Len(t, merged, 5)
	assert.Equal(t, "Custom Grit", merged[0].Title)
}

func TestGenerate_FullFlow(t *testing.T) {
	a, _ := newTestApp(t, llm.MockResponse{Content: generatedModuleJSON(t)})
	ctx := context.Background()

	module, err := a.Generate(ctx, generator.Request{Topic: "Patience"})
	require.NoError(t, err)
	assert.Equal(t, "patience", module.ID)

	got := a.State.State()
	assert.False(t, got.Loading)
	assert.Empty(t, got.Error)
	require.NotNil(t, got.CurrentLifeSkill)
	assert.Equal(t, "patience", got.CurrentLifeSkill.ID)

	// The module was persisted and merged into the list.
	assert.NotNil(t, a.Content.GetByID(ctx, "patience"))
	assert.Len(t, got.LifeSkills, 5)
}

func TestGenerate_FailureSetsError(t *testing.T) {
	a, _ := newTestApp(t) // empty queue: provider unavailable
	ctx := context.Background()

	_, err := a.Generate(ctx, generator.Request{Topic: "Patience"})
	require.Error(t, err)

	got := a.State.State()
	assert.False(t, got.Loading)
	assert.Equal(t, "Failed to generate life skill content", got.Error)
	assert.Nil(t, a.Content.GetByID(ctx, "patience"))
}

func TestSelectBySlug(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	module := a.SelectBySlug(ctx, "respect")
	require.NotNil(t, module)
	assert.Equal(t, "respect", module.ID)
	require.NotNil(t, a.State.State().CurrentLifeSkill)

	// Unknown slug: nil result, selection untouched.
	assert.Nil(t, a.SelectBySlug(ctx, "no-such-module"))
	assert.Equal(t, "respect", a.State.State().CurrentLifeSkill.ID)
}
