// Package app wires the content set, persisted store, generator, and state
// container together. It owns the loading/error action discipline around
// asynchronous work; the state store itself stays a pure reducer.
package app

import (
	"context"

	"github.com/pmma/lifeskills/internal/content"
	"github.com/pmma/lifeskills/internal/generator"
	"github.com/pmma/lifeskills/internal/lifeskill"
	"github.com/pmma/lifeskills/internal/logger"
	"github.com/pmma/lifeskills/internal/state"
	"github.com/pmma/lifeskills/internal/storage"
)

// App orchestrates the application components around the state store.
type App struct {
	State     *state.Store
	Content   *storage.ContentStore
	Generator *generator.Generator
	Log       *logger.Logger
}

// New creates an App over the given components.
func New(st *state.Store, cs *storage.ContentStore, gen *generator.Generator, log *logger.Logger) *App {
	return &App{
		State:     st,
		Content:   cs,
		Generator: gen,
		Log:       log,
	}
}

// SeedDemoData initializes the demo user, studio, and a sample progress
// record. Seeding is orchestration; the store starts empty.
func (a *App) SeedDemoData() {
	a.State.Dispatch(state.SetUser{User: &lifeskill.User{
		ID:       "user-1",
		Name:     "Demo Student",
		Email:    "demo@pmmalifeskills.com",
		Role:     lifeskill.RoleStudent,
		StudioID: "studio-1",
	}})

	a.State.Dispatch(state.SetStudio{Studio: &lifeskill.Studio{
		ID:   "studio-1",
		Name: "PMMA Life Skills Academy",
		Type: lifeskill.StudioMartialArts,
		Branding: lifeskill.Branding{
			PrimaryColor: "#fbbf24",
			Name:         "PMMA Academy",
		},
	}})

	a.State.Dispatch(state.UpdateProgress{Record: lifeskill.Progress{
		UserID:             "user-1",
		LifeSkillID:        "grit",
		ExercisesCompleted: []string{"grit-exercise-1", "grit-exercise-2"},
		LessonsViewed:      []string{"grit-lesson-1", "grit-lesson-3"},
		CurrentLevel:       2,
	}})
}

// LoadLifeSkills merges the static content set with stored modules and
// replaces the state's module list. Stored modules win on id collision.
func (a *App) LoadLifeSkills(ctx context.Context) []lifeskill.LifeSkill {
	merged := content.All()

	index := make(map[string]int, len(merged))
	for i, m := range merged {
		index[m.ID] = i
	}

	for _, stored := range a.Content.List(ctx) {
		if i, ok := index[stored.ID]; ok {
			merged[i] = stored.LifeSkill
			continue
		}
		index[stored.ID] = len(merged)
		merged = append(merged, stored.LifeSkill)
	}

	a.State.Dispatch(state.SetLifeSkills{Modules: merged})
	return merged
}

// Generate runs the full generation flow: loading flag up, module
// generated and persisted, module list refreshed, new module selected.
// On failure the error message lands in state and the module list is
// untouched.
func (a *App) Generate(ctx context.Context, req generator.Request) (*lifeskill.LifeSkill, error) {
	a.State.Dispatch(state.SetLoading{Loading: true})
	a.State.Dispatch(state.SetError{})
	defer a.State.Dispatch(state.SetLoading{Loading: false})

	module, err := a.Generator.Generate(ctx, req)
	if err != nil {
		a.Log.Warn("generation failed", "topic", req.Topic, "error", err.Error())
		a.State.Dispatch(state.SetError{Message: "Failed to generate life skill content"})
		return nil, err
	}

	// Persistence is best-effort; an unsaved module is still returned.
	a.Content.Save(ctx, *module)

	a.LoadLifeSkills(ctx)
	a.State.Dispatch(state.SetCurrentLifeSkill{Module: module})
	return module, nil
}

// SelectBySlug makes the module with the given slug current. Unknown slugs
// yield nil and leave the selection unchanged; redirect behavior is the
// caller's concern.
func (a *App) SelectBySlug(ctx context.Context, slug string) *lifeskill.LifeSkill {
	for _, m := range a.LoadLifeSkills(ctx) {
		if m.Slug == slug {
			module := m.Clone()
			a.State.Dispatch(state.SetCurrentLifeSkill{Module: &module})
			return &module
		}
	}
	return nil
}

// RecordProgress upserts a progress record into state.
func (a *App) RecordProgress(record lifeskill.Progress) {
	a.State.Dispatch(state.UpdateProgress{Record: record})
}
