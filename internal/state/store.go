// Package state holds the in-memory application state container. All
// mutation goes through Dispatch with a typed action, so no partial state
// is ever observable between transitions.
package state

import (
	"sync"

	"github.com/pmma/lifeskills/internal/lifeskill"
)

// State is the authoritative view for a running session.
type State struct {
	User             *lifeskill.User
	Studio           *lifeskill.Studio
	LifeSkills       []lifeskill.LifeSkill
	CurrentLifeSkill *lifeskill.LifeSkill
	Progress         []lifeskill.Progress
	Loading          bool
	Error            string
}

// Action is a state transition. The concrete types below are the full set
// of supported transitions.
type Action interface {
	isAction()
}

type SetUser struct{ User *lifeskill.User }

type SetStudio struct{ Studio *lifeskill.Studio }

// SetLifeSkills replaces the module list wholesale, typically after merging
// the static set with stored modules.
type SetLifeSkills struct{ Modules []lifeskill.LifeSkill }

type SetCurrentLifeSkill struct{ Module *lifeskill.LifeSkill }

// UpdateProgress upserts the progress record for its (userId, lifeSkillId)
// pair. List fields are unioned with any existing record so completions
// from earlier sessions are never lost; scalar fields take the new value.
type UpdateProgress struct{ Record lifeskill.Progress }

type SetLoading struct{ Loading bool }

// SetError replaces the error message. An empty string clears it.
type SetError struct{ Message string }

func (SetUser) isAction()             {}
func (SetStudio) isAction()           {}
func (SetLifeSkills) isAction()       {}
func (SetCurrentLifeSkill) isAction() {}
func (UpdateProgress) isAction()      {}
func (SetLoading) isAction()          {}
func (SetError) isAction()            {}

// Store is the state container. Safe for concurrent use; each Dispatch is
// an atomic transition.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a Store with empty initial state. Seeding demo data is
// the caller's job.
func NewStore() *Store {
	return &Store{}
}

// Dispatch applies one action to the state.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch a := action.(type) {
	case SetUser:
		s.state.User = a.User
	case SetStudio:
		s.state.Studio = a.Studio
	case SetLifeSkills:
		s.state.LifeSkills = append([]lifeskill.LifeSkill(nil), a.Modules...)
	case SetCurrentLifeSkill:
		s.state.CurrentLifeSkill = a.Module
	case UpdateProgress:
		s.state.Progress = upsertProgress(s.state.Progress, a.Record)
	case SetLoading:
		s.state.Loading = a.Loading
	case SetError:
		s.state.Error = a.Message
	}
}

// State returns a snapshot of the current state. Slices are copied so the
// caller cannot mutate the store through them.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	snap.LifeSkills = append([]lifeskill.LifeSkill(nil), s.state.LifeSkills...)
	snap.Progress = append([]lifeskill.Progress(nil), s.state.Progress...)
	return snap
}

// ProgressFor returns the progress record for the given pair, or nil.
func (s *Store) ProgressFor(userID, lifeSkillID string) *lifeskill.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.state.Progress {
		if p.UserID == userID && p.LifeSkillID == lifeSkillID {
			rec := p
			rec.ExercisesCompleted = append([]string(nil), p.ExercisesCompleted...)
			rec.LessonsViewed = append([]string(nil), p.LessonsViewed...)
			return &rec
		}
	}
	return nil
}

// upsertProgress keeps exactly one record per (userId, lifeSkillId) pair.
// When a record for the pair already exists, its list fields are unioned
// into the incoming record before the old record is dropped.
func upsertProgress(records []lifeskill.Progress, incoming lifeskill.Progress) []lifeskill.Progress {
	out := make([]lifeskill.Progress, 0, len(records)+1)
	for _, r := range records {
		if r.UserID == incoming.UserID && r.LifeSkillID == incoming.LifeSkillID {
			incoming.ExercisesCompleted = unionStrings(r.ExercisesCompleted, incoming.ExercisesCompleted)
			incoming.LessonsViewed = unionStrings(r.LessonsViewed, incoming.LessonsViewed)
			continue
		}
		out = append(out, r)
	}
	return append(out, incoming)
}

// unionStrings merges b into a, preserving first-seen order.
func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
