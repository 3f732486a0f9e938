package storage

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pmma/lifeskills/internal/lifeskill"
	"github.com/pmma/lifeskills/internal/logger"
)

// storageKey is the single key holding the JSON array of stored modules.
const storageKey = "pmma_generated_lifeskills"

// StoredLifeSkill is a LifeSkill plus generation provenance and timestamps.
type StoredLifeSkill struct {
	lifeskill.LifeSkill
	IsGenerated bool      `json:"isGenerated"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ContentStore keeps user-generated life skill modules in a KeyValueStore.
//
// Persistence is best-effort: reads degrade to an empty list when the
// backing store is unavailable or holds a corrupted payload, and writes log
// the failure and carry on. Callers must tolerate a module silently not
// being persisted.
type ContentStore struct {
	kv  KeyValueStore
	log *logger.Logger
	now func() time.Time
}

// NewContentStore creates a ContentStore over the given backing store.
func NewContentStore(kv KeyValueStore, log *logger.Logger) *ContentStore {
	return &ContentStore{kv: kv, log: log, now: time.Now}
}

// List returns all stored modules. Absent, corrupted, or non-list payloads
// yield an empty list.
func (s *ContentStore) List(ctx context.Context) []StoredLifeSkill {
	raw, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		s.log.Warn("content store read failed", "error", err.Error())
		return []StoredLifeSkill{}
	}
	if !ok {
		return []StoredLifeSkill{}
	}

	var modules []StoredLifeSkill
	if err := json.Unmarshal([]byte(raw), &modules); err != nil {
		s.log.Warn("content store payload corrupted", "error", err.Error())
		return []StoredLifeSkill{}
	}
	if modules == nil {
		return []StoredLifeSkill{}
	}
	return modules
}

// GetByID returns the stored module with the given id, or nil.
func (s *ContentStore) GetByID(ctx context.Context, id string) *StoredLifeSkill {
	for _, m := range s.List(ctx) {
		if m.ID == id {
			return &m
		}
	}
	return nil
}

// GetBySlug returns the stored module with the given slug, or nil.
func (s *ContentStore) GetBySlug(ctx context.Context, slug string) *StoredLifeSkill {
	for _, m := range s.List(ctx) {
		if m.Slug == slug {
			return &m
		}
	}
	return nil
}

// Save upserts a module by id. An existing record keeps its original
// createdAt; content fields are fully replaced, not merged.
func (s *ContentStore) Save(ctx context.Context, module lifeskill.LifeSkill) {
	now := s.now()
	modules := s.List(ctx)

	record := StoredLifeSkill{
		LifeSkill:   module,
		IsGenerated: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	replaced := false
	for i, m := range modules {
		if m.ID == module.ID {
			record.CreatedAt = m.CreatedAt
			modules[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		modules = append(modules, record)
	}

	s.write(ctx, modules)
}

// Update shallow-merges fields into the stored record with the given id.
// Absent ids are a silent no-op. Keys in fields correspond to the record's
// JSON field names.
func (s *ContentStore) Update(ctx context.Context, id string, fields map[string]any) {
	if len(fields) == 0 {
		return
	}
	modules := s.List(ctx)

	for i, m := range modules {
		if m.ID != id {
			continue
		}

		merged, err := mergeRecord(m, fields)
		if err != nil {
			s.log.Warn("content store update failed", "id", id, "error", err.Error())
			return
		}
		merged.UpdatedAt = s.now()
		modules[i] = merged
		s.write(ctx, modules)
		return
	}
}

// Delete removes the record with the given id. Idempotent.
func (s *ContentStore) Delete(ctx context.Context, id string) {
	modules := s.List(ctx)

	kept := modules[:0]
	for _, m := range modules {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(modules) {
		return
	}
	s.write(ctx, kept)
}

// Export serializes the full stored list as pretty-printed JSON.
func (s *ContentStore) Export(ctx context.Context) string {
	modules := s.List(ctx)
	out, err := json.MarshalIndent(modules, "", "  ")
	if err != nil {
		s.log.Warn("content store export failed", "error", err.Error())
		return "[]"
	}
	return string(out)
}

// Import replaces the entire stored collection iff text parses to a list.
// A malformed import is never partially applied.
func (s *ContentStore) Import(ctx context.Context, text string) bool {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") {
		s.log.Warn("content store import rejected", "error", "payload is not a JSON list")
		return false
	}
	modules := []StoredLifeSkill{}
	if err := json.Unmarshal([]byte(trimmed), &modules); err != nil {
		s.log.Warn("content store import rejected", "error", err.Error())
		return false
	}
	s.write(ctx, modules)
	return true
}

// Clear removes all stored records.
func (s *ContentStore) Clear(ctx context.Context) {
	if err := s.kv.Delete(ctx, storageKey); err != nil {
		s.log.Warn("content store clear failed", "error", err.Error())
	}
}

func (s *ContentStore) write(ctx context.Context, modules []StoredLifeSkill) {
	raw, err := json.Marshal(modules)
	if err != nil {
		s.log.Warn("content store encode failed", "error", err.Error())
		return
	}
	if err := s.kv.Set(ctx, storageKey, string(raw)); err != nil {
		s.log.Warn("content store write failed", "error", err.Error())
	}
}

// mergeRecord overlays fields onto the JSON representation of record,
// replacing top-level keys wholesale.
func mergeRecord(record StoredLifeSkill, fields map[string]any) (StoredLifeSkill, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return record, err
	}

	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return record, err
	}
	for k, v := range fields {
		asMap[k] = v
	}

	remarshaled, err := json.Marshal(asMap)
	if err != nil {
		return record, err
	}

	var merged StoredLifeSkill
	if err := json.Unmarshal(remarshaled, &merged); err != nil {
		return record, err
	}
	return merged, nil
}
