package catalog

import (
	"context"
	"sync"

	"github.com/ytget/wallgrid/internal/model"
)

// Store holds the catalog. The state is replaced as a whole on every load and
// only changes through Replace and Select.
type Store struct {
	mu    sync.RWMutex
	state model.CatalogState
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{
		state: model.CatalogState{
			All:        []model.ImageRecord{},
			Categories: []string{},
			Visible:    []model.ImageRecord{},
		},
	}
}

// Load fetches the catalog once and replaces the state on success. On failure
// the previous state is kept and the error is returned.
func (s *Store) Load(ctx context.Context, fetcher Fetcher) ([]model.ImageRecord, error) {
	records, err := fetcher.FetchImages(ctx)
	if err != nil {
		return nil, err
	}
	s.Replace(records)
	return records, nil
}

// Replace installs a freshly fetched record set. The current selection is kept
// and the visible set is recomputed against the new records.
func (s *Store) Replace(records []model.ImageRecord) {
	all := append([]model.ImageRecord{}, records...)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = model.CatalogState{
		All:        all,
		Categories: Categories(all),
		Selected:   s.state.Selected,
		Visible:    FilterRecords(all, s.state.Selected),
	}
}

// Select applies a category tap and returns the new selection.
func (s *Store) Select(candidate string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, visible := ApplyFilter(s.state.All, s.state.Selected, candidate)
	s.state.Selected = selected
	s.state.Visible = visible
	return selected
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() model.CatalogState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

// Find returns the record with the given id
func (s *Store) Find(id string) (model.ImageRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.state.All {
		if rec.ID == id {
			return rec, true
		}
	}
	return model.ImageRecord{}, false
}
