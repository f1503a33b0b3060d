package saved

import "go.uber.org/zap"

// Store is the saved-proposals collection, layered on an Adapter. Every
// method degrades to a safe default instead of returning an error: the UI
// calls these straight from event handlers and a missing, full, or corrupted
// storage medium must never crash it. Failures are logged and swallowed.
//
// Every mutation is a full read-modify-write of the single stored value.
// The store is single-threaded by design; concurrent writers of the same
// file can clobber each other, which is an accepted limitation.
type Store struct {
	adapter Adapter
	log     *zap.Logger
}

func NewStore(adapter Adapter, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{adapter: adapter, log: log}
}

// List returns the collection newest-first. An absent key or a value that
// does not parse as a collection yields an empty slice.
func (s *Store) List() []Item {
	raw, ok, err := s.adapter.Read()
	if err != nil {
		s.log.Warn("saved: read failed", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	items, err := decode(raw)
	if err != nil {
		s.log.Warn("saved: discarding unparsable collection", zap.Error(err))
		return nil
	}
	return items
}

// Add prepends item and persists the collection. It reports false without
// writing when the id is already saved, and false when the write fails; a
// failed write is not rolled back or retried.
func (s *Store) Add(item Item) bool {
	items := s.List()
	for _, it := range items {
		if it.ID == item.ID {
			return false
		}
	}
	raw, err := encode(append([]Item{item}, items...))
	if err != nil {
		s.log.Warn("saved: encode failed", zap.String("id", item.ID), zap.Error(err))
		return false
	}
	if err := s.adapter.Write(raw); err != nil {
		s.log.Warn("saved: write failed", zap.String("id", item.ID), zap.Error(err))
		return false
	}
	return true
}

// Remove drops any item with the given id and writes the result back
// unconditionally, even when nothing matched. Write failures are logged and
// dropped; persisted state stays whatever the adapter last accepted.
func (s *Store) Remove(id string) {
	items := s.List()
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	raw, err := encode(kept)
	if err != nil {
		s.log.Warn("saved: encode failed", zap.String("id", id), zap.Error(err))
		return
	}
	if err := s.adapter.Write(raw); err != nil {
		s.log.Warn("saved: write failed", zap.String("id", id), zap.Error(err))
	}
}

// IsSaved reports whether an item with the given id is in the collection.
func (s *Store) IsSaved(id string) bool {
	for _, it := range s.List() {
		if it.ID == id {
			return true
		}
	}
	return false
}
