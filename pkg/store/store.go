// Package store persists the journal collection under a single key in an
// abstract key-value store and exposes the domain operations over it.
package store

import (
	"time"

	"github.com/d-matsui/kokolog/pkg/collection"
	"github.com/d-matsui/kokolog/pkg/entry"
	"github.com/d-matsui/kokolog/pkg/ids"
)

// LogsKey is the storage key for the journal collection. It is part of the
// on-disk contract and is read back across app runs.
const LogsKey = "@kokoro_logs"

// Store owns the journal collection. All mutations go through it; readers
// only ever see snapshots.
type Store struct {
	binding *Binding[collection.Collection]
	ids     ids.Generator
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the entry id generator.
func WithIDGenerator(g ids.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open creates a Store over the configured disk location. A nil config
// loads the default configuration.
func Open(cfg Config, opts ...Option) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return New(NewDiskKV(cfg.BasePath()), opts...), nil
}

// New creates a Store over the given KV. The collection loads in the
// background; operations wait for the load to resolve.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		ids: ids.NewGenerator(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.binding = NewBinding(kv, LogsKey, collection.Collection{}, collection.Marshal, collection.Unmarshal)
	return s
}

// Ready is closed once the initial load attempt resolves.
func (s *Store) Ready() <-chan struct{} {
	return s.binding.Ready()
}

// IsLoading reports whether the initial load is still pending.
func (s *Store) IsLoading() bool {
	return s.binding.IsLoading()
}

// Err returns the last recorded load or persist failure.
func (s *Store) Err() error {
	return s.binding.Err()
}

// Logs returns a snapshot of the collection in display order.
func (s *Store) Logs() collection.Collection {
	<-s.binding.Ready()
	return s.binding.Data().Clone()
}

// Add assigns a fresh id and the current timestamp to the draft and
// prepends the entry. Persistence runs in the background; Add never fails.
func (s *Store) Add(d entry.Draft) entry.Entry {
	<-s.binding.Ready()
	e := entry.New(s.ids.Next(), s.now(), d)
	s.binding.Update(func(c collection.Collection) (collection.Collection, bool) {
		next := make(collection.Collection, 0, len(c)+1)
		next = append(next, e)
		next = append(next, c...)
		return next, true
	})
	return e
}

// Update replaces the entry with a matching id in place, restamping its
// date. Reports false, leaving the collection unchanged, when the id is
// absent.
func (s *Store) Update(e entry.Entry) bool {
	<-s.binding.Ready()
	found := false
	s.binding.Update(func(c collection.Collection) (collection.Collection, bool) {
		for i := range c {
			if c[i].ID != e.ID {
				continue
			}
			found = true
			e.Date = entry.Timestamp{Time: s.now()}
			e.Normalize()
			next := c.Clone()
			next[i] = e
			return next, true
		}
		return c, false
	})
	return found
}

// Delete removes the entry with the matching id. Reports false when the id
// is absent.
func (s *Store) Delete(id string) bool {
	<-s.binding.Ready()
	found := false
	s.binding.Update(func(c collection.Collection) (collection.Collection, bool) {
		next := make(collection.Collection, 0, len(c))
		for _, e := range c {
			if e.ID == id {
				found = true
				continue
			}
			next = append(next, e)
		}
		if !found {
			return c, false
		}
		return next, true
	})
	return found
}

// ToggleFavorite flips isFavorite on the matching entry. The date is left
// untouched. Reports false when the id is absent.
func (s *Store) ToggleFavorite(id string) bool {
	<-s.binding.Ready()
	found := false
	s.binding.Update(func(c collection.Collection) (collection.Collection, bool) {
		for i := range c {
			if c[i].ID != id {
				continue
			}
			found = true
			next := c.Clone()
			next[i].IsFavorite = !next[i].IsFavorite
			return next, true
		}
		return c, false
	})
	return found
}

// ClearAll deletes the persisted collection and resets the in-memory state
// to empty. The store error is propagated so the caller can report it.
func (s *Store) ClearAll() error {
	<-s.binding.Ready()
	return s.binding.Remove()
}

// InsertSeeds assigns each draft a distinct id and a shared timestamp and
// prepends the batch ahead of existing entries, preserving draft order.
// The write is flushed so a persistence failure is reported to the caller.
func (s *Store) InsertSeeds(drafts []entry.Draft) (int, error) {
	<-s.binding.Ready()
	now := s.now()
	batch := make(collection.Collection, len(drafts))
	for i, d := range drafts {
		batch[i] = entry.New(s.ids.Next(), now, d)
	}
	s.binding.Update(func(c collection.Collection) (collection.Collection, bool) {
		next := make(collection.Collection, 0, len(batch)+len(c))
		next = append(next, batch...)
		next = append(next, c...)
		return next, true
	})
	if err := s.binding.Flush(); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// Flush blocks until pending persists complete.
func (s *Store) Flush() error {
	return s.binding.Flush()
}

// Close flushes and stops the background writer.
func (s *Store) Close() error {
	return s.binding.Close()
}
