// Package store provides the generic record store: a typed in-memory
// collection loaded lazily from a storage slot, falling back to seed data,
// and rewritten as a whole snapshot on every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/opsdeck/opsdeck/query"
	"github.com/opsdeck/opsdeck/storage"
	"github.com/opsdeck/opsdeck/types"
)

// Collection is the ordered record set of one entity kind. All public
// methods are safe for concurrent use within the process; the durable
// slot itself stays last-writer-wins across processes.
type Collection[T types.Record] struct {
	backend storage.Backend
	slot    string
	seed    []T
	logger  *slog.Logger

	locks   *lockManager
	records []T
	loaded  bool
}

// Option configures a Collection.
type Option[T types.Record] func(*Collection[T])

// WithLogger overrides the logger used for fail-soft load warnings.
func WithLogger[T types.Record](l *slog.Logger) Option[T] {
	return func(c *Collection[T]) { c.logger = l }
}

// New creates a collection bound to a slot. Nothing is read from the
// backend until the first operation.
func New[T types.Record](backend storage.Backend, slot string, seed []T, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		backend: backend,
		slot:    slot,
		seed:    seed,
		logger:  slog.Default(),
		locks:   newLockManager(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Slot returns the durable slot key this collection persists under.
func (c *Collection[T]) Slot() string { return c.slot }

// ensureLoaded performs the lazy first load. Load problems are absorbed:
// a missing slot, unreadable backend or corrupt payload all degrade to
// the seed data with a warning, never an error to the caller.
func (c *Collection[T]) ensureLoaded() {
	var loaded bool
	_ = c.locks.execute(readOperation, func() error {
		loaded = c.loaded
		return nil
	})
	if loaded {
		return
	}
	_ = c.locks.execute(writeOperation, func() error {
		if !c.loaded {
			c.loadLocked()
		}
		return nil
	})
}

func (c *Collection[T]) loadLocked() {
	c.loaded = true

	data, ok, err := c.backend.Get(c.slot)
	if err != nil {
		c.logger.Warn("slot unreadable, falling back to seed data",
			"slot", c.slot, "error", err)
		c.records = cloneRecords(c.seed)
		return
	}
	if !ok || len(data) == 0 {
		c.records = cloneRecords(c.seed)
		return
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Warn("corrupt slot data, falling back to seed data",
			"slot", c.slot, "error", err)
		c.records = cloneRecords(c.seed)
		return
	}
	c.records = records
}

// saveLocked rewrites the whole collection snapshot. Failures come back
// as *types.PersistenceError; the in-memory state the caller just changed
// is kept either way.
func (c *Collection[T]) saveLocked() error {
	data, err := json.MarshalIndent(c.records, "", "  ")
	if err != nil {
		return &types.PersistenceError{Slot: c.slot, Op: "marshal", Err: err}
	}
	if err := c.backend.Set(c.slot, data); err != nil {
		return &types.PersistenceError{Slot: c.slot, Op: "save", Err: err}
	}
	return nil
}

// List runs a query descriptor against the collection.
func (c *Collection[T]) List(opts query.Options) query.Page[T] {
	c.ensureLoaded()
	var page query.Page[T]
	_ = c.locks.execute(readOperation, func() error {
		page = query.Apply(c.records, opts)
		return nil
	})
	return page
}

// All returns a copy of every record in collection order.
func (c *Collection[T]) All() []T {
	c.ensureLoaded()
	var out []T
	_ = c.locks.execute(readOperation, func() error {
		out = cloneRecords(c.records)
		return nil
	})
	return out
}

// Count returns the number of records.
func (c *Collection[T]) Count() int {
	c.ensureLoaded()
	var n int
	_ = c.locks.execute(readOperation, func() error {
		n = len(c.records)
		return nil
	})
	return n
}

// Get returns the record with the given ID or ErrNotFound.
func (c *Collection[T]) Get(id string) (T, error) {
	c.ensureLoaded()
	var rec T
	err := c.locks.execute(readOperation, func() error {
		for _, r := range c.records {
			if r.RecordID() == id {
				rec = r
				return nil
			}
		}
		return fmt.Errorf("%s: record %q: %w", c.slot, id, types.ErrNotFound)
	})
	return rec, err
}

// Insert appends a record and persists the snapshot. The record is kept
// in memory even when the save fails; the returned error then is a
// *types.PersistenceError the caller can surface.
func (c *Collection[T]) Insert(rec T) (T, error) {
	c.ensureLoaded()
	err := c.locks.execute(writeOperation, func() error {
		c.records = append(c.records, rec)
		return c.saveLocked()
	})
	return rec, err
}

// Update applies mutate to the record with the given ID and persists the
// snapshot. A mutate error aborts the update and leaves the collection
// unchanged.
func (c *Collection[T]) Update(id string, mutate func(*T) error) (T, error) {
	c.ensureLoaded()
	var updated T
	err := c.locks.execute(writeOperation, func() error {
		for i := range c.records {
			if c.records[i].RecordID() != id {
				continue
			}
			candidate := c.records[i]
			if err := mutate(&candidate); err != nil {
				return err
			}
			c.records[i] = candidate
			updated = candidate
			return c.saveLocked()
		}
		return fmt.Errorf("%s: record %q: %w", c.slot, id, types.ErrNotFound)
	})
	return updated, err
}

// Delete removes the record with the given ID and persists the snapshot.
// A missing ID is ErrNotFound, never a silent no-op.
func (c *Collection[T]) Delete(id string) error {
	c.ensureLoaded()
	return c.locks.execute(writeOperation, func() error {
		for i := range c.records {
			if c.records[i].RecordID() != id {
				continue
			}
			c.records = append(c.records[:i], c.records[i+1:]...)
			return c.saveLocked()
		}
		return fmt.Errorf("%s: record %q: %w", c.slot, id, types.ErrNotFound)
	})
}

// Replace swaps in a whole new record set and persists it.
func (c *Collection[T]) Replace(records []T) error {
	return c.locks.execute(writeOperation, func() error {
		c.loaded = true
		c.records = cloneRecords(records)
		return c.saveLocked()
	})
}

// Reset restores the built-in seed data and persists it.
func (c *Collection[T]) Reset() error {
	return c.Replace(c.seed)
}

func cloneRecords[T any](records []T) []T {
	out := make([]T, len(records))
	copy(out, records)
	return out
}
