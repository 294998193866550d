// Package storage defines the durable key-value slot store behind the
// record collections, plus its backends. Each entity kind persists its
// whole collection as one value under a fixed slot key; backends never
// interpret the payload.
package storage

// Backend is the storage port injected into collections. Implementations
// must be safe for concurrent use from one process; cross-process
// coordination is each backend's own concern.
type Backend interface {
	// Get returns the payload stored under key. The boolean reports
	// whether the slot exists; a missing slot is not an error.
	Get(key string) ([]byte, bool, error)

	// Set overwrites the slot with the given payload.
	Set(key string, data []byte) error

	// Delete removes the slot. Deleting a missing slot is a no-op.
	Delete(key string) error

	// Keys lists the existing slot keys in unspecified order.
	Keys() ([]string, error)
}
