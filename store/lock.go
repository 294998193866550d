package store

import "sync"

// operationType distinguishes read from write operations so the lock
// manager can pick the matching lock: concurrent RLocks for reads, an
// exclusive Lock for writes.
type operationType int

const (
	readOperation operationType = iota
	writeOperation
)

// lockManager centralizes the locking strategy for a collection. Keeping
// lock selection in one place avoids lock/unlock/relock mistakes in the
// operation methods.
type lockManager struct {
	mu sync.RWMutex
}

func newLockManager() *lockManager {
	return &lockManager{}
}

// execute runs fn under the lock appropriate for the operation type. The
// lock is released via defer even if fn panics.
func (lm *lockManager) execute(opType operationType, fn func() error) error {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
