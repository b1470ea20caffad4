package hashing

import (
	"sync"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(maxCapacity),
	}
}

// CheckAndAdd atomically checks if board is a duplicate and remembers it.
// The signature is computed outside the lock.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}
	sig := SignatureOf(board)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.checkAndAdd(sig)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of distinct snapshots remembered.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// LoadFromDetector copies the signatures other remembers, skipping those
// already present. Copying stops once the capacity limit is reached, and
// it returns the number of signatures that did not fit.
func (d *ThreadSafeDuplicateDetector) LoadFromDetector(other *DuplicateDetector) (dropped int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, sigs := range other.hashTable {
		for _, sig := range sigs {
			if d.detector.has(sig) {
				continue
			}
			if d.detector.IsFull() {
				dropped++
				continue
			}
			d.detector.remember(sig)
		}
	}
	return dropped
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
