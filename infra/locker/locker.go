// locker/locker.go
package locker

import "sync"

// Locker tracks which reconciliation runs are currently held by a worker so
// concurrent cron workers never execute the same run twice.
type Locker struct {
	mu           sync.Mutex
	inProcessMap map[int64]bool
}

func New() *Locker {
	return &Locker{
		inProcessMap: make(map[int64]bool),
	}
}

// TryAcquire marks a run as in process. It returns false if another worker
// already holds the run.
func (l *Locker) TryAcquire(runID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inProcessMap[runID] {
		return false
	}
	l.inProcessMap[runID] = true
	return true
}

// IsProcessing checks if a run is already being processed.
func (l *Locker) IsProcessing(runID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inProcessMap[runID]
}

func (l *Locker) Unlock(runID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProcessMap, runID)
}
