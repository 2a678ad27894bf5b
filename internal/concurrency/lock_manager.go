package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Mutexes are never reclaimed,
// so keys should come from a bounded set.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// OpenKey is the lock key for one participant's opens of one pack
func OpenKey(participantID, packID string) string {
	return participantID + ":" + packID
}

// WithLock runs fn while holding the mutex for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	l := lm.GetLock(key)
	l.Lock()
	defer l.Unlock()
	return fn()
}
