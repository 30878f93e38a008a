package appointment

import (
	"fmt"
	"sync"
)

// bookingLocks serializes bookings per professional+date within this
// process. Entries are dropped once the last holder releases.
type bookingLocks struct {
	mu   sync.Mutex
	keys map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newBookingLocks() *bookingLocks {
	return &bookingLocks{keys: make(map[string]*keyLock)}
}

func (l *bookingLocks) acquire(key string) func() {
	l.mu.Lock()
	k, ok := l.keys[key]
	if !ok {
		k = &keyLock{}
		l.keys[key] = k
	}
	k.refs++
	l.mu.Unlock()

	k.mu.Lock()

	return func() {
		k.mu.Unlock()

		l.mu.Lock()
		k.refs--
		if k.refs == 0 {
			delete(l.keys, key)
		}
		l.mu.Unlock()
	}
}

func lockKey(professionalID uint, date string) string {
	return fmt.Sprintf("%d|%s", professionalID, date)
}
