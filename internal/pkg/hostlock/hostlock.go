// Package hostlock serializes the check-then-create window of a booking per
// (host, slot start). The external calendar remains the system of record, so
// this is an in-process lease only: it closes the race between two bookings
// handled by the same process, not across replicas.
package hostlock

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type key struct {
	hostID    uuid.UUID
	startUnix int64
}

type entry struct {
	mu   sync.Mutex
	refs int
}

type SlotLocker struct {
	mu      sync.Mutex
	entries map[key]*entry
}

func NewSlotLocker() *SlotLocker {
	return &SlotLocker{
		entries: make(map[key]*entry),
	}
}

// Acquire blocks until the lease for (hostID, start) is held and returns the
// release function. Entries are reference counted so the map does not grow
// with every slot ever booked.
func (l *SlotLocker) Acquire(hostID uuid.UUID, start time.Time) (release func()) {
	k := key{hostID: hostID, startUnix: start.Unix()}

	l.mu.Lock()
	e, ok := l.entries[k]
	if !ok {
		e = &entry{}
		l.entries[k] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.entries, k)
			}
			l.mu.Unlock()
		})
	}
}
