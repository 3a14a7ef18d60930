package service

import (
	"sync"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

// nextDueCache holds the earliest known active reminder. It is a hint for
// the sweep; the store stays authoritative. The lock is never held across
// I/O.
type nextDueCache struct {
	mu   sync.Mutex
	slot *entity.NextDue
}

func newNextDueCache() *nextDueCache {
	return &nextDueCache{}
}

// Get returns the cached entry, if any.
func (c *nextDueCache) Get() (entity.NextDue, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.slot == nil {
		return entity.NextDue{}, false
	}
	return *c.slot, true
}

// Offer replaces the entry when the cache is empty or the candidate is due
// strictly sooner.
func (c *nextDueCache) Offer(candidate entity.NextDue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.slot == nil || candidate.DueAt.Before(c.slot.DueAt) {
		c.slot = &candidate
	}
}

// Invalidate clears the entry. The next sweep tick requeries the store.
func (c *nextDueCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.slot = nil
}

// Reconcile is called by the sweep after it processed deliveredID. If the
// cache still names that reminder it is replaced with next. Otherwise a
// concurrent mutation already moved the cache and next is adopted only when
// it is strictly sooner.
func (c *nextDueCache) Reconcile(deliveredID int64, next *entity.NextDue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.slot == nil, c.slot.ReminderID == deliveredID:
		c.slot = copyNextDue(next)
	case next != nil && next.DueAt.Before(c.slot.DueAt):
		c.slot = copyNextDue(next)
	}
}

func copyNextDue(next *entity.NextDue) *entity.NextDue {
	if next == nil {
		return nil
	}
	cp := *next
	return &cp
}
