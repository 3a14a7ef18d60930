package service

import (
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cacheBase = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func nextDue(id int64, offset time.Duration) entity.NextDue {
	return entity.NextDue{ReminderID: id, DueAt: cacheBase.Add(offset)}
}

func nextDuePtr(id int64, offset time.Duration) *entity.NextDue {
	n := nextDue(id, offset)
	return &n
}

func Test_nextDueCache_Offer(t *testing.T) {
	tests := []struct {
		name    string
		initial *entity.NextDue
		offer   entity.NextDue
		wantID  int64
	}{
		{
			name:   "Should fill an empty cache",
			offer:  nextDue(1, time.Hour),
			wantID: 1,
		},
		{
			name:    "Should replace with a sooner candidate",
			initial: nextDuePtr(1, time.Hour),
			offer:   nextDue(2, time.Minute),
			wantID:  2,
		},
		{
			name:    "Should keep current entry for a later candidate",
			initial: nextDuePtr(1, time.Minute),
			offer:   nextDue(2, time.Hour),
			wantID:  1,
		},
		{
			name:    "Should keep current entry on a tie",
			initial: nextDuePtr(1, time.Minute),
			offer:   nextDue(2, time.Minute),
			wantID:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newNextDueCache()
			if tt.initial != nil {
				c.Offer(*tt.initial)
			}

			c.Offer(tt.offer)

			got, ok := c.Get()
			require.True(t, ok)
			assert.Equal(t, tt.wantID, got.ReminderID)
		})
	}
}

func Test_nextDueCache_Invalidate(t *testing.T) {
	c := newNextDueCache()
	c.Offer(nextDue(1, time.Hour))

	c.Invalidate()

	_, ok := c.Get()
	assert.False(t, ok)
}

func Test_nextDueCache_Reconcile(t *testing.T) {
	tests := []struct {
		name      string
		initial   *entity.NextDue
		delivered int64
		next      *entity.NextDue
		wantID    int64
		wantEmpty bool
	}{
		{
			name:      "Should replace the delivered reminder with the next one",
			initial:   nextDuePtr(1, 0),
			delivered: 1,
			next:      nextDuePtr(2, time.Hour),
			wantID:    2,
		},
		{
			name:      "Should empty the cache when nothing is left",
			initial:   nextDuePtr(1, 0),
			delivered: 1,
			next:      nil,
			wantEmpty: true,
		},
		{
			name:      "Should adopt next when the cache was invalidated mid tick",
			delivered: 1,
			next:      nextDuePtr(3, time.Hour),
			wantID:    3,
		},
		{
			name:      "Should keep a sooner concurrent offer",
			initial:   nextDuePtr(5, time.Minute),
			delivered: 1,
			next:      nextDuePtr(2, time.Hour),
			wantID:    5,
		},
		{
			name:      "Should adopt next when it is sooner than a concurrent offer",
			initial:   nextDuePtr(5, time.Hour),
			delivered: 1,
			next:      nextDuePtr(2, time.Minute),
			wantID:    2,
		},
		{
			name:      "Should keep a concurrent offer when the requery found nothing",
			initial:   nextDuePtr(5, time.Hour),
			delivered: 1,
			next:      nil,
			wantID:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newNextDueCache()
			if tt.initial != nil {
				c.Offer(*tt.initial)
			}

			c.Reconcile(tt.delivered, tt.next)

			got, ok := c.Get()
			if tt.wantEmpty {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantID, got.ReminderID)
		})
	}
}

func Test_nextDueCache_ReconcileCopiesNext(t *testing.T) {
	c := newNextDueCache()
	c.Offer(nextDue(1, 0))

	next := nextDuePtr(2, time.Hour)
	c.Reconcile(1, next)
	next.ReminderID = 99

	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ReminderID)
}

func Test_nextDueCache_ConcurrentOffers(t *testing.T) {
	c := newNextDueCache()

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			c.Offer(nextDue(id, time.Duration(id)*time.Second))
		}(int64(i))
	}
	wg.Wait()

	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ReminderID)
}
