package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options tunes the delivery sweep.
type Options struct {
	SweepInterval   time.Duration
	DMRatePerSecond float64
}

type Instance struct {
	Reminder contract.ReminderService
	Sweep    *sweeper

	dm    contract.DataManager
	cache *nextDueCache
	log   *zap.Logger
}

func NewInstance(dm contract.DataManager, chat contract.ChatClient, log *zap.Logger, opts Options) *Instance {
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = domain.DefaultSweepInterval
	}

	limit := rate.Inf
	if opts.DMRatePerSecond > 0 {
		limit = rate.Limit(opts.DMRatePerSecond)
	}

	cache := newNextDueCache()

	return &Instance{
		Reminder: newReminder(dm, cache, log),
		Sweep:    newSweeper(dm, chat, cache, log, opts.SweepInterval, rate.NewLimiter(limit, 1)),
		dm:       dm,
		cache:    cache,
		log:      log,
	}
}

// PrimeCache loads the earliest active reminder into the next-due cache.
// Call it once before starting the sweep.
func (i *Instance) PrimeCache(ctx context.Context) error {
	next, err := i.dm.Reminder().GetNextActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load next reminder: %w", err)
	}

	if next == nil {
		i.log.Info("no active reminders")
		return nil
	}

	i.cache.Offer(*next)
	i.log.Info("next reminder loaded",
		zap.Int64("reminder_id", next.ReminderID),
		zap.Time("due_at", next.DueAt),
	)
	return nil
}
