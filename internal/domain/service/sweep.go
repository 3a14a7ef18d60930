package service

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const fallbackGreeting = "there"

// sweeper delivers due reminders. It runs on a single goroutine so at most
// one delivery is in flight.
type sweeper struct {
	dm       contract.DataManager
	chat     contract.ChatClient
	cache    *nextDueCache
	log      *zap.Logger
	interval time.Duration
	limiter  *rate.Limiter
	now      func() time.Time

	mu       sync.Mutex
	stopChan chan struct{}
	doneChan chan struct{}
	running  bool
}

func newSweeper(dm contract.DataManager, chat contract.ChatClient, cache *nextDueCache, log *zap.Logger, interval time.Duration, limiter *rate.Limiter) *sweeper {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &sweeper{
		dm:       dm,
		chat:     chat,
		cache:    cache,
		log:      log.Named("sweep"),
		interval: interval,
		limiter:  limiter,
		now:      time.Now,
	}
}

func (s *sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})

	s.log.Info("sweep starting", zap.Duration("interval", s.interval))
	go s.mainLoop(s.stopChan, s.doneChan)
}

// Stop halts the loop and waits for an in-flight tick to finish.
func (s *sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.log.Info("sweep stopping")
	close(s.stopChan)
	done := s.doneChan
	s.running = false
	s.mu.Unlock()

	<-done
}

func (s *sweeper) mainLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	// A slow tick delays the next one; the ticker drops the ticks it missed.
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-stop:
			return
		}
	}
}

// tick delivers the cached reminder if it is due. It reports whether a
// reminder was processed.
func (s *sweeper) tick(ctx context.Context) bool {
	next, ok := s.cache.Get()
	if !ok {
		queried, err := s.dm.Reminder().GetNextActive(ctx)
		if err != nil {
			s.log.Error("failed to query next reminder", zap.Error(err))
			return false
		}
		if queried == nil {
			return false
		}
		s.cache.Offer(*queried)
		next = *queried
	}

	if next.DueAt.After(s.now()) {
		return false
	}

	// Cleared before delivery so a reminder created while this one is in
	// flight lands in the empty slot instead of losing to the due entry.
	s.cache.Invalidate()
	s.deliver(ctx, next.ReminderID)

	fresh, err := s.dm.Reminder().GetNextActive(ctx)
	if err != nil {
		s.log.Error("failed to requery next reminder", zap.Int64("reminder_id", next.ReminderID), zap.Error(err))
		fresh = nil
	}
	s.cache.Reconcile(next.ReminderID, fresh)

	return true
}

func (s *sweeper) deliver(ctx context.Context, reminderID int64) {
	log := s.log.With(
		zap.Int64("reminder_id", reminderID),
		zap.String("delivery_id", uuid.NewString()),
	)

	delivery, err := s.dm.Reminder().GetDelivery(ctx, reminderID)
	if err != nil {
		// Left active so a later tick retries it.
		log.Error("failed to load reminder delivery", zap.Error(err))
		return
	}
	if delivery == nil || !delivery.Active {
		log.Debug("reminder no longer active, skipping")
		return
	}

	n := entity.Notification{
		ReminderID: delivery.ReminderID,
		Message:    delivery.Message,
		DueAt:      delivery.DueAt,
		Link:       s.chat.MessageLink(delivery.GuildPlatformID, delivery.ChannelPlatformID, delivery.MessageID),
	}

	var unreachable []string
	for _, userID := range delivery.Followers {
		if err := s.limiter.Wait(ctx); err != nil {
			log.Warn("delivery interrupted", zap.Error(err))
			return
		}

		direct := n
		direct.Greeting = s.greeting(ctx, log, userID)
		if err := s.chat.SendDirect(ctx, userID, direct); err != nil {
			log.Info("direct message failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			unreachable = append(unreachable, userID)
		}
	}

	if len(unreachable) > 0 {
		s.sendFallback(ctx, log, delivery, n, unreachable)
	}

	if err := s.dm.Reminder().Deactivate(ctx, reminderID); err != nil {
		log.Warn("failed to deactivate delivered reminder", zap.Error(err))
	}

	log.Info("reminder delivered",
		zap.Int("followers", len(delivery.Followers)),
		zap.Int("unreachable", len(unreachable)),
	)
}

func (s *sweeper) greeting(ctx context.Context, log *zap.Logger, userID string) string {
	name, err := s.chat.UserName(ctx, userID)
	if err != nil || name == "" {
		log.Debug("failed to resolve user name", zap.String("user_id", userID), zap.Error(err))
		return fallbackGreeting
	}
	return name
}

func (s *sweeper) sendFallback(ctx context.Context, log *zap.Logger, delivery *entity.Delivery, n entity.Notification, users []string) {
	if delivery.FallbackChannelID == "" {
		log.Warn("no fallback channel, dropping notifications", zap.Strings("user_ids", users))
		return
	}

	if err := s.limiter.Wait(ctx); err != nil {
		log.Warn("delivery interrupted", zap.Error(err))
		return
	}

	if err := s.chat.SendChannel(ctx, delivery.FallbackChannelID, n, users); err != nil {
		log.Error("failed to send fallback notification",
			zap.String("channel_id", delivery.FallbackChannelID),
			zap.Strings("user_ids", users),
			zap.Error(err),
		)
	}
}
