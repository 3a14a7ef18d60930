package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/diegoclair/reminder-bot/internal/domain/timeparse"
	"go.uber.org/zap"
)

type reminderService struct {
	dm    contract.DataManager
	cache *nextDueCache
	log   *zap.Logger
	now   func() time.Time
}

func newReminder(dm contract.DataManager, cache *nextDueCache, log *zap.Logger) *reminderService {
	return &reminderService{
		dm:    dm,
		cache: cache,
		log:   log.Named("reminder"),
		now:   time.Now,
	}
}

// clock returns the invocation time, falling back to the service clock.
func (s *reminderService) clock(inv entity.Invocation) time.Time {
	now := inv.InvokedAt
	if now.IsZero() {
		now = s.now()
	}
	return now.UTC().Truncate(time.Second)
}

// checkReminderCount runs on the caller's transaction so the count and the
// insert that follows it see the same snapshot.
func checkReminderCount(ctx context.Context, tx contract.DataManager, userPlatformID string) error {
	count, err := tx.Reminder().CountActiveByUser(ctx, userPlatformID, "")
	if err != nil {
		return fmt.Errorf("failed to count active reminders: %w", err)
	}

	if count >= domain.MaxActiveReminders {
		return domain.ErrTooManyReminders
	}
	return nil
}

func (s *reminderService) Create(ctx context.Context, in entity.CreateReminderInput) (*entity.Reminder, error) {
	inv := in.Invocation

	offset, err := s.resolveOffset(ctx, inv.UserPlatformID, in.Offset)
	if err != nil {
		return nil, err
	}

	now := s.clock(inv)
	dueAt, err := timeparse.Parse(in.Timestamp, offset, now)
	if err != nil {
		return nil, err
	}

	if !dueAt.After(now) {
		return nil, domain.ErrReminderInPast
	}
	if dueAt.Sub(now) > domain.MaxReminderHorizon {
		return nil, domain.ErrReminderTooFar
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		message = domain.DefaultReminderMessage
	}

	reminder := &entity.Reminder{
		Message:   message,
		DueAt:     dueAt,
		CreatedAt: now,
		MessageID: inv.MessageID,
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := checkReminderCount(ctx, tx, inv.UserPlatformID); err != nil {
			return err
		}

		user, err := tx.User().GetOrCreate(ctx, inv.UserPlatformID)
		if err != nil {
			return err
		}

		channel, err := tx.Channel().GetOrCreate(ctx, inv.ChannelPlatformID)
		if err != nil {
			return err
		}
		reminder.ChannelID = channel.ID

		if inv.InGuild() {
			guild, err := tx.Guild().GetOrCreate(ctx, inv.GuildPlatformID)
			if err != nil {
				return err
			}
			reminder.GuildID = &guild.ID
		}

		if err := tx.Reminder().Create(ctx, reminder); err != nil {
			return err
		}

		added, err := tx.Reminder().AddFollower(ctx, reminder.ID, user.ID)
		if err != nil {
			return err
		}
		if !added {
			return fmt.Errorf("reminder %d could not be followed after insert", reminder.ID)
		}
		return nil
	})
	if err != nil {
		if domain.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	s.cache.Offer(entity.NextDue{ReminderID: reminder.ID, DueAt: reminder.DueAt})

	s.log.Info("reminder created",
		zap.Int64("reminder_id", reminder.ID),
		zap.String("user_id", inv.UserPlatformID),
		zap.Time("due_at", reminder.DueAt),
	)

	return reminder, nil
}

func (s *reminderService) AttachMessage(ctx context.Context, reminderID int64, messageID string) error {
	if err := s.dm.Reminder().SetMessageID(ctx, reminderID, messageID); err != nil {
		return fmt.Errorf("failed to attach message: %w", err)
	}
	return nil
}

// resolveOffset returns the override offset when given, else the user's stored one.
func (s *reminderService) resolveOffset(ctx context.Context, userPlatformID, override string) (int, error) {
	if strings.TrimSpace(override) != "" {
		return timeparse.ParseUTCOffset(override)
	}

	user, err := s.dm.User().GetByPlatformID(ctx, userPlatformID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return 0, nil
	}
	return user.UTCOffset, nil
}

func (s *reminderService) Follow(ctx context.Context, reminderID int64, inv entity.Invocation) error {
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := checkReminderCount(ctx, tx, inv.UserPlatformID); err != nil {
			return err
		}

		reminder, err := tx.Reminder().GetByID(ctx, reminderID)
		if err != nil {
			return err
		}
		if reminder == nil || !reminder.Active {
			return domain.ErrNotFoundOrExpired
		}

		user, err := tx.User().GetOrCreate(ctx, inv.UserPlatformID)
		if err != nil {
			return err
		}

		following, err := tx.Reminder().IsFollower(ctx, reminderID, user.ID)
		if err != nil {
			return err
		}
		if following {
			return domain.ErrAlreadyFollowing
		}

		added, err := tx.Reminder().AddFollower(ctx, reminderID, user.ID)
		if err != nil {
			return err
		}
		if !added {
			return domain.ErrNotFoundOrExpired
		}
		return nil
	})
	if err != nil {
		if domain.IsValidation(err) {
			return err
		}
		return fmt.Errorf("failed to follow reminder: %w", err)
	}

	s.log.Info("reminder followed",
		zap.Int64("reminder_id", reminderID),
		zap.String("user_id", inv.UserPlatformID),
	)
	return nil
}

// Unfollow removes the caller from the follower set. When the last follower
// leaves, the reminder is deactivated in the same transaction and cancelled
// is true.
func (s *reminderService) Unfollow(ctx context.Context, reminderID int64, inv entity.Invocation) (cancelled bool, err error) {
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		reminder, err := tx.Reminder().GetByID(ctx, reminderID)
		if err != nil {
			return err
		}
		if reminder == nil || !reminder.Active {
			return domain.ErrNotFoundOrExpired
		}

		user, err := tx.User().GetByPlatformID(ctx, inv.UserPlatformID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrNotFollowing
		}

		removed, err := tx.Reminder().RemoveFollower(ctx, reminderID, user.ID)
		if err != nil {
			return err
		}
		if !removed {
			return domain.ErrNotFollowing
		}

		remaining, err := tx.Reminder().CountFollowers(ctx, reminderID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		cancelled = true
		return tx.Reminder().Deactivate(ctx, reminderID)
	})
	if err != nil {
		if domain.IsValidation(err) {
			return false, err
		}
		return false, fmt.Errorf("failed to unfollow reminder: %w", err)
	}

	if cancelled {
		s.refreshCache(ctx)
		s.log.Info("reminder cancelled", zap.Int64("reminder_id", reminderID))
	} else {
		s.log.Info("reminder unfollowed",
			zap.Int64("reminder_id", reminderID),
			zap.String("user_id", inv.UserPlatformID),
		)
	}

	return cancelled, nil
}

// refreshCache clears the cache and repopulates it from the store. A failed
// query leaves the cache empty, which makes the sweep requery.
func (s *reminderService) refreshCache(ctx context.Context) {
	s.cache.Invalidate()

	next, err := s.dm.Reminder().GetNextActive(ctx)
	if err != nil {
		s.log.Warn("failed to requery next reminder", zap.Error(err))
		return
	}
	if next != nil {
		s.cache.Offer(*next)
	}
}

func (s *reminderService) List(ctx context.Context, in entity.ListReminderInput) (*entity.ReminderPage, error) {
	inv := in.Invocation

	total, err := s.dm.Reminder().CountActiveByUser(ctx, inv.UserPlatformID, inv.GuildPlatformID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active reminders: %w", err)
	}

	page := &entity.ReminderPage{Total: total}
	if total == 0 {
		return page, nil
	}

	page.Pages = (total + domain.ReminderListPageSize - 1) / domain.ReminderListPageSize
	page.Page = in.Page
	if page.Page < 0 || page.Page >= page.Pages {
		page.Page = 0
	}

	page.Reminders, err = s.dm.Reminder().ListActiveByUser(ctx,
		inv.UserPlatformID,
		inv.GuildPlatformID,
		domain.ReminderListPageSize,
		page.Page*domain.ReminderListPageSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	return page, nil
}
