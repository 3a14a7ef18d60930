package contract

//go:generate mockgen -package mocks -source=repo.go -destination=../../../mocks/repo_mock.go

import (
	"context"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Reminder() ReminderRepo
	User() UserRepo
	Channel() ChannelRepo
	Guild() GuildRepo
}

// ReminderRepo defines the contract for reminder repository
type ReminderRepo interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	GetByID(ctx context.Context, id int64) (*entity.Reminder, error)
	Deactivate(ctx context.Context, id int64) error
	SetMessageID(ctx context.Context, id int64, messageID string) error
	GetNextActive(ctx context.Context) (*entity.NextDue, error)
	GetDelivery(ctx context.Context, id int64) (*entity.Delivery, error)
	// CountActiveByUser counts active reminders the user follows. An empty
	// guildPlatformID counts across every server and private channel.
	CountActiveByUser(ctx context.Context, userPlatformID, guildPlatformID string) (int, error)
	ListActiveByUser(ctx context.Context, userPlatformID, guildPlatformID string, limit, offset int) ([]*entity.ReminderListing, error)

	// AddFollower returns false when the reminder is missing or inactive.
	AddFollower(ctx context.Context, reminderID, userID int64) (bool, error)
	// RemoveFollower returns false when the user was not following.
	RemoveFollower(ctx context.Context, reminderID, userID int64) (bool, error)
	IsFollower(ctx context.Context, reminderID, userID int64) (bool, error)
	CountFollowers(ctx context.Context, reminderID int64) (int, error)
}

// UserRepo defines the contract for user repository
type UserRepo interface {
	GetOrCreate(ctx context.Context, platformID string) (*entity.User, error)
	GetByPlatformID(ctx context.Context, platformID string) (*entity.User, error)
	SetUTCOffset(ctx context.Context, userID int64, minutes int) error
}

// ChannelRepo defines the contract for channel repository
type ChannelRepo interface {
	GetOrCreate(ctx context.Context, platformID string) (*entity.Channel, error)
}

// GuildRepo defines the contract for guild repository
type GuildRepo interface {
	GetOrCreate(ctx context.Context, platformID string) (*entity.Guild, error)
	SetFallbackChannel(ctx context.Context, guildID, channelID int64) error
}
