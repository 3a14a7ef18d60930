package contract

//go:generate mockgen -package mocks -source=service.go -destination=../../../mocks/service_mock.go

import (
	"context"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

type ReminderService interface {
	Create(ctx context.Context, in entity.CreateReminderInput) (*entity.Reminder, error)
	// AttachMessage points the reminder's context link at messageID, for
	// platforms that only learn the message after replying to the command.
	AttachMessage(ctx context.Context, reminderID int64, messageID string) error
	Follow(ctx context.Context, reminderID int64, inv entity.Invocation) error
	Unfollow(ctx context.Context, reminderID int64, inv entity.Invocation) (cancelled bool, err error)
	List(ctx context.Context, in entity.ListReminderInput) (*entity.ReminderPage, error)
	SetUTCOffset(ctx context.Context, inv entity.Invocation, offset string) (int, error)
	SetFallbackChannel(ctx context.Context, inv entity.Invocation, channelPlatformID string) error
}
