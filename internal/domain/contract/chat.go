package contract

//go:generate mockgen -package mocks -source=chat.go -destination=../../../mocks/chat_mock.go

import (
	"context"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

// ChatClient defines the chat platform operations the reminder core needs.
// Implementations exist for Discord and Slack.
type ChatClient interface {
	// UserName resolves a platform user ID to a display name.
	UserName(ctx context.Context, userID string) (string, error)

	// SendDirect sends a private notification. It fails when the user
	// cannot receive direct messages.
	SendDirect(ctx context.Context, userID string, n entity.Notification) error

	// SendChannel posts one notification to a channel mentioning every user in mentions.
	SendChannel(ctx context.Context, channelID string, n entity.Notification, mentions []string) error

	// MessageLink builds a link back to the message that created a reminder.
	MessageLink(guildID, channelID, messageID string) string
}
