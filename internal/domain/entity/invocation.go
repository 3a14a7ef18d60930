package entity

import "time"

// Invocation describes who ran a command and where.
type Invocation struct {
	UserPlatformID    string
	ChannelPlatformID string
	GuildPlatformID   string // empty for private contexts
	MessageID         string
	InvokedAt         time.Time
}

// InGuild reports whether the command was run inside a server.
func (i Invocation) InGuild() bool {
	return i.GuildPlatformID != ""
}

// CreateReminderInput is the user input of the create command.
type CreateReminderInput struct {
	Invocation Invocation
	Timestamp  string
	Message    string
	// Offset overrides the user's stored UTC offset for this reminder only.
	Offset string
}

// ListReminderInput selects a page of the invoking user's active reminders.
type ListReminderInput struct {
	Invocation Invocation
	Page       int
}

// ReminderPage is one page of a reminder list.
type ReminderPage struct {
	Reminders []*ReminderListing
	Page      int
	Pages     int
	Total     int
}
