package entity

import "time"

// Reminder is a one-shot scheduled note. Reminders are never deleted; once
// Active is false they are terminal.
type Reminder struct {
	ID        int64
	Message   string
	DueAt     time.Time
	CreatedAt time.Time
	MessageID string
	ChannelID int64
	GuildID   *int64
	Active    bool
}

// NextDue is the slot held by the next-due cache.
type NextDue struct {
	ReminderID int64
	DueAt      time.Time
}

// ReminderListing is a reminder as shown in a user's reminder list.
type ReminderListing struct {
	ID                int64
	Message           string
	DueAt             time.Time
	MessageID         string
	ChannelPlatformID string
	GuildPlatformID   string
}

// Delivery holds everything the sweep needs to notify a reminder's followers.
type Delivery struct {
	ReminderID        int64
	Message           string
	DueAt             time.Time
	CreatedAt         time.Time
	MessageID         string
	ChannelPlatformID string
	GuildPlatformID   string
	FallbackChannelID string
	Active            bool
	Followers         []string
}

// Notification is the platform-neutral content of a reminder notification.
type Notification struct {
	ReminderID int64
	Greeting   string
	Message    string
	DueAt      time.Time
	Link       string
}
