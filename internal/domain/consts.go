package domain

import "time"

// Reminder limits
const (
	// MaxActiveReminders is how many active reminders a single user may follow at once.
	MaxActiveReminders = 25

	// MaxReminderHorizon is the furthest into the future a reminder may be scheduled.
	MaxReminderHorizon = 34560000 * time.Second
)

// DefaultSweepInterval is how often the delivery sweep checks for due reminders.
const DefaultSweepInterval = 5 * time.Second

// ReminderListPageSize is the number of reminders shown per list page.
const ReminderListPageSize = 8

// DefaultReminderMessage is used when a reminder is created without a message.
const DefaultReminderMessage = "something"
