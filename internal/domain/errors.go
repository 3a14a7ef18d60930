package domain

import "errors"

// Validation errors. These are shown to the invoking user as the command
// result and are not logged as failures.
var (
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrDurationTooLong   = errors.New("duration too long")
	ErrReminderInPast    = errors.New("reminder must be in the future")
	ErrReminderTooFar    = errors.New("reminder is too far in the future")
	ErrTooManyReminders  = errors.New("too many active reminders")
	ErrNotFoundOrExpired = errors.New("reminder does not exist or has already expired")
	ErrAlreadyFollowing  = errors.New("already following this reminder")
	ErrNotFollowing      = errors.New("not following this reminder")
	ErrInvalidUTCOffset  = errors.New("invalid utc offset")
	ErrNotInGuild        = errors.New("command can only be used in a server")
)

// IsValidation reports whether err is one of the expected user-facing errors.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidTimestamp,
		ErrDurationTooLong,
		ErrReminderInPast,
		ErrReminderTooFar,
		ErrTooManyReminders,
		ErrNotFoundOrExpired,
		ErrAlreadyFollowing,
		ErrNotFollowing,
		ErrInvalidUTCOffset,
		ErrNotInGuild,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
