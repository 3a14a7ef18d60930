package handlers

import (
	"errors"
	"fmt"

	"github.com/diegoclair/reminder-bot/internal/domain"
)

const (
	msgNoReminders   = "You have no active reminders."
	msgInternalError = "Something went wrong, please try again later."
)

// errorText turns a command error into the message shown to the user.
// followHint is the command that follows a reminder on this platform.
func errorText(err error, reminderID int64, followHint string) string {
	switch {
	case errors.Is(err, domain.ErrDurationTooLong):
		return "Duration too long."
	case errors.Is(err, domain.ErrInvalidTimestamp):
		return "Invalid timestamp. Try something like `2h30m`, `14:30` or `2024-03-10 12:00`."
	case errors.Is(err, domain.ErrReminderInPast):
		return "Reminder must be in the future!"
	case errors.Is(err, domain.ErrReminderTooFar):
		return "Reminder duration too long."
	case errors.Is(err, domain.ErrTooManyReminders):
		return fmt.Sprintf("You can't have more than %d active reminders.", domain.MaxActiveReminders)
	case errors.Is(err, domain.ErrNotFoundOrExpired):
		return "Reminder does not exist or has already expired."
	case errors.Is(err, domain.ErrAlreadyFollowing):
		return "You are already following this reminder."
	case errors.Is(err, domain.ErrNotFollowing):
		return fmt.Sprintf("You are not following this reminder. Use `%s %d` to follow it.", followHint, reminderID)
	case errors.Is(err, domain.ErrInvalidUTCOffset):
		return "Invalid UTC offset. Use something like `+02:00`, `-5` or `UTC+5:45`."
	case errors.Is(err, domain.ErrNotInGuild):
		return "This command can only be used in a server."
	default:
		return msgInternalError
	}
}

func followText(reminderID int64) string {
	return fmt.Sprintf("You will now be notified for reminder #%d!", reminderID)
}

func unfollowText(reminderID int64, cancelled bool) string {
	if cancelled {
		return fmt.Sprintf("Reminder #%d has been removed.", reminderID)
	}
	return fmt.Sprintf("You will no longer be notified for reminder #%d", reminderID)
}

// pageFooter describes which entries of the list are shown. page is 0-based.
func pageFooter(page, pages, shown, total int) string {
	first := page*domain.ReminderListPageSize + 1
	return fmt.Sprintf("Page %d/%d - Showing entries %d-%d out of %d", page+1, pages, first, first+shown-1, total)
}
