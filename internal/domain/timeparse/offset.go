package timeparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/reminder-bot/internal/domain"
)

// ParseUTCOffset parses offsets such as "+2", "-03:30", "UTC+5:45" or "GMT"
// into signed minutes east of UTC.
func ParseUTCOffset(text string) (int, error) {
	text = strings.TrimSpace(text)
	m := utcOffset.FindStringSubmatch(text)
	if m == nil || text == "" {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidUTCOffset, text)
	}
	prefix, sign, hours, minutes := m[1], m[2], m[3], m[4]

	if hours == "" {
		// a bare "UTC" or "GMT" is a zero offset; anything else needs hours
		if prefix != "" && sign == "" && minutes == "" {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidUTCOffset, text)
	}

	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidUTCOffset, text)
	}
	var mins int
	if minutes != "" {
		mins, _ = strconv.Atoi(minutes)
	}

	if sign == "-" {
		if h > 12 {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidUTCOffset, text)
		}
		return -(h*60 + mins), nil
	}
	if h > 14 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidUTCOffset, text)
	}
	return h*60 + mins, nil
}

// FormatUTCOffset renders minutes east of UTC as "+hh:mm".
func FormatUTCOffset(minutes int) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}
