package timeparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain"
)

const daySeconds = 86400

// Parse resolves user text into an absolute UTC instant with second precision.
//
// offsetMinutes is the user's UTC offset; it only affects calendar dates and
// wall-clock times. Relative durations, bare minute counts and raw epoch
// timestamps are offset independent.
func Parse(text string, offsetMinutes int, now time.Time) (time.Time, error) {
	now = now.UTC().Truncate(time.Second)

	fields := strings.Fields(text)
	switch len(fields) {
	case 1:
		return parseSingle(fields[0], offsetMinutes, now)
	case 2:
		return parseDateTime(fields[0], fields[1], offsetMinutes, now)
	default:
		return time.Time{}, invalid(text)
	}
}

func parseSingle(token string, offsetMinutes int, now time.Time) (time.Time, error) {
	if m := relativeDuration.FindStringSubmatch(token); m != nil {
		return parseRelative(token, m[1:], now)
	}

	if d, ok, err := parseDate(token); ok {
		if err != nil {
			return time.Time{}, err
		}
		return d.resolve(clock{}, offsetMinutes, now)
	}

	if c, ok, err := parseClock(token); ok {
		if err != nil {
			return time.Time{}, err
		}
		return nextClock(c, offsetMinutes, now)
	}

	if m := bareMinutes.FindStringSubmatch(token); m != nil {
		minutes, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return time.Time{}, invalid(token)
		}
		return addSeconds(now, minutes*60)
	}

	if m := rawEpoch.FindStringSubmatch(token); m != nil {
		sec, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return time.Time{}, invalid(token)
		}
		return time.Unix(sec, 0).UTC(), nil
	}

	return time.Time{}, invalid(token)
}

// parseDateTime accepts a date and a time of day in either order.
func parseDateTime(first, second string, offsetMinutes int, now time.Time) (time.Time, error) {
	for _, pair := range [2][2]string{{first, second}, {second, first}} {
		d, ok, err := parseDate(pair[0])
		if !ok {
			continue
		}
		if err != nil {
			return time.Time{}, err
		}
		c, ok, err := parseClock(pair[1])
		if !ok {
			continue
		}
		if err != nil {
			return time.Time{}, err
		}
		return d.resolve(c, offsetMinutes, now)
	}
	return time.Time{}, invalid(first + " " + second)
}

func parseRelative(token string, groups []string, now time.Time) (time.Time, error) {
	var (
		total   int64
		present bool
	)
	for i, g := range groups {
		if g == "" {
			continue
		}
		present = true

		n, err := strconv.ParseInt(g, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return time.Time{}, tooLong(token)
			}
			return time.Time{}, invalid(token)
		}
		part, ok := mulChecked(n, unitSeconds[i])
		if !ok {
			return time.Time{}, tooLong(token)
		}
		total, ok = addChecked(total, part)
		if !ok {
			return time.Time{}, tooLong(token)
		}
	}
	if !present {
		return time.Time{}, invalid(token)
	}

	t, err := addSeconds(now, total)
	if err != nil {
		return time.Time{}, tooLong(token)
	}
	return t, nil
}

type date struct {
	year, month, day int
	hasYear          bool
}

type clock struct {
	hour, minute, second int
}

// parseDate reports ok when token has the shape of a date.
func parseDate(token string) (d date, ok bool, err error) {
	if m := dateYMD.FindStringSubmatch(token); m != nil {
		v, err := atoiAll(m[1:4])
		if err != nil {
			return d, true, invalid(token)
		}
		return date{year: v[0], month: v[1], day: v[2], hasYear: true}, true, nil
	}
	if m := dateDMY.FindStringSubmatch(token); m != nil {
		v, err := atoiAll(m[1:3])
		if err != nil {
			return d, true, invalid(token)
		}
		d = date{day: v[0], month: v[1]}
		if m[3] != "" {
			year, err := strconv.Atoi(m[3])
			if err != nil {
				return d, true, invalid(token)
			}
			if year < 100 {
				year += 2000
			}
			d.year, d.hasYear = year, true
		}
		return d, true, nil
	}
	return d, false, nil
}

func parseClock(token string) (c clock, ok bool, err error) {
	m := timeOfDay.FindStringSubmatch(token)
	if m == nil {
		return c, false, nil
	}
	v, err := atoiAll(m[1:3])
	if err != nil {
		return c, true, invalid(token)
	}
	c = clock{hour: v[0], minute: v[1]}
	if m[3] != "" {
		if c.second, err = strconv.Atoi(m[3]); err != nil {
			return c, true, invalid(token)
		}
	}
	return c, true, nil
}

// resolve converts a local calendar date and wall-clock time at the given
// offset to UTC. A date without a year is the next occurrence of that date.
func (d date) resolve(c clock, offsetMinutes int, now time.Time) (time.Time, error) {
	if d.hasYear {
		return civil(d.year, d.month, d.day, c, offsetMinutes)
	}

	year := localNow(now, offsetMinutes).Year()
	t, err := civil(year, d.month, d.day, c, offsetMinutes)
	if err == nil && t.After(now) {
		return t, nil
	}
	return civil(year+1, d.month, d.day, c, offsetMinutes)
}

func nextClock(c clock, offsetMinutes int, now time.Time) (time.Time, error) {
	local := localNow(now, offsetMinutes)
	t, err := civil(local.Year(), int(local.Month()), local.Day(), c, offsetMinutes)
	if err != nil {
		return time.Time{}, err
	}
	if !t.After(now) {
		t = t.Add(daySeconds * time.Second)
	}
	return t, nil
}

func civil(year, month, day int, c clock, offsetMinutes int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, c.hour, c.minute, c.second, 0, time.UTC)
	// time.Date normalises 31/02 into March; reject instead.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", domain.ErrInvalidTimestamp, year, month, day)
	}
	return t.Add(-time.Duration(offsetMinutes) * time.Minute), nil
}

func localNow(now time.Time, offsetMinutes int) time.Time {
	return now.Add(time.Duration(offsetMinutes) * time.Minute)
}

func addSeconds(now time.Time, seconds int64) (time.Time, error) {
	sum, ok := addChecked(now.Unix(), seconds)
	if !ok {
		return time.Time{}, domain.ErrDurationTooLong
	}
	return time.Unix(sum, 0).UTC(), nil
}

func atoiAll(in []string) ([]int, error) {
	out := make([]int, len(in))
	for i, s := range in {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

func addChecked(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

func invalid(text string) error {
	return fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, text)
}

func tooLong(text string) error {
	return fmt.Errorf("%w: %q", domain.ErrDurationTooLong, text)
}
