package timeparse

import "regexp"

// Each grammar is anchored and tried in a fixed order; the first match wins.
var (
	// 1y2mo3w4d5h6m7s; every component is optional but order is fixed.
	// Unit letters may be followed by more letters ("2years", "10min").
	relativeDuration = regexp.MustCompile(`^(?:(\d+)[yY][a-zA-Z]*)?` +
		`(?:(\d+)(?:M|mo)[a-zA-Z]*)?` +
		`(?:(\d+)[wW][a-zA-Z]*)?` +
		`(?:(\d+)[dD][a-zA-Z]*)?` +
		`(?:(\d+)[hH][a-zA-Z]*)?` +
		`(?:(\d+)m[a-zA-Z]*)?` +
		`(?:(\d+)[sS][a-zA-Z]*)?$`)

	// yyyy-MM-dd
	dateYMD = regexp.MustCompile(`^(2\d{3})[/\-.](1[012]|0?[1-9])[/\-.](3[01]|[12]\d|0?[1-9])$`)

	// dd-MM[-yy[yy]]
	dateDMY = regexp.MustCompile(`^(3[01]|[12]\d|0?[1-9])[/\-.](1[012]|0?[1-9])(?:[/\-.](2\d{3}|\d{2}))?$`)

	// HH:mm[:ss]
	timeOfDay = regexp.MustCompile(`^(2[0-3]|1\d|0?\d)[:.]([1-5]\d|0?\d)(?:[:.]([1-5]\d|0?\d))?$`)

	bareMinutes = regexp.MustCompile(`^(\d{1,6})$`)

	// epoch seconds, optionally wrapped as a platform timestamp: <t:1700000000:R>
	rawEpoch = regexp.MustCompile(`^(?:<.:)?(\d{10,16})(?:(?::.)?>)?$`)

	utcOffset = regexp.MustCompile(`(?i)^(UTC|GMT)?([+-])?(\d{1,2})?(?::?(00|30|45))?$`)
)

// seconds per relative duration component, in grammar order
var unitSeconds = [7]int64{
	31557600, // year, 365.25 days
	2629800,  // month, 1/12 year
	604800,   // week
	86400,    // day
	3600,     // hour
	60,       // minute
	1,        // second
}
