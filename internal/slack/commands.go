package slack

import (
	"fmt"
	"strconv"
	"strings"
)

type CommandType string

const (
	CmdRemind   CommandType = "remind"
	CmdList     CommandType = "list"
	CmdFollow   CommandType = "follow"
	CmdUnfollow CommandType = "unfollow"
	CmdOffset   CommandType = "offset"
	CmdFallback CommandType = "fallback"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string

	// Set for CmdRemind.
	Timestamp string
	Message   string
}

// ParseCommand splits slash command text into a command. Any text that does
// not start with a known subcommand is a new reminder: the first token (or a
// double-quoted phrase such as "2024-03-10 12:00") is the timestamp and the
// rest is the message.
func ParseCommand(text string) (*Command, error) {
	text = strings.TrimSpace(text)
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch strings.ToLower(parts[0]) {
	case "list", "ls":
		cmd.Type = CmdList
	case "follow":
		cmd.Type = CmdFollow
	case "unfollow":
		cmd.Type = CmdUnfollow
	case "offset", "setoffset":
		cmd.Type = CmdOffset
	case "fallback", "setfallback":
		cmd.Type = CmdFallback
	case "help":
		cmd.Type = CmdHelp
	default:
		cmd.Type = CmdRemind
		cmd.Args = nil
		ts, msg, err := splitTimestamp(text)
		if err != nil {
			return nil, err
		}
		cmd.Timestamp, cmd.Message = ts, msg
	}

	return cmd, nil
}

func splitTimestamp(text string) (timestamp, message string, err error) {
	if !strings.HasPrefix(text, `"`) {
		timestamp, message, _ = strings.Cut(text, " ")
		return timestamp, strings.TrimSpace(message), nil
	}

	end := strings.Index(text[1:], `"`)
	if end < 0 {
		return "", "", fmt.Errorf("missing closing quote in timestamp")
	}
	timestamp = strings.TrimSpace(text[1 : end+1])
	if timestamp == "" {
		return "", "", fmt.Errorf("empty timestamp")
	}
	return timestamp, strings.TrimSpace(text[end+2:]), nil
}

// ReminderID reads the reminder ID argument of follow and unfollow. A leading
// "#" is accepted.
func (c *Command) ReminderID() (int64, error) {
	if len(c.Args) == 0 {
		return 0, fmt.Errorf("missing reminder ID")
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(c.Args[0], "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid reminder ID %q", c.Args[0])
	}
	return id, nil
}

// Page reads the optional 1-based page argument of list as a 0-based index.
func (c *Command) Page() (int, error) {
	if len(c.Args) == 0 {
		return 0, nil
	}
	page, err := strconv.Atoi(c.Args[0])
	if err != nil || page < 1 {
		return 0, fmt.Errorf("invalid page %q", c.Args[0])
	}
	return page - 1, nil
}

// ChannelID extracts a channel from a "<#C123|name>" reference, or returns
// fallback when no channel was given.
func (c *Command) ChannelID(fallback string) string {
	if len(c.Args) == 0 {
		return fallback
	}
	ref := strings.TrimPrefix(c.Args[0], "<#")
	ref = strings.TrimSuffix(ref, ">")
	ref, _, _ = strings.Cut(ref, "|")
	return ref
}

func GetHelpText() string {
	return `*Available commands:*

*Reminders:*
• ` + "`/remind <timestamp> [message]`" + ` - Create a reminder (ex: ` + "`/remind 2h30m stand up`" + `)
• ` + "`/remind \"2024-03-10 12:00\" [message]`" + ` - Quote timestamps that contain a space
• ` + "`/remind list [page]`" + ` - List your active reminders
• ` + "`/remind follow <id>`" + ` - Also get notified for someone else's reminder
• ` + "`/remind unfollow <id>`" + ` - Stop being notified for a reminder

*Settings:*
• ` + "`/remind offset <utc offset>`" + ` - Set your UTC offset (ex: ` + "`+02:00`" + `)
• ` + "`/remind fallback [#channel]`" + ` - Channel used when a direct message cannot be delivered

*Timestamps:* relative durations (` + "`1d2h`, `90`" + ` minutes), times (` + "`14:30`" + `), dates (` + "`2024-03-10`, `10/03`" + `) or both.`
}
