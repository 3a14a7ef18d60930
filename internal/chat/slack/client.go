package slack

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackutilsx"
)

// api is the part of *slack.Client the client needs.
type api interface {
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Client implements contract.ChatClient on top of the Slack Web API.
type Client struct {
	api api
}

func New(c *slack.Client) *Client {
	return &Client{api: c}
}

func (c *Client) UserName(ctx context.Context, userID string) (string, error) {
	u, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}

	for _, name := range []string{u.Profile.DisplayName, u.RealName, u.Name} {
		if name != "" {
			return name, nil
		}
	}
	return "", nil
}

func (c *Client) SendDirect(ctx context.Context, userID string, n entity.Notification) error {
	ch, _, _, err := c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users:    []string{userID},
		ReturnIM: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open dm with %s: %w", userID, err)
	}

	if _, _, err := c.api.PostMessageContext(ctx, ch.ID, notificationOptions(n, "")...); err != nil {
		return fmt.Errorf("failed to send dm to %s: %w", userID, err)
	}
	return nil
}

func (c *Client) SendChannel(ctx context.Context, channelID string, n entity.Notification, mentions []string) error {
	pings := make([]string, 0, len(mentions))
	for _, id := range mentions {
		pings = append(pings, Mention(id))
	}

	if _, _, err := c.api.PostMessageContext(ctx, channelID, notificationOptions(n, strings.Join(pings, " "))...); err != nil {
		return fmt.Errorf("failed to send to channel %s: %w", channelID, err)
	}
	return nil
}

// MessageLink opens the channel the reminder was created in. Slash
// commands carry no message timestamp so a permalink is not available.
func (c *Client) MessageLink(teamID, channelID, _ string) string {
	q := url.Values{}
	if teamID != "" {
		q.Set("team", teamID)
	}
	q.Set("channel", channelID)
	return "https://slack.com/app_redirect?" + q.Encode()
}

// Mention renders a user ping.
func Mention(userID string) string {
	return "<@" + userID + ">"
}

// Date renders t with Slack's date formatting, falling back to UTC text
// on clients that cannot localise it.
func Date(t time.Time) string {
	return fmt.Sprintf("<!date^%d^{date_short_pretty} at {time}|%s>", t.Unix(), t.UTC().Format("Jan 2, 2006 15:04 UTC"))
}

// NotificationText renders a reminder notification as mrkdwn.
func NotificationText(n entity.Notification) string {
	hey := "Hey!"
	if n.Greeting != "" {
		hey = fmt.Sprintf("Hey %s!", n.Greeting)
	}

	text := fmt.Sprintf("%s On %s you asked me to remind you of %s.", hey, Date(n.DueAt), slackutilsx.EscapeMessage(n.Message))
	if n.Link != "" {
		text += fmt.Sprintf("\n\n<%s|View channel>", n.Link)
	}
	return text
}

func notificationOptions(n entity.Notification, pings string) []slack.MsgOption {
	body := NotificationText(n)
	fallback := body
	if pings != "" {
		fallback = pings + " " + body
	}

	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*Reminder notification!*", false, false), nil, nil),
	}
	if pings != "" {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, pings, false, false), nil, nil))
	}
	blocks = append(blocks,
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, body, false, false), nil, nil),
		slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("Reminder #%d", n.ReminderID), false, false)),
	)

	return []slack.MsgOption{
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionDisableLinkUnfurl(),
	}
}
