package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

// BotColor is the embed accent used for every bot message.
const BotColor = 0x5865F2

// session is the part of *discordgo.Session the client needs.
type session interface {
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Client implements contract.ChatClient on top of a Discord session.
type Client struct {
	session session
}

func New(s *discordgo.Session) *Client {
	return &Client{session: s}
}

func (c *Client) UserName(ctx context.Context, userID string) (string, error) {
	u, err := c.session.User(userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	if u.GlobalName != "" {
		return u.GlobalName, nil
	}
	return u.Username, nil
}

func (c *Client) SendDirect(ctx context.Context, userID string, n entity.Notification) error {
	ch, err := c.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open dm with %s: %w", userID, err)
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{NotificationEmbed(n)},
	}
	if _, err := c.session.ChannelMessageSendComplex(ch.ID, msg, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send dm to %s: %w", userID, err)
	}
	return nil
}

func (c *Client) SendChannel(ctx context.Context, channelID string, n entity.Notification, mentions []string) error {
	pings := make([]string, 0, len(mentions))
	for _, id := range mentions {
		pings = append(pings, Mention(id))
	}

	msg := &discordgo.MessageSend{
		Content:         strings.Join(pings, " "),
		Embeds:          []*discordgo.MessageEmbed{NotificationEmbed(n)},
		AllowedMentions: &discordgo.MessageAllowedMentions{Users: mentions},
	}
	if _, err := c.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send to channel %s: %w", channelID, err)
	}
	return nil
}

func (c *Client) MessageLink(guildID, channelID, messageID string) string {
	return MessageLink(guildID, channelID, messageID)
}

// MessageLink points at a message. Private channels use "@me" in place of a guild.
func MessageLink(guildID, channelID, messageID string) string {
	if guildID == "" {
		guildID = "@me"
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

// Mention renders a user ping.
func Mention(userID string) string {
	return "<@" + userID + ">"
}

// Timestamp renders t as a Discord timestamp tag. Style is one of the
// single-letter formats such as "R", "F", "f" or "t".
func Timestamp(t time.Time, style string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}

// NotificationEmbed renders a reminder notification. An empty greeting
// produces the anonymous "Hey!" form used in fallback channels.
func NotificationEmbed(n entity.Notification) *discordgo.MessageEmbed {
	hey := "Hey!"
	if n.Greeting != "" {
		hey = fmt.Sprintf("Hey %s!", n.Greeting)
	}

	description := fmt.Sprintf("%s %s on %s, you asked me to remind you of %s.",
		hey, Timestamp(n.DueAt, "R"), Timestamp(n.DueAt, "F"), n.Message)
	if n.Link != "" {
		description += fmt.Sprintf("\n\n[View Message](%s)", n.Link)
	}

	return &discordgo.MessageEmbed{
		Title:       "Reminder notification!",
		Description: description,
		Color:       BotColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Reminder #%d", n.ReminderID)},
	}
}
