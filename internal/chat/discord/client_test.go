package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	channelID string
	msg       *discordgo.MessageSend
}

type fakeSession struct {
	users      map[string]*discordgo.User
	dmBlocked  map[string]bool
	sendErr    error
	sent       []sentMessage
	dmChannels []string
}

func (f *fakeSession) User(userID string, _ ...discordgo.RequestOption) (*discordgo.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, errors.New("unknown user")
	}
	return u, nil
}

func (f *fakeSession) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.dmBlocked[recipientID] {
		return nil, errors.New("cannot send messages to this user")
	}
	f.dmChannels = append(f.dmChannels, recipientID)
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, msg: data})
	return &discordgo.Message{ID: "1", ChannelID: channelID}, nil
}

var testNotification = entity.Notification{
	ReminderID: 42,
	Greeting:   "Ada",
	Message:    "deploy the thing",
	DueAt:      time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	Link:       "https://discord.com/channels/1/2/3",
}

func TestClient_UserName(t *testing.T) {
	fake := &fakeSession{users: map[string]*discordgo.User{
		"1": {ID: "1", Username: "ada", GlobalName: "Ada Lovelace"},
		"2": {ID: "2", Username: "grace"},
	}}
	c := &Client{session: fake}

	tests := []struct {
		name    string
		userID  string
		want    string
		wantErr bool
	}{
		{name: "Should prefer the global name", userID: "1", want: "Ada Lovelace"},
		{name: "Should fall back to the username", userID: "2", want: "grace"},
		{name: "Should return error for unknown users", userID: "3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.UserName(context.Background(), tt.userID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_SendDirect(t *testing.T) {
	t.Run("Should send the notification embed to the dm channel", func(t *testing.T) {
		fake := &fakeSession{}
		c := &Client{session: fake}

		require.NoError(t, c.SendDirect(context.Background(), "7", testNotification))

		require.Len(t, fake.sent, 1)
		assert.Equal(t, "dm-7", fake.sent[0].channelID)
		require.Len(t, fake.sent[0].msg.Embeds, 1)
		embed := fake.sent[0].msg.Embeds[0]
		assert.Equal(t, "Reminder notification!", embed.Title)
		assert.Equal(t,
			"Hey Ada! <t:1710072000:R> on <t:1710072000:F>, you asked me to remind you of deploy the thing.\n\n[View Message](https://discord.com/channels/1/2/3)",
			embed.Description,
		)
		assert.Empty(t, fake.sent[0].msg.Content)
	})

	t.Run("Should return error when the user blocks dms", func(t *testing.T) {
		fake := &fakeSession{dmBlocked: map[string]bool{"7": true}}
		c := &Client{session: fake}

		err := c.SendDirect(context.Background(), "7", testNotification)
		assert.Error(t, err)
		assert.Empty(t, fake.sent)
	})

	t.Run("Should return error when the message cannot be sent", func(t *testing.T) {
		fake := &fakeSession{sendErr: errors.New("forbidden")}
		c := &Client{session: fake}

		err := c.SendDirect(context.Background(), "7", testNotification)
		assert.ErrorContains(t, err, "forbidden")
	})
}

func TestClient_SendChannel(t *testing.T) {
	fake := &fakeSession{}
	c := &Client{session: fake}

	n := testNotification
	n.Greeting = ""
	require.NoError(t, c.SendChannel(context.Background(), "99", n, []string{"7", "8"}))

	require.Len(t, fake.sent, 1)
	sent := fake.sent[0]
	assert.Equal(t, "99", sent.channelID)
	assert.Equal(t, "<@7> <@8>", sent.msg.Content)
	require.NotNil(t, sent.msg.AllowedMentions)
	assert.Equal(t, []string{"7", "8"}, sent.msg.AllowedMentions.Users)
	assert.Contains(t, sent.msg.Embeds[0].Description, "Hey! <t:1710072000:R>")
}

func TestMessageLink(t *testing.T) {
	assert.Equal(t, "https://discord.com/channels/1/2/3", MessageLink("1", "2", "3"))
	assert.Equal(t, "https://discord.com/channels/@me/2/3", MessageLink("", "2", "3"))
}

func TestNotificationEmbed_WithoutLink(t *testing.T) {
	n := testNotification
	n.Link = ""

	embed := NotificationEmbed(n)
	assert.NotContains(t, embed.Description, "View Message")
	assert.Equal(t, "Reminder #42", embed.Footer.Text)
	assert.Equal(t, BotColor, embed.Color)
}
