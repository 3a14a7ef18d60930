package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/reminder-bot/internal/chat/discord"
	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/diegoclair/reminder-bot/internal/domain/timeparse"
	"go.uber.org/zap"
)

const (
	interactionTimeout = 10 * time.Second
	listButtonPrefix   = "reminderlist"
	remindModalPrefix  = "remindmodal"

	modalTimestampInput = "timestamp"
	modalMessageInput   = "message"
	maxModalValue       = 4000
)

type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponse(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordHandler struct {
	session   interactionResponder
	reminders contract.ReminderService
	log       *zap.Logger
}

func NewDiscordHandler(s *discordgo.Session, reminders contract.ReminderService, log *zap.Logger) *DiscordHandler {
	return newDiscordHandler(s, reminders, log)
}

func newDiscordHandler(s interactionResponder, reminders contract.ReminderService, log *zap.Logger) *DiscordHandler {
	return &DiscordHandler{
		session:   s,
		reminders: reminders,
		log:       log.Named("discord"),
	}
}

// OnInteraction is registered with Session.AddHandler.
func (h *DiscordHandler) OnInteraction(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	h.Handle(ctx, ic.Interaction)
}

func (h *DiscordHandler) Handle(ctx context.Context, i *discordgo.Interaction) {
	var (
		resp    *discordgo.InteractionResponse
		created int64
	)
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == cmdRemindMe {
			resp, created = h.handleRemindMe(ctx, i)
		} else {
			resp = h.handleCommand(ctx, i)
		}
	case discordgo.InteractionMessageComponent:
		resp = h.handleComponent(ctx, i)
	case discordgo.InteractionModalSubmit:
		resp = h.handleRemindModal(ctx, i)
	default:
		return
	}

	if err := h.session.InteractionRespond(i, resp, discordgo.WithContext(ctx)); err != nil {
		h.log.Error("failed to respond to interaction",
			zap.String("interaction_id", i.ID),
			zap.Error(err),
		)
		return
	}

	if created != 0 {
		h.attachReply(ctx, i, created)
	}
}

// attachReply points the context link of a reminder created by a slash
// command at the bot's reply, the only message that command produces.
func (h *DiscordHandler) attachReply(ctx context.Context, i *discordgo.Interaction, reminderID int64) {
	log := h.log.With(zap.Int64("reminder_id", reminderID), zap.String("interaction_id", i.ID))

	msg, err := h.session.InteractionResponse(i, discordgo.WithContext(ctx))
	if err != nil {
		log.Warn("failed to fetch interaction reply", zap.Error(err))
		return
	}
	if err := h.reminders.AttachMessage(ctx, reminderID, msg.ID); err != nil {
		log.Warn("failed to attach reply to reminder", zap.Error(err))
	}
}

func (h *DiscordHandler) handleCommand(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	data := i.ApplicationCommandData()
	opts := optionMap(data.Options)
	inv := invocationFrom(i)

	switch data.Name {
	case cmdRemindMessage:
		return remindModal(data)
	case cmdReminderList:
		page := 0
		if o, ok := opts["start_page"]; ok {
			page = int(o.IntValue()) - 1
		}
		return h.listResponse(ctx, inv, page, discordgo.InteractionResponseChannelMessageWithSource)
	case cmdFollow, cmdUnfollow:
		o, ok := opts["id"]
		if !ok {
			return ephemeral("Please provide a reminder ID.")
		}
		if data.Name == cmdFollow {
			return h.handleFollow(ctx, inv, o.IntValue())
		}
		return h.handleUnfollow(ctx, inv, o.IntValue())
	case cmdSetOffset:
		o, ok := opts["offset"]
		if !ok {
			return ephemeral("Please provide a UTC offset.")
		}
		return h.handleSetOffset(ctx, i, inv, o.StringValue())
	case cmdSetFallback:
		return h.handleSetFallback(ctx, i, inv, data, opts)
	default:
		return ephemeral(fmt.Sprintf("Unknown command %q", data.Name))
	}
}

// handleRemindMe also returns the ID of the created reminder, or 0.
func (h *DiscordHandler) handleRemindMe(ctx context.Context, i *discordgo.Interaction) (*discordgo.InteractionResponse, int64) {
	opts := optionMap(i.ApplicationCommandData().Options)
	inv := invocationFrom(i)

	ts, ok := opts["timestamp"]
	if !ok {
		return ephemeral("Please provide a timestamp."), 0
	}

	in := entity.CreateReminderInput{
		Invocation: inv,
		Timestamp:  ts.StringValue(),
	}
	if o, ok := opts["message"]; ok {
		in.Message = o.StringValue()
	}
	if o, ok := opts["offset"]; ok {
		in.Offset = o.StringValue()
	}

	r, err := h.reminders.Create(ctx, in)
	if err != nil {
		return h.errorResponse(inv, err, 0), 0
	}
	return createdResponse(i, r), r.ID
}

// remindModal asks for the timestamp of a reminder about the target message
// of a context menu command. The message input starts with its content.
func remindModal(data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	var content string
	if data.Resolved != nil {
		if m, ok := data.Resolved.Messages[data.TargetID]; ok && m != nil {
			content = truncate(m.Content, maxModalValue)
		}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: remindModalPrefix + ":" + data.TargetID,
			Title:    cmdRemindMessage,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    modalTimestampInput,
						Label:       "When",
						Style:       discordgo.TextInputShort,
						Placeholder: "2h30m, 14:00 or 2024-03-10 14:00",
						Required:    true,
						MaxLength:   100,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  modalMessageInput,
						Label:     "Message",
						Style:     discordgo.TextInputParagraph,
						Value:     content,
						MaxLength: maxModalValue,
					},
				}},
			},
		},
	}
}

// handleRemindModal creates the reminder submitted from remindModal. Its
// context link points at the message the menu was opened on.
func (h *DiscordHandler) handleRemindModal(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	data := i.ModalSubmitData()
	messageID, ok := strings.CutPrefix(data.CustomID, remindModalPrefix+":")
	if !ok || messageID == "" {
		return ephemeral("This form is no longer supported.")
	}

	inv := invocationFrom(i)
	inv.MessageID = messageID

	values := modalValues(data.Components)
	r, err := h.reminders.Create(ctx, entity.CreateReminderInput{
		Invocation: inv,
		Timestamp:  values[modalTimestampInput],
		Message:    values[modalMessageInput],
	})
	if err != nil {
		return h.errorResponse(inv, err, 0)
	}
	return createdResponse(i, r)
}

func createdResponse(i *discordgo.Interaction, r *entity.Reminder) *discordgo.InteractionResponse {
	embed := &discordgo.MessageEmbed{
		Author: embedAuthor(i),
		Color:  discord.BotColor,
		Title:  fmt.Sprintf("Reminder #%d created.", r.ID),
		Description: fmt.Sprintf("I will remind you %s on %s about %s",
			discord.Timestamp(r.DueAt, "R"), discord.Timestamp(r.DueAt, "F"), r.Message),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Tip: use \"/%s %d\" to also get notified for this reminder!", cmdFollow, r.ID),
		},
	}
	return message(&discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}})
}

func (h *DiscordHandler) handleFollow(ctx context.Context, inv entity.Invocation, id int64) *discordgo.InteractionResponse {
	if err := h.reminders.Follow(ctx, id, inv); err != nil {
		return h.errorResponse(inv, err, id)
	}
	return message(&discordgo.InteractionResponseData{Content: followText(id)})
}

func (h *DiscordHandler) handleUnfollow(ctx context.Context, inv entity.Invocation, id int64) *discordgo.InteractionResponse {
	cancelled, err := h.reminders.Unfollow(ctx, id, inv)
	if err != nil {
		return h.errorResponse(inv, err, id)
	}
	if cancelled {
		return message(&discordgo.InteractionResponseData{Content: unfollowText(id, true)})
	}
	return ephemeral(unfollowText(id, false))
}

func (h *DiscordHandler) handleSetOffset(ctx context.Context, i *discordgo.Interaction, inv entity.Invocation, offset string) *discordgo.InteractionResponse {
	minutes, err := h.reminders.SetUTCOffset(ctx, inv, offset)
	if err != nil {
		return h.errorResponse(inv, err, 0)
	}

	day := inv.InvokedAt
	if day.IsZero() {
		day = time.Now().UTC()
	}
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)
	local := noon.Add(-time.Duration(minutes) * time.Minute)

	embed := &discordgo.MessageEmbed{
		Author:      embedAuthor(i),
		Color:       discord.BotColor,
		Title:       "UTC offset set!",
		Description: fmt.Sprintf("12:00 in UTC%s is %s in your local time.", timeparse.FormatUTCOffset(minutes), discord.Timestamp(local, "t")),
	}
	return message(&discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}})
}

func (h *DiscordHandler) handleSetFallback(ctx context.Context, i *discordgo.Interaction, inv entity.Invocation, data discordgo.ApplicationCommandInteractionData, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {
	if inv.InGuild() && (i.Member == nil || i.Member.Permissions&discordgo.PermissionManageChannels == 0) {
		return ephemeral("You need the Manage Channels permission to do that.")
	}

	channelID := inv.ChannelPlatformID
	if o, ok := opts["channel"]; ok {
		channelID = o.ChannelValue(nil).ID
		if data.Resolved != nil {
			if ch, ok := data.Resolved.Channels[channelID]; ok && ch.Type != discordgo.ChannelTypeGuildText {
				return ephemeral("Only text channels can be used as a fallback channel.")
			}
		}
	}

	if err := h.reminders.SetFallbackChannel(ctx, inv, channelID); err != nil {
		return h.errorResponse(inv, err, 0)
	}
	return message(&discordgo.InteractionResponseData{
		Content: fmt.Sprintf("Reminders that cannot be sent as a direct message will now be posted in <#%s>.", channelID),
	})
}

// handleComponent serves the list pagination buttons.
func (h *DiscordHandler) handleComponent(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	ownerID, page, ok := parseListButton(i.MessageComponentData().CustomID)
	if !ok {
		return ephemeral("This button is no longer supported.")
	}

	inv := invocationFrom(i)
	if inv.UserPlatformID != ownerID {
		return ephemeral("Only the person who requested this list can change its page.")
	}
	return h.listResponse(ctx, inv, page, discordgo.InteractionResponseUpdateMessage)
}

func (h *DiscordHandler) listResponse(ctx context.Context, inv entity.Invocation, page int, kind discordgo.InteractionResponseType) *discordgo.InteractionResponse {
	result, err := h.reminders.List(ctx, entity.ListReminderInput{Invocation: inv, Page: page})
	if err != nil {
		return h.errorResponse(inv, err, 0)
	}

	embed := &discordgo.MessageEmbed{
		Color: discord.BotColor,
		Title: "Your reminders",
	}
	data := &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{},
	}

	if result.Total == 0 {
		embed.Description = msgNoReminders
		return &discordgo.InteractionResponse{Type: kind, Data: data}
	}

	lines := make([]string, 0, len(result.Reminders))
	for _, r := range result.Reminders {
		link := discord.MessageLink(r.GuildPlatformID, r.ChannelPlatformID, r.MessageID)
		lines = append(lines, fmt.Sprintf("ID: %d · %s · `%s` ([Context](%s))", r.ID, discord.Timestamp(r.DueAt, "f"), r.Message, link))
	}
	embed.Description = strings.Join(lines, "\n")
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: pageFooter(result.Page, result.Pages, len(result.Reminders), result.Total),
	}

	if result.Pages > 1 {
		prev := (result.Page - 1 + result.Pages) % result.Pages
		next := (result.Page + 1) % result.Pages
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Previous", Style: discordgo.SecondaryButton, CustomID: listButtonID(inv.UserPlatformID, prev, "prev")},
				discordgo.Button{Label: "Next", Style: discordgo.PrimaryButton, CustomID: listButtonID(inv.UserPlatformID, next, "next")},
			}},
		}
	}

	return &discordgo.InteractionResponse{Type: kind, Data: data}
}

func (h *DiscordHandler) errorResponse(inv entity.Invocation, err error, reminderID int64) *discordgo.InteractionResponse {
	if !domain.IsValidation(err) {
		h.log.Error("command failed",
			zap.String("user_id", inv.UserPlatformID),
			zap.String("channel_id", inv.ChannelPlatformID),
			zap.String("guild_id", inv.GuildPlatformID),
			zap.Error(err),
		)
	}
	return ephemeral(errorText(err, reminderID, "/"+cmdFollow))
}

// listButtonID encodes the list owner and target page. The direction keeps
// both buttons unique when prev and next point at the same page.
func listButtonID(userID string, page int, direction string) string {
	return fmt.Sprintf("%s:%s:%d:%s", listButtonPrefix, userID, page, direction)
}

func parseListButton(customID string) (userID string, page int, ok bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 4 || parts[0] != listButtonPrefix {
		return "", 0, false
	}
	page, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, false
	}
	return parts[1], page, true
}

func invocationFrom(i *discordgo.Interaction) entity.Invocation {
	inv := entity.Invocation{
		ChannelPlatformID: i.ChannelID,
		GuildPlatformID:   i.GuildID,
		MessageID:         i.ID,
	}
	if u := interactionUser(i); u != nil {
		inv.UserPlatformID = u.ID
	}
	if ts, err := discordgo.SnowflakeTimestamp(i.ID); err == nil {
		inv.InvokedAt = ts.UTC()
	}
	return inv
}

// interactionUser returns the invoking user. Guild interactions only carry
// the member.
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func embedAuthor(i *discordgo.Interaction) *discordgo.MessageEmbedAuthor {
	u := interactionUser(i)
	if u == nil {
		return nil
	}
	name := u.GlobalName
	if name == "" {
		name = u.Username
	}
	return &discordgo.MessageEmbedAuthor{Name: name, IconURL: u.AvatarURL("")}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, o := range options {
		m[o.Name] = o
	}
	return m
}

// modalValues maps text input IDs to their submitted values.
func modalValues(components []discordgo.MessageComponent) map[string]string {
	values := make(map[string]string)
	for _, c := range components {
		var row []discordgo.MessageComponent
		switch r := c.(type) {
		case *discordgo.ActionsRow:
			row = r.Components
		case discordgo.ActionsRow:
			row = r.Components
		}
		for _, rc := range row {
			switch input := rc.(type) {
			case *discordgo.TextInput:
				values[input.CustomID] = input.Value
			case discordgo.TextInput:
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}

// truncate cuts s to at most limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func message(data *discordgo.InteractionResponseData) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

func ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
