package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	slackchat "github.com/diegoclair/reminder-bot/internal/chat/slack"
	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/diegoclair/reminder-bot/internal/domain/timeparse"
	slackcmd "github.com/diegoclair/reminder-bot/internal/slack"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackutilsx"
	"go.uber.org/zap"
)

type SlackHandler struct {
	reminders     contract.ReminderService
	links         linkBuilder
	signingSecret string
	log           *zap.Logger
}

type linkBuilder interface {
	MessageLink(guildID, channelID, messageID string) string
}

func New(reminders contract.ReminderService, links linkBuilder, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		reminders:     reminders,
		links:         links,
		signingSecret: signingSecret,
		log:           log.Named("slack"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	inv := invocationFromSlash(&s, r.Header)
	response := h.handleCommand(r.Context(), cmd, inv)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to write slash command response", zap.Error(err))
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, inv entity.Invocation) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdRemind:
		return h.handleRemind(ctx, cmd, inv)
	case slackcmd.CmdList:
		return h.handleList(ctx, cmd, inv)
	case slackcmd.CmdFollow:
		return h.handleFollow(ctx, cmd, inv)
	case slackcmd.CmdUnfollow:
		return h.handleUnfollow(ctx, cmd, inv)
	case slackcmd.CmdOffset:
		return h.handleOffset(ctx, cmd, inv)
	case slackcmd.CmdFallback:
		return h.handleFallback(ctx, cmd, inv)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleRemind(ctx context.Context, cmd *slackcmd.Command, inv entity.Invocation) *slack.Msg {
	r, err := h.reminders.Create(ctx, entity.CreateReminderInput{
		Invocation: inv,
		Timestamp:  cmd.Timestamp,
		Message:    cmd.Message,
	})
	if err != nil {
		return h.commandError(inv, err, 0)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ Reminder #%d created. I will remind you on %s about %s\n_Tip: use `/remind follow %d` to also get notified for this reminder!_",
			r.ID, slackchat.Date(r.DueAt), slackutilsx.EscapeMessage(r.Message), r.ID),
	}
}

func (h *SlackHandler) handleList(ctx context.Context, cmd *slackcmd.Command, inv entity.Invocation) *slack.Msg {
	page, err := cmd.Page()
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	result, err := h.reminders.List(ctx, entity.ListReminderInput{Invocation: inv, Page: page})
	if err != nil {
		return h.commandError(inv, err, 0)
	}

	if result.Total == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         msgNoReminders,
		}
	}

	var list strings.Builder
	list.WriteString("*Your reminders:*\n")
	for _, r := range result.Reminders {
		link := h.links.MessageLink(r.GuildPlatformID, r.ChannelPlatformID, r.MessageID)
		list.WriteString(fmt.Sprintf("ID: %d · %s · `%s` (<%s|Context>)\n", r.ID, slackchat.Date(r.DueAt), slackutilsx.EscapeMessage(r.Message), link))
	}
	list.WriteString(fmt.Sprintf("_%s_", pageFooter(result.Page, result.Pages, len(result.Reminders), result.Total)))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleFollow(ctx context.Context, cmd *slackcmd.Command, inv entity.Invocation) *slack.Msg {
	id, err := cmd.ReminderID()
	if err != nil {
		return h.createErrorResponse("Please provide a reminder ID: `/remind follow <id>`")
	}

	if err := h.reminders.Follow(ctx, id, inv); err != nil {
		return h.commandError(inv, err, id)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ " + followText(id),
	}
}

func (h *SlackHandler) handleUnfollow(ctx context.Context, cmd *slackcmd.Command, inv entity.Invocation) *slack.Msg {
	id, err := cmd.ReminderID()
	if err != nil {
		return h.createErrorResponse("Please provide a reminder ID: `/remind unfollow <id>`")
	}

	cancelled, err := h.reminders.Unfollow(ctx, id, inv)
	if err != nil {
		return h.commandError(inv, err, id)
	}

	responseType := slack.ResponseTypeEphemeral
	if cancelled {
		responseType = slack.ResponseTypeInChannel
	}
	return &slack.Msg{
		ResponseType: responseType,
		Text:         "✅ " + unfollowText(id, cancelled),
	}
}

func (h *SlackHandler) handleOffset(ctx context.Context, cmd *slackcmd.Command, inv entity.Invocation) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please provide a UTC offset: `/remind offset +02:00`")
	}

	minutes, err := h.reminders.SetUTCOffset(ctx, inv, strings.Join(cmd.Args, ""))
	if err != nil {
		return h.commandError(inv, err, 0)
	}

	day := inv.InvokedAt.UTC()
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)
	local := noon.Add(-time.Duration(minutes) * time.Minute)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("✅ UTC offset set! 12:00 in UTC%s is <!date^%d^{time}|%s> in your local time.",
			timeparse.FormatUTCOffset(minutes), local.Unix(), local.Format("15:04 UTC")),
	}
}

func (h *SlackHandler) handleFallback(ctx context.Context, cmd *slackcmd.Command, inv entity.Invocation) *slack.Msg {
	channelID := cmd.ChannelID(inv.ChannelPlatformID)

	if err := h.reminders.SetFallbackChannel(ctx, inv, channelID); err != nil {
		return h.commandError(inv, err, 0)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Reminders that cannot be sent as a direct message will now be posted in <#%s>.", channelID),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) commandError(inv entity.Invocation, err error, reminderID int64) *slack.Msg {
	if !domain.IsValidation(err) {
		h.log.Error("command failed",
			zap.String("user_id", inv.UserPlatformID),
			zap.String("channel_id", inv.ChannelPlatformID),
			zap.String("guild_id", inv.GuildPlatformID),
			zap.Error(err),
		)
	}
	return h.createErrorResponse(errorText(err, reminderID, "/remind follow"))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// invocationFromSlash maps a slash command to an invocation. Direct message
// channels (IDs starting with "D") are private, everything else belongs to
// the workspace.
func invocationFromSlash(s *slack.SlashCommand, header http.Header) entity.Invocation {
	inv := entity.Invocation{
		UserPlatformID:    s.UserID,
		ChannelPlatformID: s.ChannelID,
		GuildPlatformID:   s.TeamID,
		MessageID:         s.TriggerID,
	}
	if strings.HasPrefix(s.ChannelID, "D") {
		inv.GuildPlatformID = ""
	}

	if ts, err := strconv.ParseInt(header.Get("X-Slack-Request-Timestamp"), 10, 64); err == nil {
		inv.InvokedAt = time.Unix(ts, 0).UTC()
	} else {
		inv.InvokedAt = time.Now().UTC().Truncate(time.Second)
	}
	return inv
}
