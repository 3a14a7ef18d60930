package handlers

import "github.com/bwmarrin/discordgo"

// Slash command names.
const (
	cmdRemindMe     = "remindme"
	cmdReminderList = "reminderlist"
	cmdFollow       = "follow"
	cmdUnfollow     = "unfollow"
	cmdSetOffset    = "setoffset"
	cmdSetFallback  = "setfallback"

	// cmdRemindMessage is a message context menu command, so it is shown
	// to users as is.
	cmdRemindMessage = "Remind me about this"
)

var (
	minPage       = 1.0
	minReminderID = 1.0

	manageChannels int64 = discordgo.PermissionManageChannels
	dmAllowed            = true
	dmDenied             = false
)

// DiscordCommands are the application commands registered on startup.
var DiscordCommands = []*discordgo.ApplicationCommand{
	{
		Name:         cmdRemindMe,
		Description:  "Create a reminder",
		DMPermission: &dmAllowed,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "timestamp",
				Description: "When you want to be reminded",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "What you would like to be reminded of",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "offset",
				Description: "UTC offset for this reminder only, e.g. +02:00",
			},
		},
	},
	{
		Name:         cmdReminderList,
		Description:  "List your active reminders",
		DMPermission: &dmAllowed,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "start_page",
				Description: "Page to start on",
				MinValue:    &minPage,
			},
		},
	},
	{
		Name:         cmdFollow,
		Description:  "Also get notified for a reminder",
		DMPermission: &dmAllowed,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Reminder ID",
				Required:    true,
				MinValue:    &minReminderID,
			},
		},
	},
	{
		Name:         cmdUnfollow,
		Description:  "Stop getting notified for a reminder",
		DMPermission: &dmAllowed,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Reminder ID",
				Required:    true,
				MinValue:    &minReminderID,
			},
		},
	},
	{
		Name:         cmdSetOffset,
		Description:  "Set your UTC offset",
		DMPermission: &dmAllowed,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "offset",
				Description: "UTC offset, e.g. +02:00",
				Required:    true,
			},
		},
	},
	{
		Type:         discordgo.MessageApplicationCommand,
		Name:         cmdRemindMessage,
		DMPermission: &dmAllowed,
	},
	{
		Name:                     cmdSetFallback,
		Description:              "Set the channel used when a reminder cannot be sent as a direct message",
		DefaultMemberPermissions: &manageChannels,
		DMPermission:             &dmDenied,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "Channel to be used when other options are unavailable",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			},
		},
	},
}
