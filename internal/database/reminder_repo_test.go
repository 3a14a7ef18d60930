package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reminderFixture struct {
	dm      *instance
	user    *entity.User
	channel *entity.Channel
	guild   *entity.Guild
}

func newReminderFixture(t *testing.T) (*reminderFixture, *DB) {
	t.Helper()
	ctx := context.Background()

	db := SetupTestDB(t)
	dm := NewInstance(db).(*instance)

	user, err := dm.User().GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	channel, err := dm.Channel().GetOrCreate(ctx, "C1")
	require.NoError(t, err)
	guild, err := dm.Guild().GetOrCreate(ctx, "G1")
	require.NoError(t, err)

	return &reminderFixture{dm: dm, user: user, channel: channel, guild: guild}, db
}

func (f *reminderFixture) create(t *testing.T, message string, dueAt time.Time, follower int64) *entity.Reminder {
	t.Helper()
	ctx := context.Background()

	reminder := &entity.Reminder{
		Message:   message,
		DueAt:     dueAt,
		CreatedAt: dueAt.Add(-time.Hour),
		MessageID: "M" + message,
		ChannelID: f.channel.ID,
		GuildID:   &f.guild.ID,
	}
	require.NoError(t, f.dm.Reminder().Create(ctx, reminder))

	added, err := f.dm.Reminder().AddFollower(ctx, reminder.ID, follower)
	require.NoError(t, err)
	require.True(t, added)

	return reminder
}

func TestReminderRepo_CreateAndGetByID(t *testing.T) {
	f, db := newReminderFixture(t)
	defer CleanupTestDB(t, db)
	ctx := context.Background()

	dueAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should create reminder and read it back", func(t *testing.T) {
		reminder := f.create(t, "water plants", dueAt, f.user.ID)

		assert.NotZero(t, reminder.ID)
		assert.True(t, reminder.Active)

		got, err := f.dm.Reminder().GetByID(ctx, reminder.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "water plants", got.Message)
		assert.True(t, dueAt.Equal(got.DueAt))
		assert.True(t, dueAt.Add(-time.Hour).Equal(got.CreatedAt))
		assert.Equal(t, f.channel.ID, got.ChannelID)
		require.NotNil(t, got.GuildID)
		assert.Equal(t, f.guild.ID, *got.GuildID)
		assert.True(t, got.Active)
	})

	t.Run("should store private reminder without guild", func(t *testing.T) {
		reminder := &entity.Reminder{
			Message:   "dm",
			DueAt:     dueAt,
			CreatedAt: dueAt,
			ChannelID: f.channel.ID,
		}
		require.NoError(t, f.dm.Reminder().Create(ctx, reminder))

		got, err := f.dm.Reminder().GetByID(ctx, reminder.ID)
		require.NoError(t, err)
		assert.Nil(t, got.GuildID)
	})

	t.Run("should return nil for missing reminder", func(t *testing.T) {
		got, err := f.dm.Reminder().GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should never reuse ids", func(t *testing.T) {
		first := f.create(t, "a", dueAt, f.user.ID)
		second := f.create(t, "b", dueAt, f.user.ID)
		assert.Greater(t, second.ID, first.ID)
	})
}

func TestReminderRepo_SetMessageID(t *testing.T) {
	f, db := newReminderFixture(t)
	defer CleanupTestDB(t, db)
	ctx := context.Background()

	dueAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	reminder := f.create(t, "standup", dueAt, f.user.ID)

	require.NoError(t, f.dm.Reminder().SetMessageID(ctx, reminder.ID, "1216000000000000999"))

	got, err := f.dm.Reminder().GetByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, "1216000000000000999", got.MessageID)

	delivery, err := f.dm.Reminder().GetDelivery(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, "1216000000000000999", delivery.MessageID)
}

func TestReminderRepo_GetNextActive(t *testing.T) {
	f, db := newReminderFixture(t)
	defer CleanupTestDB(t, db)
	ctx := context.Background()

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should return nil when nothing is active", func(t *testing.T) {
		next, err := f.dm.Reminder().GetNextActive(ctx)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	later := f.create(t, "later", base.Add(2*time.Hour), f.user.ID)
	sooner := f.create(t, "sooner", base.Add(time.Hour), f.user.ID)
	tie := f.create(t, "tie", base.Add(time.Hour), f.user.ID)

	t.Run("should return the earliest active reminder with lowest id on ties", func(t *testing.T) {
		next, err := f.dm.Reminder().GetNextActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, sooner.ID, next.ReminderID)
		assert.True(t, base.Add(time.Hour).Equal(next.DueAt))
	})

	t.Run("should skip inactive reminders", func(t *testing.T) {
		require.NoError(t, f.dm.Reminder().Deactivate(ctx, sooner.ID))
		require.NoError(t, f.dm.Reminder().Deactivate(ctx, tie.ID))

		next, err := f.dm.Reminder().GetNextActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, later.ID, next.ReminderID)

		got, err := f.dm.Reminder().GetByID(ctx, sooner.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)
	})
}

func TestReminderRepo_GetDelivery(t *testing.T) {
	f, db := newReminderFixture(t)
	defer CleanupTestDB(t, db)
	ctx := context.Background()

	dueAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	reminder := f.create(t, "standup", dueAt, f.user.ID)

	other, err := f.dm.User().GetOrCreate(ctx, "U2")
	require.NoError(t, err)
	added, err := f.dm.Reminder().AddFollower(ctx, reminder.ID, other.ID)
	require.NoError(t, err)
	require.True(t, added)

	t.Run("should load followers in follow order without fallback", func(t *testing.T) {
		delivery, err := f.dm.Reminder().GetDelivery(ctx, reminder.ID)
		require.NoError(t, err)
		require.NotNil(t, delivery)

		assert.Equal(t, reminder.ID, delivery.ReminderID)
		assert.Equal(t, "standup", delivery.Message)
		assert.Equal(t, "C1", delivery.ChannelPlatformID)
		assert.Equal(t, "G1", delivery.GuildPlatformID)
		assert.Equal(t, "Mstandup", delivery.MessageID)
		assert.Empty(t, delivery.FallbackChannelID)
		assert.True(t, delivery.Active)
		assert.Equal(t, []string{"U1", "U2"}, delivery.Followers)
	})

	t.Run("should resolve the guild fallback channel", func(t *testing.T) {
		fallback, err := f.dm.Channel().GetOrCreate(ctx, "C-fallback")
		require.NoError(t, err)
		require.NoError(t, f.dm.Guild().SetFallbackChannel(ctx, f.guild.ID, fallback.ID))

		delivery, err := f.dm.Reminder().GetDelivery(ctx, reminder.ID)
		require.NoError(t, err)
		assert.Equal(t, "C-fallback", delivery.FallbackChannelID)
	})

	t.Run("should return nil for missing reminder", func(t *testing.T) {
		delivery, err := f.dm.Reminder().GetDelivery(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, delivery)
	})
}

func TestReminderRepo_Followers(t *testing.T) {
	f, db := newReminderFixture(t)
	defer CleanupTestDB(t, db)
	ctx := context.Background()

	dueAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	reminder := f.create(t, "follow me", dueAt, f.user.ID)
	other, err := f.dm.User().GetOrCreate(ctx, "U2")
	require.NoError(t, err)

	t.Run("should report existing follower", func(t *testing.T) {
		ok, err := f.dm.Reminder().IsFollower(ctx, reminder.ID, f.user.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = f.dm.Reminder().IsFollower(ctx, reminder.ID, other.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should reject duplicate follow", func(t *testing.T) {
		added, err := f.dm.Reminder().AddFollower(ctx, reminder.ID, f.user.ID)
		assert.False(t, added)
		assert.True(t, errors.Is(err, domain.ErrAlreadyFollowing))
	})

	t.Run("should not follow a missing reminder", func(t *testing.T) {
		added, err := f.dm.Reminder().AddFollower(ctx, 9999, other.ID)
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("should remove follower and count the rest", func(t *testing.T) {
		added, err := f.dm.Reminder().AddFollower(ctx, reminder.ID, other.ID)
		require.NoError(t, err)
		require.True(t, added)

		count, err := f.dm.Reminder().CountFollowers(ctx, reminder.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		removed, err := f.dm.Reminder().RemoveFollower(ctx, reminder.ID, other.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = f.dm.Reminder().RemoveFollower(ctx, reminder.ID, other.ID)
		require.NoError(t, err)
		assert.False(t, removed)

		count, err = f.dm.Reminder().CountFollowers(ctx, reminder.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("should not follow an inactive reminder", func(t *testing.T) {
		require.NoError(t, f.dm.Reminder().Deactivate(ctx, reminder.ID))

		added, err := f.dm.Reminder().AddFollower(ctx, reminder.ID, other.ID)
		require.NoError(t, err)
		assert.False(t, added)
	})
}

func TestReminderRepo_ListActiveByUser(t *testing.T) {
	f, db := newReminderFixture(t)
	defer CleanupTestDB(t, db)
	ctx := context.Background()

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		f.create(t, string(rune('a'+i)), base.Add(time.Duration(10-i)*time.Hour), f.user.ID)
	}

	private := &entity.Reminder{
		Message:   "private",
		DueAt:     base,
		CreatedAt: base,
		ChannelID: f.channel.ID,
	}
	require.NoError(t, f.dm.Reminder().Create(ctx, private))
	_, err := f.dm.Reminder().AddFollower(ctx, private.ID, f.user.ID)
	require.NoError(t, err)

	t.Run("should count across every context", func(t *testing.T) {
		count, err := f.dm.Reminder().CountActiveByUser(ctx, "U1", "")
		require.NoError(t, err)
		assert.Equal(t, 11, count)
	})

	t.Run("should count within one guild", func(t *testing.T) {
		count, err := f.dm.Reminder().CountActiveByUser(ctx, "U1", "G1")
		require.NoError(t, err)
		assert.Equal(t, 10, count)
	})

	t.Run("should page in due order", func(t *testing.T) {
		page, err := f.dm.Reminder().ListActiveByUser(ctx, "U1", "", 8, 0)
		require.NoError(t, err)
		require.Len(t, page, 8)
		assert.Equal(t, "private", page[0].Message)
		assert.Equal(t, "j", page[1].Message)
		for i := 1; i < len(page); i++ {
			assert.False(t, page[i].DueAt.Before(page[i-1].DueAt))
		}

		rest, err := f.dm.Reminder().ListActiveByUser(ctx, "U1", "", 8, 8)
		require.NoError(t, err)
		assert.Len(t, rest, 3)
	})

	t.Run("should return nothing for unknown user", func(t *testing.T) {
		page, err := f.dm.Reminder().ListActiveByUser(ctx, "nobody", "", 8, 0)
		require.NoError(t, err)
		assert.Empty(t, page)

		count, err := f.dm.Reminder().CountActiveByUser(ctx, "nobody", "")
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
