package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/mattn/go-sqlite3"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (message, due_at, created_at, message_id, channel_id, guild_id, active)
		VALUES (?, ?, ?, ?, ?, ?, 1)
	`

	var guildID sql.NullInt64
	if reminder.GuildID != nil {
		guildID = sql.NullInt64{Int64: *reminder.GuildID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		reminder.Message,
		reminder.DueAt.Unix(),
		reminder.CreatedAt.Unix(),
		reminder.MessageID,
		reminder.ChannelID,
		guildID,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reminder.ID = id
	reminder.Active = true
	return nil
}

func (r *reminderRepo) GetByID(ctx context.Context, id int64) (*entity.Reminder, error) {
	query := `
		SELECT id, message, due_at, created_at, message_id, channel_id, guild_id, active
		FROM reminders
		WHERE id = ?
	`

	reminder := &entity.Reminder{}
	var dueAt, createdAt int64
	var guildID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&reminder.ID,
		&reminder.Message,
		&dueAt,
		&createdAt,
		&reminder.MessageID,
		&reminder.ChannelID,
		&guildID,
		&reminder.Active,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	reminder.DueAt = unixTime(dueAt)
	reminder.CreatedAt = unixTime(createdAt)
	if guildID.Valid {
		reminder.GuildID = &guildID.Int64
	}

	return reminder, nil
}

func (r *reminderRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE reminders SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate reminder: %w", err)
	}

	return nil
}

func (r *reminderRepo) SetMessageID(ctx context.Context, id int64, messageID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE reminders SET message_id = ? WHERE id = ?`, messageID, id)
	if err != nil {
		return fmt.Errorf("failed to set reminder message id: %w", err)
	}

	return nil
}

func (r *reminderRepo) GetNextActive(ctx context.Context) (*entity.NextDue, error) {
	query := `
		SELECT id, due_at
		FROM reminders
		WHERE active = 1
		ORDER BY due_at ASC, id ASC
		LIMIT 1
	`

	next := &entity.NextDue{}
	var dueAt int64
	err := r.db.QueryRowContext(ctx, query).Scan(&next.ReminderID, &dueAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get next active reminder: %w", err)
	}

	next.DueAt = unixTime(dueAt)
	return next, nil
}

func (r *reminderRepo) GetDelivery(ctx context.Context, id int64) (*entity.Delivery, error) {
	query := `
		SELECT r.id, r.message, r.due_at, r.created_at, r.message_id, r.active,
			c.platform_id, COALESCE(g.platform_id, ''), COALESCE(fc.platform_id, '')
		FROM reminders r
		JOIN channels c ON c.id = r.channel_id
		LEFT JOIN guilds g ON g.id = r.guild_id
		LEFT JOIN channels fc ON fc.id = g.fallback_channel_id
		WHERE r.id = ?
	`

	delivery := &entity.Delivery{}
	var dueAt, createdAt int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&delivery.ReminderID,
		&delivery.Message,
		&dueAt,
		&createdAt,
		&delivery.MessageID,
		&delivery.Active,
		&delivery.ChannelPlatformID,
		&delivery.GuildPlatformID,
		&delivery.FallbackChannelID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder delivery: %w", err)
	}
	delivery.DueAt = unixTime(dueAt)
	delivery.CreatedAt = unixTime(createdAt)

	followers, err := r.listFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	delivery.Followers = followers

	return delivery, nil
}

func (r *reminderRepo) listFollowers(ctx context.Context, reminderID int64) ([]string, error) {
	query := `
		SELECT u.platform_id
		FROM reminder_followers rf
		JOIN users u ON u.id = rf.user_id
		WHERE rf.reminder_id = ?
		ORDER BY rf.rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, reminderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	defer rows.Close()

	var followers []string
	for rows.Next() {
		var platformID string
		if err := rows.Scan(&platformID); err != nil {
			return nil, fmt.Errorf("failed to scan follower: %w", err)
		}
		followers = append(followers, platformID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate followers: %w", err)
	}

	return followers, nil
}

func (r *reminderRepo) CountActiveByUser(ctx context.Context, userPlatformID, guildPlatformID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reminders r
		JOIN reminder_followers rf ON rf.reminder_id = r.id
		JOIN users u ON u.id = rf.user_id
		LEFT JOIN guilds g ON g.id = r.guild_id
		WHERE u.platform_id = ? AND r.active = 1
			AND (? = '' OR g.platform_id = ?)
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, userPlatformID, guildPlatformID, guildPlatformID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active reminders: %w", err)
	}

	return count, nil
}

func (r *reminderRepo) ListActiveByUser(ctx context.Context, userPlatformID, guildPlatformID string, limit, offset int) ([]*entity.ReminderListing, error) {
	query := `
		SELECT r.id, r.message, r.due_at, r.message_id, c.platform_id, COALESCE(g.platform_id, '')
		FROM reminders r
		JOIN reminder_followers rf ON rf.reminder_id = r.id
		JOIN users u ON u.id = rf.user_id
		JOIN channels c ON c.id = r.channel_id
		LEFT JOIN guilds g ON g.id = r.guild_id
		WHERE u.platform_id = ? AND r.active = 1
			AND (? = '' OR g.platform_id = ?)
		ORDER BY r.due_at ASC, r.id ASC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, userPlatformID, guildPlatformID, guildPlatformID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list active reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.ReminderListing
	for rows.Next() {
		listing := &entity.ReminderListing{}
		var dueAt int64
		err := rows.Scan(
			&listing.ID,
			&listing.Message,
			&dueAt,
			&listing.MessageID,
			&listing.ChannelPlatformID,
			&listing.GuildPlatformID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		listing.DueAt = unixTime(dueAt)
		reminders = append(reminders, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}

func (r *reminderRepo) AddFollower(ctx context.Context, reminderID, userID int64) (bool, error) {
	// Inserting through a select on active reminders keeps the check and the
	// write in one statement.
	query := `
		INSERT INTO reminder_followers (reminder_id, user_id)
		SELECT id, ? FROM reminders WHERE id = ? AND active = 1
	`

	result, err := r.db.ExecContext(ctx, query, userID, reminderID)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return false, fmt.Errorf("failed to add follower: %w", domain.ErrAlreadyFollowing)
		}
		return false, fmt.Errorf("failed to add follower: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *reminderRepo) RemoveFollower(ctx context.Context, reminderID, userID int64) (bool, error) {
	query := `DELETE FROM reminder_followers WHERE reminder_id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, reminderID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove follower: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *reminderRepo) IsFollower(ctx context.Context, reminderID, userID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM reminder_followers WHERE reminder_id = ? AND user_id = ?
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, reminderID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follower: %w", err)
	}

	return exists, nil
}

func (r *reminderRepo) CountFollowers(ctx context.Context, reminderID int64) (int, error) {
	query := `SELECT COUNT(*) FROM reminder_followers WHERE reminder_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, reminderID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}

	return count, nil
}

func unixTime(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}
