package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

type guildRepo struct {
	db dbConn
}

func newGuildRepo(db dbConn) contract.GuildRepo {
	return &guildRepo{db: db}
}

func (r *guildRepo) GetOrCreate(ctx context.Context, platformID string) (*entity.Guild, error) {
	query := `
		INSERT INTO guilds (platform_id)
		VALUES (?)
		ON CONFLICT(platform_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, platformID); err != nil {
		return nil, fmt.Errorf("failed to create guild: %w", err)
	}

	guild := &entity.Guild{}
	var fallback sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, platform_id, fallback_channel_id FROM guilds WHERE platform_id = ?`, platformID,
	).Scan(&guild.ID, &guild.PlatformID, &fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}

	if fallback.Valid {
		guild.FallbackChannelID = &fallback.Int64
	}

	return guild, nil
}

func (r *guildRepo) SetFallbackChannel(ctx context.Context, guildID, channelID int64) error {
	query := `UPDATE guilds SET fallback_channel_id = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, channelID, guildID)
	if err != nil {
		return fmt.Errorf("failed to set fallback channel: %w", err)
	}

	return nil
}
