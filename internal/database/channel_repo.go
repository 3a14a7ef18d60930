package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

func (r *channelRepo) GetOrCreate(ctx context.Context, platformID string) (*entity.Channel, error) {
	query := `
		INSERT INTO channels (platform_id)
		VALUES (?)
		ON CONFLICT(platform_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, platformID); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	channel := &entity.Channel{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, platform_id FROM channels WHERE platform_id = ?`, platformID,
	).Scan(&channel.ID, &channel.PlatformID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return channel, nil
}
