package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) GetOrCreate(ctx context.Context, platformID string) (*entity.User, error) {
	query := `
		INSERT INTO users (platform_id)
		VALUES (?)
		ON CONFLICT(platform_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, platformID); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := r.GetByPlatformID(ctx, platformID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s missing after insert", platformID)
	}

	return user, nil
}

func (r *userRepo) GetByPlatformID(ctx context.Context, platformID string) (*entity.User, error) {
	user := &entity.User{}
	query := `
		SELECT id, platform_id, utc_offset
		FROM users
		WHERE platform_id = ?
	`

	err := r.db.QueryRowContext(ctx, query, platformID).Scan(
		&user.ID,
		&user.PlatformID,
		&user.UTCOffset,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepo) SetUTCOffset(ctx context.Context, userID int64, minutes int) error {
	query := `UPDATE users SET utc_offset = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, minutes, userID)
	if err != nil {
		return fmt.Errorf("failed to update user utc offset: %w", err)
	}

	return nil
}
