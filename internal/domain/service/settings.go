package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/diegoclair/reminder-bot/internal/domain/timeparse"
	"go.uber.org/zap"
)

// SetUTCOffset stores the caller's offset and returns it in minutes.
func (s *reminderService) SetUTCOffset(ctx context.Context, inv entity.Invocation, offset string) (int, error) {
	minutes, err := timeparse.ParseUTCOffset(offset)
	if err != nil {
		return 0, err
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		user, err := tx.User().GetOrCreate(ctx, inv.UserPlatformID)
		if err != nil {
			return err
		}
		return tx.User().SetUTCOffset(ctx, user.ID, minutes)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to set utc offset: %w", err)
	}

	s.log.Info("utc offset updated",
		zap.String("user_id", inv.UserPlatformID),
		zap.Int("offset_minutes", minutes),
	)
	return minutes, nil
}

// SetFallbackChannel sets where notifications go for users whose direct
// messages fail.
func (s *reminderService) SetFallbackChannel(ctx context.Context, inv entity.Invocation, channelPlatformID string) error {
	if !inv.InGuild() {
		return domain.ErrNotInGuild
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		guild, err := tx.Guild().GetOrCreate(ctx, inv.GuildPlatformID)
		if err != nil {
			return err
		}

		channel, err := tx.Channel().GetOrCreate(ctx, channelPlatformID)
		if err != nil {
			return err
		}

		return tx.Guild().SetFallbackChannel(ctx, guild.ID, channel.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to set fallback channel: %w", err)
	}

	s.log.Info("fallback channel updated",
		zap.String("guild_id", inv.GuildPlatformID),
		zap.String("channel_id", channelPlatformID),
	)
	return nil
}
