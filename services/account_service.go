package services

import (
	"context"
	"kartvizid/cache"
	"log/slog"
)

// AccountService handles account removal
type AccountService struct {
	repo   AccountRepository
	cache  cache.Cache
	logger *slog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(repo AccountRepository, c cache.Cache, logger *slog.Logger) *AccountService {
	return &AccountService{repo: repo, cache: c, logger: logger}
}

// Delete removes the caller's profile together with everything they own
func (as *AccountService) Delete(ctx context.Context, userID string) error {
	deleted, err := as.repo.DeleteProfile(userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProfileNotFound
	}

	if as.cache != nil {
		if err := as.cache.Del(ctx, platformStatsKey); err != nil {
			as.logger.Warn("stats cache invalidation failed", "error", err)
		}
	}

	as.logger.Info("account deleted", "user_id", userID)
	return nil
}
