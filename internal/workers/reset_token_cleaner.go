package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/store"
)

// resetTokenCleaner periodically purges reset tokens whose ExpiresAt has
// passed. Redemption already rejects them; this only keeps storage small.
type resetTokenCleaner struct {
	tokens   store.ResetTokenRepository
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewResetTokenCleaner(tokens store.ResetTokenRepository, cfg config.Workers, logger *logger.Logger) Worker {
	return &resetTokenCleaner{
		tokens:   tokens,
		interval: cfg.ResetTokenCleanupInterval,
		now:      time.Now,
		logger:   logger,
	}
}

func (c *resetTokenCleaner) Run(ctx context.Context) {
	if c.interval <= 0 {
		c.logger.Info().Msg("reset token cleanup is disabled")
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("reset token cleaner stopped")
			return
		case <-ticker.C:
			c.cleanup(ctx)
		}
	}
}

func (c *resetTokenCleaner) cleanup(ctx context.Context) {
	deleted, err := c.tokens.DeleteExpiredResetTokens(ctx, c.now().UTC())
	if err != nil {
		c.logger.Err(err).Msg("error deleting expired reset tokens")
		return
	}
	if deleted > 0 {
		c.logger.Info().Int64("deleted", deleted).Msg("expired reset tokens deleted")
	}
}
