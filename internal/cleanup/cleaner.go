package cleanup

import (
	"context"
	"time"

	"github.com/jeunessebiere/site-api/internal/logger"
	"github.com/jeunessebiere/site-api/internal/repository"
)

// TokenSweeper periodically deletes expired rows from the tokens table.
// Expired tokens are already rejected at auth time; the sweeper only
// keeps the table from growing without bound.
type TokenSweeper struct {
	tokens   repository.TokensRepository
	interval time.Duration
}

func NewTokenSweeper(tokens repository.TokensRepository, interval time.Duration) *TokenSweeper {
	return &TokenSweeper{tokens: tokens, interval: interval}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *TokenSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *TokenSweeper) sweep(ctx context.Context) {
	n, err := s.tokens.DeleteExpired(ctx, time.Now())
	if err != nil {
		logger.Logger.Error().Err(err).Msg("token sweep failed")
		return
	}
	if n > 0 {
		logger.Logger.Info().Int64("deleted", n).Msg("swept expired tokens")
	}
}
