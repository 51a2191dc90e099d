package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/sethvargo/go-retry"
)

const (
	retryBaseDelay = 200 * time.Millisecond
	retryMaxDelay  = 5 * time.Second
)

// withRetry runs op until it succeeds, ctx is done, or attempts retries are
// spent. Errors for which retryable returns false stop the loop immediately.
func withRetry(ctx context.Context, attempts uint64, retryable func(error) bool, op func(ctx context.Context) error) error {
	backoff := retry.NewExponential(retryBaseDelay)
	backoff = retry.WithCappedDuration(retryMaxDelay, backoff)
	backoff = retry.WithMaxRetries(attempts, backoff)

	log := logger.FromContext(ctx)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}

		log.Warn().Err(err).Str("func", "store.withRetry").Msg("storage is not ready, retrying")
		return retry.RetryableError(err)
	})
}

func alwaysRetry(error) bool { return true }
