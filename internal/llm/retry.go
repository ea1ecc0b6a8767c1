package llm

import (
	"context"
	"errors"
	"time"
)

// RetryProvider is a decorator that retries transient errors with a linear
// backoff and downgrades the model tier after repeated large-model failures.
//
// Classification:
//   - rate limit: wait (attempt+1) x RateLimitWait, retry
//   - invalid/unparseable response: wait (attempt+1) x InvalidWait, retry
//   - anything else: propagate immediately, no retry
//
// The downgrade is one-way for the duration of a single Generate call: once
// the large model has failed DowngradeAfter attempts, every remaining attempt
// runs on the small model.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry and model-downgrade logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	model := requestModel(req, r.inner.ModelID())

	for attempt := range r.config.MaxAttempts {
		resp, err := r.generateOnce(ctx, req, model)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Model fallback: after the large model has burned its allowance,
		// remaining attempts run on the cheaper tier. Never un-downgrades.
		if model == ModelLarge && attempt+1 >= r.config.DowngradeAfter {
			model = ModelSmall
		}

		wait, retryable := r.classify(err, attempt)
		if !retryable {
			return nil, err
		}

		// Last attempt failed, nothing left to wait for.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// generateOnce runs a single attempt under the per-attempt timeout.
func (r *RetryProvider) generateOnce(ctx context.Context, req Request, model string) (*Response, error) {
	req.Model = model
	if r.config.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.AttemptTimeout)
		defer cancel()
	}
	return r.inner.Generate(ctx, req)
}

// classify returns the backoff wait for a failed attempt and whether the
// error is retryable at all.
func (r *RetryProvider) classify(err error, attempt int) (time.Duration, bool) {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 0, false
	}

	// Max tokens is a configuration issue, not transient.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return 0, false
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return time.Duration(attempt+1) * r.config.RateLimitWait, true
	}

	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		return time.Duration(attempt+1) * r.config.InvalidWait, true
	}

	return 0, false
}
