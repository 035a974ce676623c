package usecase

import (
	"context"
	"errors"

	domrepo "WhaleEye/internal/domain/repository"
	applogger "WhaleEye/pkg/logger"
)

var (
	ErrProviderUnconfigured = errors.New("provider not configured")
	ErrQuotaExceeded        = errors.New("provider quota exceeded")
)

const (
	reasonUnconfigured  = "unconfigured"
	reasonQuota         = "quota"
	reasonQuotaError    = "quota_error"
	reasonProviderError = "provider_error"
)

// Result is the outcome of one provider call.
type Result[T any] struct {
	Value T
	Err   error
}

// Try wraps a (value, error) pair.
func Try[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

type fetchFunc[T any] func(ctx context.Context) (T, error)

// failSoft is the one place where a failed provider call is replaced by fixture data.
type failSoft struct {
	provider string
	quota    domrepo.QuotaGuard
	metrics  domrepo.Metrics
	logger   *applogger.Logger
}

// resolve calls live (nil means no credentials) and falls back to mock on any
// error. The bool reports whether mock data was used. Only a failing mock is
// returned as an error.
func resolve[T any](ctx context.Context, fs failSoft, live, mock fetchFunc[T]) (T, bool, error) {
	r := callLive(ctx, fs, live)
	if r.Err == nil {
		return r.Value, false, nil
	}

	reason := fallbackReason(r.Err)
	fs.metrics.RecordFallback(fs.provider, reason)
	if reason == reasonUnconfigured {
		fs.logger.Debug("using mock data", applogger.String("provider", fs.provider))
	} else {
		fs.logger.Warn("provider failed, using mock data",
			applogger.String("provider", fs.provider),
			applogger.String("reason", reason),
			applogger.Error(r.Err),
		)
	}

	v, err := mock(ctx)
	return v, true, err
}

func callLive[T any](ctx context.Context, fs failSoft, live fetchFunc[T]) Result[T] {
	var zero T
	if live == nil {
		return Result[T]{Value: zero, Err: ErrProviderUnconfigured}
	}
	if fs.quota != nil {
		ok, err := fs.quota.Allow(ctx, fs.provider)
		if err != nil {
			return Result[T]{Value: zero, Err: &quotaError{err: err}}
		}
		if !ok {
			return Result[T]{Value: zero, Err: ErrQuotaExceeded}
		}
	}
	v, err := live(ctx)
	return Try(v, err)
}

type quotaError struct{ err error }

func (e *quotaError) Error() string { return "quota guard: " + e.err.Error() }
func (e *quotaError) Unwrap() error { return e.err }

func fallbackReason(err error) string {
	var qe *quotaError
	switch {
	case errors.Is(err, ErrProviderUnconfigured):
		return reasonUnconfigured
	case errors.Is(err, ErrQuotaExceeded):
		return reasonQuota
	case errors.As(err, &qe):
		return reasonQuotaError
	default:
		return reasonProviderError
	}
}
