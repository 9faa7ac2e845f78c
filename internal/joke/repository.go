package joke

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/chuckle/internal/jokeapi"
	"github.com/five82/chuckle/internal/metrics"
)

// Provider is the single network operation the repository depends on.
// *jokeapi.Client satisfies it.
type Provider interface {
	FetchRandom(ctx context.Context) (*jokeapi.RawJoke, error)
}

var _ Provider = (*jokeapi.Client)(nil)

var errEmptyPayload = errors.New("provider returned no joke")

// Repository fetches jokes and classifies failures.
type Repository struct {
	provider Provider
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

// RepositoryOption customizes a Repository.
type RepositoryOption func(*Repository)

// WithLogger sets the repository logger.
func WithLogger(l zerolog.Logger) RepositoryOption {
	return func(r *Repository) {
		r.logger = l.With().Str("component", "repository").Logger()
	}
}

// WithMetrics records fetch outcomes on m.
func WithMetrics(m *metrics.Metrics) RepositoryOption {
	return func(r *Repository) {
		r.metrics = m
	}
}

// NewRepository wraps p.
func NewRepository(p Provider, opts ...RepositoryOption) *Repository {
	r := &Repository{provider: p, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RandomJoke performs exactly one provider call. Any failure is returned as
// a *FetchError.
func (r *Repository) RandomJoke(ctx context.Context) (Joke, error) {
	start := time.Now()
	raw, err := r.provider.FetchRandom(ctx)
	if err == nil && raw == nil {
		err = errEmptyPayload
	}
	elapsed := time.Since(start)

	if err != nil {
		fetchErr := classify(err)
		r.metrics.ObserveFetch(fetchErr.Kind.String(), elapsed)
		r.logger.Warn().
			Err(err).
			Str("kind", fetchErr.Kind.String()).
			Dur("elapsed", elapsed).
			Msg("joke fetch failed")
		return Joke{}, fetchErr
	}

	j := FromRaw(*raw)
	r.metrics.ObserveFetch(metrics.OutcomeSuccess, elapsed)
	r.logger.Debug().
		Int("id", raw.ID).
		Str("category", j.Category).
		Dur("elapsed", elapsed).
		Msg("joke fetched")
	return j, nil
}
