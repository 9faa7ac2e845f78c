package state

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/five82/chuckle/internal/joke"
	"github.com/five82/chuckle/internal/metrics"
)

// Fetcher is the repository operation the controller orchestrates.
type Fetcher interface {
	RandomJoke(ctx context.Context) (joke.Joke, error)
}

var (
	ErrAlreadyStarted = errors.New("controller already started")
	ErrDisposed       = errors.New("controller disposed")
)

// Controller owns the UI state and the favorites collection. It is the only
// writer of its state; commands may be issued from any goroutine.
type Controller struct {
	repo      Fetcher
	favorites joke.FavoriteStore
	logger    zerolog.Logger
	metrics   *metrics.Metrics

	mu       sync.Mutex
	state    UIState
	seq      uint64
	started  bool
	disposed bool
	ctx      context.Context
	cancel   context.CancelFunc
	subs     map[int]chan UIState
	nextSub  int

	wg sync.WaitGroup
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = l.With().Str("component", "controller").Logger()
	}
}

// WithFavoriteStore replaces the default in-memory favorites.
func WithFavoriteStore(s joke.FavoriteStore) Option {
	return func(c *Controller) {
		if s != nil {
			c.favorites = s
		}
	}
}

// WithMetrics records stale fetches and the favorites count on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// NewController returns a controller in the Loading state. No fetch is made
// until Start is called.
func NewController(repo Fetcher, opts ...Option) *Controller {
	c := &Controller{
		repo:      repo,
		favorites: joke.NewMemoryStore(),
		logger:    zerolog.Nop(),
		state:     Loading{},
		subs:      make(map[int]chan UIState),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start binds the controller to ctx and issues the first fetch.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.disposed:
		c.mu.Unlock()
		return ErrDisposed
	case c.started:
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.started = true
	c.mu.Unlock()

	c.metrics.SetFavorites(c.favorites.Favorites().Len())
	c.RequestNewJoke()
	return nil
}

// Dispose cancels outstanding fetches, waits for them to return and closes
// every subscription. Results that arrive after Dispose are never committed.
// Safe to call more than once.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()

	c.mu.Lock()
	for id, ch := range c.subs {
		close(ch)
		delete(c.subs, id)
	}
	c.mu.Unlock()
	c.logger.Debug().Msg("controller disposed")
}

// RequestNewJoke moves to Loading and fetches a joke in the background. Only
// the most recently requested fetch may commit its result. Ignored before
// Start and after Dispose.
func (c *Controller) RequestNewJoke() {
	c.mu.Lock()
	if !c.started || c.disposed {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	ctx := c.ctx
	c.setLocked(Loading{})
	c.wg.Add(1)
	c.mu.Unlock()

	go c.fetch(ctx, seq)
}

func (c *Controller) fetch(ctx context.Context, seq uint64) {
	defer c.wg.Done()

	j, err := c.repo.RandomJoke(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed || ctx.Err() != nil {
		c.logger.Debug().Uint64("seq", seq).Msg("fetch result dropped after cancel")
		return
	}
	if seq != c.seq {
		c.metrics.IncStale()
		c.logger.Debug().Uint64("seq", seq).Uint64("latest", c.seq).Msg("stale fetch result dropped")
		return
	}
	if err != nil {
		c.setLocked(errorState(err))
		return
	}
	c.setLocked(Success{Joke: j, Favorites: c.favorites.Favorites()})
}

func errorState(err error) Error {
	var fetchErr *joke.FetchError
	if errors.As(err, &fetchErr) {
		return Error{Message: fetchErr.Error(), Kind: fetchErr.Kind, Retryable: fetchErr.Retryable()}
	}
	return Error{Message: err.Error(), Kind: joke.KindUnexpected}
}

// SaveFavorite adds the current joke to favorites. It does nothing unless the
// state is Success, and nothing when the joke is already saved.
func (c *Controller) SaveFavorite() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	current, ok := c.state.(Success)
	if !ok {
		return
	}
	if !c.favorites.Add(current.Joke) {
		return
	}
	favs := c.favorites.Favorites()
	c.metrics.SetFavorites(favs.Len())
	c.logger.Info().Str("category", current.Joke.Category).Int("favorites", favs.Len()).Msg("joke saved")
	c.setLocked(Success{Joke: current.Joke, Favorites: favs})
}

// State returns the current state.
func (c *Controller) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Favorites returns a copy of the favorites collection.
func (c *Controller) Favorites() joke.Favorites {
	return c.favorites.Favorites()
}

// Subscribe returns a channel that receives the current state immediately
// and every later transition. Delivery is conflated: a slow reader only sees
// the latest state. The channel is closed by the returned cancel func or by
// Dispose.
func (c *Controller) Subscribe() (<-chan UIState, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan UIState, 1)
	if c.disposed {
		close(ch)
		return ch, func() {}
	}
	ch <- c.state
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			close(sub)
			delete(c.subs, id)
		}
	}
}

// setLocked commits s and notifies subscribers. Caller holds c.mu.
func (c *Controller) setLocked(s UIState) {
	c.state = s
	for _, ch := range c.subs {
		select {
		case ch <- s:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- s
		}
	}
	c.logger.Debug().Str("state", Name(s)).Msg("state changed")
}
