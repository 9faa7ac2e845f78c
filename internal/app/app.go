package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/five82/chuckle/internal/config"
	"github.com/five82/chuckle/internal/joke"
	"github.com/five82/chuckle/internal/jokeapi"
	"github.com/five82/chuckle/internal/logging"
	"github.com/five82/chuckle/internal/logtail"
	"github.com/five82/chuckle/internal/metrics"
	"github.com/five82/chuckle/internal/prefs"
	"github.com/five82/chuckle/internal/state"
	"github.com/five82/chuckle/internal/ui"
)

// Options configure the chuckle application.
type Options struct {
	ConfigPath string // empty uses ~/.config/chuckle/config.toml
	PrefsPath  string // empty uses ~/.config/chuckle/prefs.toml

	// Flags holds command-line overrides. Only flags the user set are
	// applied.
	Flags *pflag.FlagSet
}

// LoadConfig reads the config file and environment, then applies flags.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.Flags != nil {
		if err := cfg.ApplyFlags(opts.Flags); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// components holds what is shared by the TUI and the headless fetch.
type components struct {
	cfg     config.Config
	logger  zerolog.Logger
	closer  io.Closer
	metrics *metrics.Metrics
	repo    *joke.Repository

	// wg tracks goroutines that log until ctx is cancelled.
	wg sync.WaitGroup
}

// spawn runs fn in a goroutine that close waits for.
func (c *components) spawn(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}

// close waits for spawned goroutines and then closes the log file. The ctx
// given to newComponents must already be cancelled.
func (c *components) close() {
	c.wg.Wait()
	_ = c.closer.Close()
}

func newComponents(ctx context.Context, opts Options) (*components, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	m := metrics.New()

	clientOpts := []jokeapi.Option{
		jokeapi.WithCategory(cfg.Category),
		jokeapi.WithBlacklist(cfg.BlacklistFlags...),
		jokeapi.WithLogger(logger),
	}
	if cfg.UserAgent != "" {
		clientOpts = append(clientOpts, jokeapi.WithUserAgent(cfg.UserAgent))
	}
	client, err := jokeapi.NewClient(cfg.Endpoint, clientOpts...)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init joke client: %w", err)
	}

	logger.Info().
		Str("endpoint", client.Endpoint()).
		Str("category", cfg.Category).
		Strs("blacklist", cfg.BlacklistFlags).
		Msg("chuckle starting")

	c := &components{
		cfg:     cfg,
		logger:  logger,
		closer:  closer,
		metrics: m,
		repo:    joke.NewRepository(client, joke.WithLogger(logger), joke.WithMetrics(m)),
	}
	if cfg.MetricsAddr != "" {
		c.spawn(func() {
			if err := m.Serve(ctx, cfg.MetricsAddr, logger); err != nil {
				logger.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server failed")
			}
		})
	}
	return c, nil
}

// Run boots the chuckle TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rt, err := newComponents(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		cancel()
		rt.close()
	}()

	controller := state.NewController(rt.repo,
		state.WithLogger(rt.logger),
		state.WithMetrics(rt.metrics),
	)
	if err := controller.Start(ctx); err != nil {
		return fmt.Errorf("start controller: %w", err)
	}
	defer controller.Dispose()

	// Cancelling ctx disposes the controller, which closes the UI's
	// subscription and ends the program.
	rt.spawn(func() {
		<-ctx.Done()
		controller.Dispose()
	})

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		rt.logger.Warn().Err(err).Str("path", prefsPath).Msg("load prefs failed, using defaults")
		userPrefs = prefs.Default()
	}

	changes := make(chan prefs.Prefs, 1)
	rt.spawn(func() {
		err := prefs.Watch(ctx, prefsPath, rt.logger, func(p prefs.Prefs) {
			latest(changes, p)
		})
		if err != nil {
			rt.logger.Warn().Err(err).Str("path", prefsPath).Msg("prefs watch disabled")
		}
	})

	return ui.Run(ui.Options{
		Controller:   controller,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    prefsPath,
		PrefsChanges: changes,
		Logger:       rt.logger,
	})
}

// latest replaces any undelivered value in ch with v.
func latest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// jokeJSON is the --json output of Fetch.
type jokeJSON struct {
	Category  string `json:"category"`
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

// Fetch performs one fetch through the repository and prints the joke to w.
// The returned error is a *joke.FetchError whose message is user facing.
func Fetch(ctx context.Context, opts Options, w io.Writer, asJSON bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rt, err := newComponents(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		cancel()
		rt.close()
	}()

	j, err := rt.repo.RandomJoke(ctx)
	if err != nil {
		return err
	}
	return writeJoke(w, j, asJSON)
}

func writeJoke(w io.Writer, j joke.Joke, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jokeJSON{Category: j.Category, Setup: j.Setup, Punchline: j.Punchline})
	}
	_, err := fmt.Fprintf(w, "[%s]\n%s\n%s\n", strings.ToUpper(j.Category), j.Setup, j.Punchline)
	return err
}

// Logs prints the last n lines of the configured log file, keeping only
// lines at or above level when it is set.
func Logs(opts Options, w io.Writer, n int, level string) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	path := cfg.LogPath()
	if path == "" {
		return fmt.Errorf("logging to stderr, no log file to read")
	}

	// Filter before trimming so n counts matching lines.
	readN := n
	if strings.TrimSpace(level) != "" {
		readN = 0
	}
	lines, err := logtail.Read(path, readN)
	if err != nil {
		return err
	}
	lines, err = logtail.Filter(lines, level)
	if err != nil {
		return err
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for _, line := range logtail.FormatLines(lines) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
