package state

import (
	"fmt"

	"github.com/five82/chuckle/internal/joke"
)

// UIState is the value observed by the presentation layer. The set of
// variants is closed: Loading, Success and Error.
type UIState interface {
	uiState()
}

// Loading means a fetch is outstanding.
type Loading struct{}

// Success carries the current joke and the favorites at the time it was
// committed.
type Success struct {
	Joke      joke.Joke
	Favorites joke.Favorites
}

// Error carries the user-facing failure message.
type Error struct {
	Message   string
	Kind      joke.Kind
	Retryable bool
}

func (Loading) uiState() {}
func (Success) uiState() {}
func (Error) uiState()   {}

// IsFavorite reports whether the current joke is already saved.
func (s Success) IsFavorite() bool {
	return s.Favorites.Contains(s.Joke)
}

// Match calls the handler for the active variant. A nil state is treated as
// Loading.
func Match[T any](s UIState, loading func(Loading) T, success func(Success) T, failure func(Error) T) T {
	switch v := s.(type) {
	case nil:
		return loading(Loading{})
	case Loading:
		return loading(v)
	case Success:
		return success(v)
	case Error:
		return failure(v)
	default:
		panic(fmt.Sprintf("state: unknown UIState %T", s))
	}
}

// Name returns a short label for logs.
func Name(s UIState) string {
	return Match(s,
		func(Loading) string { return "loading" },
		func(Success) string { return "success" },
		func(Error) string { return "error" },
	)
}
