// Package joke holds the domain model and the repository that turns provider
// responses into Jokes and provider failures into classified FetchErrors.
package joke

import "github.com/five82/chuckle/internal/jokeapi"

// Joke is the domain shape of a two-part joke. Two jokes with the same
// fields are the same joke.
type Joke struct {
	Setup     string
	Punchline string
	Category  string
}

// FromRaw projects a provider payload onto a Joke. Strings are copied as-is;
// every other payload field is dropped.
func FromRaw(raw jokeapi.RawJoke) Joke {
	return Joke{
		Setup:     raw.Setup,
		Punchline: raw.Delivery,
		Category:  raw.Category,
	}
}
