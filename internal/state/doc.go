// Package state owns the observable UI state for chuckle.
//
// # Overview
//
// The Controller is the single writer of a UIState value and the owner of
// the favorites collection. The presentation layer reads the state through
// State or Subscribe and issues two commands: RequestNewJoke and
// SaveFavorite.
//
// # States
//
//	Loading ──fetch ok──→ Success{Joke, Favorites}
//	   ↑    ──fetch err─→ Error{Message, Kind, Retryable}
//	   └──── RequestNewJoke (from any state)
//
// SaveFavorite only acts in Success and re-emits Success with the updated
// favorites. Consumers handle every variant through Match.
//
// # Lifecycle
//
//	c := state.NewController(repo, state.WithLogger(logger))
//	if err := c.Start(ctx); err != nil {
//		return err
//	}
//	defer c.Dispose()
//
// Start issues the first fetch. Dispose cancels in-flight fetches, waits for
// them and closes subscriptions; nothing is committed after it returns.
//
// # Concurrency
//
// Fetches run in their own goroutines and commit under the controller mutex.
// Each fetch carries a sequence number; only the latest request may commit,
// so a slow early response never overwrites a newer one.
package state
