// Package ui provides the terminal user interface for chuckle.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It never fetches jokes itself: it reads the
// UIState published by the state controller and issues the controller's two
// commands, RequestNewJoke and SaveFavorite. Everything else it keeps is
// view-only state (favorites list open, help overlay open, theme).
//
// # Event Flow
//
//  1. New subscribes to the controller and renders its current state.
//  2. A command blocks on the subscription channel and turns every
//     delivery into a message; it is re-issued after each one.
//  3. Key presses call the controller, which answers with new states.
//  4. When the controller is disposed the channel closes and the program
//     quits.
//
// # Views
//
//   - Joke card: category, setup, punchline and a saved marker
//   - Loading: spinner with "Loading a fresh joke..."
//   - Error: the user-facing message and a retry hint
//   - Favorites: scrollable list of saved jokes in the order they were saved
//
// # Key Bindings
//
//   - n/r: New joke
//   - s: Save the current joke (disabled when already saved)
//   - v: Show favorites, esc: back
//   - j/k, pgup/pgdown: Scroll favorites
//   - T: Cycle theme (persisted to the prefs file)
//   - h/?: Help
//   - q or Ctrl+C: Quit
package ui
