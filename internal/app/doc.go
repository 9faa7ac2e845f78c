// Package app is the composition root for chuckle.
//
// It loads configuration (file, then CHUCKLE_* environment, then flags the
// user set), builds the logger, metrics, JokeAPI client, repository and
// state controller, and hands them to one of three entry points:
//
//   - Run: the interactive TUI. The controller is started before the UI
//     subscribes and disposed when the UI exits or ctx is cancelled. The
//     preferences file is watched so a theme change made elsewhere is
//     applied live.
//   - Fetch: a single headless fetch through the repository. The joke is
//     printed as text or JSON; a failure is returned as a *joke.FetchError
//     whose message is the user-facing one.
//   - Logs: prints the tail of the log file, optionally keeping only lines
//     at or above a level.
//
// When a metrics address is configured, Prometheus metrics are served on
// /metrics for the lifetime of ctx.
package app
