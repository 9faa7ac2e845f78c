// Package jokeapi provides an HTTP client for the JokeAPI joke provider.
//
// # Overview
//
// The client performs a single read-only operation: fetch one random
// two-part joke. It owns everything about the wire protocol (URL layout,
// query parameters, headers, payload decoding) so the domain layer only
// ever sees a RawJoke or a typed error.
//
//	client, err := jokeapi.NewClient("https://v2.jokeapi.dev",
//		jokeapi.WithCategory("Programming"),
//		jokeapi.WithBlacklist(jokeapi.FlagNSFW, jokeapi.FlagExplicit),
//	)
//	if err != nil {
//		return err
//	}
//	raw, err := client.FetchRandom(ctx)
//
// # Request Handling
//
// Every request:
//   - targets GET {endpoint}/joke/{category}?type=twopart
//   - sets Accept: application/json and User-Agent: chuckle/0.1
//   - carries a fresh X-Request-ID so log lines can be correlated
//   - is bounded only by the caller's context
//
// # Error Handling
//
// Failures are reported as one of three concrete types:
//
//   - *StatusError: non-2xx response, or a 2xx body with "error": true
//   - *DecodeError: body is not a joke payload
//   - *TransportError: no response was received
//
// When the context is cancelled the context's own error is returned
// unchanged, so callers can tell cancellation apart from a real failure.
//
// # Endpoint Parsing
//
// The endpoint accepts a bare host ("v2.jokeapi.dev"), a full URL, or a URL
// with a path prefix. The scheme defaults to https and any query or fragment
// is dropped.
package jokeapi
