package joke

import (
	"errors"
	"fmt"
	"net"

	"github.com/five82/chuckle/internal/jokeapi"
	"github.com/five82/chuckle/internal/metrics"
)

// Kind classifies a failed fetch.
type Kind int

const (
	// KindUnexpected covers every failure that is neither protocol nor
	// connectivity related.
	KindUnexpected Kind = iota
	// KindProtocol means the provider answered with a failure status or a
	// body that is not a joke.
	KindProtocol
	// KindConnectivity means the provider could not be reached.
	KindConnectivity
)

func (k Kind) String() string {
	switch k {
	case KindProtocol:
		return metrics.OutcomeProtocol
	case KindConnectivity:
		return metrics.OutcomeConnectivity
	default:
		return metrics.OutcomeUnexpected
	}
}

// Sentinels matched by errors.Is against a *FetchError of the same kind.
var (
	ErrProtocol     = errors.New("protocol error")
	ErrConnectivity = errors.New("connectivity error")
	ErrUnexpected   = errors.New("unexpected error")
)

const connectivityMessage = "Network connection failed. Please check your internet connection."

// FetchError is the only error RandomJoke returns. Error() is the message
// shown to the user.
type FetchError struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindProtocol:
		return "Network error: " + e.Detail
	case KindConnectivity:
		return connectivityMessage
	default:
		return "An unexpected error occurred: " + e.Detail
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e's kind.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrProtocol:
		return e.Kind == KindProtocol
	case ErrConnectivity:
		return e.Kind == KindConnectivity
	case ErrUnexpected:
		return e.Kind == KindUnexpected
	}
	return false
}

// Retryable reports whether issuing the same request again could succeed:
// connectivity failures and temporary provider statuses (5xx, 429).
func (e *FetchError) Retryable() bool {
	switch e.Kind {
	case KindConnectivity:
		return true
	case KindProtocol:
		var statusErr *jokeapi.StatusError
		return errors.As(e.Err, &statusErr) && statusErr.Temporary()
	}
	return false
}

// classify maps a provider failure onto a FetchError.
func classify(err error) *FetchError {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr
	}

	var (
		transportErr *jokeapi.TransportError
		statusErr    *jokeapi.StatusError
		decodeErr    *jokeapi.DecodeError
		netErr       net.Error
	)
	switch {
	case errors.As(err, &transportErr), errors.As(err, &netErr):
		return &FetchError{Kind: KindConnectivity, Detail: err.Error(), Err: err}
	case errors.As(err, &statusErr), errors.As(err, &decodeErr):
		return &FetchError{Kind: KindProtocol, Detail: err.Error(), Err: err}
	default:
		return &FetchError{Kind: KindUnexpected, Detail: detailOf(err), Err: err}
	}
}

func detailOf(err error) string {
	if err == nil {
		return "unknown error"
	}
	return fmt.Sprint(err)
}
