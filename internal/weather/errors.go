package weather

import "errors"

// Failure kinds surfaced by fetchers and the aggregator. Callers classify
// with errors.Is; adapters convert them to their surface's error shape.
var (
	// ErrAuth indicates a missing or rejected provider credential.
	ErrAuth = errors.New("provider credential missing or rejected")

	// ErrLookup indicates the provider does not know the requested location.
	ErrLookup = errors.New("unknown location")

	// ErrTransport indicates a network failure, timeout, or provider-side
	// error (429/5xx).
	ErrTransport = errors.New("provider unreachable")

	// ErrFormat indicates a malformed provider payload, e.g. a missing or
	// non-numeric temperature.
	ErrFormat = errors.New("malformed provider payload")
)
