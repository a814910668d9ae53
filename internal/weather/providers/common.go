package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"weather-mcp-agent/internal/weather"
)

var errNoHTTPClient = errors.New("http client not configured")

// isProviderHealthy decides which outcomes count against the circuit
// breaker. Only transport-class failures indicate provider trouble; lookup,
// auth and format failures belong to the individual request and must not
// open the circuit for later, unrelated requests.
func isProviderHealthy(err error) bool {
	return err == nil || !errors.Is(err, weather.ErrTransport)
}

// doRequest executes a single attempt through the circuit breaker and
// classifies the HTTP status into the typed failure kinds. Each call issues
// at most one outbound request; there is no retry or backoff.
func doRequest(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, buildRequest func() (*http.Request, error)) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrTransport, ctx.Err())
	}

	req, err := buildRequest()
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, fmt.Errorf("%w: %v", weather.ErrTransport, execErr)
		}

		if err := classifyStatus(resp.StatusCode); err != nil {
			resp.Body.Close()
			return nil, err
		}

		return resp, nil
	})
	if err != nil {
		// An open circuit fails fast without touching the network; surface
		// it the same way as any other provider outage.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", weather.ErrTransport, err)
		}
		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}

// classifyStatus maps provider HTTP statuses onto typed failure kinds.
func classifyStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: provider returned %d", weather.ErrAuth, code)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: provider returned %d", weather.ErrLookup, code)
	case code == http.StatusTooManyRequests || code >= 500:
		return fmt.Errorf("%w: provider returned %d", weather.ErrTransport, code)
	default:
		return fmt.Errorf("%w: unexpected status %d", weather.ErrTransport, code)
	}
}
