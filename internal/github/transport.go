package github

import (
	"context"
	"net/http"

	"github.com/cli/go-gh/v2/pkg/api"
)

// Transport issues a single GET request against an API path relative to the
// host root and decodes the JSON response body into response.
// This interface allows tests to substitute a stub for the real API.
type Transport interface {
	Get(ctx context.Context, path string, response interface{}) error
}

// restTransport adapts go-gh's REST client to the Transport interface.
// Non-2xx responses surface as *api.HTTPError with the status code and the
// upstream message field attached.
type restTransport struct {
	rest *api.RESTClient
}

// newRESTTransport creates a Transport backed by go-gh's REST client.
// An empty host targets github.com.
func newRESTTransport(token, host, userAgent string) (Transport, error) {
	rest, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: token,
		Host:      host,
		Headers: map[string]string{
			"User-Agent": userAgent,
			"Accept":     "application/vnd.github.v3+json",
		},
	})
	if err != nil {
		return nil, err
	}
	return &restTransport{rest: rest}, nil
}

// Get executes the request and decodes the JSON response
func (t *restTransport) Get(ctx context.Context, path string, response interface{}) error {
	return t.rest.DoWithContext(ctx, http.MethodGet, path, nil, response)
}
