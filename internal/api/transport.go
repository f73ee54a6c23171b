package api

import (
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// authTransport is the outbound interceptor: before every dispatch it reads
// the current credential from the token source and attaches it as a bearer
// Authorization header. Requests without a stored credential go out bare and
// the backend decides whether to reject them.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
	logger zerolog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated in place.
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-ID", ulid.Make().String())

	if t.tokens != nil {
		if token, err := t.tokens.Token(); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Debug().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("request failed")
		return nil, err
	}

	t.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	return resp, nil
}
