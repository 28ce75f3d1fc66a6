package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	lerrors "github.com/kanopy-platform/json2list/pkg/errors"
)

type HTTP struct {
	url      string
	username string
	password string
	client   *http.Client
}

func New(url string, opts ...httpOption) *HTTP {
	h := &HTTP{
		url:    url,
		client: &http.Client{},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Data issues a GET against the configured url. Transport failures and
// non-2xx responses are returned as network errors.
func (h *HTTP) Data(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, lerrors.NewNetworkError(err)
	}

	if h.username != "" || h.password != "" {
		req.SetBasicAuth(h.username, h.password)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, lerrors.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, lerrors.NewNetworkError(fmt.Errorf("%s for url: %s", resp.Status, h.url))
	}

	return resp.Body, nil
}
