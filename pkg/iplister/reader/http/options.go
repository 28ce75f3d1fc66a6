package http

import "net/http"

type httpOption func(*HTTP)

func WithBasicAuth(user, pass string) httpOption {
	return func(h *HTTP) {
		h.username = user
		h.password = pass
	}
}

func WithClient(client *http.Client) httpOption {
	return func(h *HTTP) {
		if client != nil {
			h.client = client
		}
	}
}
