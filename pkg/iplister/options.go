package iplister

import (
	"time"

	"go.uber.org/zap"
)

type iplisterOption func(*IPLister)

// WithTimeout bounds the whole read and decode. Zero disables the timeout.
func WithTimeout(timeout time.Duration) iplisterOption {
	return func(i *IPLister) {
		i.timeout = timeout
	}
}

func WithValidation(validate bool) iplisterOption {
	return func(i *IPLister) {
		i.validate = validate
	}
}

func WithLogger(log *zap.Logger) iplisterOption {
	return func(i *IPLister) {
		if log != nil {
			i.log = log
		}
	}
}
