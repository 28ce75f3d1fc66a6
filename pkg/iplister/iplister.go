package iplister

import (
	"context"
	"errors"
	"net"
	"time"

	"go.uber.org/zap"
)

type IPLister struct {
	reader   Reader
	decoder  Decoder
	timeout  time.Duration
	validate bool
	log      *zap.Logger
}

func New(reader Reader, decoder Decoder, opts ...iplisterOption) *IPLister {
	i := &IPLister{
		reader:  reader,
		decoder: decoder,
		log:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

func (i *IPLister) GetIPs(ctx context.Context) ([]string, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	reader, err := i.reader.Data(ctx)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	ipList, err := i.decoder.Decode(reader)
	if err != nil {
		return nil, err
	}
	i.log.Debug("decoded cidr list", zap.Int("count", len(ipList)))

	if i.validate {
		if err := ValidateCIDRs(ipList); err != nil {
			return nil, err
		}
	}

	return ipList, nil
}

func ValidateCIDRs(list []string) error {
	errs := []error{}

	for _, cidr := range list {
		_, _, err := net.ParseCIDR(cidr)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
