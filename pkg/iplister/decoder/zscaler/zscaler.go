package zscaler

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	lerrors "github.com/kanopy-platform/json2list/pkg/errors"
)

// Zscaler decodes the ZIA ("prefixes") and ZPA ("content"/"IPs") ip range
// documents.
type Zscaler struct {
	log *zap.Logger
}

type zscalerOption func(*Zscaler)

func WithLogger(log *zap.Logger) zscalerOption {
	return func(z *Zscaler) {
		if log != nil {
			z.log = log
		}
	}
}

func New(opts ...zscalerOption) *Zscaler {
	z := &Zscaler{
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(z)
	}

	return z
}

func (z *Zscaler) Decode(data io.ReadCloser) ([]string, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return nil, lerrors.NewParseError(fmt.Errorf("reading document: %w", err))
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, lerrors.NewParseError(err)
	}

	doc := Detect(v)
	z.log.Debug("detected document shape", zap.Stringer("kind", doc.Kind))

	return doc.CIDRs(z.log), nil
}
