package zscaler

import "go.uber.org/zap"

const (
	prefixesKey = "prefixes"
	contentKey  = "content"
	ipsKey      = "IPs"
)

// Kind identifies which of the known document shapes was found.
type Kind int

const (
	KindUnknown Kind = iota
	// ZIA: {"prefixes": ["1.2.3.0/24", ...]}
	KindPrefixes
	// ZPA: {"content": [{"IPs": ["1.2.3.0/24", ...]}, ...]}
	KindContent
)

func (k Kind) String() string {
	switch k {
	case KindPrefixes:
		return "prefixes"
	case KindContent:
		return "content"
	default:
		return "unknown"
	}
}

// Document is a parsed JSON value classified by shape. Value holds the raw
// value of the key that decided the kind and is nil for KindUnknown.
type Document struct {
	Kind  Kind
	Value any
}

// Detect classifies a generic JSON value. A "prefixes" key takes priority
// over a "content" key; anything else, including non-object values, is
// KindUnknown.
func Detect(v any) Document {
	obj, ok := v.(map[string]any)
	if !ok {
		return Document{Kind: KindUnknown}
	}

	if val, ok := obj[prefixesKey]; ok {
		return Document{Kind: KindPrefixes, Value: val}
	}

	if val, ok := obj[contentKey]; ok {
		return Document{Kind: KindContent, Value: val}
	}

	return Document{Kind: KindUnknown}
}

// CIDRs returns the CIDR strings carried by the document in source order.
// Values of the wrong shape contribute nothing and are reported to log.
func (d Document) CIDRs(log *zap.Logger) []string {
	res := []string{}

	switch d.Kind {
	case KindPrefixes:
		res = appendStrings(res, d.Value, prefixesKey, log)
	case KindContent:
		items, ok := d.Value.([]any)
		if !ok {
			log.Warn("ignoring non-array value", zap.String("key", contentKey))
			return res
		}

		for idx, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				log.Warn("ignoring non-object content item", zap.Int("index", idx))
				continue
			}

			ips, ok := obj[ipsKey]
			if !ok {
				continue
			}
			res = appendStrings(res, ips, ipsKey, log)
		}
	}

	return res
}

func appendStrings(dst []string, v any, key string, log *zap.Logger) []string {
	list, ok := v.([]any)
	if !ok {
		log.Warn("ignoring non-array value", zap.String("key", key))
		return dst
	}

	for _, elem := range list {
		s, ok := elem.(string)
		if !ok {
			log.Warn("ignoring non-string element", zap.String("key", key), zap.Any("value", elem))
			continue
		}
		dst = append(dst, s)
	}

	return dst
}
