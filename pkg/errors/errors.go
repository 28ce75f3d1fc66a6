package errors

import "errors"

type Kind int

const (
	KindNetwork Kind = iota
	KindNotFound
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not found"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// LoadError is returned when an input document cannot be fetched, opened or parsed.
type LoadError struct {
	err  error
	kind Kind
}

func (e *LoadError) Unwrap() error {
	return e.err
}

func (e *LoadError) Error() string {
	return e.err.Error()
}

func (e *LoadError) Kind() Kind {
	return e.kind
}

func NewNetworkError(err error) *LoadError {
	return &LoadError{
		err:  err,
		kind: KindNetwork,
	}
}

func NewNotFoundError(err error) *LoadError {
	return &LoadError{
		err:  err,
		kind: KindNotFound,
	}
}

func NewParseError(err error) *LoadError {
	return &LoadError{
		err:  err,
		kind: KindParse,
	}
}

// IsKind reports whether any error in err's chain is a LoadError of kind k.
func IsKind(err error, k Kind) bool {
	var le *LoadError
	if !errors.As(err, &le) {
		return false
	}
	return le.kind == k
}

func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
