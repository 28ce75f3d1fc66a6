package iplister

import (
	"context"
	"io"
)

type (
	// Fetches a JSON document from a webpage or file
	Reader interface {
		Data(context.Context) (io.ReadCloser, error)
	}

	// Parses the input document and returns a list of CIDRs
	Decoder interface {
		Decode(io.ReadCloser) ([]string, error)
	}
)
