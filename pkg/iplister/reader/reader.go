package reader

import (
	"github.com/kanopy-platform/json2list/pkg/iplister"
	"github.com/kanopy-platform/json2list/pkg/iplister/reader/file"
	httpreader "github.com/kanopy-platform/json2list/pkg/iplister/reader/http"
	"github.com/kanopy-platform/json2list/pkg/stringutils"
)

type Options struct {
	Username string
	Password string
}

// ForSource returns an HTTP reader when source carries an http:// or https://
// prefix and a file reader otherwise.
func ForSource(source string, opts Options) iplister.Reader {
	if stringutils.HasHTTPScheme(source) {
		return httpreader.New(source, httpreader.WithBasicAuth(opts.Username, opts.Password))
	}

	return file.New(source)
}
