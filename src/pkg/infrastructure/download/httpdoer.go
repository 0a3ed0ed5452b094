package download

import (
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
)

// HTTPDoer lets us test HTTP clients
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultClient returns a client without a global timeout; a download of a
// large archive blocks until it completes.
func DefaultClient() *http.Client {
	return cleanhttp.DefaultClient()
}
