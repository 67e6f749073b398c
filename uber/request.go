package uber

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// requestSpec describes a single API request before it is rendered: the
// endpoint path, HTTP method and parameter mapping. Transient, built and
// consumed within one call.
type requestSpec struct {
	endpoint string
	method   string
	params   url.Values
}

// url renders the fully qualified request URL against a base. GET requests
// carry their parameters as a query string; POST requests carry them in
// the body instead.
func (r requestSpec) url(base string) string {
	if r.method == http.MethodGet {
		return buildURL(base, r.endpoint, r.params)
	}
	return buildURL(base, r.endpoint, nil)
}

// body renders the form-encoded body for POST requests. Empty for GET.
func (r requestSpec) body() string {
	if r.method == http.MethodGet {
		return ""
	}
	return r.params.Encode()
}

// buildURL joins the base URL, endpoint path and encoded query parameters
// into a fully qualified request URL. Pure function, no I/O.
func buildURL(base, endpoint string, params url.Values) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteString("/")
	b.WriteString(endpoint)
	if len(params) > 0 {
		b.WriteString("?")
		b.WriteString(params.Encode())
	}
	return b.String()
}

// coord renders a latitude or longitude with the shortest representation
// that round-trips the float64 exactly.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
