// Package routes holds the fixed route table every server binary serves.
package routes

import "net/http"

const (
	ContentType  = "text/plain; charset=utf-8"
	HealthBody   = "ok"
	GreetingBody = "Hello from Node multi-stage demo!"
	NotFoundBody = "Not Found"
)

type Route struct {
	Method string
	Path   string
	Body   string
}

// Table is never modified after init.
var Table = []Route{
	{Method: http.MethodGet, Path: "/health", Body: HealthBody},
	{Method: http.MethodGet, Path: "/", Body: GreetingBody},
}

// Lookup matches method and path exactly, case included. path is the
// request path as it appeared on the request line: still percent-encoded,
// with no slash collapsing or dot removal. Unknown paths and known paths
// with another method both miss; callers answer 404 for either.
func Lookup(method, path string) (Route, bool) {
	for _, r := range Table {
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
