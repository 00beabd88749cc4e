// Package httpmiddleware contains the HTTP middleware chain of the API server.
package httpmiddleware

import (
	"net/http"
	"net/url"
)

// Middleware wraps an http.Handler.
type Middleware func(next http.Handler) http.Handler

// Wrap applies middlewares to h. The first middleware is the outermost one.
func Wrap(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RouteFinder returns the route pattern that will serve r.
type RouteFinder func(r *http.Request) (string, bool)

// MakeRouteFinder finds routes registered on mux without serving them.
func MakeRouteFinder(mux *http.ServeMux) RouteFinder {
	return func(r *http.Request) (string, bool) {
		_, pattern := mux.Handler(r)
		return pattern, pattern != ""
	}
}

// OASRoute is a route of an ogen-generated server.
type OASRoute interface {
	PathPattern() string
}

// OASRouter is implemented by ogen-generated servers.
type OASRouter[R OASRoute] interface {
	FindPath(method string, u *url.URL) (R, bool)
}

// MakeOASRouteFinder finds operations of an ogen server mounted under
// prefix.
func MakeOASRouteFinder[R OASRoute](prefix string, router OASRouter[R]) RouteFinder {
	return func(r *http.Request) (string, bool) {
		route, ok := router.FindPath(r.Method, r.URL)
		if !ok {
			return "", false
		}
		return prefix + route.PathPattern(), true
	}
}

// FirstRoute returns the route of the first finder that knows r.
func FirstRoute(finders ...RouteFinder) RouteFinder {
	return func(r *http.Request) (string, bool) {
		for _, find := range finders {
			if route, ok := find(r); ok {
				return route, true
			}
		}
		return "", false
	}
}
