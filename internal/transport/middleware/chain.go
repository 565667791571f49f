// Package middleware provides the HTTP middleware stack: request ids,
// logging, panic recovery, CORS, rate limiting, and bearer auth.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into one. Middleware run in the
// order given: Chain(mw1, mw2)(h) means mw1 is outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
