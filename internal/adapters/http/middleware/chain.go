package middleware

import "net/http"

// Chain composes the server's middleware stack into one middleware for the
// router. The first entry is outermost, so
//
//	Chain(Recovery(logger), RequestID(), Logging(logger))
//
// wraps a handler as Recovery(RequestID(Logging(handler))). Nil entries are
// skipped, which lets optional layers be left out without branching at the
// call site.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	stack := make([]func(http.Handler) http.Handler, 0, len(middlewares))
	for _, mw := range middlewares {
		if mw != nil {
			stack = append(stack, mw)
		}
	}

	return func(handler http.Handler) http.Handler {
		for i := len(stack) - 1; i >= 0; i-- {
			handler = stack[i](handler)
		}
		return handler
	}
}
