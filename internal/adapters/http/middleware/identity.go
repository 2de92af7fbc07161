package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/todo-store/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/platform/auth"
	"github.com/jsamuelsen11/todo-store/internal/platform/logging"
)

// Identity returns middleware that resolves the caller for each request and
// stores it with auth.WithCaller. Safe methods may proceed anonymously; any
// other method without a caller is answered with 401. Credentials that are
// present but invalid are rejected with 401 regardless of method.
//
// Authorization against the store owner is not done here: the application
// layer compares the resolved caller with the owner and reports 403.
func Identity(resolver auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := resolver.Resolve(r)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := r.Context()
			if caller.IsZero() {
				if !isSafeMethod(r.Method) {
					dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx = auth.WithCaller(ctx, caller)
			ctx = logging.With(ctx, logging.Caller(caller.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
