package middleware

import (
	"context"
	"net/http"
	"syncguard/shared/constant"
)

// Identity resolves the acting operator from the request and stores it on the
// context for audit columns. Falls back to the system actor when no header is
// present.
func (a *appMiddleware) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := r.Header.Get(constant.RequestHeaderOperator)
		if actor == "" {
			actor = constant.ActorSystem
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyActor, actor)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
