package auth

import (
	"context"
	"net/http"
	"strings"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type contextKey struct{}

var actorKey = contextKey{}

// Middleware extracts a Bearer token from the Authorization header,
// verifies it and stores the resulting actor in the request context.
// When kinds is non-empty the actor kind must be one of them.
func Middleware(log handlerLogger, verifier TokenVerifier, kinds ...entities.ActorKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actor, err := verifier.Verify(token)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("token verification failed")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if len(kinds) > 0 && !kindAllowed(actor.Kind, kinds) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the authenticated actor stored by Middleware.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func kindAllowed(kind entities.ActorKind, kinds []entities.ActorKind) bool {
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
