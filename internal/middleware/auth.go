package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/venturelink/core/internal/entities"
)

// The gateway terminates sessions and passes the resolved identity down in
// these headers. Requests reaching the service directly without them are rejected.
const (
	actorIDHeader    = "X-Actor-ID"
	actorRolesHeader = "X-Actor-Roles"
)

type actorCtxKey struct{}

// Auth resolves the request actor from gateway headers and rejects
// unauthenticated requests.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(actorIDHeader))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		actor := entities.Actor{ID: id}
		for _, v := range strings.Split(r.Header.Get(actorRolesHeader), ",") {
			if v = strings.TrimSpace(v); v != "" {
				actor.Roles = append(actor.Roles, entities.Role(v))
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorCtxKey{}, actor)))
	})
}

// RequireAdmin guards admin-only routes. Must be mounted after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if !ok || !actor.HasRole(entities.AdminRole) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetActor returns the actor resolved by Auth.
func GetActor(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(entities.Actor)
	return actor, ok
}

func writeError(w http.ResponseWriter, status int, message string) {
	data, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: message})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) // nolint:errcheck
}
