package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/markjakearzadon/profast-gobackend.git/internal/auth"
)

type contextKey string

const principalKey contextKey = "principal"

// PrincipalFrom returns the principal attached by VerifyToken, if any.
func PrincipalFrom(ctx context.Context) (*auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*auth.Principal)
	return p, ok
}

// VerifyToken guards a handler with bearer-token verification. A request
// without a token is rejected with 401; a token that fails verification with
// 403. On success the decoded principal is attached to the request context.
func VerifyToken(verifier auth.TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		header := r.Header.Get("Authorization")
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
		if token == "" {
			writeMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		principal, err := verifier.Verify(r.Context(), token)
		if err != nil {
			writeMessage(w, http.StatusForbidden, "forbidden access")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
