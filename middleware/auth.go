package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// RequireAuth verifies the Bearer token and puts the authenticated owner's
// id into the request context under "userID". The secret is injected so
// tests and main can supply their own.
func RequireAuth(jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == authHeader {
				http.Error(w, "Invalid token format", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				return jwtSecret, nil
			})
			if err != nil || !token.Valid {
				log.Printf("Auth middleware - token rejected: %v\n", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userID, ok := claims["user_id"].(float64) // JWT numbers decode as float64
			if !ok {
				log.Printf("Auth middleware - missing or invalid user_id in claims")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			r = r.WithContext(context.WithValue(r.Context(), "userID", int(userID)))
			next.ServeHTTP(w, r)
		})
	}
}
