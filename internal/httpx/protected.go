package httpx

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"boardpulse/internal/domains"

	"github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
)

type contextKey string

const (
	accountIDContextKey contextKey = "accountID"
	roleContextKey      contextKey = "role"
)

// Protected rejects requests without a valid Bearer access token and
// puts the token's subject and role on the request context.
func Protected(jwtSecret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			subStr, ok := claims["sub"].(string)
			if !ok {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			role, _ := claims["role"].(string)

			ctx := WithAccountID(r.Context(), subStr)
			ctx = context.WithValue(ctx, roleContextKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly guards the reporting routes. It must sit behind Protected.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(roleContextKey).(string)
		if role != domains.RoleAdmin {
			Error(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithAccountID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, accountIDContextKey, id)
}

func AccountIDFromContext(ctx context.Context) (int64, bool) {
	sub, ok := ctx.Value(accountIDContextKey).(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
