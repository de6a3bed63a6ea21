package middleware

import (
	"net/http"
	"strings"

	"storefront-admin/internal/admin"
	"storefront-admin/internal/utils"
)

// RequireAdmin rejects requests without a valid admin bearer token and places
// the authenticated user into the request context.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteJSONError(w, "authorization required", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := admin.ParseJWT(tokenStr)
		if err != nil {
			utils.WriteJSONError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if claims.Role != string(admin.RoleAdmin) && claims.Role != string(admin.RoleEditor) {
			utils.WriteJSONError(w, "forbidden", http.StatusForbidden)
			return
		}

		ctx := utils.SetUserContext(r.Context(), uint(claims.UserID), claims.Email, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
