package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/traincore/schedule-backend-go/internal/handler/http/response"
	appJWT "github.com/traincore/schedule-backend-go/internal/pkg/jwt"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, appJWT.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.Forbidden(w, "administrator privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
