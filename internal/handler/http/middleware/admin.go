package middleware

import (
	"net/http"

	"github.com/gestionahr/gestion-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			response.Forbidden(w, "Admin privilege required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
