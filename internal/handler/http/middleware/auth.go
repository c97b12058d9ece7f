package middleware

import (
	"context"
	"net/http"

	"github.com/gestionahr/gestion-backend-go/internal/domain/auth"
	"github.com/gestionahr/gestion-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	EmployeeIDKey   contextKey = "employee_id"
	EmployeeCodeKey contextKey = "employee_code"
	IsAdminKey      contextKey = "is_admin"
)

// AuthRequired validates the access token and copies its identity claims
// into the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			employeeID, ok := claims["employee_id"].(string)
			if !ok || employeeID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			employeeCode, _ := claims["employee_code"].(string)
			isAdmin, _ := claims["is_admin"].(bool)

			ctx := context.WithValue(r.Context(), EmployeeIDKey, employeeID)
			ctx = context.WithValue(ctx, EmployeeCodeKey, employeeCode)
			ctx = context.WithValue(ctx, IsAdminKey, isAdmin)

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// EmployeeID returns the authenticated employee's id from the context.
func EmployeeID(ctx context.Context) string {
	id, _ := ctx.Value(EmployeeIDKey).(string)
	return id
}

// IsAdmin reports whether the authenticated employee has admin privileges.
func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(IsAdminKey).(bool)
	return isAdmin
}
