package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid access token and stores the token's company in the context
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "invalid or expired token")
				return
			}

			tokenType, ok := claims[jwt.ClaimType].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.Unauthorized(w, "invalid or expired token")
				return
			}

			companyID, ok := claims[jwt.ClaimCompanyID].(string)
			if !ok || companyID == "" {
				response.Forbidden(w, ErrCompanyIDRequired.Error())
				return
			}

			ctx := WithCompanyID(r.Context(), companyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
