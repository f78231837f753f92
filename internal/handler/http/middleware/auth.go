package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/auth"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hrms-backend-go/internal/requestctx"
)

// AuthRequired verifies the bearer token and resolves the account it names
// into the request context. A token for a since-deleted account passes the
// signature check but attaches nothing, so the role gate rejects it.
func AuthRequired(ja *jwtauth.JWTAuth, userRepo user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					response.HandleError(w, auth.ErrNoToken)
					return
				}
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrNoToken)
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
			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			account, err := userRepo.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					// Deleted after token issuance; role check downstream fails
					next.ServeHTTP(w, r)
					return
				}
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}

			next.ServeHTTP(w, r.WithContext(requestctx.WithAccount(r.Context(), account)))
		}
		return http.HandlerFunc(hfn)
	}
}
