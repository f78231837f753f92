package middleware

import (
	"net/http"

	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hrms-backend-go/internal/requestctx"
)

// RequireRole restricts a route to a constant allow-list of roles. Roles
// carry no hierarchy: admin is only permitted where it is listed.
func RequireRole(allowed ...user.Role) func(http.Handler) http.Handler {
	allowedSet := make(map[user.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := requestctx.Account(r.Context())
			if !ok {
				response.HandleError(w, user.ErrRoleAccessRequired)
				return
			}

			if _, permitted := allowedSet[account.Role]; !permitted {
				response.HandleError(w, user.ErrRoleAccessRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
