package requestctx

import (
	"context"

	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
)

type ctxKey string

const accountKey ctxKey = "account"

// WithAccount attaches the authenticated account to the request context. The
// password hash is cleared before storage; nothing downstream needs it.
func WithAccount(ctx context.Context, u user.User) context.Context {
	u.PasswordHash = ""
	return context.WithValue(ctx, accountKey, u)
}

// Account returns the authenticated account resolved by the auth middleware.
func Account(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(accountKey).(user.User)
	return u, ok
}
