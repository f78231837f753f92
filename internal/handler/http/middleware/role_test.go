package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/requestctx"
	"github.com/stretchr/testify/assert"
)

func roleTestRequest(t *testing.T, role user.Role, attach bool) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if attach {
		account := user.User{ID: "u1", Email: "test@example.com", Role: role}
		req = req.WithContext(requestctx.WithAccount(req.Context(), account))
	}
	return req
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name       string
		allowed    []user.Role
		role       user.Role
		attach     bool
		wantStatus int
	}{
		{"allowed role passes", []user.Role{user.RoleAdmin, user.RoleHR}, user.RoleHR, true, http.StatusOK},
		{"role outside the list is rejected", []user.Role{user.RoleAdmin, user.RoleHR}, user.RoleEmployee, true, http.StatusForbidden},
		{"admin is not implicitly allowed", []user.Role{user.RoleManager}, user.RoleAdmin, true, http.StatusForbidden},
		{"no resolved account is rejected", []user.Role{user.RoleAdmin}, "", false, http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			handler := RequireRole(c.allowed...)(next)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, roleTestRequest(t, c.role, c.attach))

			assert.Equal(t, c.wantStatus, rec.Code)
		})
	}
}
