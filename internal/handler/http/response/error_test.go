package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/domain/auth"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/gemini"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleErrorResult(t *testing.T, err error) (int, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate email", employee.ErrEmailExists, http.StatusBadRequest, "CONFLICT"},
		{"duplicate user email", user.ErrUserEmailExists, http.StatusBadRequest, "CONFLICT"},
		{"attendance already marked", attendance.ErrAlreadyMarked, http.StatusBadRequest, "CONFLICT"},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"role not permitted", user.ErrRoleAccessRequired, http.StatusForbidden, "FORBIDDEN"},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"empty upstream response", gemini.ErrEmptyResponse, http.StatusBadGateway, "BAD_GATEWAY"},
		{"unknown error", assert.AnError, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, resp := handleErrorResult(t, c.err)

			assert.Equal(t, c.wantStatus, status)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, c.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
	}

	status, resp := handleErrorResult(t, errs)

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "email is required", resp.Error.Details["email"])
}

func TestHandleError_UpstreamError(t *testing.T) {
	status, resp := handleErrorResult(t, &gemini.UpstreamError{
		StatusCode: http.StatusTooManyRequests,
		Message:    "quota exceeded",
	})

	assert.Equal(t, http.StatusBadGateway, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_GATEWAY", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "quota exceeded")
}
