package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/trace"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrUnauthenticated, http.StatusUnauthorized},
		{auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{auth.ErrAccountNotProvisioned, http.StatusForbidden},
		{trace.ErrNoActiveSession, http.StatusNotFound},
		{trace.ErrForeignSession, http.StatusForbidden},
		{dashboard.ErrForbiddenTarget, http.StatusForbidden},
		{leave.ErrForeignLeaveRequest, http.StatusForbidden},
		{leave.ErrLeaveRequestNotFound, http.StatusNotFound},
		{leave.ErrInvalidStatus, http.StatusBadRequest},
		{user.ErrUserNotFound, http.StatusNotFound},
		{user.ErrUserEmailExists, http.StatusConflict},
		{department.ErrDepartmentNotFound, http.StatusNotFound},
		{department.ErrDepartmentNameExists, http.StatusConflict},
		{fmt.Errorf("failed to load: %w", user.ErrUserNotFound), http.StatusNotFound},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		HandleError(w, c.err)
		assert.Equal(t, c.code, w.Code, c.err.Error())
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add("userId", "userId is required")

	w := httptest.NewRecorder()
	HandleError(w, fmt.Errorf("%w: %w", trace.ErrInvalidFilter, errs.Err()))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, map[string]string{"userId": "userId is required"}, resp.Error.Details)
}

func TestHandleError_InternalHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, errors.New("pq: password authentication failed"))

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	Attachment(w, "report.xlsx", "application/octet-stream", []byte("data"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="report.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", w.Header().Get("Content-Length"))
	assert.Equal(t, "data", w.Body.String())
}
