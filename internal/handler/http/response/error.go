package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/trace"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token not found")
	case errors.Is(err, auth.ErrUserNotFound):
		Unauthorized(w, "User no longer exists")
	case errors.Is(err, auth.ErrAccountNotProvisioned):
		Forbidden(w, "No account is registered for this Google email")
	case errors.Is(err, auth.ErrGoogleLoginDisabled):
		NotFound(w, "Google login is not configured")
	case errors.Is(err, auth.ErrGoogleAccessDeniedByUser):
		Unauthorized(w, "Google access denied")
	case errors.Is(err, auth.ErrStateCookieEmpty),
		errors.Is(err, auth.ErrStateParamEmpty),
		errors.Is(err, auth.ErrStateMismatch),
		errors.Is(err, auth.ErrCodeValueEmpty):
		BadRequest(w, err.Error(), nil)

	// Trace domain errors
	case errors.Is(err, trace.ErrNoActiveSession):
		NotFound(w, "No active session to log out")
	case errors.Is(err, trace.ErrForeignSession):
		Forbidden(w, "You can only close your own session")
	case errors.Is(err, trace.ErrTraceNotFound):
		NotFound(w, "Trace not found")
	case errors.Is(err, trace.ErrInvalidFilter):
		BadRequest(w, err.Error(), nil)

	// Dashboard domain errors
	case errors.Is(err, dashboard.ErrForbiddenTarget):
		Forbidden(w, "You can only view your own dashboard")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Status must be one of: PENDING, APPROVED, REJECTED", nil)
	case errors.Is(err, leave.ErrForeignLeaveRequest):
		Forbidden(w, "You can only submit leave requests for yourself")

	// User and department errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Role must be one of: EMPLOYEE, ADMIN", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
