package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrUnauthenticated            = errors.New("authentication required")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrTokenExpired               = errors.New("token has expired")
	ErrRefreshTokenRevoked        = errors.New("refresh token has been revoked")
	ErrUserNotFound               = errors.New("user not found")
	ErrAccountNotProvisioned      = errors.New("no account is registered for this google email")
	ErrGoogleLoginDisabled        = errors.New("google login is not configured")
	ErrGoogleAccessDeniedByUser   = errors.New("google access denied by user")
	ErrStateCookieEmpty           = errors.New("state cookie is empty")
	ErrStateParamEmpty            = errors.New("state parameter is empty")
	ErrStateMismatch              = errors.New("state mismatch")
	ErrCodeValueEmpty             = errors.New("code value is empty")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
)
