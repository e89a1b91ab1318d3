package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/trace"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/jwt"
)

type TraceHandler interface {
	Logout(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type TraceHandlerImpl struct {
	traceService trace.TraceService
	authService  auth.AuthService
	jwtService   jwt.Service
}

func NewTraceHandler(traceService trace.TraceService, authService auth.AuthService, jwtService jwt.Service) TraceHandler {
	return &TraceHandlerImpl{
		traceService: traceService,
		authService:  authService,
		jwtService:   jwtService,
	}
}

// Logout implements TraceHandler.
func (h *TraceHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req trace.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Logout decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.traceService.Logout(r.Context(), principal, req)
	if err != nil {
		slog.Error("Logout service error", "error", err, "user_id", req.UserID)
		response.HandleError(w, err)
		return
	}

	// an admin closing someone else's session keeps their own refresh token
	if req.UserID == principal.UserID {
		if cookie, err := r.Cookie(jwt.RefreshTokenCookieName); err == nil && cookie.Value != "" {
			if err := h.authService.RevokeRefreshToken(r.Context(), cookie.Value); err != nil {
				slog.Error("Logout revoke refresh token error", "error", err)
			}
		}
		http.SetCookie(w, h.jwtService.ClearRefreshTokenCookie())
	}

	response.SuccessWithMessage(w, "Logged out successfully", result)
}

func traceFilterFromRequest(r *http.Request) trace.TraceFilter {
	q := r.URL.Query()
	return trace.TraceFilter{
		Name:   q.Get("name"),
		Date:   q.Get("date"),
		From:   q.Get("from"),
		To:     q.Get("to"),
		UserID: q.Get("userId"),
		Page:   q.Get("page"),
		Limit:  q.Get("limit"),
	}
}

// List implements TraceHandler.
func (h *TraceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.traceService.List(r.Context(), traceFilterFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Traces, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// Summary implements TraceHandler.
func (h *TraceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.traceService.Summarize(r.Context(), traceFilterFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Export implements TraceHandler.
func (h *TraceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.traceService.Export(r.Context(), traceFilterFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}
