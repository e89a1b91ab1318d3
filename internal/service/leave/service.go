package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
}

func NewLeaveService(repo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{LeaveRequestRepository: repo}
}

// Create implements leave.LeaveService.
// The request is filed for the caller unless an admin names another user.
func (s *LeaveServiceImpl) Create(ctx context.Context, principal auth.Principal, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	userID := principal.UserID
	if req.UserID != 0 && req.UserID != principal.UserID {
		if !principal.Can(user.PermissionLeaveApprove) {
			return leave.LeaveRequestResponse{}, leave.ErrForeignLeaveRequest
		}
		userID = req.UserID
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:    userID,
		Reason:    req.Reason,
		StartDate: req.Start(),
		EndDate:   req.End(),
		Status:    leave.LeaveRequestStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request created", "leave_request_id", created.ID, "user_id", created.UserID)
	return leave.NewLeaveRequestResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, principal auth.Principal) ([]leave.LeaveRequestResponse, error) {
	var scope *int64
	if !principal.Can(user.PermissionLeaveViewAll) {
		scope = &principal.UserID
	}

	requests, err := s.LeaveRequestRepository.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, leave.NewLeaveRequestResponse(r))
	}
	return resp, nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, principal auth.Principal, id int64) (leave.LeaveRequestResponse, error) {
	req, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	// other users' requests are hidden, not forbidden
	if req.UserID != principal.UserID && !principal.Can(user.PermissionLeaveViewAll) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}
	return leave.NewLeaveRequestResponse(req), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	status, err := leave.ParseStatus(req.Status)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, status)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("Leave request status updated", "leave_request_id", updated.ID, "status", updated.Status)
	return leave.NewLeaveRequestResponse(updated), nil
}
