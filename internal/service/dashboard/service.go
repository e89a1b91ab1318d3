package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	user.UserRepository
	location *time.Location
	now      func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, userRepo user.UserRepository, location *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		UserRepository:      userRepo,
		location:            location,
		now:                 time.Now,
	}
}

// startOfDay returns local midnight for the current day
func (s *DashboardServiceImpl) startOfDay() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

// GetSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, principal auth.Principal, targetUserID int64) (dashboard.Summary, error) {
	if principal.IsAdmin() {
		counts, err := s.collect(ctx, nil, nil)
		if err != nil {
			return nil, err
		}
		return dashboard.NewAdminSummary(counts), nil
	}

	if targetUserID != principal.UserID {
		return nil, dashboard.ErrForbiddenTarget
	}

	target, err := s.UserRepository.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	counts, err := s.collect(ctx, &target.ID, &target)
	if err != nil {
		return nil, err
	}
	return dashboard.NewPersonalSummary(target.ID, target.Name, counts), nil
}

// collect runs the four counts in parallel. With a nil userID the counts cover
// every user; otherwise departments is the 0/1 assignment flag of target.
func (s *DashboardServiceImpl) collect(ctx context.Context, userID *int64, target *user.User) (dashboard.Counts, error) {
	since := s.startOfDay()
	var counts dashboard.Counts

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.CountTracesSince(gCtx, since, userID)
		if err != nil {
			return err
		}
		counts.LoggedInUsers = n
		return nil
	})

	g.Go(func() error {
		n, err := s.CountLeaveRequestsSince(gCtx, since, userID)
		if err != nil {
			return err
		}
		counts.LeavesRequestedToday = n
		return nil
	})

	g.Go(func() error {
		n, err := s.CountPendingLeaveRequests(gCtx, userID)
		if err != nil {
			return err
		}
		counts.PendingApprovals = n
		return nil
	})

	if target == nil {
		g.Go(func() error {
			n, err := s.CountDepartments(gCtx)
			if err != nil {
				return err
			}
			counts.Departments = n
			return nil
		})
	} else if target.HasDepartment() {
		counts.Departments = 1
	}

	if err := g.Wait(); err != nil {
		return dashboard.Counts{}, fmt.Errorf("failed to build dashboard summary: %w", err)
	}
	return counts, nil
}
