package ports

import (
	"context"
	"time"

	"github.com/peoplecore/hris-api/internal/core/domain"
)

// ListChangeRequestsFilter carries all query parameters for listing change
// requests. RequesterID is always enforced by the service layer for
// non-privileged callers.
type ListChangeRequestsFilter struct {
	RequesterID string // non-empty = scoped to this requester
	EmployeeID  string // optional: filter by subject employee
	Status      string // optional: pending, approved, rejected
	Limit       int    // max rows (capped at 500 by service)
	Offset      int    // rows to skip
}

// ChangeRequestRepository defines persistence operations for change
// requests.
type ChangeRequestRepository interface {
	Create(ctx context.Context, cr *domain.ChangeRequest) (*domain.ChangeRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ChangeRequest, error)
	// List returns a page of requests matching filter, most recent first,
	// and the total count.
	List(ctx context.Context, filter ListChangeRequestsFilter) ([]*domain.ChangeRequest, int64, error)
	CountPending(ctx context.Context) (int64, error)
	// MarkReviewed atomically transitions the request from pending to the
	// given terminal status, recording the reviewer. The condition is
	// enforced at the storage layer: of two concurrent calls on the same
	// id exactly one succeeds and the other observes
	// domain.ErrRequestNotPending.
	MarkReviewed(ctx context.Context, id string, status domain.ChangeRequestStatus, reviewedBy, notes string, reviewedAt time.Time) (*domain.ChangeRequest, error)
}
