package ports

import (
	"context"

	"github.com/peoplecore/hris-api/internal/core/domain"
)

// SubmitChangeInput carries one proposed field change. Category is
// optional; when supplied it must match the field's registered category.
type SubmitChangeInput struct {
	Requester  *domain.User
	EmployeeID string
	FieldName  string
	NewValue   string
	Category   string
}

// BulkSubmitInput proposes several changes of one category at once.
// The whole bundle is rejected if any field is outside the self-service
// allow-list.
type BulkSubmitInput struct {
	Requester  *domain.User
	EmployeeID string
	Category   string
	Changes    map[string]string // field name -> new value
}

// ReviewInput identifies a pending request and the reviewer's decision
// context. Notes are optional on approve and mandatory on reject.
type ReviewInput struct {
	Reviewer  *domain.User
	RequestID string
	Notes     string
}

// BulkApproveInput approves several requests; each is processed
// independently.
type BulkApproveInput struct {
	Reviewer   *domain.User
	RequestIDs []string
	Notes      string
}

// BulkApproveFailure reports why one id in a bulk approve was not applied.
type BulkApproveFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkApproveResult reports per-id outcomes; partial success is expected.
type BulkApproveResult struct {
	Approved []string             `json:"approved"`
	Failed   []BulkApproveFailure `json:"failed"`
}

// ListChangeRequestsInput carries all parameters for the list endpoint.
// Non-privileged principals only ever see their own requests regardless of
// the filters supplied.
type ListChangeRequestsInput struct {
	Principal  *domain.User
	Status     string
	EmployeeID string
	Limit      int
	Offset     int
}

// ListChangeRequestsResult is returned by List.
type ListChangeRequestsResult struct {
	Items  []*domain.ChangeRequest
	Total  int64
	Limit  int
	Offset int
}

// ChangeRequestService is the propose/review/apply state machine for
// self-service employee edits.
type ChangeRequestService interface {
	Submit(ctx context.Context, input SubmitChangeInput) (*domain.ChangeRequest, error)
	BulkSubmit(ctx context.Context, input BulkSubmitInput) ([]*domain.ChangeRequest, error)
	Approve(ctx context.Context, input ReviewInput) (*domain.ChangeRequest, error)
	Reject(ctx context.Context, input ReviewInput) (*domain.ChangeRequest, error)
	BulkApprove(ctx context.Context, input BulkApproveInput) (*BulkApproveResult, error)
	List(ctx context.Context, input ListChangeRequestsInput) (*ListChangeRequestsResult, error)
	CountPending(ctx context.Context, principal *domain.User) (int64, error)
}
