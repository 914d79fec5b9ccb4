package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplecore/hris-api/internal/api/metrics"
	"github.com/peoplecore/hris-api/internal/core/domain"
	"github.com/peoplecore/hris-api/internal/core/ports"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// PendingCountCache abstracts the dashboard badge cache (Redis). A miss or
// cache failure is never fatal; the count falls through to storage.
type PendingCountCache interface {
	Get(ctx context.Context) (int64, bool, error)
	Set(ctx context.Context, n int64) error
	Invalidate(ctx context.Context) error
}

type changeRequestService struct {
	requests ports.ChangeRequestRepository
	record   ports.EmployeeRecord
	cache    PendingCountCache
	log      zerolog.Logger
}

// NewChangeRequestService returns a ChangeRequestService implementation.
// cache may be nil when no badge cache is configured.
func NewChangeRequestService(
	requests ports.ChangeRequestRepository,
	record ports.EmployeeRecord,
	cache PendingCountCache,
	log zerolog.Logger,
) ports.ChangeRequestService {
	return &changeRequestService{
		requests: requests,
		record:   record,
		cache:    cache,
		log:      log,
	}
}

// Submit validates and stores one proposed field change in pending state.
// OldValue is read from the employee record here, at proposal time, so the
// audit trail reflects what the requester was looking at even if the
// record changes again before review.
func (s *changeRequestService) Submit(ctx context.Context, input ports.SubmitChangeInput) (*domain.ChangeRequest, error) {
	if err := requireSelfOrPrivileged(input.Requester, input.EmployeeID); err != nil {
		return nil, err
	}

	spec, err := resolveEditableField(input.FieldName, input.Category)
	if err != nil {
		return nil, err
	}

	oldValue, err := s.record.ReadField(ctx, input.EmployeeID, spec.Column)
	if err != nil {
		return nil, fmt.Errorf("submit change request: %w", err)
	}

	now := time.Now().UTC()
	cr := &domain.ChangeRequest{
		RequesterID: input.Requester.ID,
		EmployeeID:  input.EmployeeID,
		Category:    spec.Category,
		FieldName:   spec.Column,
		OldValue:    oldValue,
		NewValue:    input.NewValue,
		Status:      domain.ChangePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.requests.Create(ctx, cr)
	if err != nil {
		s.log.Error().Err(err).Str("employee_id", input.EmployeeID).Str("field", spec.Column).Msg("failed to store change request")
		return nil, err
	}

	metrics.ChangeRequestsSubmittedTotal.WithLabelValues(string(spec.Category)).Inc()
	s.invalidatePendingCount(ctx)

	s.log.Info().
		Str("request_id", created.ID).
		Str("requester_id", input.Requester.ID).
		Str("employee_id", input.EmployeeID).
		Str("field", spec.Column).
		Msg("change request submitted")

	return created, nil
}

// BulkSubmit creates one pending request per field in input.Changes. The
// bundle shares a single category and is all-or-nothing: any field outside
// the self-service allow-list rejects the whole submission, naming every
// offending field, and no rows are created.
func (s *changeRequestService) BulkSubmit(ctx context.Context, input ports.BulkSubmitInput) ([]*domain.ChangeRequest, error) {
	if err := requireSelfOrPrivileged(input.Requester, input.EmployeeID); err != nil {
		return nil, err
	}
	if len(input.Changes) == 0 {
		return nil, domain.ErrNoChanges
	}

	// Deterministic processing order.
	names := make([]string, 0, len(input.Changes))
	for name := range input.Changes {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]domain.FieldSpec, 0, len(names))
	for _, name := range names {
		spec, err := resolveEditableField(name, input.Category)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	now := time.Now().UTC()
	created := make([]*domain.ChangeRequest, 0, len(specs))
	for i, spec := range specs {
		oldValue, err := s.record.ReadField(ctx, input.EmployeeID, spec.Column)
		if err != nil {
			return nil, fmt.Errorf("bulk submit: %w", err)
		}
		cr := &domain.ChangeRequest{
			RequesterID: input.Requester.ID,
			EmployeeID:  input.EmployeeID,
			Category:    spec.Category,
			FieldName:   spec.Column,
			OldValue:    oldValue,
			NewValue:    input.Changes[names[i]],
			Status:      domain.ChangePending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		stored, err := s.requests.Create(ctx, cr)
		if err != nil {
			return nil, fmt.Errorf("bulk submit: %w", err)
		}
		metrics.ChangeRequestsSubmittedTotal.WithLabelValues(string(spec.Category)).Inc()
		created = append(created, stored)
	}

	s.invalidatePendingCount(ctx)
	s.log.Info().
		Str("requester_id", input.Requester.ID).
		Str("employee_id", input.EmployeeID).
		Int("count", len(created)).
		Msg("bulk change requests submitted")

	return created, nil
}

// Approve applies a pending request to the employee record and marks it
// approved. The employee write happens before the status flip so a failed
// write leaves the request pending; the flip itself is a conditional
// update on status=pending, so concurrent approvals resolve to exactly one
// winner.
func (s *changeRequestService) Approve(ctx context.Context, input ports.ReviewInput) (*domain.ChangeRequest, error) {
	if err := requirePrivileged(input.Reviewer); err != nil {
		return nil, err
	}

	cr, err := s.requests.FindByID(ctx, input.RequestID)
	if err != nil {
		metrics.ChangeRequestReviewFailuresTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}
	if cr.Status != domain.ChangePending {
		metrics.ChangeRequestReviewFailuresTotal.WithLabelValues("already_processed").Inc()
		return nil, domain.ErrRequestNotPending
	}

	if err := s.record.WriteField(ctx, cr.EmployeeID, cr.FieldName, cr.NewValue); err != nil {
		metrics.ChangeRequestReviewFailuresTotal.WithLabelValues("apply_failed").Inc()
		s.log.Error().Err(err).
			Str("request_id", cr.ID).
			Str("employee_id", cr.EmployeeID).
			Str("field", cr.FieldName).
			Msg("failed to apply change, request stays pending")
		return nil, fmt.Errorf("approve: apply field: %w", err)
	}

	updated, err := s.requests.MarkReviewed(ctx, cr.ID, domain.ChangeApproved, input.Reviewer.ID, input.Notes, time.Now().UTC())
	if err != nil {
		metrics.ChangeRequestReviewFailuresTotal.WithLabelValues("already_processed").Inc()
		return nil, err
	}

	metrics.ChangeRequestsReviewedTotal.WithLabelValues("approved").Inc()
	s.invalidatePendingCount(ctx)

	s.log.Info().
		Str("request_id", cr.ID).
		Str("reviewer_id", input.Reviewer.ID).
		Str("employee_id", cr.EmployeeID).
		Str("field", cr.FieldName).
		Msg("change request approved")

	return updated, nil
}

// Reject marks a pending request rejected without touching the employee
// record. Review notes are mandatory: a rejection must carry a reason.
func (s *changeRequestService) Reject(ctx context.Context, input ports.ReviewInput) (*domain.ChangeRequest, error) {
	if err := requirePrivileged(input.Reviewer); err != nil {
		return nil, err
	}
	if input.Notes == "" {
		return nil, domain.ErrReviewNotesRequired
	}

	updated, err := s.requests.MarkReviewed(ctx, input.RequestID, domain.ChangeRejected, input.Reviewer.ID, input.Notes, time.Now().UTC())
	if err != nil {
		metrics.ChangeRequestReviewFailuresTotal.WithLabelValues("already_processed").Inc()
		return nil, err
	}

	metrics.ChangeRequestsReviewedTotal.WithLabelValues("rejected").Inc()
	s.invalidatePendingCount(ctx)

	s.log.Info().
		Str("request_id", input.RequestID).
		Str("reviewer_id", input.Reviewer.ID).
		Msg("change request rejected")

	return updated, nil
}

// BulkApprove approves each id independently; one bad id never aborts the
// rest. Each item goes through the same conditional transition as a single
// approve, so a duplicated id in the list behaves like a lost race.
func (s *changeRequestService) BulkApprove(ctx context.Context, input ports.BulkApproveInput) (*ports.BulkApproveResult, error) {
	if err := requirePrivileged(input.Reviewer); err != nil {
		return nil, err
	}

	result := &ports.BulkApproveResult{
		Approved: []string{},
		Failed:   []ports.BulkApproveFailure{},
	}
	for _, id := range input.RequestIDs {
		_, err := s.Approve(ctx, ports.ReviewInput{
			Reviewer:  input.Reviewer,
			RequestID: id,
			Notes:     input.Notes,
		})
		if err != nil {
			result.Failed = append(result.Failed, ports.BulkApproveFailure{ID: id, Reason: reviewFailureReason(err)})
			continue
		}
		result.Approved = append(result.Approved, id)
	}

	s.log.Info().
		Str("reviewer_id", input.Reviewer.ID).
		Int("approved", len(result.Approved)).
		Int("failed", len(result.Failed)).
		Msg("bulk approve processed")

	return result, nil
}

// List returns requests visible to the principal, most recent first.
// Privileged callers see everything (optionally filtered); everyone else
// is pinned to their own requests no matter what filters they supply.
func (s *changeRequestService) List(ctx context.Context, input ports.ListChangeRequestsInput) (*ports.ListChangeRequestsResult, error) {
	if input.Principal == nil {
		return nil, domain.ErrForbidden
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	filter := ports.ListChangeRequestsFilter{
		Status: input.Status,
		Limit:  limit,
		Offset: offset,
	}
	if domain.HasAnyRole(input.Principal, domain.RoleAdmin, domain.RoleHR) {
		filter.EmployeeID = input.EmployeeID
	} else {
		filter.RequesterID = input.Principal.ID
	}

	items, total, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListChangeRequestsResult{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// CountPending returns the number of pending requests for the reviewer
// dashboard badge. Privileged only; served from the cache when warm.
func (s *changeRequestService) CountPending(ctx context.Context, principal *domain.User) (int64, error) {
	if err := requirePrivileged(principal); err != nil {
		return 0, err
	}

	if s.cache != nil {
		if n, ok, err := s.cache.Get(ctx); err != nil {
			s.log.Warn().Err(err).Msg("pending count cache read failed")
		} else if ok {
			return n, nil
		}
	}

	n, err := s.requests.CountPending(ctx)
	if err != nil {
		return 0, err
	}
	metrics.ChangeRequestsPending.Set(float64(n))

	if s.cache != nil {
		if err := s.cache.Set(ctx, n); err != nil {
			s.log.Warn().Err(err).Msg("pending count cache write failed")
		}
	}
	return n, nil
}

func (s *changeRequestService) invalidatePendingCount(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("pending count cache invalidation failed")
	}
}

// resolveEditableField maps a public or storage field name to its spec and
// enforces the self-service allow-list and category consistency.
func resolveEditableField(fieldName, category string) (domain.FieldSpec, error) {
	spec, ok := domain.LookupField(fieldName)
	if !ok {
		return domain.FieldSpec{}, &domain.FieldValidationError{Field: fieldName, Err: domain.ErrUnknownField}
	}
	if !spec.SelfService {
		return domain.FieldSpec{}, &domain.FieldValidationError{Field: spec.Name, Err: domain.ErrFieldNotEditable}
	}
	if category != "" && domain.ChangeCategory(category) != spec.Category {
		return domain.FieldSpec{}, &domain.FieldValidationError{Field: spec.Name, Err: domain.ErrCategoryMismatch}
	}
	return spec, nil
}

func requireSelfOrPrivileged(principal *domain.User, employeeID string) error {
	if principal == nil {
		return domain.ErrForbidden
	}
	if domain.HasAnyRole(principal, domain.RoleAdmin, domain.RoleHR) {
		return nil
	}
	if principal.EmployeeID != "" && principal.EmployeeID == employeeID {
		return nil
	}
	return domain.ErrForbidden
}

func requirePrivileged(principal *domain.User) error {
	if principal == nil || !domain.HasAnyRole(principal, domain.RoleAdmin, domain.RoleHR) {
		return domain.ErrForbidden
	}
	return nil
}

// reviewFailureReason condenses an approve error into a caller-facing
// reason without leaking storage internals.
func reviewFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound):
		return "not found"
	case errors.Is(err, domain.ErrRequestNotPending):
		return "already processed"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return "employee not found"
	default:
		return "apply failed"
	}
}
