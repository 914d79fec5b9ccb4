package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peoplecore/hris-api/internal/core/domain"
	"github.com/peoplecore/hris-api/internal/core/ports"
)

type stubChangeRequestService struct {
	submitFn       func(ctx context.Context, input ports.SubmitChangeInput) (*domain.ChangeRequest, error)
	bulkSubmitFn   func(ctx context.Context, input ports.BulkSubmitInput) ([]*domain.ChangeRequest, error)
	approveFn      func(ctx context.Context, input ports.ReviewInput) (*domain.ChangeRequest, error)
	rejectFn       func(ctx context.Context, input ports.ReviewInput) (*domain.ChangeRequest, error)
	bulkApproveFn  func(ctx context.Context, input ports.BulkApproveInput) (*ports.BulkApproveResult, error)
	listFn         func(ctx context.Context, input ports.ListChangeRequestsInput) (*ports.ListChangeRequestsResult, error)
	countPendingFn func(ctx context.Context, principal *domain.User) (int64, error)
}

func (s *stubChangeRequestService) Submit(ctx context.Context, input ports.SubmitChangeInput) (*domain.ChangeRequest, error) {
	return s.submitFn(ctx, input)
}

func (s *stubChangeRequestService) BulkSubmit(ctx context.Context, input ports.BulkSubmitInput) ([]*domain.ChangeRequest, error) {
	return s.bulkSubmitFn(ctx, input)
}

func (s *stubChangeRequestService) Approve(ctx context.Context, input ports.ReviewInput) (*domain.ChangeRequest, error) {
	return s.approveFn(ctx, input)
}

func (s *stubChangeRequestService) Reject(ctx context.Context, input ports.ReviewInput) (*domain.ChangeRequest, error) {
	return s.rejectFn(ctx, input)
}

func (s *stubChangeRequestService) BulkApprove(ctx context.Context, input ports.BulkApproveInput) (*ports.BulkApproveResult, error) {
	return s.bulkApproveFn(ctx, input)
}

func (s *stubChangeRequestService) List(ctx context.Context, input ports.ListChangeRequestsInput) (*ports.ListChangeRequestsResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubChangeRequestService) CountPending(ctx context.Context, principal *domain.User) (int64, error) {
	return s.countPendingFn(ctx, principal)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Claims injected by the Auth middleware.
	c.Set("user_id", "usr_1")
	c.Set("role", "employee")
	c.Set("employee_id", "emp1")
	return c, rec
}

func pendingRequest() *domain.ChangeRequest {
	now := time.Now().UTC()
	return &domain.ChangeRequest{
		ID:          "req_1",
		RequesterID: "usr_1",
		EmployeeID:  "emp1",
		Category:    domain.CategoryAddress,
		FieldName:   "city",
		OldValue:    "Lahore",
		NewValue:    "Karachi",
		Status:      domain.ChangePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestChangeRequestHandler_Submit_Success(t *testing.T) {
	stub := &stubChangeRequestService{
		submitFn: func(_ context.Context, input ports.SubmitChangeInput) (*domain.ChangeRequest, error) {
			if input.Requester == nil || input.Requester.ID != "usr_1" {
				t.Fatalf("principal not forwarded: %+v", input.Requester)
			}
			if input.EmployeeID != "emp1" || input.FieldName != "city" || input.NewValue != "Karachi" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return pendingRequest(), nil
		},
	}
	h := NewChangeRequestHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/change-requests",
		`{"employee_id":"emp1","field_name":"city","new_value":"Karachi"}`)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp changeRequestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "pending" || resp.OldValue != "Lahore" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestChangeRequestHandler_Submit_MissingClaims(t *testing.T) {
	stub := &stubChangeRequestService{
		submitFn: func(context.Context, ports.SubmitChangeInput) (*domain.ChangeRequest, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewChangeRequestHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/change-requests", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Submit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestChangeRequestHandler_Submit_ValidationFailure(t *testing.T) {
	stub := &stubChangeRequestService{
		submitFn: func(context.Context, ports.SubmitChangeInput) (*domain.ChangeRequest, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewChangeRequestHandler(stub)

	// employee_id missing.
	c, _ := newTestContext(t, http.MethodPost, "/v1/change-requests", `{"field_name":"city"}`)

	err := h.Submit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestChangeRequestHandler_Submit_ServiceErrorPassedThrough(t *testing.T) {
	fieldErr := &domain.FieldValidationError{Field: "bankAccountNumber", Err: domain.ErrFieldNotEditable}
	stub := &stubChangeRequestService{
		submitFn: func(context.Context, ports.SubmitChangeInput) (*domain.ChangeRequest, error) {
			return nil, fieldErr
		},
	}
	h := NewChangeRequestHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/change-requests",
		`{"employee_id":"emp1","field_name":"bankAccountNumber","new_value":"PK00"}`)

	// Domain errors surface unchanged for the central error handler to map.
	if err := h.Submit(c); !errors.Is(err, domain.ErrFieldNotEditable) {
		t.Fatalf("expected the domain error back, got %v", err)
	}
}

func TestChangeRequestHandler_BulkSubmit_Success(t *testing.T) {
	stub := &stubChangeRequestService{
		bulkSubmitFn: func(_ context.Context, input ports.BulkSubmitInput) ([]*domain.ChangeRequest, error) {
			if len(input.Changes) != 2 {
				t.Fatalf("changes not forwarded: %+v", input.Changes)
			}
			return []*domain.ChangeRequest{pendingRequest(), pendingRequest()}, nil
		},
	}
	h := NewChangeRequestHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/change-requests/bulk",
		`{"employee_id":"emp1","category":"address","changes":{"city":"Karachi","zipCode":"75500"}}`)

	if err := h.BulkSubmit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp bulkSubmitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Created) != 2 {
		t.Fatalf("expected 2 created, got %d", len(resp.Created))
	}
}

func TestChangeRequestHandler_BulkSubmit_EmptyChangesRejected(t *testing.T) {
	stub := &stubChangeRequestService{
		bulkSubmitFn: func(context.Context, ports.BulkSubmitInput) ([]*domain.ChangeRequest, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewChangeRequestHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/change-requests/bulk",
		`{"employee_id":"emp1","changes":{}}`)

	err := h.BulkSubmit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestChangeRequestHandler_Approve_ForwardsIDAndNotes(t *testing.T) {
	stub := &stubChangeRequestService{
		approveFn: func(_ context.Context, input ports.ReviewInput) (*domain.ChangeRequest, error) {
			if input.RequestID != "req_42" {
				t.Fatalf("id not forwarded: %q", input.RequestID)
			}
			if input.Notes != "looks right" {
				t.Fatalf("notes not forwarded: %q", input.Notes)
			}
			cr := pendingRequest()
			cr.Status = domain.ChangeApproved
			return cr, nil
		},
	}
	h := NewChangeRequestHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/change-requests/req_42/approve",
		`{"review_notes":"looks right"}`)
	c.SetParamNames("id")
	c.SetParamValues("req_42")

	if err := h.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestChangeRequestHandler_Reject_ServiceErrorPassedThrough(t *testing.T) {
	stub := &stubChangeRequestService{
		rejectFn: func(context.Context, ports.ReviewInput) (*domain.ChangeRequest, error) {
			return nil, domain.ErrReviewNotesRequired
		},
	}
	h := NewChangeRequestHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/v1/change-requests/req_1/reject", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("req_1")

	if err := h.Reject(c); !errors.Is(err, domain.ErrReviewNotesRequired) {
		t.Fatalf("expected ErrReviewNotesRequired back, got %v", err)
	}
}

func TestChangeRequestHandler_List_ParsesQuery(t *testing.T) {
	stub := &stubChangeRequestService{
		listFn: func(_ context.Context, input ports.ListChangeRequestsInput) (*ports.ListChangeRequestsResult, error) {
			if input.Status != "pending" || input.EmployeeID != "emp2" {
				t.Fatalf("filters not forwarded: %+v", input)
			}
			if input.Limit != 25 || input.Offset != 50 {
				t.Fatalf("pagination not forwarded: limit=%d offset=%d", input.Limit, input.Offset)
			}
			return &ports.ListChangeRequestsResult{
				Items:  []*domain.ChangeRequest{pendingRequest()},
				Total:  1,
				Limit:  25,
				Offset: 50,
			}, nil
		},
	}
	h := NewChangeRequestHandler(stub)

	c, rec := newTestContext(t, http.MethodGet,
		"/v1/change-requests?status=pending&employee_id=emp2&limit=25&offset=50", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listChangeRequestsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Pagination.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestChangeRequestHandler_BulkApprove_ReportsOutcomes(t *testing.T) {
	stub := &stubChangeRequestService{
		bulkApproveFn: func(_ context.Context, input ports.BulkApproveInput) (*ports.BulkApproveResult, error) {
			if len(input.RequestIDs) != 2 {
				t.Fatalf("ids not forwarded: %v", input.RequestIDs)
			}
			return &ports.BulkApproveResult{
				Approved: []string{"req_1"},
				Failed:   []ports.BulkApproveFailure{{ID: "req_2", Reason: "already processed"}},
			}, nil
		},
	}
	h := NewChangeRequestHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/change-requests/bulk/approve",
		`{"request_ids":["req_1","req_2"]}`)

	if err := h.BulkApprove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp bulkApproveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Approved) != 1 || len(resp.Failed) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.Failed[0].Reason != "already processed" {
		t.Fatalf("failure reason lost: %+v", resp.Failed[0])
	}
}

func TestChangeRequestHandler_PendingCount(t *testing.T) {
	stub := &stubChangeRequestService{
		countPendingFn: func(context.Context, *domain.User) (int64, error) {
			return 7, nil
		},
	}
	h := NewChangeRequestHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/change-requests/pending/count", "")

	if err := h.PendingCount(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp pendingCountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Pending != 7 {
		t.Fatalf("expected 7, got %d", resp.Pending)
	}
}
