package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses (rendered by the central HTTP error handler).
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Hint  string `json:"hint,omitempty"`
}

// --- Request types ---

type submitChangeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	FieldName  string `json:"field_name"  validate:"required"`
	NewValue   string `json:"new_value"`
	Category   string `json:"category"    validate:"omitempty,oneof=personal_details address contact dependents emergency_contacts bank_details"`
}

type bulkSubmitRequest struct {
	EmployeeID string            `json:"employee_id" validate:"required"`
	Category   string            `json:"category"    validate:"omitempty,oneof=personal_details address contact dependents emergency_contacts bank_details"`
	Changes    map[string]string `json:"changes"     validate:"required,min=1"`
}

type reviewRequest struct {
	ReviewNotes string `json:"review_notes"`
}

type bulkApproveRequest struct {
	RequestIDs  []string `json:"request_ids" validate:"required,min=1"`
	ReviewNotes string   `json:"review_notes"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type changeRequestResponse struct {
	ID          string     `json:"id"`
	RequesterID string     `json:"requester_id"`
	EmployeeID  string     `json:"employee_id"`
	Category    string     `json:"category"`
	FieldName   string     `json:"field_name"`
	OldValue    string     `json:"old_value"`
	NewValue    string     `json:"new_value"`
	Status      string     `json:"status"`
	ReviewedBy  string     `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewNotes string     `json:"review_notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type bulkSubmitResponse struct {
	Created []changeRequestResponse `json:"created"`
}

type paginationResponse struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type listChangeRequestsResponse struct {
	Data       []changeRequestResponse `json:"data"`
	Pagination paginationResponse      `json:"pagination"`
}

type pendingCountResponse struct {
	Pending int64 `json:"pending"`
}

type bulkApproveFailureResponse struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type bulkApproveResponse struct {
	Approved []string                     `json:"approved"`
	Failed   []bulkApproveFailureResponse `json:"failed"`
}
