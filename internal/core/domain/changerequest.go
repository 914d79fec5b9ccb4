package domain

import (
	"errors"
	"fmt"
	"time"
)

// ChangeRequestStatus is the review state of a change request.
// pending is the only non-terminal state: a request is approved or
// rejected exactly once and never reverted.
type ChangeRequestStatus string

const (
	ChangePending  ChangeRequestStatus = "pending"
	ChangeApproved ChangeRequestStatus = "approved"
	ChangeRejected ChangeRequestStatus = "rejected"
)

var ErrRequestNotFound = errors.New("change request not found")
var ErrRequestNotPending = errors.New("change request not found or already processed")
var ErrReviewNotesRequired = errors.New("review notes are required to reject a change request")
var ErrNoChanges = errors.New("no changes supplied")
var ErrCategoryMismatch = errors.New("category does not match field")
var ErrFieldNotEditable = errors.New("field is not self-service editable")
var ErrUnknownField = errors.New("unknown employee field")

// FieldValidationError carries the offending field so the API can tell the
// caller exactly what to fix.
type FieldValidationError struct {
	Field string
	Err   error
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldValidationError) Unwrap() error { return e.Err }

// Hint is surfaced to the caller alongside the error.
func (e *FieldValidationError) Hint() string {
	switch {
	case errors.Is(e.Err, ErrFieldNotEditable):
		return "this field cannot be changed through self-service; contact HR to update it"
	case errors.Is(e.Err, ErrUnknownField):
		return "the field is not part of the employee record"
	default:
		return ""
	}
}

// ChangeRequest is a proposed mutation to one field of one employee,
// awaiting privileged review. OldValue is snapshotted at submission time
// and is the audit baseline even if the record changes again before
// review.
type ChangeRequest struct {
	ID          string              `json:"id" bson:"_id,omitempty"`
	RequesterID string              `json:"requester_id" bson:"requester_id"`
	EmployeeID  string              `json:"employee_id" bson:"employee_id"`
	Category    ChangeCategory      `json:"category" bson:"category"`
	FieldName   string              `json:"field_name" bson:"field_name"`
	OldValue    string              `json:"old_value" bson:"old_value"`
	NewValue    string              `json:"new_value" bson:"new_value"`
	Status      ChangeRequestStatus `json:"status" bson:"status"`
	ReviewedBy  string              `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time          `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
	ReviewNotes string              `json:"review_notes,omitempty" bson:"review_notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at" bson:"updated_at"`
}
