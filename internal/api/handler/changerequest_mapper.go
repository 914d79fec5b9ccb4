package handler

import (
	"github.com/peoplecore/hris-api/internal/core/domain"
	"github.com/peoplecore/hris-api/internal/core/ports"
)

// --- Domain → HTTP response ---

func toChangeRequestResponse(cr *domain.ChangeRequest) changeRequestResponse {
	return changeRequestResponse{
		ID:          cr.ID,
		RequesterID: cr.RequesterID,
		EmployeeID:  cr.EmployeeID,
		Category:    string(cr.Category),
		FieldName:   cr.FieldName,
		OldValue:    cr.OldValue,
		NewValue:    cr.NewValue,
		Status:      string(cr.Status),
		ReviewedBy:  cr.ReviewedBy,
		ReviewedAt:  cr.ReviewedAt,
		ReviewNotes: cr.ReviewNotes,
		CreatedAt:   cr.CreatedAt,
		UpdatedAt:   cr.UpdatedAt,
	}
}

func toChangeRequestResponses(items []*domain.ChangeRequest) []changeRequestResponse {
	out := make([]changeRequestResponse, len(items))
	for i, cr := range items {
		out[i] = toChangeRequestResponse(cr)
	}
	return out
}

func toListResponse(r *ports.ListChangeRequestsResult) listChangeRequestsResponse {
	return listChangeRequestsResponse{
		Data: toChangeRequestResponses(r.Items),
		Pagination: paginationResponse{
			Total:  r.Total,
			Limit:  r.Limit,
			Offset: r.Offset,
		},
	}
}

func toBulkApproveResponse(r *ports.BulkApproveResult) bulkApproveResponse {
	failed := make([]bulkApproveFailureResponse, len(r.Failed))
	for i, f := range r.Failed {
		failed[i] = bulkApproveFailureResponse{ID: f.ID, Reason: f.Reason}
	}
	return bulkApproveResponse{Approved: r.Approved, Failed: failed}
}
