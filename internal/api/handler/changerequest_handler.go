package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/peoplecore/hris-api/internal/core/ports"
)

// ChangeRequestHandler handles HTTP requests for the change-request
// workflow.
type ChangeRequestHandler struct {
	service ports.ChangeRequestService
}

func NewChangeRequestHandler(service ports.ChangeRequestService) *ChangeRequestHandler {
	return &ChangeRequestHandler{service: service}
}

// Submit handles POST /v1/change-requests.
//
// @Summary      Propose a change to one employee field
// @Tags         change-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitChangeRequest  true  "Proposed change"
// @Success      201   {object}  changeRequestResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/change-requests [post]
func (h *ChangeRequestHandler) Submit(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req submitChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Submit(c.Request().Context(), ports.SubmitChangeInput{
		Requester:  principal,
		EmployeeID: req.EmployeeID,
		FieldName:  req.FieldName,
		NewValue:   req.NewValue,
		Category:   req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toChangeRequestResponse(created))
}

// BulkSubmit handles POST /v1/change-requests/bulk.
//
// @Summary      Propose several changes of one category at once
// @Tags         change-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkSubmitRequest  true  "Category and field changes"
// @Success      201   {object}  bulkSubmitResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/change-requests/bulk [post]
func (h *ChangeRequestHandler) BulkSubmit(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req bulkSubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.BulkSubmit(c.Request().Context(), ports.BulkSubmitInput{
		Requester:  principal,
		EmployeeID: req.EmployeeID,
		Category:   req.Category,
		Changes:    req.Changes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bulkSubmitResponse{Created: toChangeRequestResponses(created)})
}

// List handles GET /v1/change-requests.
//
// @Summary      List change requests visible to the caller
// @Tags         change-requests
// @Produce      json
// @Security     BearerAuth
// @Param        status       query     string  false  "Filter by status (pending, approved, rejected)"
// @Param        employee_id  query     string  false  "Filter by subject employee (privileged only)"
// @Param        limit        query     int     false  "Page size (default 100, max 500)"
// @Param        offset       query     int     false  "Rows to skip"
// @Success      200          {object}  listChangeRequestsResponse
// @Failure      403          {object}  errorResponse
// @Router       /v1/change-requests [get]
func (h *ChangeRequestHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	result, err := h.service.List(c.Request().Context(), ports.ListChangeRequestsInput{
		Principal:  principal,
		Status:     c.QueryParam("status"),
		EmployeeID: c.QueryParam("employee_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// PendingCount handles GET /v1/change-requests/pending/count.
//
// @Summary      Count change requests awaiting review
// @Tags         change-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pendingCountResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/change-requests/pending/count [get]
func (h *ChangeRequestHandler) PendingCount(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	n, err := h.service.CountPending(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pendingCountResponse{Pending: n})
}

// Approve handles PATCH /v1/change-requests/:id/approve.
//
// @Summary      Approve a pending change request
// @Tags         change-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true   "Change request id"
// @Param        body  body      reviewRequest  false  "Optional review notes"
// @Success      200   {object}  changeRequestResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/change-requests/{id}/approve [patch]
func (h *ChangeRequestHandler) Approve(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Approve(c.Request().Context(), ports.ReviewInput{
		Reviewer:  principal,
		RequestID: c.Param("id"),
		Notes:     req.ReviewNotes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toChangeRequestResponse(updated))
}

// Reject handles PATCH /v1/change-requests/:id/reject.
//
// @Summary      Reject a pending change request
// @Tags         change-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Change request id"
// @Param        body  body      reviewRequest  true  "Review notes (required)"
// @Success      200   {object}  changeRequestResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/change-requests/{id}/reject [patch]
func (h *ChangeRequestHandler) Reject(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Reject(c.Request().Context(), ports.ReviewInput{
		Reviewer:  principal,
		RequestID: c.Param("id"),
		Notes:     req.ReviewNotes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toChangeRequestResponse(updated))
}

// BulkApprove handles PATCH /v1/change-requests/bulk/approve.
//
// @Summary      Approve several change requests, reporting per-id outcomes
// @Tags         change-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkApproveRequest  true  "Request ids and optional notes"
// @Success      200   {object}  bulkApproveResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/change-requests/bulk/approve [patch]
func (h *ChangeRequestHandler) BulkApprove(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req bulkApproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.BulkApprove(c.Request().Context(), ports.BulkApproveInput{
		Reviewer:   principal,
		RequestIDs: req.RequestIDs,
		Notes:      req.ReviewNotes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBulkApproveResponse(result))
}
